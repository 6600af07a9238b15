package protocol

import "encoding/json"

// PropertiesEnvelope wraps a property bag the way POST /meeting-tokens
// expects it.
type PropertiesEnvelope struct {
	Properties json.Marshaler `json:"properties"`
}

// TokenResponse is the body returned by POST /meeting-tokens.
type TokenResponse struct {
	Token string `json:"token"`
}

// ListResponse is the shape shared by every collection endpoint.
type ListResponse[T any] struct {
	TotalCount int `json:"total_count"`
	Data       []T `json:"data"`
}

// DeleteResponse is the body returned by DELETE endpoints.
type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	Name    string `json:"name,omitempty"`
	ID      string `json:"id,omitempty"`
}
