// Package recording models Daily cloud recordings and the query parameters
// of the recording endpoints.
package recording

import (
	"dailyco/configuration"
	"strconv"

	"github.com/google/uuid"
)

// Recording is a recording as reported by the service.
type Recording struct {
	ID               uuid.UUID                     `json:"id"`
	RoomName         string                        `json:"room_name"`
	StartTs          int64                         `json:"start_ts"`
	Status           configuration.RecordingStatus `json:"status"`
	MaxParticipants  uint32                        `json:"max_participants"`
	Duration         *uint32                       `json:"duration,omitempty"`
	S3Key            string                        `json:"s3key"`
	MeetingSessionID uuid.UUID                     `json:"mtgSessionId"`
}

// AccessLink is a time-limited download link.
type AccessLink struct {
	DownloadLink string `json:"download_link"`
	Expires      int64  `json:"expires"`
}

// List is the response of GET /recordings.
type List struct {
	TotalCount uint32      `json:"total_count"`
	Data       []Recording `json:"data"`
}

// AccessLinkRequest holds the query of GET /recordings/:id/access-link.
type AccessLinkRequest struct {
	validForSecs *uint64
}

func NewAccessLink() *AccessLinkRequest {
	return &AccessLinkRequest{}
}

// ValidForSecs sets how long the link stays valid.
func (r *AccessLinkRequest) ValidForSecs(secs uint64) *AccessLinkRequest {
	r.validForSecs = &secs
	return r
}

// Query returns the query parameters that were set.
func (r *AccessLinkRequest) Query() map[string]string {
	q := map[string]string{}
	if r == nil {
		return q
	}
	if r.validForSecs != nil {
		q["valid_for_secs"] = strconv.FormatUint(*r.validForSecs, 10)
	}
	return q
}

// ListRequest holds the query of GET /recordings.
type ListRequest struct {
	limit         *uint32
	endingBefore  *uuid.UUID
	startingAfter *uuid.UUID
	roomName      *string
}

func NewList() *ListRequest {
	return &ListRequest{}
}

func (r *ListRequest) Limit(n uint32) *ListRequest {
	r.limit = &n
	return r
}

// EndingBefore returns recordings created before the given recording.
func (r *ListRequest) EndingBefore(id uuid.UUID) *ListRequest {
	r.endingBefore = &id
	return r
}

// StartingAfter returns recordings created after the given recording.
func (r *ListRequest) StartingAfter(id uuid.UUID) *ListRequest {
	r.startingAfter = &id
	return r
}

func (r *ListRequest) RoomName(name string) *ListRequest {
	r.roomName = &name
	return r
}

// Query returns the query parameters that were set.
func (r *ListRequest) Query() map[string]string {
	q := map[string]string{}
	if r == nil {
		return q
	}
	if r.limit != nil {
		q["limit"] = strconv.FormatUint(uint64(*r.limit), 10)
	}
	if r.endingBefore != nil {
		q["ending_before"] = r.endingBefore.String()
	}
	if r.startingAfter != nil {
		q["starting_after"] = r.startingAfter.String()
	}
	if r.roomName != nil {
		q["room_name"] = *r.roomName
	}
	return q
}
