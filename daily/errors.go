package daily

import (
	"dailyco/protocol"
	"errors"
	"fmt"
)

// ErrorKind is the error vocabulary of Daily's error responses.
type ErrorKind string

const (
	KindAuthenticationError      ErrorKind = "authentication-error"
	KindAuthorizationHeaderError ErrorKind = "authorization-header-error"
	KindJSONParsingError         ErrorKind = "json-parsing-error"
	KindInvalidRequestError      ErrorKind = "invalid-request-error"
	KindRateLimitError           ErrorKind = "rate-limit-error"
	KindServerError              ErrorKind = "server-error"
	KindNotFound                 ErrorKind = "not-found"
)

func (k ErrorKind) String() string { return string(k) }

// ErrorInfo is the body of a failed Daily request.
type ErrorInfo struct {
	Error *ErrorKind `json:"error"`
	Info  *string    `json:"info"`
}

// TransportError means the request did not complete or its response body
// was not the JSON expected.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: failure making the request: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError is a non-2xx response carrying Daily's structured error body.
type ServiceError struct {
	Status int
	Info   ErrorInfo
}

func (e *ServiceError) Error() string {
	pretty, err := protocol.MarshalIndent(e.Info)
	if err != nil {
		return fmt.Sprintf("daily request returned an error: status %d", e.Status)
	}
	return "daily request returned an error: " + string(pretty)
}

// Kind returns the reported error kind, or "" when the body had none.
func (e *ServiceError) Kind() ErrorKind {
	if e.Info.Error == nil {
		return ""
	}
	return *e.Info.Error
}

// ClientUsageError is a local precondition failure detected before any
// request was sent.
type ClientUsageError struct {
	Reason string
}

func (e *ClientUsageError) Error() string {
	return "invalid client configuration: " + e.Reason
}

// PaginationRequiredError is returned by listings whose result set does not
// fit in a single page.
type PaginationRequiredError struct {
	TotalCount int
	Limit      int
}

func (e *PaginationRequiredError) Error() string {
	return fmt.Sprintf("response requires pagination, which is not implemented yet (total_count %d, page limit %d)",
		e.TotalCount, e.Limit)
}

// KindOf returns the service error kind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var se *ServiceError
	if !errors.As(err, &se) || se.Info.Error == nil {
		return "", false
	}
	return *se.Info.Error, true
}

// IsNotFound reports whether err is a not-found service error.
func IsNotFound(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindNotFound
}
