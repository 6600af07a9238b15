// Package daily is the request dispatcher for Daily's REST API. It sends the
// builders from the room, meetingtoken and recording packages and turns
// responses into entities or typed errors.
package daily

import (
	"context"
	"dailyco/core"
	"dailyco/meetingtoken"
	"dailyco/protocol"
	"dailyco/recording"
	"dailyco/room"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// RoomsPageLimit is the largest room listing GetRooms returns without
// pagination.
const RoomsPageLimit = 100

// Client wraps Daily's REST API. It holds only immutable state after
// construction and is safe for concurrent use.
type Client struct {
	http   *resty.Client
	logger *core.Logger
}

// New creates a client from config. A nil config uses DefaultConfig with no
// API key; a nil logger falls back to the global logger.
func New(config *Config, logger *core.Logger) (*Client, error) {
	return newClient(config, logger, nil)
}

func newClient(config *Config, logger *core.Logger, hc *http.Client) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	cfg := config.withDefaults()
	if err := checkAPIKey(cfg.APIKey); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.GetLogger()
	}

	var rc *resty.Client
	if hc != nil {
		rc = resty.NewWithClient(hc)
	} else {
		rc = resty.New()
	}
	logger = logger.With(map[string]interface{}{"component": "daily-client"})
	rc.SetBaseURL(cfg.APIBaseURL).
		SetLogger(logger).
		SetAuthToken(cfg.APIKey).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", cfg.UserAgent).
		SetJSONMarshaler(protocol.Marshal).
		SetJSONUnmarshaler(protocol.Unmarshal)
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	return &Client{
		http:   rc,
		logger: logger,
	}, nil
}

// checkAPIKey rejects keys that cannot travel in an HTTP header value.
func checkAPIKey(key string) error {
	for i := 0; i < len(key); i++ {
		b := key[i]
		if b == '\t' {
			continue
		}
		if b < 0x20 || b > 0x7e {
			return &ClientUsageError{Reason: "API key must include only printable ASCII characters"}
		}
	}
	return nil
}

// call describes one request.
type call struct {
	op     string
	method string
	path   string
	params map[string]string
	query  map[string]string
	body   json.Marshaler
}

// do sends the request and classifies failures. On success the raw body is
// returned for the caller to decode.
func (c *Client) do(ctx context.Context, in call) ([]byte, error) {
	logger := core.LoggerOr(ctx, c.logger)

	req := c.http.R().SetContext(ctx)
	if len(in.params) > 0 {
		req.SetPathParams(in.params)
	}
	if len(in.query) > 0 {
		req.SetQueryParams(in.query)
	}
	if in.body != nil {
		body, err := in.body.MarshalJSON()
		if err != nil {
			return nil, &TransportError{Op: in.op, Err: fmt.Errorf("marshal body: %w", err)}
		}
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(in.method, in.path)
	if err != nil {
		logger.Warn("daily request failed", "op", in.op, "method", in.method, "path", in.path, "error", err.Error())
		return nil, &TransportError{Op: in.op, Err: err}
	}
	logger.Debug("daily request",
		"op", in.op,
		"method", in.method,
		"path", in.path,
		"status", resp.StatusCode(),
		"duration", time.Since(start).String(),
	)

	if !resp.IsSuccess() {
		if !protocol.Valid(resp.Body()) {
			logger.Warn("daily error body is not JSON", "op", in.op, "status", resp.StatusCode())
			return nil, &TransportError{Op: in.op, Err: fmt.Errorf("status %d: error body is not JSON", resp.StatusCode())}
		}
		var info ErrorInfo
		if err := protocol.Unmarshal(resp.Body(), &info); err != nil {
			return nil, &TransportError{Op: in.op, Err: fmt.Errorf("status %d: %w", resp.StatusCode(), err)}
		}
		serr := &ServiceError{Status: resp.StatusCode(), Info: info}
		logger.Warn("daily request returned an error", "op", in.op, "status", resp.StatusCode(), "kind", serr.Kind().String())
		return nil, serr
	}
	return resp.Body(), nil
}

// fetch sends the request and decodes a successful body into T.
func fetch[T any](ctx context.Context, c *Client, in call) (*T, error) {
	body, err := c.do(ctx, in)
	if err != nil {
		return nil, err
	}
	var v T
	if err := protocol.Unmarshal(body, &v); err != nil {
		return nil, &TransportError{Op: in.op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return &v, nil
}

// CreateRoom creates a new Daily room.
func (c *Client) CreateRoom(ctx context.Context, req *room.Create) (*room.Room, error) {
	if req == nil {
		req = room.NewCreate()
	}
	if name, ok := req.RoomName(); ok {
		core.LoggerOr(ctx, c.logger).Debug("creating room", "name", name)
	}
	return fetch[room.Room](ctx, c, call{
		op:     "create room",
		method: http.MethodPost,
		path:   "rooms",
		body:   req,
	})
}

// UpdateRoom changes the privacy or properties of an existing room.
func (c *Client) UpdateRoom(ctx context.Context, name string, req *room.Update) (*room.Room, error) {
	if req == nil {
		req = room.NewUpdate()
	}
	return fetch[room.Room](ctx, c, call{
		op:     "update room",
		method: http.MethodPost,
		path:   "rooms/{name}",
		params: map[string]string{"name": name},
		body:   req,
	})
}

// GetRoom retrieves room details.
func (c *Client) GetRoom(ctx context.Context, name string) (*room.Room, error) {
	return fetch[room.Room](ctx, c, call{
		op:     "get room",
		method: http.MethodGet,
		path:   "rooms/{name}",
		params: map[string]string{"name": name},
	})
}

// GetRooms lists the domain's rooms. Listings that need more than one page
// fail with *PaginationRequiredError.
func (c *Client) GetRooms(ctx context.Context) ([]room.Room, error) {
	list, err := fetch[protocol.ListResponse[room.Room]](ctx, c, call{
		op:     "get rooms",
		method: http.MethodGet,
		path:   "rooms",
	})
	if err != nil {
		return nil, err
	}
	if list.TotalCount >= RoomsPageLimit {
		return nil, &PaginationRequiredError{TotalCount: list.TotalCount, Limit: RoomsPageLimit}
	}
	return list.Data, nil
}

// DeleteRoom deletes a Daily room.
func (c *Client) DeleteRoom(ctx context.Context, name string) error {
	_, err := c.do(ctx, call{
		op:     "delete room",
		method: http.MethodDelete,
		path:   "rooms/{name}",
		params: map[string]string{"name": name},
	})
	return err
}

// CreateMeetingToken asks the service to issue a token for the builder state.
func (c *Client) CreateMeetingToken(ctx context.Context, b *meetingtoken.Builder) (string, error) {
	if b == nil {
		b = meetingtoken.New()
	}
	resp, err := fetch[protocol.TokenResponse](ctx, c, call{
		op:     "create meeting token",
		method: http.MethodPost,
		path:   "meeting-tokens",
		body:   b,
	})
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// GetMeetingToken validates a token and returns its properties.
func (c *Client) GetMeetingToken(ctx context.Context, token string) (*meetingtoken.MeetingToken, error) {
	return fetch[meetingtoken.MeetingToken](ctx, c, call{
		op:     "get meeting token",
		method: http.MethodGet,
		path:   "meeting-tokens/{token}",
		params: map[string]string{"token": token},
	})
}

// GetRecording retrieves a recording.
func (c *Client) GetRecording(ctx context.Context, id uuid.UUID) (*recording.Recording, error) {
	return fetch[recording.Recording](ctx, c, call{
		op:     "get recording",
		method: http.MethodGet,
		path:   "recordings/{id}",
		params: map[string]string{"id": id.String()},
	})
}

// DeleteRecording deletes a recording.
func (c *Client) DeleteRecording(ctx context.Context, id uuid.UUID) error {
	_, err := c.do(ctx, call{
		op:     "delete recording",
		method: http.MethodDelete,
		path:   "recordings/{id}",
		params: map[string]string{"id": id.String()},
	})
	return err
}

// GetRecordingAccessLink returns a time-limited download link.
func (c *Client) GetRecordingAccessLink(ctx context.Context, id uuid.UUID, req *recording.AccessLinkRequest) (*recording.AccessLink, error) {
	return fetch[recording.AccessLink](ctx, c, call{
		op:     "get recording access link",
		method: http.MethodGet,
		path:   "recordings/{id}/access-link",
		params: map[string]string{"id": id.String()},
		query:  req.Query(),
	})
}

// ListRecordings lists recordings, filtered and paged by req.
func (c *Client) ListRecordings(ctx context.Context, req *recording.ListRequest) (*recording.List, error) {
	return fetch[recording.List](ctx, c, call{
		op:     "list recordings",
		method: http.MethodGet,
		path:   "recordings",
		query:  req.Query(),
	})
}
