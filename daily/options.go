package daily

import (
	"dailyco/core"
	"net/http"
	"time"
)

// Option customizes NewClient.
type Option func(*options)

type options struct {
	config     Config
	logger     *core.Logger
	httpClient *http.Client
}

// WithBaseURL points the client at another endpoint, e.g. a test server.
func WithBaseURL(url string) Option {
	return func(o *options) { o.config.APIBaseURL = url }
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.config.Timeout = d }
}

func WithUserAgent(ua string) Option {
	return func(o *options) { o.config.UserAgent = ua }
}

func WithLogger(l *core.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithHTTPClient sends requests through hc. The configured timeout is
// applied to hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// NewClient creates a client for apiKey against the public endpoint unless
// overridden by opts.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	o := options{config: *DefaultConfig()}
	o.config.APIKey = apiKey
	for _, opt := range opts {
		opt(&o)
	}
	return newClient(&o.config, o.logger, o.httpClient)
}
