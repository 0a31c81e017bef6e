package qvm

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultURL is where a locally started QVM listens.
const DefaultURL = "http://127.0.0.1:5000"

// ClientBuilder creates QVM clients.
type ClientBuilder struct {
	url        string
	httpClient *http.Client
	timeout    time.Duration
	seed       *int64
	log        *slog.Logger
}

// WithURL sets the QVM endpoint.
func (b ClientBuilder) WithURL(url string) ClientBuilder {
	b.url = url
	return b
}

// WithHTTPClient sets the HTTP client used for requests.
func (b ClientBuilder) WithHTTPClient(c *http.Client) ClientBuilder {
	b.httpClient = c
	return b
}

// WithTimeout bounds each request. Zero means no limit. The timeout also
// applies when an HTTP client is given; that client is copied, not changed.
func (b ClientBuilder) WithTimeout(timeout time.Duration) ClientBuilder {
	b.timeout = timeout
	return b
}

// WithSeed makes the QVM's random number generator deterministic.
func (b ClientBuilder) WithSeed(seed int64) ClientBuilder {
	b.seed = &seed
	return b
}

// WithLogger sets the logger.
func (b ClientBuilder) WithLogger(log *slog.Logger) ClientBuilder {
	b.log = log
	return b
}

// Build creates a client.
func (b ClientBuilder) Build() Client {
	c := &clientImpl{
		url:  b.url,
		seed: b.seed,
		log:  b.log,
	}

	if c.url == "" {
		c.url = DefaultURL
	}

	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if b.httpClient != nil {
		hc := *b.httpClient
		c.client = resty.NewWithClient(&hc)
	} else {
		c.client = resty.New()
	}

	if b.timeout > 0 {
		c.client.SetTimeout(b.timeout)
	}

	c.client.
		SetResponseBodyLimit(maxResponseSize).
		SetLogger(restyLogger{log: c.log})

	return c
}
