package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const userAgent = "strava-go"

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// HTTPPoster sends a POST with params carried in the query string.
type HTTPPoster interface {
	Post(ctx context.Context, rawURL string, params url.Values) (*Response, error)
}

// HTTPGetter sends a GET with the given extra headers.
type HTTPGetter interface {
	Get(ctx context.Context, rawURL string, header http.Header) (*Response, error)
}

type Client struct {
	httpClient *http.Client
}

var (
	_ HTTPPoster = (*Client)(nil)
	_ HTTPGetter = (*Client)(nil)
)

// NewClient returns a Client. A zero timeout leaves requests unbounded.
func NewClient(timeout time.Duration) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: timeout})
}

func NewClientWithHTTP(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{httpClient: httpClient}
}

func (c *Client) Post(ctx context.Context, rawURL string, params url.Values) (*Response, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, &TransportError{Op: "post", URL: rawURL, Err: err}
	}
	if len(params) > 0 {
		q := target.Query()
		for key, values := range params {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		target.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), nil)
	if err != nil {
		return nil, &TransportError{Op: "post", URL: redact(target), Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	return c.do(req, "post")
}

func (c *Client) Get(ctx context.Context, rawURL string, header http.Header) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{Op: "get", URL: rawURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	for key, values := range header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	return c.do(req, "get")
}

func (c *Client) do(req *http.Request, op string) (*Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, URL: redact(req.URL), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, URL: redact(req.URL), Err: err}
	}

	log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("http request completed")

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// redact drops the query string, which carries client secrets and tokens.
func redact(u *url.URL) string {
	if u == nil {
		return ""
	}
	clean := *u
	clean.RawQuery = ""
	clean.User = nil
	return clean.String()
}

const maxSnippet = 256

// Snippet returns a trimmed, length-capped copy of body for error messages.
func Snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxSnippet {
		return s[:maxSnippet] + "..."
	}
	return s
}
