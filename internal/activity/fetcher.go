package activity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rogeecn/strava-go/internal/transport"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL = "https://www.strava.com"
	activitiesPath = "/api/v3/athlete/activities"
	fetchOp        = "fetch activities"
)

// Fetcher reads the authenticated athlete's most recent activities.
type Fetcher struct {
	baseURL string
	getter  transport.HTTPGetter
	decoder transport.Decoder
}

type Option func(*Fetcher)

func WithBaseURL(baseURL string) Option {
	return func(f *Fetcher) {
		if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
			f.baseURL = baseURL
		}
	}
}

func WithGetter(getter transport.HTTPGetter) Option {
	return func(f *Fetcher) {
		if getter != nil {
			f.getter = getter
		}
	}
}

func WithDecoder(decoder transport.Decoder) Option {
	return func(f *Fetcher) {
		if decoder != nil {
			f.decoder = decoder
		}
	}
}

func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL: DefaultBaseURL,
		getter:  transport.NewClient(0),
		decoder: transport.JSONDecoder{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchRecent returns the first page of activities. The token is used as is;
// its expiry is not checked.
func (f *Fetcher) FetchRecent(ctx context.Context, src oauth2.TokenSource) ([]Record, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: nil token source", fetchOp)
	}
	token, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fetchOp, err)
	}

	header := http.Header{}
	header.Set("Authorization", token.Type()+" "+token.AccessToken)

	target := strings.TrimRight(f.baseURL, "/") + activitiesPath
	resp, err := f.getter.Get(ctx, target, header)
	if err != nil {
		var tErr *transport.TransportError
		if errors.As(err, &tErr) {
			return nil, err
		}
		return nil, &transport.TransportError{Op: fetchOp, URL: target, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{StatusCode: resp.StatusCode, Body: transport.Snippet(resp.Body)}
	}

	records, err := f.decode(resp.Body)
	if err != nil {
		return nil, &transport.DecodeError{Op: fetchOp, Err: err}
	}

	log.Debug().
		Int("count", len(records)).
		Msg("activity: recent activities fetched")

	return records, nil
}

func (f *Fetcher) decode(body []byte) ([]Record, error) {
	var wire []wireRecord
	if err := f.decoder.Decode(body, &wire); err != nil {
		return nil, err
	}
	if wire == nil {
		return nil, errors.New("expected json array")
	}

	records := make([]Record, 0, len(wire))
	for i, w := range wire {
		rec, err := w.record()
		if err != nil {
			return nil, fmt.Errorf("activity %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
