package oauth

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rogeecn/strava-go/internal/config"
	"github.com/rogeecn/strava-go/internal/transport"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL        = "https://www.strava.com"
	DefaultGrantTypeField = "grant_type"

	authorizePath = "/oauth/authorize"
	exchangePath  = "/oauth/token"
	refreshPath   = "/api/v3/oauth/token"
)

// ConfigProvider supplies the client secrets and authorization code.
type ConfigProvider interface {
	OAuthSettings() config.OAuth
}

// Manager owns the Credentials obtained from a code exchange and renews
// them on request.
type Manager struct {
	creds *Credentials

	baseURL        string
	endpoint       oauth2.Endpoint
	refreshURL     string
	grantTypeField string

	poster  transport.HTTPPoster
	decoder transport.Decoder
}

type Option func(*Manager)

func WithBaseURL(baseURL string) Option {
	return func(m *Manager) {
		if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
			m.baseURL = baseURL
		}
	}
}

func WithPoster(poster transport.HTTPPoster) Option {
	return func(m *Manager) {
		if poster != nil {
			m.poster = poster
		}
	}
}

func WithDecoder(decoder transport.Decoder) Option {
	return func(m *Manager) {
		if decoder != nil {
			m.decoder = decoder
		}
	}
}

// WithGrantTypeField renames the grant type parameter sent with the code
// exchange. The refresh request always uses grant_type.
func WithGrantTypeField(field string) Option {
	return func(m *Manager) {
		if field = strings.TrimSpace(field); field != "" {
			m.grantTypeField = field
		}
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// NewManager exchanges the configured authorization code for a token pair.
func NewManager(ctx context.Context, provider ConfigProvider, opts ...Option) (*Manager, error) {
	if provider == nil {
		return nil, &ConfigError{Key: "CLIENT_ID"}
	}

	settings := provider.OAuthSettings()
	clientID := strings.TrimSpace(settings.ClientID)
	clientSecret := strings.TrimSpace(settings.ClientSecret)
	code := strings.TrimSpace(settings.Code)

	switch {
	case clientID == "":
		return nil, &ConfigError{Key: "CLIENT_ID"}
	case clientSecret == "":
		return nil, &ConfigError{Key: "CLIENT_SECRET"}
	case code == "":
		return nil, &ConfigError{Key: "OAUTH_CODE"}
	}

	m := &Manager{
		baseURL:        DefaultBaseURL,
		grantTypeField: DefaultGrantTypeField,
		poster:         transport.NewClient(0),
		decoder:        transport.JSONDecoder{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.endpoint = endpoint(m.baseURL)
	m.refreshURL = strings.TrimRight(m.baseURL, "/") + refreshPath

	params := url.Values{}
	params.Set("client_id", clientID)
	params.Set("client_secret", clientSecret)
	params.Set("code", code)
	params.Set(m.grantTypeField, "authorization_code")

	token, err := m.requestToken(ctx, "exchange code", m.endpoint.TokenURL, params)
	if err != nil {
		return nil, err
	}

	m.creds = &Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RefreshToken: token.RefreshToken,
		AccessToken:  token.AccessToken,
		Expiry:       expiryTime(token.ExpiresAt),
	}

	log.Debug().
		Str("client_id", clientID).
		Time("expiry", m.creds.Expiry).
		Msg("oauth: authorization code exchanged")

	return m, nil
}

// Credentials returns the managed credentials. The pointer stays the same
// across refreshes.
func (m *Manager) Credentials() *Credentials {
	return m.creds
}

// Refresh trades the current refresh token for a new pair. On failure the
// credentials are left untouched.
func (m *Manager) Refresh(ctx context.Context) error {
	refreshToken := strings.TrimSpace(m.creds.RefreshToken)
	if refreshToken == "" {
		return ErrMissingRefreshToken
	}

	params := url.Values{}
	params.Set("client_id", m.creds.ClientID)
	params.Set("client_secret", m.creds.ClientSecret)
	params.Set("grant_type", "refresh_token")
	params.Set("refresh_token", refreshToken)

	token, err := m.requestToken(ctx, "refresh token", m.refreshURL, params)
	if err != nil {
		return err
	}

	m.creds.RefreshToken = token.RefreshToken
	m.creds.AccessToken = token.AccessToken
	m.creds.Expiry = expiryTime(token.ExpiresAt)

	log.Debug().
		Str("client_id", m.creds.ClientID).
		Time("expiry", m.creds.Expiry).
		Msg("oauth: token refreshed")

	return nil
}

func (m *Manager) requestToken(ctx context.Context, op, target string, params url.Values) (*tokenResponse, error) {
	resp, err := m.poster.Post(ctx, target, params)
	if err != nil {
		var tErr *transport.TransportError
		if errors.As(err, &tErr) {
			return nil, err
		}
		return nil, &transport.TransportError{Op: op, URL: target, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		log.Debug().
			Str("op", op).
			Int("status", resp.StatusCode).
			Msg("oauth: token endpoint rejected request")
		return nil, &AuthError{Op: op, StatusCode: resp.StatusCode, Body: transport.Snippet(resp.Body)}
	}

	var payload tokenResponse
	if err := m.decoder.Decode(resp.Body, &payload); err != nil {
		return nil, &transport.DecodeError{Op: op, Err: err}
	}
	if strings.TrimSpace(payload.AccessToken) == "" {
		return nil, &transport.DecodeError{Op: op, Err: errors.New("missing access_token")}
	}
	if strings.TrimSpace(payload.RefreshToken) == "" {
		return nil, &transport.DecodeError{Op: op, Err: errors.New("missing refresh_token")}
	}

	return &payload, nil
}

func endpoint(baseURL string) oauth2.Endpoint {
	base := strings.TrimRight(baseURL, "/")
	return oauth2.Endpoint{
		AuthURL:   base + authorizePath,
		TokenURL:  base + exchangePath,
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

func expiryTime(expiresAt int64) time.Time {
	if expiresAt <= 0 {
		return time.Time{}
	}
	return time.Unix(expiresAt, 0).UTC()
}
