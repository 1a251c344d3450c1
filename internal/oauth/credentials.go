package oauth

import (
	"fmt"
	"time"

	"golang.org/x/oauth2"
)

// Credentials is the client identity plus the current token pair. Refresh
// updates it in place, so every holder of the pointer sees the new tokens.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	AccessToken  string
	// Expiry is zero when the service did not report one.
	Expiry time.Time
}

var _ oauth2.TokenSource = (*Credentials)(nil)

// Token returns the current pair as an oauth2.Token. It reads the fields at
// call time, so a refreshed Credentials yields the new access token.
func (c *Credentials) Token() (*oauth2.Token, error) {
	if c.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		TokenType:    "Bearer",
		RefreshToken: c.RefreshToken,
		Expiry:       c.Expiry,
	}, nil
}

// Expired reports whether the access token expired at or before now. Unknown
// expiry is never expired.
func (c *Credentials) Expired(now time.Time) bool {
	if c.Expiry.IsZero() {
		return false
	}
	return !now.Before(c.Expiry)
}

func (c *Credentials) String() string {
	expiry := "unknown"
	if !c.Expiry.IsZero() {
		expiry = c.Expiry.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("Credentials{client_id=%s access_token=%s refresh_token=%s expiry=%s}",
		c.ClientID, mask(c.AccessToken), mask(c.RefreshToken), expiry)
}

func mask(secret string) string {
	if secret == "" {
		return "<empty>"
	}
	return "<redacted>"
}
