package oauth

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRefreshToken = errors.New("oauth: credentials have no refresh token")
	ErrMissingAccessToken  = errors.New("oauth: credentials have no access token")
)

// ConfigError reports a required configuration value that is absent or blank.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Key)
}

// AuthError reports a token endpoint answering with a status other than 200.
type AuthError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}
