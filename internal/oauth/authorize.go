package oauth

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// AuthCodeURL builds the consent page URL whose redirect carries the
// authorization code consumed by NewManager. scope is passed through as-is
// since the service expects a comma separated list.
func AuthCodeURL(baseURL, clientID, redirectURI, scope, state string) (string, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return "", &ConfigError{Key: "CLIENT_ID"}
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(state) == "" {
		state = NewState()
	}

	cfg := &oauth2.Config{
		ClientID:    clientID,
		Endpoint:    endpoint(baseURL),
		RedirectURL: strings.TrimSpace(redirectURI),
	}
	if scope = strings.TrimSpace(scope); scope != "" {
		cfg.Scopes = []string{scope}
	}

	return cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("approval_prompt", "auto")), nil
}

func NewState() string {
	return uuid.NewString()
}
