package cmd

import (
	"fmt"

	"github.com/rogeecn/strava-go/internal/config"
	"github.com/rogeecn/strava-go/internal/oauth"
	"github.com/spf13/cobra"
)

var (
	authorizeRedirectURI string
	authorizeScope       string
)

var authorizeCmd = &cobra.Command{
	Use:   "authorize-url",
	Short: "Print the consent URL that yields an OAUTH_CODE",
	Args:  cobra.NoArgs,
	RunE:  runAuthorizeURL,
}

func init() {
	rootCmd.AddCommand(authorizeCmd)
	authorizeCmd.Flags().StringVar(&authorizeRedirectURI, "redirect-uri", "", "redirect URI (default: from STRAVA_REDIRECT_URI)")
	authorizeCmd.Flags().StringVar(&authorizeScope, "scope", "", "comma separated scopes (default: from STRAVA_SCOPE)")
}

func runAuthorizeURL(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	redirectURI := cfg.RedirectURI
	if authorizeRedirectURI != "" {
		redirectURI = authorizeRedirectURI
	}
	scope := cfg.Scope
	if authorizeScope != "" {
		scope = authorizeScope
	}

	authURL, err := oauth.AuthCodeURL(cfg.BaseURL, cfg.OAuth.ClientID, redirectURI, scope, oauth.NewState())
	if err != nil {
		return fmt.Errorf("build authorize url: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Open this URL, approve access, then copy the code parameter into OAUTH_CODE:")
	fmt.Fprintln(cmd.OutOrStdout(), authURL)
	return nil
}
