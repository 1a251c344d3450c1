package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/rogeecn/strava-go/internal/activity"
	"github.com/rogeecn/strava-go/internal/config"
	"github.com/rogeecn/strava-go/internal/oauth"
	"github.com/rogeecn/strava-go/internal/transport"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
)

type credentialManager interface {
	Credentials() *oauth.Credentials
	Refresh(ctx context.Context) error
}

type activityFetcher interface {
	FetchRecent(ctx context.Context, src oauth2.TokenSource) ([]activity.Record, error)
}

var fetchRefresh bool

var (
	newCredentialManager = func(ctx context.Context, cfg *config.Config) (credentialManager, error) {
		manager, err := oauth.NewManager(ctx, cfg,
			oauth.WithBaseURL(cfg.BaseURL),
			oauth.WithGrantTypeField(cfg.CodeGrantField),
			oauth.WithPoster(transport.NewClient(cfg.HTTPTimeout)),
		)
		if err != nil {
			return nil, err
		}
		return manager, nil
	}
	newActivityFetcher = func(cfg *config.Config) activityFetcher {
		return activity.NewFetcher(
			activity.WithBaseURL(cfg.BaseURL),
			activity.WithGetter(transport.NewClient(cfg.HTTPTimeout)),
		)
	}
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Exchange OAUTH_CODE for tokens and list recent activities",
	Args:  cobra.NoArgs,
	RunE:  runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().BoolVar(&fetchRefresh, "refresh", false, "refresh the token pair once before fetching")
}

func runFetch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log.Logger = config.InitLogger(cfg.LogLevel)

	ctx := context.Background()

	log.Info().Str("base_url", cfg.BaseURL).Msg("exchanging authorization code")
	manager, err := newCredentialManager(ctx, cfg)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	if fetchRefresh {
		log.Info().Msg("refreshing access token")
		if err := manager.Refresh(ctx); err != nil {
			return fmt.Errorf("refresh token: %w", err)
		}
	}

	creds := manager.Credentials()
	log.Debug().Stringer("credentials", creds).Msg("credentials ready")

	records, err := newActivityFetcher(cfg).FetchRecent(ctx, creds)
	if err != nil {
		return fmt.Errorf("fetch activities: %w", err)
	}

	log.Info().Int("count", len(records)).Msg("activities fetched")
	printRecords(cmd.OutOrStdout(), records)
	return nil
}

func printRecords(w io.Writer, records []activity.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No activities found.")
		return
	}

	fmt.Fprintln(w, "NAME\tTYPE\tMOVING\tELAPSED\tAVG_SPEED\tMAX_SPEED\tAVG_HR\tMAX_HR\tPRS")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.2f\t%s\t%s\t%g\n",
			rec.Name,
			rec.Type,
			rec.MovingDuration(),
			rec.ElapsedDuration(),
			rec.AverageSpeed,
			rec.MaxSpeed,
			formatHeartRate(rec.AverageHeartRate),
			formatHeartRate(rec.MaxHeartRate),
			rec.PRCount,
		)
	}
	fmt.Fprintf(w, "%d activities\n", len(records))
}

func formatHeartRate(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}
