package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "strava-go",
	Short:         "Strava activity client",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}
