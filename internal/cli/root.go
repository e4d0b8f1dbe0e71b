// Package cli implements the dicecli command line client
package cli

import (
	"github.com/spf13/cobra"
)

var (
	rootConfig Config
	client     *Client
)

var rootCmd = &cobra.Command{
	Use:           "dicecli",
	Short:         "Command line client for the 1-4-24 dice game server",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootConfig.Token == "" {
			rootConfig.Token = loadToken()
		}
		client = NewClient(rootConfig.ServerURL, rootConfig.Token)
	},
}

func init() {
	defaultURL := envVar("server")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&rootConfig.ServerURL, "server", defaultURL, "server base URL")
	rootCmd.PersistentFlags().StringVar(&rootConfig.Token, "token", "", "session token (defaults to saved token)")
	rootCmd.PersistentFlags().StringVarP(&rootConfig.Output, "output", "o", "text", "output format: text or json")

	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(roomCmd)
	rootCmd.AddCommand(gameCmd)
	rootCmd.AddCommand(payoutCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(healthCmd)
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}
