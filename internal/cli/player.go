package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Player identity commands",
}

var playerGuestCmd = &cobra.Command{
	Use:   "guest <name>",
	Short: "Create a guest identity and save its token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Token    string `json:"token"`
			PlayerID string `json:"player_id"`
			Name     string `json:"name"`
		}
		if err := client.Post(cmd.Context(), "/api/v1/players/guest",
			map[string]string{"name": args[0]}, &resp); err != nil {
			return err
		}
		if err := saveToken(resp.Token); err != nil {
			return fmt.Errorf("saving token: %w", err)
		}
		if rootConfig.Output == "json" {
			return printResult(cmd.OutOrStdout(), "json", resp)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s), token saved\n", resp.Name, resp.PlayerID)
		return nil
	},
}

func init() {
	playerCmd.AddCommand(playerGuestCmd)
}
