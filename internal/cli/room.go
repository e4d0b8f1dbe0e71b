package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	createMaxPlayers   int
	createWagerEnabled bool
	createWagerAmount  float64
)

var roomCmd = &cobra.Command{
	Use:   "room",
	Short: "Room lifecycle commands",
}

var roomCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a room and become its host",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Code     string    `json:"code"`
			PlayerID string    `json:"player_id"`
			State    *snapshot `json:"state"`
		}
		body := map[string]any{
			"max_players":   createMaxPlayers,
			"wager_enabled": createWagerEnabled,
			"wager_amount":  createWagerAmount,
		}
		if err := client.Post(cmd.Context(), "/api/v1/rooms", body, &resp); err != nil {
			return err
		}
		if rootConfig.Output == "json" {
			return printResult(cmd.OutOrStdout(), "json", resp)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created room %s\n", resp.Code)
		return printResult(cmd.OutOrStdout(), rootConfig.Output, resp.State)
	},
}

var roomGetCmd = &cobra.Command{
	Use:   "get <code>",
	Short: "Show a room's current state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var state snapshot
		if err := client.Get(cmd.Context(), roomPath(args[0], ""), &state); err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), rootConfig.Output, &state)
	},
}

var roomJoinCmd = &cobra.Command{
	Use:   "join <code>",
	Short: "Join a room",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Code  string    `json:"code"`
			State *snapshot `json:"state"`
		}
		if err := client.Post(cmd.Context(), roomPath(args[0], "join"), nil, &resp); err != nil {
			return err
		}
		if rootConfig.Output == "json" {
			return printResult(cmd.OutOrStdout(), "json", resp)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Joined room %s\n", resp.Code)
		return printResult(cmd.OutOrStdout(), rootConfig.Output, resp.State)
	},
}

func roomPath(code, action string) string {
	path := "/api/v1/rooms/" + strings.ToUpper(strings.TrimSpace(code))
	if action != "" {
		path += "/" + action
	}
	return path
}

func init() {
	roomCreateCmd.Flags().IntVar(&createMaxPlayers, "max-players", 0, "table size, 2-4 (default 3)")
	roomCreateCmd.Flags().BoolVar(&createWagerEnabled, "wager", false, "enable wagering")
	roomCreateCmd.Flags().Float64Var(&createWagerAmount, "wager-amount", 0, "per-player stake")

	roomCmd.AddCommand(roomCreateCmd)
	roomCmd.AddCommand(roomGetCmd)
	roomCmd.AddCommand(roomJoinCmd)
}
