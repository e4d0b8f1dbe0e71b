package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Turn and round actions",
}

// gameAction posts a bare game action and prints the resulting state
func gameAction(action string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return postAction(cmd.Context(), cmd, args[0], action, nil)
	}
}

func postAction(ctx context.Context, cmd *cobra.Command, code, action string, body any) error {
	var state snapshot
	if err := client.Post(ctx, roomPath(code, action), body, &state); err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), rootConfig.Output, &state)
}

var gameStartCmd = &cobra.Command{
	Use:   "start <code>",
	Short: "Start a round (host only)",
	Args:  cobra.ExactArgs(1),
	RunE:  gameAction("start"),
}

var gameRollCmd = &cobra.Command{
	Use:   "roll <code>",
	Short: "Roll your unkept dice",
	Args:  cobra.ExactArgs(1),
	RunE:  gameAction("roll"),
}

var gameKeepCmd = &cobra.Command{
	Use:   "keep <code> <die-index>",
	Short: "Toggle holding a die (0-5)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("die index must be a number: %w", err)
		}
		return postAction(cmd.Context(), cmd, args[0], "keep", map[string]int{"die_index": index})
	},
}

var gameEndTurnCmd = &cobra.Command{
	Use:   "end-turn <code>",
	Short: "Bank your dice and end your turn",
	Args:  cobra.ExactArgs(1),
	RunE:  gameAction("end-turn"),
}

var gamePlayAgainCmd = &cobra.Command{
	Use:   "play-again <code>",
	Short: "Start a fresh round after one finished",
	Args:  cobra.ExactArgs(1),
	RunE:  gameAction("play-again"),
}

var payoutCmd = &cobra.Command{
	Use:   "payout",
	Short: "Payout handle commands",
}

var payoutSetCmd = &cobra.Command{
	Use:   "set <code> <handle>",
	Short: "Save your payout handle for the room",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Handle string    `json:"handle"`
			State  *snapshot `json:"state"`
		}
		if err := client.Put(cmd.Context(), roomPath(args[0], "payout-handle"),
			map[string]string{"handle": args[1]}, &resp); err != nil {
			return err
		}
		if rootConfig.Output == "json" {
			return printResult(cmd.OutOrStdout(), "json", resp)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Payout handle set to %s\n", resp.Handle)
		return nil
	},
}

func init() {
	gameCmd.AddCommand(gameStartCmd)
	gameCmd.AddCommand(gameRollCmd)
	gameCmd.AddCommand(gameKeepCmd)
	gameCmd.AddCommand(gameEndTurnCmd)
	gameCmd.AddCommand(gamePlayAgainCmd)
	payoutCmd.AddCommand(payoutSetCmd)
}
