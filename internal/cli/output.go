package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// snapshot mirrors the server's room state payload for display
type snapshot struct {
	Code               string        `json:"code"`
	Phase              string        `json:"phase"`
	MaxPlayers         int           `json:"max_players"`
	WagerEnabled       bool          `json:"wager_enabled"`
	WagerAmount        float64       `json:"wager_amount"`
	Pot                float64       `json:"pot"`
	Players            []playerView  `json:"players"`
	CurrentPlayerIndex int           `json:"current_player_index"`
	CurrentTurn        *turnView     `json:"current_turn"`
	RoundHistory       []roundRecord `json:"round_history"`
	Winner             *string       `json:"winner"`
}

type playerView struct {
	Name         string `json:"name"`
	Score        *int   `json:"score"`
	Qualified    bool   `json:"qualified"`
	Wins         int    `json:"wins"`
	IsHost       bool   `json:"is_host"`
	Disconnected bool   `json:"disconnected"`
	PayoutHandle string `json:"payout_handle"`
}

type turnView struct {
	PlayerName string `json:"player_name"`
	Dice       []*int `json:"dice"`
	Kept       []int  `json:"kept"`
	RollsUsed  int    `json:"rolls_used"`
	MaxRolls   int    `json:"max_rolls"`
}

type roundRecord struct {
	Number  int           `json:"number"`
	Results []roundResult `json:"results"`
	Winner  string        `json:"winner"`
}

type roundResult struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Qualified bool   `json:"qualified"`
	Dice      []*int `json:"dice"`
}

// printResult renders either pretty text or raw JSON per the output flag
func printResult(w io.Writer, format string, data any) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	switch v := data.(type) {
	case *snapshot:
		printSnapshot(w, v)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	return nil
}

func printSnapshot(w io.Writer, s *snapshot) {
	fmt.Fprintf(w, "Room %s  [%s]  players %d/%d\n", s.Code, s.Phase, len(s.Players), s.MaxPlayers)
	if s.WagerEnabled {
		fmt.Fprintf(w, "Wager: %.2f per player (pot %.2f)\n", s.WagerAmount, s.Pot)
	}

	for i, p := range s.Players {
		marker := "  "
		if s.Phase == "playing" && i == s.CurrentPlayerIndex {
			marker = "> "
		}
		var tags []string
		if p.IsHost {
			tags = append(tags, "host")
		}
		if p.Disconnected {
			tags = append(tags, "gone")
		}
		score := "-"
		if p.Score != nil {
			score = fmt.Sprintf("%d", *p.Score)
			if !p.Qualified {
				score += " (nq)"
			}
		}
		line := fmt.Sprintf("%s%s  score %s  wins %d", marker, p.Name, score, p.Wins)
		if len(tags) > 0 {
			line += "  [" + strings.Join(tags, ",") + "]"
		}
		fmt.Fprintln(w, line)
	}

	if s.CurrentTurn != nil {
		fmt.Fprintf(w, "Turn: %s  roll %d/%d  dice %s\n",
			s.CurrentTurn.PlayerName,
			s.CurrentTurn.RollsUsed,
			s.CurrentTurn.MaxRolls,
			formatDice(s.CurrentTurn.Dice, s.CurrentTurn.Kept),
		)
	}
	if s.Winner != nil {
		fmt.Fprintf(w, "Winner: %s\n", *s.Winner)
	}
}

// formatDice shows each slot, marking kept dice with an asterisk
func formatDice(dice []*int, kept []int) string {
	keptSet := make(map[int]bool, len(kept))
	for _, k := range kept {
		keptSet[k] = true
	}
	parts := make([]string, 0, len(dice))
	for i, d := range dice {
		if d == nil {
			parts = append(parts, "_")
			continue
		}
		if keptSet[i] {
			parts = append(parts, fmt.Sprintf("%d*", *d))
		} else {
			parts = append(parts, fmt.Sprintf("%d", *d))
		}
	}
	return strings.Join(parts, " ")
}
