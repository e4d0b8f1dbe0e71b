// Package response holds the JSON bodies the API returns and the snapshot
// broadcast to rooms. Snapshots carry full public state and nothing private:
// no player ids other than positions, no tokens, no pending-result buffer.
package response

import "github.com/tgrante/dicegame-go/internal/model"

type GuestCreatedResponse struct {
	Token    string `json:"token"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

type RoomCreatedResponse struct {
	Code     string    `json:"code"`
	PlayerID string    `json:"player_id"`
	State    *Snapshot `json:"state"`
}

type RoomJoinedResponse struct {
	Code     string    `json:"code"`
	PlayerID string    `json:"player_id"`
	State    *Snapshot `json:"state"`
}

type PayoutHandleResponse struct {
	Handle string    `json:"handle"`
	State  *Snapshot `json:"state"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Snapshot is the sanitized public view of a session
type Snapshot struct {
	Code               string        `json:"code"`
	Phase              string        `json:"phase"`
	MaxPlayers         int           `json:"max_players"`
	WagerEnabled       bool          `json:"wager_enabled"`
	WagerAmount        float64       `json:"wager_amount"`
	Pot                float64       `json:"pot"`
	Players            []PlayerView  `json:"players"`
	CurrentPlayerIndex int           `json:"current_player_index"`
	CurrentTurn        *TurnView     `json:"current_turn"`
	RoundHistory       []RoundRecord `json:"round_history"`
	Winner             *string       `json:"winner"`
}

type PlayerView struct {
	Name         string `json:"name"`
	Score        *int   `json:"score"`
	Qualified    bool   `json:"qualified"`
	Wins         int    `json:"wins"`
	IsHost       bool   `json:"is_host"`
	Disconnected bool   `json:"disconnected"`
	PayoutHandle string `json:"payout_handle,omitempty"`
}

// TurnView shows the open turn. Unrolled dice slots are null.
type TurnView struct {
	PlayerName string `json:"player_name"`
	Dice       []*int `json:"dice"`
	Kept       []int  `json:"kept"`
	RollsUsed  int    `json:"rolls_used"`
	MaxRolls   int    `json:"max_rolls"`
}

type RoundRecord struct {
	Number  int           `json:"number"`
	Results []RoundResult `json:"results"`
	Winner  string        `json:"winner,omitempty"`
}

// RoundResult shows one banked turn. A forfeited turn can carry unrolled
// slots, which stay null just like an open turn's.
type RoundResult struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Qualified bool   `json:"qualified"`
	Dice      []*int `json:"dice"`
}

// SnapshotFromSession builds the public view of a session
func SnapshotFromSession(session *model.GameSession) *Snapshot {
	snap := &Snapshot{
		Code:               string(session.Code),
		Phase:              string(session.Phase),
		MaxPlayers:         session.MaxPlayers,
		WagerEnabled:       session.WagerEnabled,
		WagerAmount:        session.WagerAmount,
		Pot:                session.Pot(),
		Players:            make([]PlayerView, 0, len(session.Players)),
		CurrentPlayerIndex: session.CurrentPlayerIndex,
		RoundHistory:       make([]RoundRecord, 0, len(session.RoundHistory)),
	}

	for _, p := range session.Players {
		snap.Players = append(snap.Players, PlayerView{
			Name:         p.Name,
			Score:        p.Score,
			Qualified:    p.Qualified,
			Wins:         p.Wins,
			IsHost:       p.IsHost,
			Disconnected: p.Disconnected,
			PayoutHandle: p.PayoutHandle,
		})
	}

	if session.CurrentTurn != nil {
		snap.CurrentTurn = turnView(session)
	}

	for _, r := range session.RoundHistory {
		snap.RoundHistory = append(snap.RoundHistory, roundRecordView(r))
	}

	if session.Winner != "" {
		winner := session.Winner
		snap.Winner = &winner
	}
	return snap
}

func turnView(session *model.GameSession) *TurnView {
	turn := session.CurrentTurn
	view := &TurnView{
		Dice:      diceView(turn.Dice),
		Kept:      append([]int{}, turn.Kept...),
		RollsUsed: turn.RollsUsed,
		MaxRolls:  turn.MaxRolls,
	}
	if p := session.FindPlayer(turn.PlayerID); p != nil {
		view.PlayerName = p.Name
	}
	return view
}

func roundRecordView(r model.RoundRecord) RoundRecord {
	record := RoundRecord{
		Number:  r.Number,
		Results: make([]RoundResult, 0, len(r.Results)),
		Winner:  r.Winner,
	}
	for _, res := range r.Results {
		record.Results = append(record.Results, RoundResult{
			Name:      res.Name,
			Score:     res.Score,
			Qualified: res.Qualified,
			Dice:      diceView(res.Dice),
		})
	}
	return record
}

func diceView(dice [model.NumDice]int) []*int {
	out := make([]*int, model.NumDice)
	for i, d := range dice {
		if d != 0 {
			v := d
			out[i] = &v
		}
	}
	return out
}
