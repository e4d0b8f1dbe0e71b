// Package request holds the JSON request bodies accepted by the API
package request

type CreateGuest struct {
	Name string `json:"name"`
}

type CreateRoom struct {
	MaxPlayers   int     `json:"max_players,omitempty"`
	WagerEnabled bool    `json:"wager_enabled,omitempty"`
	WagerAmount  float64 `json:"wager_amount,omitempty"`
}

type ToggleKeep struct {
	DieIndex int `json:"die_index"`
}

type SetPayoutHandle struct {
	Handle string `json:"handle"`
}
