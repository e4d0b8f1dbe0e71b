package model

// PlayerID is the connection-scoped identity of a player
type PlayerID string

// Player represents a seat in a game session. Players are appended in join
// order, which is also the turn order. A player who drops out is marked
// Disconnected rather than removed so that turn indices stay stable.
type Player struct {
	ID           PlayerID
	Name         string
	Score        *int // nil until the player finishes a turn in the current round
	Qualified    bool
	Wins         int
	IsHost       bool
	Disconnected bool
	PayoutHandle string // stored without a leading "@"; empty means unset
}
