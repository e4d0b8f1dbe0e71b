package model

import (
	"strings"
	"time"
)

// RoomCode identifies a game session. Codes are stored and compared uppercase.
type RoomCode string

// Phase is the lifecycle state of a session
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

const (
	// MinPlayers is the fewest active players a round can start with
	MinPlayers = 2
	// MaxPlayersLimit is the largest allowed table size
	MaxPlayersLimit = 4
	// DefaultMaxPlayers is used when the creator does not choose a size
	DefaultMaxPlayers = 3
	// MaxNameLength caps display names in runes
	MaxNameLength = 20
	// MaxPayoutHandleLength caps payout handles
	MaxPayoutHandleLength = 50
	// MinWagerAmount is the smallest per-player stake
	MinWagerAmount = 0.01
	// DefaultWagerAmount is used when wagering is enabled without an amount
	DefaultWagerAmount = 1.0
)

// GameSession is the authoritative state of one room. All mutation happens in
// the session service under the room's lock; the session itself carries no
// synchronization.
type GameSession struct {
	Code               RoomCode
	Phase              Phase
	MaxPlayers         int
	WagerEnabled       bool
	WagerAmount        float64
	Players            []Player
	CurrentPlayerIndex int
	CurrentTurn        *Turn
	// PendingResults buffers finished turns for the round in progress. It is
	// internal bookkeeping and never appears in snapshots.
	PendingResults []RoundResult
	RoundHistory   []RoundRecord
	Winner         string // name of the last round's winner, "" if none
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FindPlayer returns the player with the given id, or nil
func (s *GameSession) FindPlayer(id PlayerID) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// FindPlayerByName returns the player with the given name (case-insensitive),
// or nil
func (s *GameSession) FindPlayerByName(name string) *Player {
	for i := range s.Players {
		if strings.EqualFold(s.Players[i].Name, name) {
			return &s.Players[i]
		}
	}
	return nil
}

// Host returns the session host, or nil if the host record is missing
func (s *GameSession) Host() *Player {
	for i := range s.Players {
		if s.Players[i].IsHost {
			return &s.Players[i]
		}
	}
	return nil
}

// ActiveCount is the number of players still connected
func (s *GameSession) ActiveCount() int {
	n := 0
	for i := range s.Players {
		if !s.Players[i].Disconnected {
			n++
		}
	}
	return n
}

// Pot is the total stake of the connected players, zero when wagering is off.
// A dropped player's stake leaves the pot with them.
func (s *GameSession) Pot() float64 {
	if !s.WagerEnabled {
		return 0
	}
	return s.WagerAmount * float64(s.ActiveCount())
}

// CurrentPlayer returns the player whose turn it is, or nil outside a round
func (s *GameSession) CurrentPlayer() *Player {
	if s.Phase != PhasePlaying {
		return nil
	}
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return nil
	}
	return &s.Players[s.CurrentPlayerIndex]
}

// NormalizeRoomCode uppercases a caller-supplied code for lookup
func NormalizeRoomCode(code string) RoomCode {
	return RoomCode(strings.ToUpper(strings.TrimSpace(code)))
}

// ClampMaxPlayers applies the table-size bounds, defaulting zero
func ClampMaxPlayers(n int) int {
	if n == 0 {
		return DefaultMaxPlayers
	}
	if n < MinPlayers {
		return MinPlayers
	}
	if n > MaxPlayersLimit {
		return MaxPlayersLimit
	}
	return n
}

// ClampWagerAmount applies the stake bounds, defaulting zero
func ClampWagerAmount(amount float64) float64 {
	if amount == 0 {
		return DefaultWagerAmount
	}
	if amount < MinWagerAmount {
		return MinWagerAmount
	}
	return amount
}

// NormalizeName trims and truncates a display name. Returns "" when nothing
// usable remains.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	runes := []rune(name)
	if len(runes) > MaxNameLength {
		name = string(runes[:MaxNameLength])
	}
	return name
}

// NormalizePayoutHandle trims a handle, strips one leading "@", and truncates
func NormalizePayoutHandle(handle string) string {
	handle = strings.TrimSpace(handle)
	handle = strings.TrimPrefix(handle, "@")
	if len(handle) > MaxPayoutHandleLength {
		handle = handle[:MaxPayoutHandleLength]
	}
	return handle
}
