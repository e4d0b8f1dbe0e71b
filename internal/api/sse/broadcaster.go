package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/tgrante/dicegame-go/internal/api/response"
	"github.com/tgrante/dicegame-go/internal/model"
)

const (
	EventGameState  = "game_state"
	EventPlayerLeft = "player_left"
)

// Broadcaster publishes sanitized state to a room after every mutation
type Broadcaster struct {
	logger *slog.Logger
	hubs   *HubManager
}

func NewBroadcaster(logger *slog.Logger, hubs *HubManager) *Broadcaster {
	return &Broadcaster{
		logger: logger.With(slog.String("component", "broadcaster")),
		hubs:   hubs,
	}
}

// GameState sends the current snapshot of a session to its room
func (b *Broadcaster) GameState(session *model.GameSession) {
	snap := response.SnapshotFromSession(session)
	data, err := json.Marshal(snap)
	if err != nil {
		b.logger.Error("marshalling snapshot",
			slog.String("room", string(session.Code)),
			slog.String("error", err.Error()),
		)
		return
	}
	b.hubs.GetOrCreateHub(string(session.Code)).Broadcast(Event{
		Name: EventGameState,
		Data: data,
	})
}

// PlayerLeft announces a departure to the room, before the state snapshot
func (b *Broadcaster) PlayerLeft(code model.RoomCode, playerName string) {
	data, err := json.Marshal(map[string]string{"name": playerName})
	if err != nil {
		return
	}
	b.hubs.GetOrCreateHub(string(code)).Broadcast(Event{
		Name: EventPlayerLeft,
		Data: data,
	})
}
