package storage

import (
	"context"

	"github.com/tgrante/dicegame-go/internal/model"
)

// Storage is the session registry. Implementations must return
// model.ErrRoomNotFound for missing codes. Callers are responsible for
// serializing mutations per room; storage only persists.
type Storage interface {
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, code model.RoomCode) (*model.GameSession, error)
	SessionExists(ctx context.Context, code model.RoomCode) (bool, error)
	DeleteSession(ctx context.Context, code model.RoomCode) error
}
