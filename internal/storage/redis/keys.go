package redis

import (
	"fmt"

	"github.com/tgrante/dicegame-go/internal/model"
)

func (s *Storage) sessionKey(code model.RoomCode) string {
	return fmt.Sprintf("%s:session:%s", s.config.KeyPrefix, code)
}
