package session

import (
	"sync"

	"github.com/tgrante/dicegame-go/internal/model"
)

// keyedMutex serializes all mutations on a single room. Lock entries are
// created on first use and kept for the life of the process; the per-room
// footprint is one mutex.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[model.RoomCode]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{
		locks: make(map[model.RoomCode]*sync.Mutex),
	}
}

// Lock acquires the mutex for code and returns its unlock function
func (k *keyedMutex) Lock(code model.RoomCode) func() {
	k.mu.Lock()
	l, ok := k.locks[code]
	if !ok {
		l = &sync.Mutex{}
		k.locks[code] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
