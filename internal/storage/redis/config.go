package redis

import "time"

type Config struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	// SessionTTL bounds how long an idle room survives. Refreshed on every
	// save.
	SessionTTL time.Duration
}

func DefaultConfig() Config {
	return Config{
		Addr:       "localhost:6379",
		KeyPrefix:  "dicegame",
		SessionTTL: 24 * time.Hour,
	}
}
