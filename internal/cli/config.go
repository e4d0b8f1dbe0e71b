package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const envPrefix = "DICEGAME"

// Config is the CLI's runtime configuration, sourced from flags with
// environment fallbacks
type Config struct {
	ServerURL string
	Token     string
	Output    string
}

func envVar(name string) string {
	return os.Getenv(fmt.Sprintf("%s_%s", envPrefix, strings.ToUpper(name)))
}

func tokenFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".dicegame-token"), nil
}

// loadToken reads the saved session token, preferring the environment
func loadToken() string {
	if token := envVar("token"); token != "" {
		return token
	}
	path, err := tokenFilePath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// saveToken persists a session token for later invocations
func saveToken(token string) error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token+"\n"), 0o600)
}
