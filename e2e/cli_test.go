// Package e2e drives the built CLI binary against an in-process server
package e2e

import (
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tgrante/dicegame-go/internal/dependencies/clock"
	"github.com/tgrante/dicegame-go/internal/dependencies/mocks"
	"github.com/tgrante/dicegame-go/internal/factory"
	"github.com/tgrante/dicegame-go/internal/services/auth"
	"github.com/tgrante/dicegame-go/internal/storage/memory"
	"github.com/tgrante/dicegame-go/internal/testutil"
)

func buildCLI(t *testing.T) string {
	t.Helper()
	binary := filepath.Join(t.TempDir(), "dicecli")

	cmd := exec.Command("go", "build", "-o", binary, "../cmd/dicecli")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "building cli: %s", out)
	return binary
}

func startServer(t *testing.T) (*httptest.Server, *mocks.MockRandom) {
	t.Helper()
	rnd := mocks.NewMockRandom()
	app := factory.NewForTesting(factory.Config{
		Logger: testutil.NopLogger(),
		Auth:   auth.DefaultConfig(),
	}, memory.New(), clock.NewSystemClock(), rnd)

	server := httptest.NewServer(app.Router)
	t.Cleanup(server.Close)
	t.Cleanup(app.Hubs.Shutdown)
	return server, rnd
}

// run executes the CLI with the given token and returns combined output
func run(t *testing.T, binary, serverURL, home string, args ...string) string {
	t.Helper()

	cmd := exec.Command(binary, append([]string{"--server", serverURL}, args...)...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "cli %v: %s", args, out)
	return string(out)
}

func TestCLIRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	binary := buildCLI(t)
	server, rnd := startServer(t)

	aliceHome := t.TempDir()
	bobHome := t.TempDir()

	out := run(t, binary, server.URL, aliceHome, "player", "guest", "alice")
	require.Contains(t, out, "alice")

	rnd.QueueString("GAMEAB")
	out = run(t, binary, server.URL, aliceHome, "room", "create", "--max-players", "3")
	require.Contains(t, out, "GAMEAB")

	run(t, binary, server.URL, bobHome, "player", "guest", "bob")
	out = run(t, binary, server.URL, bobHome, "room", "join", "gameab")
	require.Contains(t, out, "bob")

	out = run(t, binary, server.URL, aliceHome, "game", "start", "GAMEAB")
	require.Contains(t, out, "playing")

	rnd.QueueDice(1, 4, 6, 6, 5, 3)
	out = run(t, binary, server.URL, aliceHome, "game", "roll", "GAMEAB")
	require.Contains(t, out, "roll 1/3")

	run(t, binary, server.URL, aliceHome, "game", "keep", "GAMEAB", "0")
	run(t, binary, server.URL, aliceHome, "game", "end-turn", "GAMEAB")

	rnd.QueueDice(1, 4, 2, 2, 2, 2)
	run(t, binary, server.URL, bobHome, "game", "roll", "GAMEAB")
	out = run(t, binary, server.URL, bobHome, "game", "end-turn", "GAMEAB")
	require.Contains(t, out, "finished")
	require.Contains(t, out, "Winner: alice")

	out = run(t, binary, server.URL, aliceHome, "room", "get", "GAMEAB")
	require.True(t, strings.Contains(out, "wins 1"))
}

func TestCLIHealth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	binary := buildCLI(t)
	server, _ := startServer(t)

	out := run(t, binary, server.URL, t.TempDir(), "health")
	require.Contains(t, out, "ok")
}
