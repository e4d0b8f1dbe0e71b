package api_test

import (
	"bufio"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// openStream attaches an SSE client for the given room and returns a channel
// of "event|data" lines plus a cancel func that drops the connection
func (ts *testServer) openStream(token, code string) (<-chan string, context.CancelFunc) {
	ts.t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		ts.server.URL+"/api/v1/rooms/"+code+"/events", nil)
	require.NoError(ts.t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(ts.t, err)
	require.Equal(ts.t, http.StatusOK, resp.StatusCode)

	events := make(chan string, 16)
	go func() {
		defer resp.Body.Close()
		defer close(events)
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		event := ""
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "event: "):
				event = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				events <- event + "|" + strings.TrimPrefix(line, "data: ")
			}
		}
	}()
	return events, cancel
}

func nextEvent(t *testing.T, events <-chan string) string {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "stream closed early")
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return ""
	}
}

func TestActionsAreBroadcastToTheRoom(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.guest("alice")
	bob := ts.guest("bob")
	code := ts.createRoom(alice)

	events, cancel := ts.openStream(alice, code)
	defer cancel()

	status, _ := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/join", bob, nil)
	require.Equal(t, http.StatusOK, status)

	event := nextEvent(t, events)
	require.True(t, strings.HasPrefix(event, "game_state|"))
	require.Contains(t, event, `"bob"`)
}

func TestDroppedStreamForfeitsOpenTurn(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.guest("alice")
	bob := ts.guest("bob")
	code := ts.createRoom(alice)

	ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/join", bob, nil)

	aliceEvents, dropAlice := ts.openStream(alice, code)
	bobEvents, dropBob := ts.openStream(bob, code)
	defer dropBob()

	ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/start", alice, nil)
	nextEvent(t, bobEvents) // start broadcast

	ts.random.QueueDice(1, 4, 6, 6, 5, 3)
	ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/roll", alice, nil)
	nextEvent(t, bobEvents) // roll broadcast

	// alice's stream drops mid-turn
	dropAlice()
	for range aliceEvents {
	}

	sawLeft := false
	deadline := time.After(2 * time.Second)
	for !sawLeft {
		select {
		case e := <-bobEvents:
			if strings.HasPrefix(e, "player_left|") {
				require.Contains(t, e, `"alice"`)
				sawLeft = true
			}
		case <-deadline:
			t.Fatal("never saw player_left for alice")
		}
	}

	// the follow-up snapshot shows the turn forfeited and play moved to bob
	status, state := ts.request(http.MethodGet, "/api/v1/rooms/"+code, bob, nil)
	require.Equal(t, http.StatusOK, status)
	players := state["players"].([]any)
	aliceView := players[0].(map[string]any)
	require.Equal(t, true, aliceView["disconnected"])
	require.Nil(t, aliceView["score"]) // the forfeit is a round result, not a score
	turn := state["current_turn"].(map[string]any)
	require.Equal(t, "bob", turn["player_name"])
}
