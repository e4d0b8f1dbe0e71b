package sse

import (
	"fmt"
	"net/http"
	"time"
)

const keepaliveInterval = 30 * time.Second

// ServeSSE attaches the request to the hub and streams events until the
// client goes away or the hub closes. Blocks for the life of the connection.
func ServeSSE(hub *Hub, w http.ResponseWriter, r *http.Request) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("response writer does not support streaming")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	c := &client{send: make(chan Event, clientBuffer)}
	hub.register <- c
	defer func() {
		select {
		case hub.unregister <- c:
		case <-hub.done:
		}
	}()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-c.send:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprint(w, formatSSEMessage(event)); err != nil {
				return err
			}
			flusher.Flush()
		case <-keepalive.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return err
			}
			flusher.Flush()
		case <-r.Context().Done():
			return nil
		}
	}
}

func formatSSEMessage(event Event) string {
	return fmt.Sprintf("event: %s\ndata: %s\n\n", event.Name, event.Data)
}
