package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tgrante/dicegame-go/internal/api/middleware"
	"github.com/tgrante/dicegame-go/internal/api/request"
	"github.com/tgrante/dicegame-go/internal/api/response"
	"github.com/tgrante/dicegame-go/internal/api/sse"
	"github.com/tgrante/dicegame-go/internal/services/session"
)

// RoomHandler covers room lifecycle: create, lookup, join, and the event
// stream that doubles as presence
type RoomHandler struct {
	logger      *slog.Logger
	sessions    session.ControllerInterface
	hubs        *sse.HubManager
	broadcaster *sse.Broadcaster
}

func NewRoomHandler(
	logger *slog.Logger,
	sessions session.ControllerInterface,
	hubs *sse.HubManager,
	broadcaster *sse.Broadcaster,
) *RoomHandler {
	return &RoomHandler{
		logger:      logger,
		sessions:    sessions,
		hubs:        hubs,
		broadcaster: broadcaster,
	}
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := middleware.MustGetSession(r.Context())

	var req request.CreateRoom
	if r.Body != nil {
		// an empty body means all defaults
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	gameSession, err := h.sessions.Create(
		r.Context(),
		caller.PlayerID,
		caller.Name,
		req.MaxPlayers,
		req.WagerEnabled,
		req.WagerAmount,
	)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RoomCreatedResponse{
		Code:     string(gameSession.Code),
		PlayerID: string(caller.PlayerID),
		State:    response.SnapshotFromSession(gameSession),
	})
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	gameSession, err := h.sessions.Find(r.Context(), code)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SnapshotFromSession(gameSession))
}

func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	caller := middleware.MustGetSession(r.Context())
	code := mux.Vars(r)["code"]

	gameSession, err := h.sessions.Join(r.Context(), code, caller.PlayerID, caller.Name)
	if err != nil {
		response.Error(w, err)
		return
	}

	h.broadcaster.GameState(gameSession)
	response.JSON(w, http.StatusOK, response.RoomJoinedResponse{
		Code:     string(gameSession.Code),
		PlayerID: string(caller.PlayerID),
		State:    response.SnapshotFromSession(gameSession),
	})
}

// Events streams room state over SSE. The open stream is the player's
// presence: when it drops, the player is disconnected and any open turn of
// theirs is forfeited.
func (h *RoomHandler) Events(w http.ResponseWriter, r *http.Request) {
	caller := middleware.MustGetSession(r.Context())
	code := mux.Vars(r)["code"]

	gameSession, err := h.sessions.Find(r.Context(), code)
	if err != nil {
		response.Error(w, err)
		return
	}

	hub := h.hubs.GetOrCreateHub(string(gameSession.Code))
	if err := sse.ServeSSE(hub, w, r); err != nil {
		h.logger.Warn("event stream ended",
			slog.String("room", string(gameSession.Code)),
			slog.String("error", err.Error()),
		)
	}

	// the stream is gone and the request context with it, so disconnect on a
	// fresh context
	updated, err := h.sessions.Disconnect(context.Background(), code, caller.PlayerID)
	if err != nil {
		return
	}
	if p := updated.FindPlayer(caller.PlayerID); p != nil && p.Disconnected {
		h.broadcaster.PlayerLeft(updated.Code, p.Name)
		h.broadcaster.GameState(updated)
	}
}
