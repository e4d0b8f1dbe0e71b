package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tgrante/dicegame-go/internal/api/middleware"
	"github.com/tgrante/dicegame-go/internal/api/request"
	"github.com/tgrante/dicegame-go/internal/api/response"
	"github.com/tgrante/dicegame-go/internal/api/sse"
	"github.com/tgrante/dicegame-go/internal/model"
	"github.com/tgrante/dicegame-go/internal/services/session"
)

// GameHandler dispatches turn and round actions through the session
// controller's command entrypoint and broadcasts the resulting state
type GameHandler struct {
	logger      *slog.Logger
	sessions    session.ControllerInterface
	broadcaster *sse.Broadcaster
}

func NewGameHandler(
	logger *slog.Logger,
	sessions session.ControllerInterface,
	broadcaster *sse.Broadcaster,
) *GameHandler {
	return &GameHandler{
		logger:      logger,
		sessions:    sessions,
		broadcaster: broadcaster,
	}
}

func (h *GameHandler) StartRound(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, model.StartRoundCommand{})
}

func (h *GameHandler) RollDice(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, model.RollDiceCommand{})
}

func (h *GameHandler) ToggleKeep(w http.ResponseWriter, r *http.Request) {
	var req request.ToggleKeep
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, model.ErrInvalidDieIndex)
		return
	}
	h.apply(w, r, model.ToggleKeepCommand{DieIndex: req.DieIndex})
}

func (h *GameHandler) EndTurn(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, model.EndTurnCommand{})
}

func (h *GameHandler) PlayAgain(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, model.PlayAgainCommand{})
}

func (h *GameHandler) SetPayoutHandle(w http.ResponseWriter, r *http.Request) {
	caller := middleware.MustGetSession(r.Context())
	code := mux.Vars(r)["code"]

	var req request.SetPayoutHandle
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, model.ErrInvalidName)
		return
	}

	gameSession, err := h.sessions.Apply(r.Context(), code, caller.PlayerID,
		model.SetPayoutHandleCommand{Handle: req.Handle})
	if err != nil {
		response.Error(w, err)
		return
	}

	h.broadcaster.GameState(gameSession)

	handle := ""
	if p := gameSession.FindPlayer(caller.PlayerID); p != nil {
		handle = p.PayoutHandle
	}
	response.JSON(w, http.StatusOK, response.PayoutHandleResponse{
		Handle: handle,
		State:  response.SnapshotFromSession(gameSession),
	})
}

// apply runs one command for the caller, broadcasts the new state to the
// room, and returns the snapshot to the caller. Errors go only to the caller.
func (h *GameHandler) apply(w http.ResponseWriter, r *http.Request, cmd model.Command) {
	caller := middleware.MustGetSession(r.Context())
	code := mux.Vars(r)["code"]

	gameSession, err := h.sessions.Apply(r.Context(), code, caller.PlayerID, cmd)
	if err != nil {
		response.Error(w, err)
		return
	}

	h.broadcaster.GameState(gameSession)
	response.JSON(w, http.StatusOK, response.SnapshotFromSession(gameSession))
}
