package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tgrante/dicegame-go/internal/api/request"
	"github.com/tgrante/dicegame-go/internal/api/response"
	"github.com/tgrante/dicegame-go/internal/model"
	"github.com/tgrante/dicegame-go/internal/services/auth"
)

// PlayerHandler issues guest identities
type PlayerHandler struct {
	logger *slog.Logger
	auth   auth.ServiceInterface
}

func NewPlayerHandler(logger *slog.Logger, authService auth.ServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		logger: logger,
		auth:   authService,
	}
}

func (h *PlayerHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, model.ErrInvalidName)
		return
	}

	session, err := h.auth.CreateGuest(r.Context(), req.Name)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GuestCreatedResponse{
		Token:    session.Token,
		PlayerID: string(session.PlayerID),
		Name:     session.Name,
	})
}
