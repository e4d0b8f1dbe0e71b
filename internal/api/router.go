package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tgrante/dicegame-go/internal/api/handler"
	apimiddleware "github.com/tgrante/dicegame-go/internal/api/middleware"
	"github.com/tgrante/dicegame-go/internal/api/sse"
	"github.com/tgrante/dicegame-go/internal/middleware"
	"github.com/tgrante/dicegame-go/internal/services/auth"
	"github.com/tgrante/dicegame-go/internal/services/session"
)

// NewRouter builds the full route table. Everything under /api/v1 except
// guest creation and health requires a guest token.
func NewRouter(
	logger *slog.Logger,
	authService auth.ServiceInterface,
	sessions session.ControllerInterface,
	hubs *sse.HubManager,
	broadcaster *sse.Broadcaster,
) http.Handler {
	playerHandler := handler.NewPlayerHandler(logger, authService)
	roomHandler := handler.NewRoomHandler(logger, sessions, hubs, broadcaster)
	gameHandler := handler.NewGameHandler(logger, sessions, broadcaster)

	r := mux.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))

	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)

	authed := api.PathPrefix("").Subrouter()
	authed.Use(apimiddleware.Auth(authService))
	authed.HandleFunc("/rooms", roomHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/rooms/{code}", roomHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/rooms/{code}/join", roomHandler.Join).Methods(http.MethodPost)
	authed.HandleFunc("/rooms/{code}/events", roomHandler.Events).Methods(http.MethodGet)
	authed.HandleFunc("/rooms/{code}/start", gameHandler.StartRound).Methods(http.MethodPost)
	authed.HandleFunc("/rooms/{code}/roll", gameHandler.RollDice).Methods(http.MethodPost)
	authed.HandleFunc("/rooms/{code}/keep", gameHandler.ToggleKeep).Methods(http.MethodPost)
	authed.HandleFunc("/rooms/{code}/end-turn", gameHandler.EndTurn).Methods(http.MethodPost)
	authed.HandleFunc("/rooms/{code}/play-again", gameHandler.PlayAgain).Methods(http.MethodPost)
	authed.HandleFunc("/rooms/{code}/payout-handle", gameHandler.SetPayoutHandle).Methods(http.MethodPut)

	return r
}
