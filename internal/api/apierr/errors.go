// Package apierr maps domain errors onto the closed set of API error codes.
// Every error a handler can surface resolves to exactly one {code, message}
// pair; anything unrecognized becomes internal_error.
package apierr

import (
	"errors"
	"net/http"

	"github.com/tgrante/dicegame-go/internal/model"
	"github.com/tgrante/dicegame-go/internal/services/auth"
)

// APIError is the JSON error body returned to clients
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type httpError struct {
	Status int
	Body   APIError
}

// Resolve maps a domain error to its HTTP status and wire body
func Resolve(err error) (int, APIError) {
	he := classify(err)
	return he.Status, he.Body
}

func classify(err error) httpError {
	switch {
	case errors.Is(err, model.ErrRoomNotFound):
		return httpError{http.StatusNotFound, APIError{"room_not_found", "That room does not exist."}}
	case errors.Is(err, model.ErrRoomFull):
		return httpError{http.StatusConflict, APIError{"room_full", "That room is already full."}}
	case errors.Is(err, model.ErrGameInProgress):
		return httpError{http.StatusConflict, APIError{"game_in_progress", "That action is not allowed right now."}}
	case errors.Is(err, model.ErrInvalidName):
		return httpError{http.StatusBadRequest, APIError{"invalid_name", "Pick a different name."}}
	case errors.Is(err, model.ErrNotEnoughPlayers):
		return httpError{http.StatusConflict, APIError{"not_enough_players", "At least two connected players are needed."}}
	case errors.Is(err, model.ErrNotYourTurn):
		return httpError{http.StatusForbidden, APIError{"not_your_turn", "Wait for your turn."}}
	case errors.Is(err, model.ErrNoRollsLeft):
		return httpError{http.StatusConflict, APIError{"no_rolls_left", "You have used all your rolls."}}
	case errors.Is(err, model.ErrMustRollFirst):
		return httpError{http.StatusConflict, APIError{"must_roll_first", "Roll the dice first."}}
	case errors.Is(err, model.ErrNotHost):
		return httpError{http.StatusForbidden, APIError{"not_host", "Only the host can do that."}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return httpError{http.StatusForbidden, APIError{"player_not_found", "You are not seated in that room."}}
	case errors.Is(err, model.ErrInvalidDieIndex):
		return httpError{http.StatusBadRequest, APIError{"invalid_die_index", "Die index out of range."}}
	case errors.Is(err, model.ErrInvalidPlayerID):
		return httpError{http.StatusBadRequest, APIError{"invalid_player_id", "Invalid player id."}}
	case errors.Is(err, auth.ErrInvalidToken):
		return httpError{http.StatusUnauthorized, APIError{"unauthorized", "Sign in again."}}
	default:
		return httpError{http.StatusInternalServerError, APIError{"internal_error", "Something went wrong."}}
	}
}
