package model

import "errors"

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomFull         = errors.New("room is full")
	ErrGameInProgress   = errors.New("action not allowed in the current game phase")
	ErrInvalidName      = errors.New("invalid or duplicate player name")
	ErrNotEnoughPlayers = errors.New("not enough connected players")
	ErrNotYourTurn      = errors.New("it is not your turn")
	ErrNoRollsLeft      = errors.New("no rolls left this turn")
	ErrMustRollFirst    = errors.New("you must roll before doing that")
	ErrNotHost          = errors.New("only the host may do that")
	ErrPlayerNotFound   = errors.New("player not found in this room")
	ErrInvalidDieIndex  = errors.New("die index out of range")
	ErrInvalidPlayerID  = errors.New("invalid player id")
)
