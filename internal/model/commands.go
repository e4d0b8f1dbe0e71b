package model

// Command is a player action routed through the session service's single
// Apply entrypoint. Each variant carries exactly the payload its action needs.
type Command interface {
	isCommand()
}

// StartRoundCommand begins a round (host only, from waiting or finished)
type StartRoundCommand struct{}

// RollDiceCommand rolls all unkept dice for the current turn
type RollDiceCommand struct{}

// ToggleKeepCommand holds or releases one die slot
type ToggleKeepCommand struct {
	DieIndex int
}

// EndTurnCommand banks the current turn's dice as the player's result
type EndTurnCommand struct{}

// PlayAgainCommand starts a fresh round after a finished one
type PlayAgainCommand struct{}

// SetPayoutHandleCommand records the caller's payout handle
type SetPayoutHandleCommand struct {
	Handle string
}

func (StartRoundCommand) isCommand()      {}
func (RollDiceCommand) isCommand()        {}
func (ToggleKeepCommand) isCommand()      {}
func (EndTurnCommand) isCommand()         {}
func (PlayAgainCommand) isCommand()       {}
func (SetPayoutHandleCommand) isCommand() {}
