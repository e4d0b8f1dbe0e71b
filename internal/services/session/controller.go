// Package session implements the room registry and the turn/round state
// machine. Every mutating operation runs under a per-room lock, so callers
// never observe a half-applied action regardless of the storage backend.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tgrante/dicegame-go/internal/dependencies/clock"
	"github.com/tgrante/dicegame-go/internal/dependencies/random"
	"github.com/tgrante/dicegame-go/internal/model"
	"github.com/tgrante/dicegame-go/internal/services/scoring"
	"github.com/tgrante/dicegame-go/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6
	// RoomCodeAlphabet excludes easily-confused characters (0/O, 1/I/L)
	RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	maxCodeAttempts = 10
)

type Controller struct {
	logger  *slog.Logger
	storage storage.Storage
	scoring scoring.ServiceInterface
	clock   clock.Clock
	random  random.Random
	locks   *keyedMutex
}

func New(
	logger *slog.Logger,
	store storage.Storage,
	scoringService scoring.ServiceInterface,
	clk clock.Clock,
	rnd random.Random,
) *Controller {
	return &Controller{
		logger:  logger.With(slog.String("component", "session")),
		storage: store,
		scoring: scoringService,
		clock:   clk,
		random:  rnd,
		locks:   newKeyedMutex(),
	}
}

// Create registers a new session with the creator seated as host
func (c *Controller) Create(
	ctx context.Context,
	creatorID model.PlayerID,
	creatorName string,
	maxPlayers int,
	wagerEnabled bool,
	wagerAmount float64,
) (*model.GameSession, error) {
	name := model.NormalizeName(creatorName)
	if name == "" {
		return nil, model.ErrInvalidName
	}
	if creatorID == "" {
		return nil, model.ErrInvalidPlayerID
	}

	code, err := c.generateRoomCode(ctx)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	session := &model.GameSession{
		Code:       code,
		Phase:      model.PhaseWaiting,
		MaxPlayers: model.ClampMaxPlayers(maxPlayers),
		Players: []model.Player{
			{ID: creatorID, Name: name, IsHost: true},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if wagerEnabled {
		session.WagerEnabled = true
		session.WagerAmount = model.ClampWagerAmount(wagerAmount)
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("saving new session: %w", err)
	}

	c.logger.Info("session created",
		slog.String("code", string(code)),
		slog.String("host", name),
		slog.Int("max_players", session.MaxPlayers),
		slog.Bool("wager_enabled", session.WagerEnabled),
	)
	return session, nil
}

// Find looks up a session by code, case-insensitively
func (c *Controller) Find(ctx context.Context, code string) (*model.GameSession, error) {
	return c.storage.GetSession(ctx, model.NormalizeRoomCode(code))
}

// Join seats a new player in a waiting room
func (c *Controller) Join(
	ctx context.Context,
	code string,
	playerID model.PlayerID,
	playerName string,
) (*model.GameSession, error) {
	roomCode := model.NormalizeRoomCode(code)
	unlock := c.locks.Lock(roomCode)
	defer unlock()

	session, err := c.storage.GetSession(ctx, roomCode)
	if err != nil {
		return nil, err
	}

	if session.Phase != model.PhaseWaiting {
		return nil, model.ErrGameInProgress
	}
	if len(session.Players) >= session.MaxPlayers {
		return nil, model.ErrRoomFull
	}
	if playerID == "" {
		return nil, model.ErrInvalidPlayerID
	}

	name := model.NormalizeName(playerName)
	if name == "" || session.FindPlayerByName(name) != nil {
		return nil, model.ErrInvalidName
	}

	session.Players = append(session.Players, model.Player{
		ID:   playerID,
		Name: name,
	})
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session after join: %w", err)
	}

	c.logger.Info("player joined",
		slog.String("code", string(roomCode)),
		slog.String("player", name),
		slog.Int("seated", len(session.Players)),
	)
	return session, nil
}

// Apply executes a game command for the given caller under the room's lock.
// All turn and round actions route through here.
func (c *Controller) Apply(
	ctx context.Context,
	code string,
	callerID model.PlayerID,
	cmd model.Command,
) (*model.GameSession, error) {
	roomCode := model.NormalizeRoomCode(code)
	unlock := c.locks.Lock(roomCode)
	defer unlock()

	session, err := c.storage.GetSession(ctx, roomCode)
	if err != nil {
		return nil, err
	}

	caller := session.FindPlayer(callerID)
	if caller == nil {
		return nil, model.ErrPlayerNotFound
	}

	switch cmd := cmd.(type) {
	case model.StartRoundCommand:
		err = c.startRound(session, caller)
	case model.RollDiceCommand:
		err = c.rollDice(session, caller)
	case model.ToggleKeepCommand:
		err = c.toggleKeep(session, caller, cmd.DieIndex)
	case model.EndTurnCommand:
		err = c.endTurn(session, caller)
	case model.PlayAgainCommand:
		err = c.playAgain(session, caller)
	case model.SetPayoutHandleCommand:
		err = c.setPayoutHandle(caller, cmd.Handle)
	default:
		return nil, fmt.Errorf("unknown command type %T", cmd)
	}
	if err != nil {
		return nil, err
	}

	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session after command: %w", err)
	}
	return session, nil
}

// Disconnect marks a player as gone. If it was their turn, the turn is
// forfeited with a zero, unqualified result and play moves on; if they were
// the last to act, the round completes. Unknown players are a no-op.
func (c *Controller) Disconnect(
	ctx context.Context,
	code string,
	playerID model.PlayerID,
) (*model.GameSession, error) {
	roomCode := model.NormalizeRoomCode(code)
	unlock := c.locks.Lock(roomCode)
	defer unlock()

	session, err := c.storage.GetSession(ctx, roomCode)
	if err != nil {
		return nil, err
	}

	player := session.FindPlayer(playerID)
	if player == nil || player.Disconnected {
		return session, nil
	}
	player.Disconnected = true

	if session.Phase == model.PhasePlaying &&
		session.CurrentTurn != nil &&
		session.CurrentTurn.PlayerID == playerID {
		c.forfeitCurrentTurn(session, player)
	}

	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session after disconnect: %w", err)
	}

	c.logger.Info("player disconnected",
		slog.String("code", string(roomCode)),
		slog.String("player", player.Name),
		slog.Int("active", session.ActiveCount()),
	)
	return session, nil
}

func (c *Controller) startRound(session *model.GameSession, caller *model.Player) error {
	if !caller.IsHost {
		return model.ErrNotHost
	}
	if session.Phase == model.PhasePlaying {
		return model.ErrGameInProgress
	}
	return c.beginRound(session)
}

func (c *Controller) playAgain(session *model.GameSession, caller *model.Player) error {
	if !caller.IsHost {
		return model.ErrNotHost
	}
	if session.Phase != model.PhaseFinished {
		return model.ErrGameInProgress
	}
	return c.beginRound(session)
}

func (c *Controller) beginRound(session *model.GameSession) error {
	if session.ActiveCount() < model.MinPlayers {
		return model.ErrNotEnoughPlayers
	}

	for i := range session.Players {
		session.Players[i].Score = nil
		session.Players[i].Qualified = false
	}
	session.PendingResults = nil
	session.Winner = ""
	session.Phase = model.PhasePlaying
	c.openTurnFrom(session, 0)

	c.logger.Info("round started",
		slog.String("code", string(session.Code)),
		slog.Int("round", len(session.RoundHistory)+1),
		slog.Int("active", session.ActiveCount()),
	)
	return nil
}

func (c *Controller) rollDice(session *model.GameSession, caller *model.Player) error {
	turn, err := c.callerTurn(session, caller)
	if err != nil {
		return err
	}
	if turn.RollsUsed >= turn.MaxRolls {
		return model.ErrNoRollsLeft
	}

	for i := 0; i < model.NumDice; i++ {
		if turn.HasRolled() && turn.IsKept(i) {
			continue
		}
		turn.Dice[i] = c.random.Die(6)
	}
	turn.RollsUsed++
	return nil
}

func (c *Controller) toggleKeep(session *model.GameSession, caller *model.Player, index int) error {
	turn, err := c.callerTurn(session, caller)
	if err != nil {
		return err
	}
	if !turn.HasRolled() {
		return model.ErrMustRollFirst
	}
	if index < 0 || index >= model.NumDice {
		return model.ErrInvalidDieIndex
	}
	turn.ToggleKeep(index)
	return nil
}

func (c *Controller) endTurn(session *model.GameSession, caller *model.Player) error {
	turn, err := c.callerTurn(session, caller)
	if err != nil {
		return err
	}
	if !turn.HasRolled() {
		return model.ErrMustRollFirst
	}

	qualified, score := c.scoring.Score(turn.DiceValues())
	session.PendingResults = append(session.PendingResults, model.RoundResult{
		Name:      caller.Name,
		Score:     score,
		Qualified: qualified,
		Dice:      turn.Dice,
	})
	caller.Score = &score
	caller.Qualified = qualified

	c.openTurnFrom(session, session.CurrentPlayerIndex+1)
	return nil
}

func (c *Controller) setPayoutHandle(caller *model.Player, handle string) error {
	caller.PayoutHandle = model.NormalizePayoutHandle(handle)
	return nil
}

// callerTurn validates that a round is running and it is the caller's turn
func (c *Controller) callerTurn(session *model.GameSession, caller *model.Player) (*model.Turn, error) {
	if session.Phase != model.PhasePlaying || session.CurrentTurn == nil {
		return nil, model.ErrGameInProgress
	}
	if session.CurrentTurn.PlayerID != caller.ID {
		return nil, model.ErrNotYourTurn
	}
	return session.CurrentTurn, nil
}

// forfeitCurrentTurn banks a zero result for the player mid-turn and advances.
// Only the round result records the forfeit; the player's own score stays
// unset, the same as a seat that never got a turn.
func (c *Controller) forfeitCurrentTurn(session *model.GameSession, player *model.Player) {
	session.PendingResults = append(session.PendingResults, model.RoundResult{
		Name:      player.Name,
		Score:     0,
		Qualified: false,
		Dice:      session.CurrentTurn.Dice,
	})

	c.openTurnFrom(session, session.CurrentPlayerIndex+1)
}

// openTurnFrom seats the first connected player at or after index start, or
// completes the round when everyone remaining has acted or dropped
func (c *Controller) openTurnFrom(session *model.GameSession, start int) {
	i := start
	for i < len(session.Players) && session.Players[i].Disconnected {
		i++
	}
	if i >= len(session.Players) {
		c.completeRound(session)
		return
	}
	session.CurrentPlayerIndex = i
	session.CurrentTurn = model.NewTurn(session.Players[i].ID)
}

func (c *Controller) completeRound(session *model.GameSession) {
	record := model.RoundRecord{
		Number:  len(session.RoundHistory) + 1,
		Results: session.PendingResults,
	}

	winner := c.scoring.Winner(session.PendingResults)
	if winner != nil {
		record.Winner = winner.Name
		session.Winner = winner.Name
		if p := session.FindPlayerByName(winner.Name); p != nil {
			p.Wins++
		}
	} else {
		session.Winner = ""
	}

	session.RoundHistory = append(session.RoundHistory, record)
	session.PendingResults = nil
	session.Phase = model.PhaseFinished
	session.CurrentTurn = nil
	session.CurrentPlayerIndex = 0

	c.logger.Info("round complete",
		slog.String("code", string(session.Code)),
		slog.Int("round", record.Number),
		slog.String("winner", record.Winner),
	)
}

func (c *Controller) generateRoomCode(ctx context.Context) (model.RoomCode, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := model.RoomCode(c.random.String(RoomCodeLength, RoomCodeAlphabet))
		exists, err := c.storage.SessionExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("checking room code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique room code after %d attempts", maxCodeAttempts)
}

// Interface for dependency injection
type ControllerInterface interface {
	Create(ctx context.Context, creatorID model.PlayerID, creatorName string, maxPlayers int, wagerEnabled bool, wagerAmount float64) (*model.GameSession, error)
	Find(ctx context.Context, code string) (*model.GameSession, error)
	Join(ctx context.Context, code string, playerID model.PlayerID, playerName string) (*model.GameSession, error)
	Apply(ctx context.Context, code string, callerID model.PlayerID, cmd model.Command) (*model.GameSession, error)
	Disconnect(ctx context.Context, code string, playerID model.PlayerID) (*model.GameSession, error)
}

var _ ControllerInterface = (*Controller)(nil)
