package model

const (
	// NumDice is the number of dice a player rolls each turn
	NumDice = 6
	// MaxRolls is the maximum number of rolls per turn
	MaxRolls = 3
)

// Turn is the in-progress turn of the current player. Dice slots hold 0 until
// the first roll fills them. Kept slots survive subsequent rolls untouched.
type Turn struct {
	PlayerID  PlayerID
	Dice      [NumDice]int
	Kept      []int
	RollsUsed int
	MaxRolls  int
}

// NewTurn opens a fresh turn for the given player
func NewTurn(playerID PlayerID) *Turn {
	return &Turn{
		PlayerID: playerID,
		Kept:     []int{},
		MaxRolls: MaxRolls,
	}
}

// HasRolled reports whether the player has taken at least one roll this turn
func (t *Turn) HasRolled() bool {
	return t.RollsUsed > 0
}

// IsKept reports whether the die at the given slot is held
func (t *Turn) IsKept(index int) bool {
	for _, k := range t.Kept {
		if k == index {
			return true
		}
	}
	return false
}

// ToggleKeep holds or releases the die at the given slot
func (t *Turn) ToggleKeep(index int) {
	for i, k := range t.Kept {
		if k == index {
			t.Kept = append(t.Kept[:i], t.Kept[i+1:]...)
			return
		}
	}
	t.Kept = append(t.Kept, index)
}

// DiceValues returns the dice as a slice for scoring
func (t *Turn) DiceValues() []int {
	out := make([]int, NumDice)
	copy(out, t.Dice[:])
	return out
}
