package model

// RoundResult records how one player's turn in a round ended, including the
// dice they finished (or were forfeited) with.
type RoundResult struct {
	Name      string
	Score     int
	Qualified bool
	Dice      [NumDice]int
}

// RoundRecord is a completed round in the session history
type RoundRecord struct {
	Number  int
	Results []RoundResult
	Winner  string // empty if nobody qualified
}
