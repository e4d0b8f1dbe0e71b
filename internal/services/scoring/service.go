// Package scoring implements the 1-4-24 scoring rules. A hand qualifies when
// it contains at least one 1 and at least one 4; one of each is set aside and
// the remaining four dice sum to the score. The best possible hand is
// therefore 1-4 plus four sixes, 24.
package scoring

import "github.com/tgrante/dicegame-go/internal/model"

type Service struct{}

// New creates a new scoring service
func New() *Service {
	return &Service{}
}

// Score evaluates a finished hand. Exactly one 1 and one 4 are consumed by
// qualification; extras count toward the score. Unqualified hands score 0.
func (s *Service) Score(dice []int) (qualified bool, score int) {
	hasOne := false
	hasFour := false
	total := 0
	for _, d := range dice {
		if d == 1 && !hasOne {
			hasOne = true
			continue
		}
		if d == 4 && !hasFour {
			hasFour = true
			continue
		}
		total += d
	}
	if !hasOne || !hasFour {
		return false, 0
	}
	return true, total
}

// Winner picks the round winner: the highest score among qualified players,
// with ties going to whoever banked that score first in seating order.
// Returns nil when nobody qualified.
func (s *Service) Winner(results []model.RoundResult) *model.RoundResult {
	var best *model.RoundResult
	for i := range results {
		r := &results[i]
		if !r.Qualified {
			continue
		}
		if best == nil || r.Score > best.Score {
			best = r
		}
	}
	return best
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(dice []int) (qualified bool, score int)
	Winner(results []model.RoundResult) *model.RoundResult
}

var _ ServiceInterface = (*Service)(nil)
