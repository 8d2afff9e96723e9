package player

import (
	"context"
	"math/rand/v2"

	"github.com/kiryu-dev/xors/internal/domain"
	"github.com/pkg/errors"
)

// Scripted plays a fixed list of locations in order. The cursor only moves
// forward, so a script is never replayed within one game.
type Scripted struct {
	domain.Identity
	moves  []domain.Location
	cursor int
}

func NewScripted(identity domain.Identity, moves []domain.Location) *Scripted {
	return &Scripted{
		Identity: identity,
		moves:    append([]domain.Location(nil), moves...),
	}
}

// NewRandomScripted shuffles all nine locations once with rnd and then
// plays them as a script.
func NewRandomScripted(identity domain.Identity, rnd *rand.Rand) *Scripted {
	moves := domain.Locations()
	rnd.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	return &Scripted{
		Identity: identity,
		moves:    moves,
	}
}

func (s *Scripted) Play(_ context.Context) (domain.Move, error) {
	if s.cursor >= len(s.moves) {
		return domain.Move{}, errors.WithMessagef(domain.ErrNoMoreMoves,
			"player '%s' played all %d scripted moves", s.Name(), len(s.moves))
	}
	move := domain.Move{
		Token:    s.Token(),
		Location: s.moves[s.cursor],
	}
	s.cursor++
	return move, nil
}

func (s *Scripted) Remaining() int {
	return len(s.moves) - s.cursor
}

func (s *Scripted) Script() []domain.Location {
	return append([]domain.Location(nil), s.moves...)
}
