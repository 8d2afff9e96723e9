package console

import (
	"fmt"
	"io"

	"github.com/kiryu-dev/xors/internal/domain"
	"github.com/pkg/errors"
)

type renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *renderer {
	return &renderer{out: out}
}

func (r *renderer) Render(board domain.Board) error {
	if _, err := fmt.Fprintf(r.out, "\n%s", board); err != nil {
		return errors.WithMessage(err, "write board")
	}
	return nil
}

func (r *renderer) Announce(result domain.GameResult) error {
	var msg string
	switch result.Outcome {
	case domain.Player1Wins, domain.Player2Wins:
		msg = fmt.Sprintf("%s wins after %d moves!", result.Winner, len(result.Turns))
	case domain.Tie:
		msg = "It's a tie."
	default:
		msg = fmt.Sprintf("Game stopped after %d moves.", len(result.Turns))
	}
	if _, err := fmt.Fprintln(r.out, msg); err != nil {
		return errors.WithMessage(err, "write result")
	}
	return nil
}
