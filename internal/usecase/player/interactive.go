package player

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kiryu-dev/xors/internal/domain"
	"github.com/pkg/errors"
)

// Interactive asks a MoveReader for a cell selector (1-9) on every call.
// It makes exactly one attempt per call; re-prompting is up to the caller.
type Interactive struct {
	domain.Identity
	reader domain.MoveReader
}

func NewInteractive(identity domain.Identity, reader domain.MoveReader) *Interactive {
	return &Interactive{
		Identity: identity,
		reader:   reader,
	}
}

func (p *Interactive) Play(ctx context.Context) (domain.Move, error) {
	prompt := fmt.Sprintf("%s (%s), select a cell [1-9]: ", p.Name(), p.Token())
	line, err := p.reader.ReadLine(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return domain.Move{}, errors.WithMessage(ctx.Err(), "read move")
		}
		return domain.Move{}, errors.WithMessage(&domain.InputError{Err: err}, "read move")
	}
	loc, err := parseSelector(line)
	if err != nil {
		return domain.Move{}, err
	}
	return domain.Move{
		Token:    p.Token(),
		Location: loc,
	}, nil
}

func parseSelector(line string) (domain.Location, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, errors.WithMessagef(&domain.InputError{Err: err}, "'%s' is not a number", strings.TrimSpace(line))
	}
	loc, err := domain.LocationFromSelector(n)
	if err != nil {
		return 0, errors.WithMessage(domain.ErrInvalidInput, err.Error())
	}
	return loc, nil
}
