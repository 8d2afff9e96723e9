package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidLocation = errors.New("invalid board location")
	ErrInvalidToken    = errors.New("invalid player token")
	ErrInvalidOutcome  = errors.New("invalid game outcome")
)

// Move source errors.
var (
	ErrNoMoreMoves  = errors.New("no more moves")
	ErrInvalidInput = errors.New("invalid input")
)

type OccupiedError struct {
	Location Location
	Token    Token
}

func (e *OccupiedError) Error() string {
	return fmt.Sprintf("%s: %s holds '%s'", ErrCellOccupied, e.Location, e.Token)
}

func (e *OccupiedError) Is(target error) bool {
	return target == ErrCellOccupied
}

// InputError is an ErrInvalidInput caused by a failed read or parse. It
// keeps the cause reachable through errors.Is and errors.As.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidInput, e.Err)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *InputError) Unwrap() error {
	return e.Err
}
