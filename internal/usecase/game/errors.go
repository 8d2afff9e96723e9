package game

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrPlayersFull      = errors.New("both players are already registered")
	ErrDuplicateToken   = errors.New("token is already taken by the other player")
	ErrNotEnoughPlayers = errors.New("two players must be registered")
	ErrGameFinished     = errors.New("game is already finished")
	ErrTokenMismatch    = errors.New("move token does not belong to the player")
)

// Fatal game errors, reported as the Kind of a GameError.
var (
	ErrPlayerExhausted = errors.New("player has no moves left")
	ErrInvalidMove     = errors.New("player made an invalid move")
)

// GameError ends a session. It matches its Kind with errors.Is and unwraps
// to the move-level cause.
type GameError struct {
	Kind   error
	Player string
	Err    error
}

func (e *GameError) Error() string {
	return fmt.Sprintf("%s: player '%s': %v", e.Kind, e.Player, e.Err)
}

func (e *GameError) Is(target error) bool {
	return target == e.Kind
}

func (e *GameError) Unwrap() error {
	return e.Err
}
