package domain

import (
	"context"
)

type Identity struct {
	name  string
	token Token
}

func NewIdentity(name string, token Token) Identity {
	return Identity{
		name:  name,
		token: token,
	}
}

func (i Identity) Name() string {
	return i.name
}

func (i Identity) Token() Token {
	return i.token
}

type Move struct {
	Token    Token
	Location Location
}

// MoveSource proposes the next move for one player. It never touches the
// board; the controller decides whether the proposal is applied.
type MoveSource interface {
	Name() string
	Token() Token
	Play(ctx context.Context) (Move, error)
}

// MoveReader prompts for and reads one line of text holding a cell
// selector.
type MoveReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

type Renderer interface {
	Render(board Board) error
}
