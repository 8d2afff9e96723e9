package domain

import (
	"context"

	"github.com/pkg/errors"
)

type Outcome byte

const (
	Undecided = Outcome(iota)
	Player1Wins
	Player2Wins
	Tie
)

var outcomeNames = map[Outcome]string{
	Undecided:   "undecided",
	Player1Wins: "player1",
	Player2Wins: "player2",
	Tie:         "tie",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

func (o Outcome) IsTerminal() bool {
	return o == Player1Wins || o == Player2Wins || o == Tie
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for k, v := range outcomeNames {
		if v == string(text) {
			*o = k
			return nil
		}
	}
	return errors.WithMessagef(ErrInvalidOutcome, "outcome '%s'", text)
}

type Turn struct {
	Player   string   `json:"player"`
	Token    Token    `json:"token"`
	Location Location `json:"location"`
}

type GameResult struct {
	GameUuid string  `json:"game_uuid"`
	Outcome  Outcome `json:"outcome"`
	Winner   string  `json:"winner,omitempty"`
	Player1  string  `json:"player1"`
	Player2  string  `json:"player2"`
	Board    Board   `json:"board"`
	Turns    []Turn  `json:"turns"`
}

type GameUseCase interface {
	RegisterPlayer(player MoveSource) error
	Play(ctx context.Context) (GameResult, error)
	Rounds() uint32
}
