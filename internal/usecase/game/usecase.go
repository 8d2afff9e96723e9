package game

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/kiryu-dev/xors/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const playerCount = 2

var _ domain.GameUseCase = (*useCase)(nil)

type useCase struct {
	gameUuid   string
	players    [playerCount]domain.MoveSource
	registered int
	board      domain.Board
	turn       int
	turns      []domain.Turn
	outcome    domain.Outcome
	failure    error
	rounds     *atomic.Uint32
	retries    int
	renderer   domain.Renderer
	logger     *zap.Logger
}

type Option func(u *useCase)

// WithInputRetries lets the current player propose again up to n times
// after an unreadable selector or an occupied cell. Closed input is never
// retried, and occupied cells proposed by a source with script left do not
// count against n.
func WithInputRetries(n int) Option {
	return func(u *useCase) {
		if n > 0 {
			u.retries = n
		}
	}
}

func WithRenderer(renderer domain.Renderer) Option {
	return func(u *useCase) {
		u.renderer = renderer
	}
}

func New(logger *zap.Logger, opts ...Option) *useCase {
	gameUuid := uuid.NewString()
	u := &useCase{
		gameUuid: gameUuid,
		turns:    make([]domain.Turn, 0, len(domain.Board{})),
		rounds:   atomic.NewUint32(0),
		logger:   logger.With(zap.String("game uuid", gameUuid)),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *useCase) RegisterPlayer(player domain.MoveSource) error {
	if u.registered == playerCount {
		return errors.WithMessagef(ErrPlayersFull, "cannot register '%s'", player.Name())
	}
	if !player.Token().Valid() {
		return errors.WithMessagef(domain.ErrInvalidToken, "player '%s'", player.Name())
	}
	if u.registered == 1 && u.players[0].Token() == player.Token() {
		return errors.WithMessagef(ErrDuplicateToken,
			"'%s' and '%s' both play '%s'", u.players[0].Name(), player.Name(), player.Token())
	}
	u.players[u.registered] = player
	u.registered++
	u.logger.Info("registered player",
		zap.Int("slot", u.registered),
		zap.String("name", player.Name()),
		zap.Stringer("token", player.Token()))
	return nil
}

func (u *useCase) Play(ctx context.Context) (domain.GameResult, error) {
	if u.registered < playerCount {
		return domain.GameResult{}, ErrNotEnoughPlayers
	}
	if u.failure != nil {
		return u.result(), u.failure
	}
	if u.outcome.IsTerminal() {
		return u.result(), ErrGameFinished
	}
	for !u.outcome.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return u.result(), errors.WithMessage(err, "play game")
		}
		if err := u.playTurn(ctx); err != nil {
			u.logger.Warn("game aborted", zap.Uint32("rounds", u.rounds.Load()), zap.Error(err))
			return u.result(), err
		}
	}
	u.logger.Info("game finished",
		zap.Stringer("outcome", u.outcome),
		zap.Uint32("rounds", u.rounds.Load()))
	return u.result(), nil
}

func (u *useCase) Rounds() uint32 {
	return u.rounds.Load()
}

// scriptedSource is a source with a finite script. Proposals from it only
// move forward, so re-asking after an occupied cell always ends.
type scriptedSource interface {
	Remaining() int
}

func (u *useCase) playTurn(ctx context.Context) error {
	player := u.players[u.turn]
	for attempt := 0; ; {
		move, err := player.Play(ctx)
		if err == nil {
			err = u.executeMove(player, move)
		}
		if err == nil {
			return nil
		}
		kind := toGameErrorKind(err)
		if kind == nil {
			return errors.WithMessage(err, "request move")
		}
		if kind == ErrInvalidMove && hasScriptLeft(player, err) {
			u.logger.Debug("scripted move hit an occupied cell, asking again",
				zap.String("player", player.Name()),
				zap.Error(err))
			continue
		}
		if kind == ErrInvalidMove && attempt < u.retries && !errors.Is(err, io.EOF) {
			attempt++
			u.logger.Info("move rejected, asking again",
				zap.String("player", player.Name()),
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}
		u.failure = &GameError{Kind: kind, Player: player.Name(), Err: err}
		return u.failure
	}
}

func hasScriptLeft(player domain.MoveSource, err error) bool {
	script, ok := player.(scriptedSource)
	return ok && errors.Is(err, domain.ErrCellOccupied) && script.Remaining() > 0
}

func (u *useCase) executeMove(player domain.MoveSource, move domain.Move) error {
	if move.Token != player.Token() {
		return errors.WithMessagef(ErrTokenMismatch,
			"'%s' plays '%s' but proposed '%s'", player.Name(), player.Token(), move.Token)
	}
	if err := u.board.Play(move.Location, move.Token); err != nil {
		return errors.WithMessage(err, "play board")
	}
	u.turns = append(u.turns, domain.Turn{
		Player:   player.Name(),
		Token:    move.Token,
		Location: move.Location,
	})
	u.rounds.Inc()
	u.turn = (u.turn + 1) % playerCount
	u.outcome = u.evaluate()
	u.logger.Debug("move applied",
		zap.String("player", player.Name()),
		zap.Stringer("token", move.Token),
		zap.Stringer("location", move.Location))
	if u.renderer != nil {
		if err := u.renderer.Render(u.board); err != nil {
			u.logger.Warn("failed to render board", zap.Error(err))
		}
	}
	return nil
}

func (u *useCase) evaluate() domain.Outcome {
	winner, ok := u.board.Winner()
	switch {
	case ok && winner == u.players[0].Token():
		return domain.Player1Wins
	case ok:
		return domain.Player2Wins
	case u.board.IsFull():
		return domain.Tie
	default:
		return domain.Undecided
	}
}

func (u *useCase) result() domain.GameResult {
	res := domain.GameResult{
		GameUuid: u.gameUuid,
		Outcome:  u.outcome,
		Player1:  u.players[0].Name(),
		Player2:  u.players[1].Name(),
		Board:    u.board,
		Turns:    append([]domain.Turn(nil), u.turns...),
	}
	switch u.outcome {
	case domain.Player1Wins:
		res.Winner = u.players[0].Name()
	case domain.Player2Wins:
		res.Winner = u.players[1].Name()
	}
	return res
}
