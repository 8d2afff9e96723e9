package main

import (
	"math/rand/v2"

	"github.com/kiryu-dev/xors/internal/config"
	"github.com/kiryu-dev/xors/internal/domain"
	"github.com/kiryu-dev/xors/internal/usecase/player"
	"github.com/pkg/errors"
)

func newMoveSource(cfg config.PlayerConfig, reader domain.MoveReader, rnd *rand.Rand) (domain.MoveSource, error) {
	identity, err := cfg.Identity()
	if err != nil {
		return nil, errors.WithMessagef(err, "player '%s'", cfg.Name)
	}
	switch cfg.Kind {
	case config.Interactive:
		return player.NewInteractive(identity, reader), nil
	case config.Random:
		return player.NewRandomScripted(identity, rnd), nil
	case config.Scripted:
		moves, err := cfg.Locations()
		if err != nil {
			return nil, errors.WithMessagef(err, "player '%s'", cfg.Name)
		}
		return player.NewScripted(identity, moves), nil
	default:
		return nil, errors.WithMessagef(config.ErrUnknownKind, "player '%s': '%s'", cfg.Name, cfg.Kind)
	}
}
