package config

import (
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/kiryu-dev/xors/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyName       = errors.New("player name is empty")
	ErrUnknownKind     = errors.New("unknown player kind")
	ErrBadScript       = errors.New("invalid scripted moves")
	ErrSameToken       = errors.New("players must hold different tokens")
	ErrBadRetries      = errors.New("input retries must not be negative")
	ErrUnknownLogLevel = errors.New("unknown log level")
)

type PlayerKind string

const (
	Interactive = PlayerKind("interactive")
	Scripted    = PlayerKind("scripted")
	Random      = PlayerKind("random")
)

type PlayerConfig struct {
	Name  string     `yaml:"name"`
	Token string     `yaml:"token"`
	Kind  PlayerKind `yaml:"kind"`
	Moves []int      `yaml:"moves"`
}

type Config struct {
	LogLevel     string       `yaml:"log_level" env:"XORS_LOG_LEVEL"`
	Seed         uint64       `yaml:"seed" env:"XORS_SEED"`
	InputRetries int          `yaml:"input_retries" env:"XORS_INPUT_RETRIES"`
	ReportPath   string       `yaml:"report_path" env:"XORS_REPORT_PATH"`
	Player1      PlayerConfig `yaml:"player1"`
	Player2      PlayerConfig `yaml:"player2"`
}

func Default() Config {
	return Config{
		LogLevel:     "info",
		InputRetries: 3,
		Player1: PlayerConfig{
			Name:  "Player 1",
			Token: "X",
			Kind:  Interactive,
		},
		Player2: PlayerConfig{
			Name:  "Computer",
			Token: "O",
			Kind:  Random,
		},
	}
}

// New loads cfgPath over the defaults (an empty path keeps them), applies
// XORS_* environment overrides and validates the result.
func New(cfgPath string) (Config, error) {
	cfg := Default()
	if cfgPath != "" {
		file, err := os.Open(cfgPath)
		if err != nil {
			return Config{}, err
		}
		defer func() {
			_ = file.Close()
		}()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return Config{}, errors.WithMessagef(err, "decode config '%s'", cfgPath)
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, errors.WithMessage(err, "read env")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var err error
	if _, lvlErr := zapcore.ParseLevel(c.LogLevel); lvlErr != nil {
		err = multierr.Append(err, errors.WithMessagef(ErrUnknownLogLevel, "'%s'", c.LogLevel))
	}
	if c.InputRetries < 0 {
		err = multierr.Append(err, errors.WithMessagef(ErrBadRetries, "got %d", c.InputRetries))
	}
	err = multierr.Append(err, c.Player1.validate("player1"))
	err = multierr.Append(err, c.Player2.validate("player2"))
	lhs, lhsErr := domain.ParseToken(c.Player1.Token)
	rhs, rhsErr := domain.ParseToken(c.Player2.Token)
	if lhsErr == nil && rhsErr == nil && lhs != domain.None && lhs == rhs {
		err = multierr.Append(err, errors.WithMessagef(ErrSameToken, "both play '%s'", lhs))
	}
	return err
}

func (p PlayerConfig) validate(slot string) error {
	var err error
	if strings.TrimSpace(p.Name) == "" {
		err = multierr.Append(err, errors.WithMessage(ErrEmptyName, slot))
	}
	token, tokenErr := domain.ParseToken(p.Token)
	switch {
	case tokenErr != nil:
		err = multierr.Append(err, errors.WithMessage(tokenErr, slot))
	case token == domain.None:
		err = multierr.Append(err, errors.WithMessage(domain.ErrInvalidToken, slot+": token is empty"))
	}
	switch p.Kind {
	case Interactive, Random:
		if len(p.Moves) > 0 {
			err = multierr.Append(err, errors.WithMessagef(ErrBadScript, "%s: moves are only allowed for '%s' players", slot, Scripted))
		}
	case Scripted:
		if len(p.Moves) == 0 {
			err = multierr.Append(err, errors.WithMessagef(ErrBadScript, "%s: no moves", slot))
		}
		if _, locErr := p.Locations(); locErr != nil {
			err = multierr.Append(err, errors.WithMessagef(ErrBadScript, "%s: %v", slot, locErr))
		}
	default:
		err = multierr.Append(err, errors.WithMessagef(ErrUnknownKind, "%s: '%s'", slot, p.Kind))
	}
	return err
}

func (p PlayerConfig) Identity() (domain.Identity, error) {
	token, err := domain.ParseToken(p.Token)
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.NewIdentity(p.Name, token), nil
}

// Locations converts the 1-9 move selectors into board locations.
func (p PlayerConfig) Locations() ([]domain.Location, error) {
	locs := make([]domain.Location, 0, len(p.Moves))
	for _, n := range p.Moves {
		loc, err := domain.LocationFromSelector(n)
		if err != nil {
			return nil, err
		}
		locs = append(locs, loc)
	}
	return locs, nil
}
