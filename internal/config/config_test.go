package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kiryu-dev/xors/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNew(t *testing.T) {
	t.Run("Defaults without a file", func(t *testing.T) {
		cfg, err := New("")

		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Equal(t, Interactive, cfg.Player1.Kind)
		assert.Equal(t, Random, cfg.Player2.Kind)
		assert.Equal(t, 3, cfg.InputRetries)
	})

	t.Run("File overrides defaults", func(t *testing.T) {
		// Given: a config file with two scripted players
		path := writeConfig(t, `
log_level: debug
seed: 42
input_retries: 0
player1:
  name: alice
  token: O
  kind: scripted
  moves: [5, 2, 8]
player2:
  name: bob
  token: X
  kind: scripted
  moves: [1, 4]
`)

		// When: loading it
		cfg, err := New(path)

		// Then: every field comes from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, uint64(42), cfg.Seed)
		assert.Zero(t, cfg.InputRetries)
		assert.Equal(t, PlayerConfig{Name: "alice", Token: "O", Kind: Scripted, Moves: []int{5, 2, 8}}, cfg.Player1)
		locs, err := cfg.Player1.Locations()
		require.NoError(t, err)
		assert.Equal(t, []domain.Location{domain.MiddleCentre, domain.TopCentre, domain.BottomCentre}, locs)
	})

	t.Run("Partial file keeps the other defaults", func(t *testing.T) {
		path := writeConfig(t, "player2:\n  name: Robot\n")

		cfg, err := New(path)

		require.NoError(t, err)
		assert.Equal(t, "Robot", cfg.Player2.Name)
		assert.Equal(t, Random, cfg.Player2.Kind)
		assert.Equal(t, "O", cfg.Player2.Token)
		assert.Equal(t, Default().Player1, cfg.Player1)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file and XORS_* variables
		path := writeConfig(t, "log_level: warn\nseed: 1\n")
		t.Setenv("XORS_LOG_LEVEL", "error")
		t.Setenv("XORS_SEED", "77")
		t.Setenv("XORS_INPUT_RETRIES", "5")
		t.Setenv("XORS_REPORT_PATH", "-")

		// When: loading the config
		cfg, err := New(path)

		// Then: the variables win
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, uint64(77), cfg.Seed)
		assert.Equal(t, 5, cfg.InputRetries)
		assert.Equal(t, "-", cfg.ReportPath)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "absent.yml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Malformed file", func(t *testing.T) {
		path := writeConfig(t, "player1: [unterminated\n")

		_, err := New(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode config")
	})

	t.Run("Invalid file is validated", func(t *testing.T) {
		path := writeConfig(t, "player2:\n  token: X\n")

		_, err := New(path)

		require.ErrorIs(t, err, ErrSameToken)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Default config is valid", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})

	t.Run("Collects every problem", func(t *testing.T) {
		// Given: a config broken in several places
		cfg := Default()
		cfg.LogLevel = "loud"
		cfg.InputRetries = -1
		cfg.Player1.Name = "  "
		cfg.Player2.Kind = PlayerKind("psychic")

		// When: validating it
		err := cfg.Validate()

		// Then: each problem is reported
		require.ErrorIs(t, err, ErrUnknownLogLevel)
		require.ErrorIs(t, err, ErrBadRetries)
		require.ErrorIs(t, err, ErrEmptyName)
		require.ErrorIs(t, err, ErrUnknownKind)
		assert.Len(t, multierr.Errors(err), 4)
	})

	t.Run("Token problems", func(t *testing.T) {
		cfg := Default()
		cfg.Player1.Token = ""
		cfg.Player2.Token = "Z"

		err := cfg.Validate()

		require.ErrorIs(t, err, domain.ErrInvalidToken)
		assert.Len(t, multierr.Errors(err), 2)
	})

	t.Run("Lowercase tokens clash too", func(t *testing.T) {
		cfg := Default()
		cfg.Player2.Token = "x"

		require.ErrorIs(t, cfg.Validate(), ErrSameToken)
	})

	t.Run("Scripted players need valid moves", func(t *testing.T) {
		cfg := Default()
		cfg.Player1.Kind = Scripted
		cfg.Player2 = PlayerConfig{Name: "bob", Token: "O", Kind: Scripted, Moves: []int{1, 10}}

		err := cfg.Validate()

		require.ErrorIs(t, err, ErrBadScript)
		assert.Len(t, multierr.Errors(err), 2)
	})

	t.Run("Only scripted players take moves", func(t *testing.T) {
		cfg := Default()
		cfg.Player2.Moves = []int{1}

		require.ErrorIs(t, cfg.Validate(), ErrBadScript)
	})
}

func TestPlayerConfig_Identity(t *testing.T) {
	identity, err := PlayerConfig{Name: "alice", Token: "o"}.Identity()

	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Name())
	assert.Equal(t, domain.Nought, identity.Token())
}
