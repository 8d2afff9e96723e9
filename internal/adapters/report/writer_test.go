package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/xors/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(t *testing.T) domain.GameResult {
	t.Helper()
	board := domain.Board{}
	require.NoError(t, board.Play(domain.MiddleCentre, domain.Cross))
	require.NoError(t, board.Play(domain.TopLeft, domain.Nought))
	return domain.GameResult{
		GameUuid: "7b0f3c8e-1f0a-4a57-9a59-2b4c1d1e6c01",
		Outcome:  domain.Undecided,
		Player1:  "alice",
		Player2:  "bob",
		Board:    board,
		Turns: []domain.Turn{
			{Player: "alice", Token: domain.Cross, Location: domain.MiddleCentre},
			{Player: "bob", Token: domain.Nought, Location: domain.TopLeft},
		},
	}
}

func TestWriter_Write(t *testing.T) {
	t.Run("Writes the report to a file", func(t *testing.T) {
		// Given: a writer pointed at a temp file
		path := filepath.Join(t.TempDir(), "report.json")
		result := sampleResult(t)

		// When: writing the result
		require.NoError(t, New(path).Write(result))

		// Then: the file decodes back to the same result
		body, err := os.ReadFile(path)
		require.NoError(t, err)
		var decoded domain.GameResult
		require.NoError(t, jsoniter.Unmarshal(body, &decoded))
		assert.Equal(t, result, decoded)
		assert.Contains(t, string(body), `"outcome": "undecided"`)
		assert.Contains(t, string(body), `"location": "MiddleCentre"`)
		assert.NotContains(t, string(body), `"winner"`)
	})

	t.Run("Dash writes to stdout", func(t *testing.T) {
		stdout := new(bytes.Buffer)
		w := writer{path: stdoutPath, stdout: stdout}

		require.NoError(t, w.Write(sampleResult(t)))

		assert.True(t, jsoniter.Valid(stdout.Bytes()))
		assert.Equal(t, byte('\n'), stdout.Bytes()[stdout.Len()-1])
	})

	t.Run("Unwritable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "report.json")

		err := New(path).Write(sampleResult(t))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
