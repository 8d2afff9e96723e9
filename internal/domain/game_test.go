package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome_Text(t *testing.T) {
	t.Run("Known names round trip", func(t *testing.T) {
		for _, outcome := range []Outcome{Undecided, Player1Wins, Player2Wins, Tie} {
			text, err := outcome.MarshalText()
			require.NoError(t, err)

			var decoded Outcome
			require.NoError(t, decoded.UnmarshalText(text))
			assert.Equal(t, outcome, decoded)
		}
	})

	t.Run("Unknown name is rejected", func(t *testing.T) {
		// Given: an outcome that already holds a value
		decoded := Tie

		// When: decoding a corrupted name
		err := decoded.UnmarshalText([]byte("player3"))

		// Then: the error names the problem and the value is kept
		require.ErrorIs(t, err, ErrInvalidOutcome)
		assert.Equal(t, Tie, decoded)
	})

	t.Run("Terminal outcomes", func(t *testing.T) {
		assert.False(t, Undecided.IsTerminal())
		assert.True(t, Player1Wins.IsTerminal())
		assert.True(t, Player2Wins.IsTerminal())
		assert.True(t, Tie.IsTerminal())
	})
}
