package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	t.Run("empty flags mean no bounds", func(t *testing.T) {
		start, end, err := parseRange("", "")
		require.NoError(t, err)
		assert.Nil(t, start)
		assert.Nil(t, end)
	})

	t.Run("both bounds", func(t *testing.T) {
		start, end, err := parseRange("2024-01-01", "2024-01-31")
		require.NoError(t, err)
		require.NotNil(t, start)
		require.NotNil(t, end)
		assert.Equal(t, time.January, start.Month())
		// End bound covers the whole last day.
		assert.Equal(t, 31, end.Day())
		assert.Equal(t, 23, end.Hour())
	})

	t.Run("invalid date", func(t *testing.T) {
		_, _, err := parseRange("01/02/2024", "")
		assert.Error(t, err)
	})
}
