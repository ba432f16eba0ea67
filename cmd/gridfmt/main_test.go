package main

import (
	"io"
	"strings"
	"testing"

	"github.com/karrick/gologs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *gologs.Logger {
	t.Helper()
	log, err := gologs.New(io.Discard, "{message}")
	require.NoError(t, err)
	return log
}

func TestFormatReader(t *testing.T) {
	t.Run("canonicalizes tables and keeps prose", func(t *testing.T) {
		in := strings.Join([]string{
			"text",
			"+-+",
			"|a|",
			"+-+",
			"more",
		}, "\n")
		want := strings.Join([]string{
			"text",
			"+---+",
			"| a |",
			"+---+",
			"more",
		}, "\n") + "\n"

		out, err := formatReader(strings.NewReader(in), "test", newTestLogger(t))
		require.NoError(t, err)
		assert.Equal(t, want, out)
	})

	t.Run("keeps manually widened columns", func(t *testing.T) {
		in := strings.Join([]string{
			"+--------+",
			"|a       |",
			"+--------+",
		}, "\n")

		out, err := formatReader(strings.NewReader(in), "test", newTestLogger(t))
		require.NoError(t, err)
		assert.Contains(t, out, "+--------+")
		assert.Contains(t, out, "| a      |")
	})

	t.Run("formatting is idempotent", func(t *testing.T) {
		in := "intro\n+-+--+\n|a|b1|\n+-+--+\n"
		once, err := formatReader(strings.NewReader(in), "test", newTestLogger(t))
		require.NoError(t, err)
		twice, err := formatReader(strings.NewReader(once), "test", newTestLogger(t))
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("converts pipe tables when enabled", func(t *testing.T) {
		prev := *optPipeTables
		*optPipeTables = true
		defer func() { *optPipeTables = prev }()

		in := "| A | B |\n| --- | --- |\n| 1 | 2 |\n"
		out, err := formatReader(strings.NewReader(in), "test", newTestLogger(t))
		require.NoError(t, err)
		assert.Contains(t, out, "+---+---+")
		assert.Contains(t, out, "| A | B |")
		assert.NotContains(t, out, "---|")
	})
}
