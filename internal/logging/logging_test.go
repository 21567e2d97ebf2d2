// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, ParseLevel(tc.in), "level %q", tc.in)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, false, "warn")

	log.Info().Msg("hidden")
	log.Warn().Int("passes", 3).Msg("shown")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "shown", line["message"])
	require.Equal(t, "warn", line["level"])
	require.EqualValues(t, 3, line["passes"])
	require.Contains(t, line, "time")
}

func TestNewWithWriter_Pretty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	log := NewWithWriter(&buf, true, "info")

	log.Info().Str("origin", "ecb").Msg("fetched")
	out := buf.String()
	require.Contains(t, out, "fetched")
	require.Contains(t, out, "origin=ecb")
	require.Contains(t, out, "INF")
}
