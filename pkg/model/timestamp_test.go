package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTimestamp(t *testing.T) {
	instant := time.Date(2024, 3, 10, 14, 30, 5, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"native time", instant, instant},
		{"time pointer", &instant, instant},
		{"rfc3339 string", "2024-03-10T14:30:05Z", instant},
		{"rfc3339 with offset", "2024-03-10T20:00:05+05:30", instant},
		{"rfc3339 nano", "2024-03-10T14:30:05.000000000Z", instant},
		{"wire form seconds/nanos", map[string]any{"seconds": float64(instant.Unix()), "nanos": float64(0)}, instant},
		{"wire form underscored", map[string]any{"_seconds": float64(instant.Unix()), "_nanoseconds": float64(0)}, instant},
		{"unix epoch number", float64(instant.Unix()), instant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTimestamp(tt.in)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestNormalizeTimestampUnparseableDefaultsToNow(t *testing.T) {
	for _, in := range []any{nil, "yesterday-ish", map[string]any{"sec": 5}, []any{1, 2}, true} {
		got := NormalizeTimestamp(in)
		assert.WithinDuration(t, time.Now(), got, 2*time.Second, "input %v", in)
	}
}
