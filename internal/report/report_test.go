package report

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/banshee-data/beacon.report/internal/geom"
	"github.com/banshee-data/beacon.report/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		p       geom.Point
		m       int64
		want    int64
		wantErr bool
	}{
		{"canonical", testutil.CanonicalGap, testutil.CanonicalMultiplier, testutil.CanonicalScore, false},
		{"origin", geom.Point{}, 4000000, 0, false},
		{"full scale", geom.Point{X: 4000000, Y: 4000000}, 4000000, 16000004000000, false},
		{"overflow", geom.Point{X: math.MaxInt64 / 2, Y: 0}, 3, 0, true},
		{"add overflow", geom.Point{X: 1, Y: math.MaxInt64}, 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Score(tt.p, tt.m)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, ErrScoreOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func canonicalResult(t *testing.T) *Result {
	t.Helper()
	r, err := New(testutil.CanonicalRow, testutil.CanonicalCovered, testutil.CanonicalLimit,
		testutil.CanonicalMultiplier, testutil.CanonicalGap, 1500*time.Microsecond)
	require.NoError(t, err)
	return r
}

func TestResult_WriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, canonicalResult(t).WriteText(&buf))
	assert.Equal(t,
		"Positions without a beacon at y=10: 26\nGap in [0,20]² at (14,11), score 56000011\n",
		buf.String())
}

func TestResult_WriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, canonicalResult(t).WriteJSON(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(26), decoded["covered_count"])
	assert.Equal(t, float64(56000011), decoded["score"])
	assert.Equal(t, 1.5, decoded["elapsed_ms"])
	assert.Equal(t, map[string]any{"x": float64(14), "y": float64(11)}, decoded["gap"])
	assert.NotContains(t, decoded, "Elapsed")
}

func TestNew_Overflow(t *testing.T) {
	t.Parallel()

	_, err := New(0, 0, 0, math.MaxInt64, geom.Point{X: 2, Y: 0}, 0)
	testutil.AssertErrorIs(t, err, ErrScoreOverflow)
}
