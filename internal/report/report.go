// Package report turns query answers into the scalar score and the text or
// JSON output printed by the CLI.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/banshee-data/beacon.report/internal/geom"
)

// ErrScoreOverflow is returned when x*multiplier + y does not fit in int64.
var ErrScoreOverflow = errors.New("report: score overflows int64")

// Result holds the answers of one scan.
type Result struct {
	Row          int64         `json:"row"`
	CoveredCount int64         `json:"covered_count"`
	Limit        int64         `json:"limit"`
	Multiplier   int64         `json:"multiplier"`
	Gap          geom.Point    `json:"gap"`
	Score        int64         `json:"score"`
	Elapsed      time.Duration `json:"-"`
	ElapsedMs    float64       `json:"elapsed_ms"`
}

// Score combines a gap point into x*multiplier + y.
func Score(p geom.Point, multiplier int64) (int64, error) {
	v := new(big.Int).Mul(big.NewInt(p.X), big.NewInt(multiplier))
	v.Add(v, big.NewInt(p.Y))
	if !v.IsInt64() {
		return 0, fmt.Errorf("%w: %v * %d", ErrScoreOverflow, p, multiplier)
	}
	return v.Int64(), nil
}

// New builds a Result and computes its score.
func New(row, covered, limit, multiplier int64, gap geom.Point, elapsed time.Duration) (*Result, error) {
	score, err := Score(gap, multiplier)
	if err != nil {
		return nil, err
	}
	return &Result{
		Row:          row,
		CoveredCount: covered,
		Limit:        limit,
		Multiplier:   multiplier,
		Gap:          gap,
		Score:        score,
		Elapsed:      elapsed,
		ElapsedMs:    float64(elapsed.Microseconds()) / 1000,
	}, nil
}

// WriteText prints the two answers as human-readable lines.
func (r *Result) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Positions without a beacon at y=%d: %d\n", r.Row, r.CoveredCount); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Gap in [0,%d]² at %v, score %d\n", r.Limit, r.Gap, r.Score)
	return err
}

// WriteJSON emits r as indented JSON.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
