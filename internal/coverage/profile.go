package coverage

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/banshee-data/beacon.report/internal/sensor"
)

// ErrInvalidRange is returned by Profile when the row range is inverted or
// the step is not positive.
var ErrInvalidRange = errors.New("coverage: invalid row range")

// maxPrealloc bounds the capacity Profile reserves up front.
const maxPrealloc = 4096

// RowStat is the covered count of a single row.
type RowStat struct {
	Y       int64 `json:"y"`
	Covered int64 `json:"covered"`
}

// Profile evaluates RowLength for rows fromY, fromY+step, ... up to toY.
// The range may span the whole int64 domain.
func Profile(set *sensor.Set, fromY, toY, step int64) ([]RowStat, error) {
	if fromY > toY {
		return nil, fmt.Errorf("%w: from %d > to %d", ErrInvalidRange, fromY, toY)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step %d", ErrInvalidRange, step)
	}

	// Offsets from fromY are unsigned and never exceed span.
	span := uint64(toY) - uint64(fromY)
	n := span / uint64(step)

	sensors := set.Sensors()
	beacons := set.Beacons()
	stats := make([]RowStat, 0, min(n+1, maxPrealloc))
	for i := uint64(0); ; i++ {
		y := int64(uint64(fromY) + i*uint64(step))
		stats = append(stats, RowStat{Y: y, Covered: RowLength(sensors, beacons, y)})
		if i == n {
			break
		}
	}
	return stats, nil
}

// IncludeRow returns stats with row y present, evaluating and inserting it
// in Y order when a stepped profile skipped it.
func IncludeRow(stats []RowStat, set *sensor.Set, y int64) []RowStat {
	i, found := slices.BinarySearchFunc(stats, y, func(s RowStat, y int64) int {
		return cmp.Compare(s.Y, y)
	})
	if found {
		return stats
	}
	return slices.Insert(stats, i, RowStat{Y: y, Covered: Row(set, y)})
}

// ProfileStep returns the smallest step that keeps a profile of
// [fromY, toY] within maxRows rows.
func ProfileStep(fromY, toY int64, maxRows int) int64 {
	if maxRows <= 0 || fromY > toY {
		return 1
	}
	q := (uint64(toY) - uint64(fromY)) / uint64(maxRows)
	if q >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(q) + 1
}
