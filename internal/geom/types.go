package geom

import (
	"fmt"
	"math"
)

// Point is a lattice point. The same type is used for original (x, y) and
// rotated (u, v) coordinates; callers track which space a value lives in.
type Point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Manhattan returns |Δx| + |Δy| between a and b.
func Manhattan(a, b Point) int64 {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Bounds is a half-open region [Min, Max) in original coordinates.
type Bounds struct {
	Min Point // inclusive
	Max Point // exclusive
}

// MaxLimit is the largest limit Square accepts; the exclusive bound
// limit+1 must still fit in an int64.
const MaxLimit int64 = math.MaxInt64 - 1

// Square returns the inclusive region [0, limit] × [0, limit].
// It panics if limit exceeds MaxLimit.
func Square(limit int64) Bounds {
	if limit > MaxLimit {
		panic(fmt.Sprintf("geom: square limit %d exceeds %d", limit, MaxLimit))
	}
	return Bounds{Min: Point{}, Max: Point{X: limit + 1, Y: limit + 1}}
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// Empty reports whether b covers no lattice points.
func (b Bounds) Empty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}
