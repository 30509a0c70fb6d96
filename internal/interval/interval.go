// Package interval implements union and point removal on sets of half-open
// integer intervals.
//
// A merged set is sorted ascending by Start and no two members are
// mergeable. Intervals that touch (one's End equal to the other's Start)
// are merged because integer coverage is continuous across the boundary.
package interval

import (
	"cmp"
	"fmt"
	"slices"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start int64
	End   int64
}

// String formats the interval as "[start,end)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}

// Len returns the number of integers covered, zero for empty intervals.
func (iv Interval) Len() int64 {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// Contains reports whether x lies in [Start, End).
func (iv Interval) Contains(x int64) bool {
	return x >= iv.Start && x < iv.End
}

// Disjoint reports whether a and b can not be merged: one starts strictly
// after the other ends.
func Disjoint(a, b Interval) bool {
	return a.Start > b.End || b.Start > a.End
}

// MergeUnion returns the maximal sorted disjoint set covering the same
// integers as the input. Empty intervals are dropped. The input slice is
// not modified.
func MergeUnion(intervals []Interval) []Interval {
	sorted := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Len() > 0 {
			sorted = append(sorted, iv)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	slices.SortFunc(sorted, func(a, b Interval) int {
		if a.Start != b.Start {
			return cmp.Compare(a.Start, b.Start)
		}
		return cmp.Compare(a.End, b.End)
	})

	// One sweep is enough once sorted by start: anything mergeable with
	// the current interval is adjacent to it in this order.
	merged := make([]Interval, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if Disjoint(current, next) {
			merged = append(merged, current)
			current = next
			continue
		}
		current.End = max(current.End, next.End)
	}
	return append(merged, current)
}

// SubtractPoint returns set with the integer x removed. An interval that
// strictly contains x is split in two, one that has x at an end shrinks,
// and [x, x+1) is dropped. If x is not covered the result equals set.
// The input slice is not modified.
func SubtractPoint(set []Interval, x int64) []Interval {
	result := make([]Interval, 0, len(set)+1)
	for _, iv := range set {
		if !iv.Contains(x) {
			result = append(result, iv)
			continue
		}
		if iv.Start < x {
			result = append(result, Interval{Start: iv.Start, End: x})
		}
		if x+1 < iv.End {
			result = append(result, Interval{Start: x + 1, End: iv.End})
		}
	}
	return result
}

// TotalLength sums the lengths of the intervals in set.
func TotalLength(set []Interval) int64 {
	var total int64
	for _, iv := range set {
		total += iv.Len()
	}
	return total
}

// Covers reports whether any interval in set contains x.
func Covers(set []Interval, x int64) bool {
	for _, iv := range set {
		if iv.Contains(x) {
			return true
		}
	}
	return false
}

