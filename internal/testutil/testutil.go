// Package testutil provides shared test fixtures and assertions.
//
// The canonical fixture is the fourteen-sensor field used throughout the
// coverage tests, together with its known answers.
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/banshee-data/beacon.report/internal/geom"
)

// CanonicalInput is the reference sensor field in the input line format.
const CanonicalInput = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3
`

// Known answers for CanonicalInput.
const (
	CanonicalRow        int64 = 10
	CanonicalCovered    int64 = 26
	CanonicalLimit      int64 = 20
	CanonicalMultiplier int64 = 4000000
	CanonicalScore      int64 = 56000011
	CanonicalSensors          = 14
	CanonicalBeacons          = 6
)

// CanonicalGap is the single uncovered point of CanonicalInput inside
// [0, CanonicalLimit]².
var CanonicalGap = geom.Point{X: 14, Y: 11}

// WriteInputFile writes content to a file in a per-test temporary
// directory and returns its path.
func WriteInputFile(t testing.TB, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "readings.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input file: %v", err)
	}
	return path
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertErrorIs fails the test unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v", err, target)
	}
}
