// Package sensor holds the immutable sensor field: each sensor's center,
// its Manhattan exclusion radius, and the beacons the readings reference.
package sensor

import (
	"errors"

	"github.com/banshee-data/beacon.report/internal/geom"
)

// ErrNoReadings is returned when a Set is built from zero readings.
var ErrNoReadings = errors.New("sensor: no readings")

// Reading is one parsed input pair: a sensor position and the position of
// the closest beacon it reports.
type Reading struct {
	Sensor geom.Point
	Beacon geom.Point
}

// Sensor is a sensor center and the radius of its closed exclusion diamond.
type Sensor struct {
	Center geom.Point
	Radius int64
}

// Covers reports whether p lies inside the sensor's exclusion diamond.
func (s Sensor) Covers(p geom.Point) bool {
	return geom.Manhattan(s.Center, p) <= s.Radius
}

// Rect returns the sensor's exclusion diamond as a rotated-space square.
func (s Sensor) Rect() geom.Rect {
	return geom.RectFor(s.Center, s.Radius)
}

// HalfWidthAt returns the half-width of the diamond's cross-section at
// row y. A negative value means the row misses the diamond.
func (s Sensor) HalfWidthAt(y int64) int64 {
	dy := uint64(s.Center.Y) - uint64(y)
	if s.Center.Y < y {
		dy = uint64(y) - uint64(s.Center.Y)
	}
	if dy > uint64(s.Radius) {
		return -1
	}
	return s.Radius - int64(dy)
}

// Set is the read-only sensor field built once from input readings.
type Set struct {
	sensors []Sensor
	beacons []geom.Point
}

// NewSet derives each sensor's radius from its reading and collects the
// distinct beacons in first-seen order.
func NewSet(readings []Reading) (*Set, error) {
	if len(readings) == 0 {
		return nil, ErrNoReadings
	}

	set := &Set{
		sensors: make([]Sensor, 0, len(readings)),
	}
	seen := make(map[geom.Point]bool, len(readings))
	for _, r := range readings {
		set.sensors = append(set.sensors, Sensor{
			Center: r.Sensor,
			Radius: geom.Manhattan(r.Sensor, r.Beacon),
		})
		if !seen[r.Beacon] {
			seen[r.Beacon] = true
			set.beacons = append(set.beacons, r.Beacon)
		}
	}
	return set, nil
}

// Sensors returns a copy of the sensors in input order.
func (s *Set) Sensors() []Sensor {
	out := make([]Sensor, len(s.sensors))
	copy(out, s.sensors)
	return out
}

// Beacons returns a copy of the distinct beacons in first-seen order.
func (s *Set) Beacons() []geom.Point {
	out := make([]geom.Point, len(s.beacons))
	copy(out, s.beacons)
	return out
}

// Len returns the number of sensors.
func (s *Set) Len() int {
	return len(s.sensors)
}

