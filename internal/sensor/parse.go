package sensor

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/banshee-data/beacon.report/internal/geom"
)

const readingFormat = "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d"

// readingPattern accepts the literal line text with optionally negative
// decimal coordinates. Leading zeros are allowed, a plus sign is not.
var readingPattern = regexp.MustCompile(
	`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`)

// ParseReading parses a single line of the form
//
//	Sensor at x=2, y=18: closest beacon is at x=-2, y=15
func ParseReading(line string) (Reading, error) {
	line = strings.TrimSpace(line)
	m := readingPattern.FindStringSubmatch(line)
	if m == nil {
		return Reading{}, fmt.Errorf("parse reading %q: does not match %q", line, readingFormat)
	}

	var coords [4]int64
	for i := range coords {
		v, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return Reading{}, fmt.Errorf("parse reading %q: %w", line, err)
		}
		coords[i] = v
	}
	return Reading{
		Sensor: geom.Point{X: coords[0], Y: coords[1]},
		Beacon: geom.Point{X: coords[2], Y: coords[3]},
	}, nil
}

// FormatReading renders r in the input line format.
func FormatReading(r Reading) string {
	return fmt.Sprintf(readingFormat, r.Sensor.X, r.Sensor.Y, r.Beacon.X, r.Beacon.Y)
}

// ParseReadings reads one reading per line, skipping blank lines. Errors
// name the 1-based line number.
func ParseReadings(r io.Reader) ([]Reading, error) {
	var readings []Reading
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		reading, err := ParseReading(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		readings = append(readings, reading)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read readings: %w", err)
	}
	return readings, nil
}

