package coverage

import (
	"strings"
	"testing"

	"github.com/banshee-data/beacon.report/internal/geom"
	"github.com/banshee-data/beacon.report/internal/sensor"
	"github.com/banshee-data/beacon.report/internal/testutil"
	"github.com/stretchr/testify/require"
)

func canonicalSet(t testing.TB) *sensor.Set {
	t.Helper()
	readings, err := sensor.ParseReadings(strings.NewReader(testutil.CanonicalInput))
	require.NoError(t, err)
	set, err := sensor.NewSet(readings)
	require.NoError(t, err)
	return set
}

func sensorsFromRadii(centers []geom.Point, radii []int64) []sensor.Sensor {
	out := make([]sensor.Sensor, len(centers))
	for i := range centers {
		out[i] = sensor.Sensor{Center: centers[i], Radius: radii[i]}
	}
	return out
}

// uncoveredBrute lists every point of region outside all diamonds.
func uncoveredBrute(sensors []sensor.Sensor, region geom.Bounds) []geom.Point {
	var out []geom.Point
	for x := region.Min.X; x < region.Max.X; x++ {
		for y := region.Min.Y; y < region.Max.Y; y++ {
			p := geom.Point{X: x, Y: y}
			hit := false
			for _, s := range sensors {
				if s.Covers(p) {
					hit = true
					break
				}
			}
			if !hit {
				out = append(out, p)
			}
		}
	}
	return out
}
