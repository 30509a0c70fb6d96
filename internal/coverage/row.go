package coverage

import (
	"github.com/banshee-data/beacon.report/internal/geom"
	"github.com/banshee-data/beacon.report/internal/interval"
	"github.com/banshee-data/beacon.report/internal/sensor"
)

// RowIntervals returns the merged covered intervals on row y with every
// beacon on that row removed.
func RowIntervals(sensors []sensor.Sensor, beacons []geom.Point, y int64) []interval.Interval {
	spans := make([]interval.Interval, 0, len(sensors))
	for _, s := range sensors {
		hw := s.HalfWidthAt(y)
		if hw < 0 {
			continue
		}
		spans = append(spans, interval.Interval{
			Start: s.Center.X - hw,
			End:   s.Center.X + hw + 1,
		})
	}

	merged := interval.MergeUnion(spans)
	for _, b := range beacons {
		if b.Y == y {
			merged = interval.SubtractPoint(merged, b.X)
		}
	}
	return merged
}

// RowLength counts the positions on row y that lie inside some sensor's
// exclusion diamond and are not beacons.
func RowLength(sensors []sensor.Sensor, beacons []geom.Point, y int64) int64 {
	return interval.TotalLength(RowIntervals(sensors, beacons, y))
}

// Row is RowLength over a built sensor set.
func Row(set *sensor.Set, y int64) int64 {
	return RowLength(set.Sensors(), set.Beacons(), y)
}
