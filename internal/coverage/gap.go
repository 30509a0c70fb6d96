package coverage

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/banshee-data/beacon.report/internal/geom"
	"github.com/banshee-data/beacon.report/internal/monitoring"
	"github.com/banshee-data/beacon.report/internal/sensor"
)

var (
	// ErrGapNotUnique matches any result other than exactly one gap point.
	ErrGapNotUnique = errors.New("coverage: gap point is not unique")
	// ErrNoGap means every candidate was covered or out of bounds.
	ErrNoGap = fmt.Errorf("%w: no uncovered point", ErrGapNotUnique)
	// ErrAmbiguousGap means more than one candidate survived.
	ErrAmbiguousGap = fmt.Errorf("%w: several uncovered points", ErrGapNotUnique)
)

// GapFinder searches a bounded region for the lattice point no sensor covers.
type GapFinder struct {
	// Workers bounds the goroutines used for the per-cell coverage check.
	// Zero or one runs the check inline.
	Workers int
}

// FindGap runs an inline GapFinder.
func FindGap(sensors []sensor.Sensor, region geom.Bounds) (geom.Point, error) {
	return GapFinder{}.Find(sensors, region)
}

// Find returns the single uncovered point of region. ErrNoGap or
// ErrAmbiguousGap is returned, wrapped with the candidate count, when the
// region does not hold exactly one.
func (f GapFinder) Find(sensors []sensor.Sensor, region geom.Bounds) (geom.Point, error) {
	candidates := f.Candidates(sensors, region)
	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		return geom.Point{}, fmt.Errorf("%w: 0 candidates in %v-%v", ErrNoGap, region.Min, region.Max)
	default:
		return geom.Point{}, fmt.Errorf("%w: %d candidates %v", ErrAmbiguousGap, len(candidates), candidates)
	}
}

// Candidates returns every uncovered point of region that sits on a unit
// cell of the rotated sweep grid, sorted by X then Y.
func (f GapFinder) Candidates(sensors []sensor.Sensor, region geom.Bounds) []geom.Point {
	rects := make([]geom.Rect, len(sensors))
	for i, s := range sensors {
		rects[i] = s.Rect()
	}

	us, vs := gridEdges(rects)
	columns := unitCells(us)
	rows := unitCells(vs)
	monitoring.Debugf("gap search: %d rects, %d u edges, %d v edges, %d×%d unit cells",
		len(rects), len(us), len(vs), len(columns), len(rows))

	var found []geom.Point
	if f.Workers <= 1 || len(columns) < 2 {
		found = scanCells(columns, rows, rects, region)
	} else {
		found = f.scanParallel(columns, rows, rects, region)
	}

	slices.SortFunc(found, func(a, b geom.Point) int {
		if a.X != b.X {
			return cmp.Compare(a.X, b.X)
		}
		return cmp.Compare(a.Y, b.Y)
	})
	monitoring.Debugf("gap search: %d candidates survived", len(found))
	return found
}

func (f GapFinder) scanParallel(columns, rows []int64, rects []geom.Rect, region geom.Bounds) []geom.Point {
	workers := min(f.Workers, len(columns))
	chunk := (len(columns) + workers - 1) / workers
	parts := make([][]geom.Point, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		lo := i * chunk
		hi := min(lo+chunk, len(columns))
		if lo >= hi {
			continue
		}
		wg.Go(func() {
			parts[i] = scanCells(columns[lo:hi], rows, rects, region)
		})
	}
	wg.Wait()

	var found []geom.Point
	for _, p := range parts {
		found = append(found, p...)
	}
	return found
}

// scanCells checks each unit cell (u, v) of the sweep grid: the rotated
// point must map to a lattice point, lie outside every rect, and unrotate
// into region.
func scanCells(columns, rows []int64, rects []geom.Rect, region geom.Bounds) []geom.Point {
	var found []geom.Point
	for _, u := range columns {
		for _, v := range rows {
			r := geom.Point{X: u, Y: v}
			if !geom.SameParity(r) || covered(r, rects) {
				continue
			}
			if p := geom.Unrotate(r); region.Contains(p) {
				found = append(found, p)
			}
		}
	}
	return found
}

func covered(r geom.Point, rects []geom.Rect) bool {
	for _, rc := range rects {
		if rc.Contains(r) {
			return true
		}
	}
	return false
}

// gridEdges returns the sorted distinct u and v edge coordinates.
func gridEdges(rects []geom.Rect) (us, vs []int64) {
	us = make([]int64, 0, 2*len(rects))
	vs = make([]int64, 0, 2*len(rects))
	for _, rc := range rects {
		us = append(us, rc.Lower.X, rc.Upper.X)
		vs = append(vs, rc.Lower.Y, rc.Upper.Y)
	}
	slices.Sort(us)
	slices.Sort(vs)
	return slices.Compact(us), slices.Compact(vs)
}

// unitCells returns the lower edge of every gap of exactly one between
// consecutive edges.
func unitCells(edges []int64) []int64 {
	var cells []int64
	for i := 1; i < len(edges); i++ {
		if edges[i]-edges[i-1] == 1 {
			cells = append(cells, edges[i-1])
		}
	}
	return cells
}

// Gap is FindGap over a built sensor set.
func Gap(set *sensor.Set, region geom.Bounds) (geom.Point, error) {
	return FindGap(set.Sensors(), region)
}
