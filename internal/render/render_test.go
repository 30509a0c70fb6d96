package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/banshee-data/beacon.report/internal/coverage"
	"github.com/banshee-data/beacon.report/internal/fsutil"
	"github.com/banshee-data/beacon.report/internal/geom"
	"github.com/banshee-data/beacon.report/internal/sensor"
	"github.com/banshee-data/beacon.report/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canonicalScene(t *testing.T) Scene {
	t.Helper()
	readings, err := sensor.ParseReadings(strings.NewReader(testutil.CanonicalInput))
	require.NoError(t, err)
	set, err := sensor.NewSet(readings)
	require.NoError(t, err)

	gap := testutil.CanonicalGap
	row := testutil.CanonicalRow
	return Scene{
		Sensors: set.Sensors(),
		Beacons: set.Beacons(),
		Region:  geom.Square(testutil.CanonicalLimit),
		Gap:     &gap,
		Row:     &row,
	}
}

func TestGeometryPNG(t *testing.T) {
	t.Parallel()

	mfs := fsutil.NewMemoryFileSystem()
	require.NoError(t, GeometryPNG(mfs, "plots/field.png", canonicalScene(t)))

	data, ok := mfs.Contents("plots/field.png")
	require.True(t, ok)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestScenePlot_Axes(t *testing.T) {
	t.Parallel()

	p, err := canonicalScene(t).plot()
	require.NoError(t, err)

	// Sensor (2,0) radius 10 reaches x=-8; sensor (20,14) radius 8 reaches x=28.
	assert.Equal(t, -9.0, p.X.Min)
	assert.Equal(t, 29.0, p.X.Max)
	assert.Contains(t, p.Title.Text, "14 sensors")
}

func TestScenePlot_Empty(t *testing.T) {
	t.Parallel()

	_, err := Scene{}.plot()
	testutil.AssertErrorIs(t, err, ErrEmptyScene)

	err = GeometryPNG(fsutil.NewMemoryFileSystem(), "x.png", Scene{})
	testutil.AssertErrorIs(t, err, ErrEmptyScene)
}

func TestDiamond(t *testing.T) {
	t.Parallel()

	d := diamond(sensor.Sensor{Center: geom.Point{X: 8, Y: 7}, Radius: 9})
	require.Len(t, d, 5)
	assert.Equal(t, d[0], d[4], "outline must be closed")
	assert.Equal(t, 17.0, d[2].X)
	assert.Equal(t, 16.0, d[1].Y)
}

func TestProfileHTML(t *testing.T) {
	t.Parallel()

	stats := []coverage.RowStat{
		{Y: 9, Covered: 25},
		{Y: 10, Covered: 26},
		{Y: 11, Covered: 28},
	}

	var buf bytes.Buffer
	require.NoError(t, ProfileHTML(&buf, stats, 10))

	html := buf.String()
	assert.Contains(t, html, "Row coverage profile")
	assert.Contains(t, html, "y=10 covers 26")
	assert.Contains(t, html, "query row")
}

func TestProfileHTML_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Error(t, ProfileHTML(&buf, nil, 0))
}
