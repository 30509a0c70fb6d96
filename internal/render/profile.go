package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/banshee-data/beacon.report/internal/coverage"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const echartsAssetsPrefix = "https://go-echarts.github.io/go-echarts-assets/assets/"

// ProfileHTML writes a line chart of covered positions per row. The
// queried row is drawn as a separate single-point series.
func ProfileHTML(w io.Writer, stats []coverage.RowStat, row int64) error {
	if len(stats) == 0 {
		return fmt.Errorf("render: empty row profile")
	}

	labels := make([]string, len(stats))
	covered := make([]opts.LineData, len(stats))
	marked := make([]opts.LineData, len(stats))
	var rowCovered int64 = -1
	for i, s := range stats {
		labels[i] = strconv.FormatInt(s.Y, 10)
		covered[i] = opts.LineData{Value: s.Covered}
		marked[i] = opts.LineData{Value: "-"}
		if s.Y == row {
			marked[i] = opts.LineData{Value: s.Covered, Name: "query row"}
			rowCovered = s.Covered
		}
	}

	subtitle := fmt.Sprintf("rows %d..%d", stats[0].Y, stats[len(stats)-1].Y)
	if rowCovered >= 0 {
		subtitle += fmt.Sprintf(", y=%d covers %d", row, rowCovered)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Row coverage", Width: "1200px", Height: "600px", AssetsHost: echartsAssetsPrefix}),
		charts.WithTitleOpts(opts.Title{Title: "Row coverage profile", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "y", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "covered positions", NameLocation: "middle", NameGap: 40}),
	)
	line.SetXAxis(labels).
		AddSeries("covered", covered).
		AddSeries("query row", marked)

	return line.Render(w)
}
