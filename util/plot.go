package util

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is a named sequence of values, one per episode
type Series struct {
	Name   string
	Values []float64
}

// PlotSeries saves a line plot of the series as an image, the format follows the extension of plotPath
func PlotSeries(plotPath, title, yLabel string, series ...Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = yLabel
	for i, s := range series {
		points := make(plotter.XYs, len(s.Values))
		for j, v := range s.Values {
			points[j] = plotter.XY{
				X: float64(j),
				Y: v,
			}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("plotting %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, plotPath); err != nil {
		return fmt.Errorf("saving %s: %w", plotPath, err)
	}
	return nil
}

// ChartSeries renders the series as an interactive html line chart
func ChartSeries(chartPath, title string, series ...Series) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	numEpisodes := 0
	for _, s := range series {
		if len(s.Values) > numEpisodes {
			numEpisodes = len(s.Values)
		}
	}
	episodes := make([]string, numEpisodes)
	for i := range episodes {
		episodes[i] = strconv.Itoa(i)
	}
	line.SetXAxis(episodes)

	for _, s := range series {
		items := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			items[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(chartPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", chartPath, err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("rendering %s: %w", chartPath, err)
	}
	return nil
}
