// Package chart renders output tables as a scatter plot of report count
// against advertising budget, as one self-contained HTML page with inline SVG.
package chart

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nmentz/FAERS-Correlation-Analysis/internal/core"
)

// Marker shapes.
const (
	MarkerCircle = "circle"
	MarkerX      = "x"
)

// Series is one output table with its plot style.
type Series struct {
	Table  core.OutputTable
	Color  string
	Marker string
	// LabelColor colors the drug name annotations; defaults to Color.
	LabelColor string
}

// Options controls the page layout.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
}

// DefaultOptions matches a 12x8 figure.
func DefaultOptions() Options {
	return Options{
		Title:  "Reports vs. Advertising Budget",
		XLabel: "Reports",
		YLabel: "Advertising Budget",
		Width:  1200,
		Height: 800,
	}
}

const (
	marginLeft   = 90
	marginRight  = 40
	marginTop    = 60
	marginBottom = 70
	tickCount    = 6
	labelOffset  = 6
	crossRadius  = 6
	legendWidth  = 180
	legendRowGap = 22
)

// point is one drug positioned in pixel space.
type point struct {
	X, Y   float64
	Label  string
	Anchor string // SVG text-anchor
	DX     float64
}

// layout is everything the components need, precomputed.
type layout struct {
	opts           Options
	plotX0, plotX1 float64
	plotY0, plotY1 float64
	xTicks, yTicks []tick
	series         []seriesLayout
}

type tick struct {
	Pos   float64
	Label string
}

type seriesLayout struct {
	Label      string
	Color      string
	LabelColor string
	Marker     string
	Points     []point
}

// buildLayout scales every series onto shared axes starting at zero.
// The first series is labelled to the right of its points, the others to the
// left, so brand and generic names with equal budgets do not overlap.
func buildLayout(series []Series, opts Options) layout {
	var maxReports, maxBudget float64
	for _, s := range series {
		for _, r := range s.Table.Rows {
			maxReports = max(maxReports, float64(r.Reports))
			maxBudget = max(maxBudget, r.Budget)
		}
	}

	xt := niceTicks(maxReports, tickCount)
	yt := niceTicks(maxBudget, tickCount)

	l := layout{
		opts:   opts,
		plotX0: marginLeft,
		plotX1: float64(opts.Width - marginRight),
		plotY0: float64(opts.Height - marginBottom),
		plotY1: marginTop,
	}
	xs := linearScale{dMin: 0, dMax: xt[len(xt)-1], pMin: l.plotX0, pMax: l.plotX1}
	ys := linearScale{dMin: 0, dMax: yt[len(yt)-1], pMin: l.plotY0, pMax: l.plotY1}

	for _, v := range xt {
		l.xTicks = append(l.xTicks, tick{Pos: xs.at(v), Label: formatTick(v)})
	}
	for _, v := range yt {
		l.yTicks = append(l.yTicks, tick{Pos: ys.at(v), Label: formatTick(v)})
	}

	for i, s := range series {
		sl := seriesLayout{
			Label:      s.Table.Label,
			Color:      s.Color,
			LabelColor: s.LabelColor,
			Marker:     s.Marker,
		}
		if sl.Color == "" {
			sl.Color = "black"
		}
		if sl.LabelColor == "" {
			sl.LabelColor = sl.Color
		}
		if sl.Marker != MarkerX {
			sl.Marker = MarkerCircle
		}
		anchor, dx := "start", float64(labelOffset)
		if i > 0 {
			anchor, dx = "end", -labelOffset
		}
		for _, r := range s.Table.Rows {
			sl.Points = append(sl.Points, point{
				X:      xs.at(float64(r.Reports)),
				Y:      ys.at(r.Budget),
				Label:  r.DrugName,
				Anchor: anchor,
				DX:     dx,
			})
		}
		l.series = append(l.series, sl)
	}
	return l
}

func (l layout) width() string { return strconv.Itoa(l.opts.Width) }
func (l layout) height() string { return strconv.Itoa(l.opts.Height) }

func (l layout) viewBox() string {
	return fmt.Sprintf("0 0 %d %d", l.opts.Width, l.opts.Height)
}

func (l layout) centerX() float64 { return (l.plotX0 + l.plotX1) / 2 }

// yLabelTransform rotates the y axis title to run bottom to top.
func (l layout) yLabelTransform() string {
	return fmt.Sprintf("translate(%d %s) rotate(-90)", marginLeft/3, px((l.plotY0+l.plotY1)/2))
}

// The legend sits in the top right corner of the plot area.
func (l layout) legendX() float64 { return l.plotX1 - legendWidth }
func (l layout) legendY() float64 { return l.plotY1 + 20 }

func (l layout) legendRow(i int) float64 {
	return l.legendY() + float64(i*legendRowGap)
}

func (l layout) legendHeight() string {
	return strconv.Itoa(legendRowGap*len(l.series) + 8)
}

// px formats a pixel coordinate with one decimal.
func px(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// crossPath draws an X of half-width r centred on (x, y).
func crossPath(x, y, r float64) string {
	return fmt.Sprintf("M%s %sL%s %sM%s %sL%s %s",
		px(x-r), px(y-r), px(x+r), px(y+r),
		px(x-r), px(y+r), px(x+r), px(y-r))
}

func formatTick(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

// Render writes the chart page for series to w.
func Render(ctx context.Context, w io.Writer, series []Series, opts Options) error {
	if opts.Width <= marginLeft+marginRight || opts.Height <= marginTop+marginBottom {
		return fmt.Errorf("chart size %dx%d is too small", opts.Width, opts.Height)
	}
	return page(buildLayout(series, opts)).Render(ctx, w)
}

// WriteFile renders the chart page to path.
func WriteFile(ctx context.Context, path string, series []Series, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart %s: %w", path, err)
	}
	if err := Render(ctx, f, series, opts); err != nil {
		f.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return f.Close()
}
