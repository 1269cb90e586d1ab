package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Series is a named sequence of values for plotting.
type Series struct {
	Name   string
	Values []float64
}

const (
	defaultPlotHeight = 10
	minPlotWidth      = 10
	axisTop           = "max"
	axisMid           = "mid"
	axisBottom        = "min"
	axisSeparator     = " │ "
	colorReset        = "\x1b[0m"
)

// dash patterns cycle per series so overlapping lines stay apart without color.
var dashes = []struct {
	name   string
	period int
	on     int
}{
	{"solid", 1, 1},
	{"dashed", 6, 3},
	{"dotted", 4, 1},
}

var palette = []string{"\x1b[36m", "\x1b[35m", "\x1b[33m", "\x1b[32m"}

// PlotWidthFor returns the plot area width that fits totalWidth columns
// once the axis labels are drawn.
func PlotWidthFor(totalWidth int) int {
	axis := utf8.RuneCountInString(axisTop) + utf8.RuneCountInString(axisSeparator)
	return max(minPlotWidth, totalWidth-axis)
}

// PlotSeries draws series as braille line charts, each scaled to its own
// min and max. Color is used only when w is a terminal.
func PlotSeries(w io.Writer, title string, series []Series, width, height int) error {
	return PlotSeriesWithColor(w, title, series, width, height, false)
}

// PlotSeriesWithColor is PlotSeries with color forced on when forceColor
// is set. NO_COLOR always disables it.
func PlotSeriesWithColor(w io.Writer, title string, series []Series, width, height int, forceColor bool) error {
	series = nonEmpty(series)
	if len(series) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	width = max(width, minPlotWidth)

	layers := make([]brailleLayer, len(series))
	bounds := make([][2]float64, len(series))
	for i, s := range series {
		values := resampleSeries(s.Values, width)
		lo, hi := valueRange(values)
		bounds[i] = [2]float64{lo, hi}
		layers[i] = newBrailleLayer(width, height)
		layers[i].trace(values, lo, hi, i)
	}

	color := useColor(w, forceColor)
	lines := make([]string, 0, height+len(series)+3)
	if title != "" {
		lines = append(lines, title)
	}
	for i, s := range series {
		lines = append(lines, fmt.Sprintf("%s: min=%.2f max=%.2f", s.Name, bounds[i][0], bounds[i][1]))
	}
	for y := 0; y < height; y++ {
		var row strings.Builder
		fmt.Fprintf(&row, "%*s%s", utf8.RuneCountInString(axisTop), axisLabel(y, height), axisSeparator)
		for x := 0; x < width; x++ {
			mask, owner := mergeCell(layers, x, y)
			ch := rune(0x2800 + int(mask))
			if color && owner >= 0 {
				row.WriteString(palette[owner%len(palette)] + string(ch) + colorReset)
				continue
			}
			row.WriteRune(ch)
		}
		lines = append(lines, row.String())
	}
	lines = append(lines, legend(series, color), "")
	return writeLines(w, lines)
}

func nonEmpty(series []Series) []Series {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func useColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func axisLabel(y, height int) string {
	switch {
	case y == 0:
		return axisTop
	case y == height-1:
		return axisBottom
	case height > 2 && y == height/2:
		return axisMid
	}
	return ""
}

func legend(series []Series, color bool) string {
	parts := make([]string, 0, len(series))
	for i, s := range series {
		label := fmt.Sprintf("⠁ %s (%s)", s.Name, dashes[i%len(dashes)].name)
		if color {
			label = palette[i%len(palette)] + label + colorReset
		}
		parts = append(parts, label)
	}
	return "Legend: " + strings.Join(parts, "  ")
}

// resampleSeries stretches or shrinks values to exactly width points:
// bucket means when shrinking, linear interpolation when stretching.
func resampleSeries(values []float64, width int) []float64 {
	n := len(values)
	if n == 0 || width <= 0 {
		return nil
	}
	out := make([]float64, width)
	switch {
	case n == width:
		copy(out, values)
	case n > width:
		for i := range out {
			lo := i * n / width
			hi := max((i+1)*n/width, lo+1)
			var sum float64
			for _, v := range values[lo:hi] {
				sum += v
			}
			out[i] = sum / float64(hi-lo)
		}
	case n == 1 || width == 1:
		for i := range out {
			out[i] = values[0]
		}
	default:
		for i := range out {
			pos := float64(i) * float64(n-1) / float64(width-1)
			idx := min(int(pos), n-2)
			frac := pos - float64(idx)
			out[i] = values[idx]*(1-frac) + values[idx+1]*frac
		}
	}
	return out
}

// valueRange returns the min and max of values, widened by one on each
// side for flat series so they plot mid-height.
func valueRange(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return -1, 1
	}
	if hi-lo < 1e-9 {
		return lo - 1, hi + 1
	}
	return lo, hi
}

// brailleLayer holds one series as braille dot masks; each cell is 2x4 dots.
type brailleLayer [][]uint8

func newBrailleLayer(width, height int) brailleLayer {
	l := make(brailleLayer, height)
	for y := range l {
		l[y] = make([]uint8, width)
	}
	return l
}

func (l brailleLayer) trace(values []float64, lo, hi float64, idx int) {
	dash := dashes[idx%len(dashes)]
	rows := len(l) * 4
	plot := func(x, y int) {
		if dash.period > 1 && x%dash.period >= dash.on {
			return
		}
		l.set(x, y)
	}
	prevX, prevY := -1, -1
	for i, v := range values {
		x := i * 2
		y := int(math.Round((1 - (v-lo)/(hi-lo)) * float64(rows-1)))
		y = max(0, min(y, rows-1))
		if prevX < 0 {
			plot(x, y)
		} else {
			bresenham(prevX, prevY, x, y, plot)
		}
		prevX, prevY = x, y
	}
}

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (l brailleLayer) set(x, y int) {
	cy, cx := y/4, x/2
	if x < 0 || y < 0 || cy >= len(l) || cx >= len(l[cy]) {
		return
	}
	l[cy][cx] |= dotBits[x%2][y%4]
}

// mergeCell ORs the cell across layers and reports the first layer that
// drew into it, or -1.
func mergeCell(layers []brailleLayer, x, y int) (uint8, int) {
	var mask uint8
	owner := -1
	for i, l := range layers {
		if m := l[y][x]; m != 0 {
			if owner < 0 {
				owner = i
			}
			mask |= m
		}
	}
	return mask, owner
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
