package figures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"bistroplot/ingest"
	"bistroplot/scenario"
)

const axisTicks = 8

// EnsureDir creates the figures directory; a pre-existing one is fine.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0775)
}

func seriesXYs(s ingest.Series) plotter.XYs {
	xys := make(plotter.XYs, s.Len())
	for i := range xys {
		xys[i].X = float64(s.Xs[i])
		xys[i].Y = s.Ys[i]
	}
	return xys
}

// panelTitle stamps the scenario into a panel title so the combined
// image identifies which run it shows.
func panelTitle(base string, sc scenario.Scenario) string {
	return base + " - " + strings.ToUpper(string(sc))
}

// linePanel builds one panel. An empty series still gets axes and a
// title, suffixed "(No data)".
func linePanel(s ingest.Series, title, xlabel, ylabel string) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	if s.Empty() {
		p.Title.Text = title + " (No data)"
	} else {
		p.Title.Text = title
		if err := plotutil.AddLinePoints(p, seriesXYs(s)); err != nil {
			return nil, err
		}
	}
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = hplot.Ticks{N: axisTicks}
	p.Y.Tick.Marker = hplot.Ticks{N: axisTicks}
	p.Add(plotter.NewGrid())
	return p, nil
}

// Combined writes the 2x2 panel figure for one scenario and returns the
// written path. All four panels are always present.
func Combined(b scenario.Bundle, sc scenario.Scenario, dir string) (string, error) {
	panels := [2][2]struct {
		s      ingest.Series
		title  string
		xlabel string
		ylabel string
	}{
		{
			{b.GbnClient, "GBN - Client RTT", "order id", "RTT (ms)"},
			{b.GbnServer, "GBN - Server Cook Time", "served id", "Cook time (ms)"},
		},
		{
			{b.SrClient, "SR - Client RTT", "order id", "RTT (ms)"},
			{b.SrServer, "SR - Server Cook Time", "served id", "Cook time (ms)"},
		},
	}

	plots := make([][]*plot.Plot, 2)
	for r := 0; r < 2; r++ {
		plots[r] = make([]*plot.Plot, 2)
		for c := 0; c < 2; c++ {
			p, err := linePanel(panels[r][c].s, panelTitle(panels[r][c].title, sc), panels[r][c].xlabel, panels[r][c].ylabel)
			if err != nil {
				return "", err
			}
			plots[r][c] = p
		}
	}

	img := vgimg.New(12*vg.Inch, 8*vg.Inch)
	dc := draw.New(img)
	t := draw.Tiles{
		Rows:      2,
		Cols:      2,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}
	canvases := plot.Align(plots, t, dc)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	name := filepath.Join(dir, fmt.Sprintf("rtt_combined_%s.png", sc))
	w, err := os.Create(name)
	if err != nil {
		return "", err
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return "", err
	}
	return name, nil
}

// Box writes the client RTT boxplot for whichever of the two client
// series carry data. When both are empty nothing is written and the
// second return is false.
func Box(b scenario.Bundle, sc scenario.Scenario, dir string) (string, bool, error) {
	combos := []struct {
		label string
		s     ingest.Series
	}{
		{"GBN client", b.GbnClient},
		{"SR client", b.SrClient},
	}

	p, err := plot.New()
	if err != nil {
		return "", false, err
	}
	p.Title.Text = "Client RTT distribution - " + strings.ToUpper(string(sc))
	p.Y.Label.Text = "RTT (ms)"
	p.Y.Tick.Marker = hplot.Ticks{N: axisTicks}

	w := vg.Points(20)
	var labels []string
	for _, cb := range combos {
		if cb.s.Empty() {
			continue
		}
		vals := make(plotter.Values, len(cb.s.Ys))
		copy(vals, cb.s.Ys)
		box, err := plotter.NewBoxPlot(w, float64(len(labels)), vals)
		if err != nil {
			return "", false, err
		}
		// no outlier glyphs
		box.GlyphStyle.Radius = 0
		p.Add(box)
		labels = append(labels, cb.label)
	}
	if len(labels) == 0 {
		return "", false, nil
	}
	p.NominalX(labels...)

	name := filepath.Join(dir, fmt.Sprintf("rtt_box_%s.png", sc))
	if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
		return "", false, err
	}
	return name, true, nil
}
