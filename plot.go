package atarplot

import (
	"fmt"
	"io"
	"math"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure dimensions follow the original 15x10 inch event display.
const (
	FigWidth  = 15 * vg.Inch
	FigHeight = 10 * vg.Inch
)

// Cell indices in the 2x4 event figure.
const (
	panelXZ = iota
	panelYZ
	panelZT
	panelEZ
	panelCalo
	panelColorBar
)

// EventFigure renders the fixed diagnostic panels for one event: x vs z,
// y vs z, z vs t, energy vs z, and the calorimeter (theta, phi) hit map
// with its colorbar. The calorimeter cells are left empty when the event
// has no usable calorimeter data (see Event.HasCaloData).
func EventFigure(ev *Event, numPlanes int) (*hplot.TiledPlot, error) {
	tp := hplot.NewTiledPlot(draw.Tiles{
		Cols: 4, Rows: 2,
		PadX: 2 * vg.Millimeter, PadY: 2 * vg.Millimeter,
	})

	zs := make([]float64, len(ev.ZData))
	for i, z := range ev.ZData {
		zs[i] = float64(z)
	}

	if err := coordPanel(tp.Plots[panelXZ], ev, zs, ev.XData, numPlanes); err != nil {
		return nil, err
	}
	p := tp.Plots[panelXZ]
	p.Title.Text = "x vs. z"
	p.X.Label.Text = "z (plane number)"
	p.Y.Label.Text = "x (pixels)"

	if err := coordPanel(tp.Plots[panelYZ], ev, zs, ev.YData, numPlanes); err != nil {
		return nil, err
	}
	p = tp.Plots[panelYZ]
	p.Title.Text = "y vs. z"
	p.X.Label.Text = "z (plane number)"
	p.Y.Label.Text = "y (pixels)"

	if err := timePanel(tp.Plots[panelZT], ev, zs, numPlanes); err != nil {
		return nil, err
	}

	if err := energyPanel(tp.Plots[panelEZ], ev, zs, numPlanes); err != nil {
		return nil, err
	}

	if ev.HasCaloData() {
		if err := caloPanel(tp.Plots[panelCalo], tp.Plots[panelColorBar], ev); err != nil {
			return nil, err
		}
	} else {
		tp.Plots[panelCalo] = nil
		tp.Plots[panelColorBar] = nil
	}
	tp.Plots[6] = nil
	tp.Plots[7] = nil

	return tp, nil
}

// coordPanel draws one transverse coordinate against depth, one series per
// particle species. Hits on planes of the other orientation carry no valid
// coordinate and are skipped.
func coordPanel(p *hplot.Plot, ev *Event, zs []float64, coords []Coord, numPlanes int) error {
	var xs, ys []float64
	var pdgs []int32
	for i, c := range coords {
		if !c.Valid {
			continue
		}
		xs = append(xs, zs[i])
		ys = append(ys, c.Pixel)
		pdgs = append(pdgs, ev.PixelPDGs[i])
	}
	if err := addLegendSeries(p, xs, ys, pdgs); err != nil {
		return err
	}
	p.X.Min, p.X.Max = 0, float64(numPlanes)
	p.Y.Min, p.Y.Max = 0, float64(DefaultStripsPerPlane)
	return nil
}

func timePanel(p *hplot.Plot, ev *Event, zs []float64, numPlanes int) error {
	if err := addLegendSeries(p, ev.TData, zs, ev.PixelPDGs); err != nil {
		return err
	}
	p.Title.Text = "z vs. t"
	p.X.Label.Text = "t (ns)"
	p.Y.Label.Text = "z (plane number)"
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5, Prec: 2}
	p.Y.Min, p.Y.Max = 0, float64(numPlanes)
	return nil
}

func addLegendSeries(p *hplot.Plot, xs, ys []float64, pdgs []int32) error {
	series, err := buildLegend(xs, ys, pdgs)
	if err != nil {
		return err
	}
	for _, s := range series {
		sc, err := plotter.NewScatter(s.pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = s.color
		sc.GlyphStyle.Radius = 1.5
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(s.label, sc)
	}
	return nil
}

// energyPanel overlays per-hit deposits with the per-plane totals.
func energyPanel(p *hplot.Plot, ev *Event, zs []float64, numPlanes int) error {
	hitPts := make(plotter.XYs, len(zs))
	for i := range zs {
		hitPts[i] = plotter.XY{X: zs[i], Y: ev.EData[i]}
	}
	hits, err := plotter.NewScatter(hitPts)
	if err != nil {
		return err
	}
	hits.GlyphStyle.Color = particleStyles[-11].Color // match the positron blue
	hits.GlyphStyle.Radius = 1.5
	hits.GlyphStyle.Shape = draw.CircleGlyph{}

	planePts := make(plotter.XYs, len(ev.EPerPlane))
	for i, e := range ev.EPerPlane {
		planePts[i] = plotter.XY{X: float64(i), Y: e}
	}
	planes, err := plotter.NewScatter(planePts)
	if err != nil {
		return err
	}
	planes.GlyphStyle.Color = otherPalette[0] // black
	planes.GlyphStyle.Radius = 1.5
	planes.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(hits, planes)
	p.Legend.Add("e_dep", hits)
	p.Legend.Add("e_dep per plane", planes)
	p.Title.Text = "ATAR Energy Deposition Per Plane vs. z"
	p.X.Label.Text = "z (plane number)"
	p.Y.Label.Text = "Energy (MeV / plane)"
	p.X.Min, p.X.Max = 0, float64(numPlanes)
	return nil
}

// caloPanel draws the calorimeter hit map in (theta, phi), colored by
// deposited energy, with the colormap scale in the neighboring cell.
// Crystals without a geometry entry are skipped; their indices still count
// toward the record alignment elsewhere.
func caloPanel(p, bar *hplot.Plot, ev *Event) error {
	var pts plotter.XYs
	var edeps []float64
	for i, c := range ev.RThetaPhis {
		if c == nil {
			continue
		}
		pts = append(pts, plotter.XY{X: c.Theta, Y: c.Phi})
		edeps = append(edeps, ev.CaloEdep[i])
	}

	maxEdep := 0.0
	for _, e := range edeps {
		maxEdep = math.Max(maxEdep, e)
	}
	if maxEdep <= 0 {
		maxEdep = 1
	}
	colorMap := moreland.ExtendedBlackBody()
	colorMap.SetMin(0)
	colorMap.SetMax(maxEdep)

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, err := colorMap.At(edeps[i])
		if err != nil {
			c = otherPalette[0]
		}
		return draw.GlyphStyle{Color: c, Radius: 2, Shape: draw.CircleGlyph{}}
	}
	p.Add(sc)
	p.Title.Text = "Energy Deposited in Calorimeter SiPMs"
	p.X.Label.Text = "Theta (rad)"
	p.Y.Label.Text = "Phi (rad)"
	p.X.Min, p.X.Max = 0, 3.2
	p.Y.Min, p.Y.Max = -3.2, 3.2

	colorBar := &plotter.ColorBar{ColorMap: colorMap}
	colorBar.Vertical = true
	bar.Add(colorBar)
	bar.HideX()
	bar.Y.Label.Text = "Energy Deposited (MeV)"
	bar.Y.Padding = 0
	return nil
}

// SaveEventFigure renders the event figure and writes it to output.
func SaveEventFigure(ev *Event, numPlanes int, output string) error {
	fig, err := EventFigure(ev, numPlanes)
	if err != nil {
		return err
	}
	return saveFigure(fig, output)
}

func saveFigure(fig *hplot.TiledPlot, output string) error {
	return hplot.Save(fig, FigWidth, FigHeight, output)
}

// WriteEventText dumps the reconstructed series in textual form, lengths
// first. Invalid coordinates print as NaN.
func WriteEventText(w io.Writer, ev *Event) {
	fmt.Fprintf(w, "Length of pixel_pdgs: %d\n", len(ev.PixelPDGs))
	fmt.Fprintf(w, "Length of x_data: %d\n", len(ev.XData))
	fmt.Fprintf(w, "Length of y_data: %d\n", len(ev.YData))
	fmt.Fprintf(w, "Length of z_data: %d\n", len(ev.ZData))
	fmt.Fprintf(w, "Length of t_data: %d\n", len(ev.TData))
	fmt.Fprintf(w, "Length of E_data: %d\n", len(ev.EData))
	fmt.Fprintf(w, "Length of E_per_plane: %d\n\n", len(ev.EPerPlane))

	fmt.Fprintf(w, "pixel_pdgs: %v\n\n", ev.PixelPDGs)
	fmt.Fprintf(w, "x_data: %v\n\n", coordValues(ev.XData))
	fmt.Fprintf(w, "y_data: %v\n\n", coordValues(ev.YData))
	fmt.Fprintf(w, "z_data: %v\n\n", ev.ZData)
	fmt.Fprintf(w, "t_data: %v\n\n", ev.TData)
	fmt.Fprintf(w, "E_data: %v\n", ev.EData)
}

func coordValues(coords []Coord) []float64 {
	vals := make([]float64, len(coords))
	for i, c := range coords {
		if c.Valid {
			vals[i] = c.Pixel
		} else {
			vals[i] = math.NaN()
		}
	}
	return vals
}
