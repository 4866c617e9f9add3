package atarplot

import (
	"errors"
	"image/color"
	"strconv"

	"gonum.org/v1/plot/plotter"
)

// ErrPaletteExhausted reports an event with more distinct unidentified
// particle codes than the secondary palette can distinguish. The policy is
// to fail rather than silently reuse a color.
var ErrPaletteExhausted = errors.New("atarplot: secondary particle palette exhausted")

// ParticleStyle is the display style of one particle species.
type ParticleStyle struct {
	Label string
	Color color.RGBA
}

// particleStyles fixes the display of the five named species by PDG code.
var particleStyles = map[int32]ParticleStyle{
	211: {Label: "Pion", Color: color.RGBA{R: 255, A: 255}},
	-11: {Label: "Positron", Color: color.RGBA{B: 255, A: 255}},
	11:  {Label: "Electron", Color: color.RGBA{G: 128, A: 255}},
	-13: {Label: "Antimuon", Color: color.RGBA{R: 255, G: 255, A: 255}},
	13:  {Label: "Muon", Color: color.RGBA{R: 255, B: 255, A: 255}},
}

// knownOrder keeps legend entries in a stable, conventional order.
var knownOrder = []int32{211, -11, 11, -13, 13}

// otherPalette colors species outside the fixed legend, labeled by their
// raw PDG code, in first-appearance order.
var otherPalette = []color.RGBA{
	{A: 255},                         // black
	{R: 128, G: 128, B: 128, A: 255}, // gray
	{G: 255, B: 255, A: 255},         // cyan
	{R: 75, B: 130, A: 255},          // indigo
	{G: 128, B: 128, A: 255},         // teal
	{G: 255, A: 255},                 // lime
}

type legendSeries struct {
	label string
	color color.RGBA
	pts   plotter.XYs
}

// buildLegend splits parallel (x, y, pdg) points into one series per
// particle species: the five named species first, then any other codes in
// first-seen order on the secondary palette. Returns ErrPaletteExhausted
// when the secondary palette runs out.
func buildLegend(xs, ys []float64, pdgs []int32) ([]legendSeries, error) {
	known := make(map[int32]plotter.XYs)
	other := make(map[int32]plotter.XYs)
	var otherIDs []int32

	for i, pdg := range pdgs {
		pt := plotter.XY{X: xs[i], Y: ys[i]}
		if _, ok := particleStyles[pdg]; ok {
			known[pdg] = append(known[pdg], pt)
			continue
		}
		if _, seen := other[pdg]; !seen {
			otherIDs = append(otherIDs, pdg)
		}
		other[pdg] = append(other[pdg], pt)
	}

	if len(otherIDs) > len(otherPalette) {
		return nil, ErrPaletteExhausted
	}

	var series []legendSeries
	for _, pdg := range knownOrder {
		if pts := known[pdg]; len(pts) > 0 {
			style := particleStyles[pdg]
			series = append(series, legendSeries{label: style.Label, color: style.Color, pts: pts})
		}
	}
	for i, pdg := range otherIDs {
		series = append(series, legendSeries{
			label: strconv.Itoa(int(pdg)),
			color: otherPalette[i],
			pts:   other[pdg],
		})
	}
	return series, nil
}
