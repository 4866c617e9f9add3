package atarplot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// CompareMaxEnergies prints mean/median/stddev of the per-event maximum
// plane energies for the DIF and DAR groups and writes an overlaid
// histogram. DARs tend to a higher median deposit; means can sit closer
// together because of large DIF outliers.
func CompareMaxEnergies(difMaxEs, darMaxEs []float64, numBins int, output string) error {
	return compareGroups(os.Stdout, comparison{
		prefix:  "max_Es",
		title:   "Max Energy by Group for Decays in Flight and Decays at Rest",
		xLabel:  "Max Energy by Group (MeV)",
		colorA:  color.NRGBA{B: 255, A: 128},
		colorB:  color.NRGBA{R: 255, G: 165, A: 128},
		groupA:  difMaxEs,
		groupB:  darMaxEs,
		numBins: numBins,
		output:  output,
	})
}

// CompareGapTimes does the same for the decay-burst gap times.
func CompareGapTimes(difGaps, darGaps []float64, numBins int, output string) error {
	return compareGroups(os.Stdout, comparison{
		prefix:  "gap_times",
		title:   "Gap Times for Decays in Flight and Decays at Rest",
		xLabel:  "Time (ns)",
		colorA:  color.NRGBA{G: 128, A: 128},
		colorB:  color.NRGBA{R: 139, G: 69, B: 19, A: 128},
		groupA:  difGaps,
		groupB:  darGaps,
		numBins: numBins,
		output:  output,
	})
}

type comparison struct {
	prefix         string
	title          string
	xLabel         string
	colorA, colorB color.NRGBA
	groupA, groupB []float64
	numBins        int
	output         string
}

func compareGroups(w io.Writer, c comparison) error {
	if len(c.groupA) == 0 || len(c.groupB) == 0 {
		return fmt.Errorf("%s: empty comparison group (DIF %d, DAR %d entries)",
			c.prefix, len(c.groupA), len(c.groupB))
	}

	for _, g := range []struct {
		name string
		data []float64
	}{{"DIF", c.groupA}, {"DAR", c.groupB}} {
		mean, median, stddev := groupStats(g.data)
		fmt.Fprintf(w, "\n%s_%s_mean: %v\n", c.prefix, g.name, mean)
		fmt.Fprintf(w, "%s_%s_median: %v\n", c.prefix, g.name, median)
		fmt.Fprintf(w, "%s_%s_std: %v\n", c.prefix, g.name, stddev)
	}

	// Both histograms share the bin edges derived from the first group.
	lo, hi := binRange(c.groupA)
	histA := hbook.NewH1D(c.numBins, lo, hi)
	histB := hbook.NewH1D(c.numBins, lo, hi)
	for _, v := range c.groupA {
		histA.Fill(v, 1)
	}
	for _, v := range c.groupB {
		histB.Fill(v, 1)
	}

	p := plot.New()
	p.Title.Text = c.title
	p.X.Label.Text = c.xLabel
	p.Y.Label.Text = "Count"
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}

	hA := hplot.NewH1D(histA)
	hA.FillColor = c.colorA
	hA.LineStyle.Color = c.colorA
	hA.Infos.Style = hplot.HInfoNone

	hB := hplot.NewH1D(histB)
	hB.FillColor = c.colorB
	hB.LineStyle.Color = c.colorB
	hB.Infos.Style = hplot.HInfoNone

	p.Add(hA, hB)
	p.Legend.Add("DIF", hA)
	p.Legend.Add("DAR", hB)
	p.Legend.Top = true

	return p.Save(10*vg.Inch, 3*vg.Inch, c.output)
}

// groupStats mirrors the numpy aggregates of the original comparison:
// population (not sample) standard deviation, empirical median.
func groupStats(xs []float64) (mean, median, stddev float64) {
	mean = stat.Mean(xs, nil)
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	stddev = stat.PopStdDev(xs, nil)
	return mean, median, stddev
}

func binRange(xs []float64) (lo, hi float64) {
	lo, hi = floats.Min(xs), floats.Max(xs)
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
