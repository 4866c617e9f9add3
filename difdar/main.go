package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/pioneer-exp/atarplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <root-input-file>

Selects decay-in-flight and decay-at-rest event groups, reconstructs them,
and compares their maximum plane energies and decay-burst gap times.

options:
`,
	)
	flag.PrintDefaults()
}

var (
	perGroup = flag.Int("n", 100, "events to select per group")
	nBins    = flag.Int("nbins", 20, "number of histogram bins")
	geomFile = flag.String("geom", "", "calorimeter crystal table CSV (id,r,theta,phi)")
	prefix   = flag.String("prefix", "out", "output file prefix")
)

func main() {
	defer profile.Start().Stop()

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	src, err := atarplot.OpenRootSource(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	var lookup atarplot.CrystalLookup
	if *geomFile != "" {
		table, err := atarplot.LoadCrystalTable(*geomFile)
		if err != nil {
			log.Fatal(err)
		}
		lookup = table
	}

	difMaxEs, difGaps := collect(src, lookup, atarplot.DecaysInFlight)
	darMaxEs, darGaps := collect(src, lookup, atarplot.DecaysAtRest)

	err = atarplot.CompareMaxEnergies(difMaxEs, darMaxEs, *nBins, *prefix+"_max_edep.png")
	if err != nil {
		log.Fatal(err)
	}
	err = atarplot.CompareGapTimes(difGaps, darGaps, *nBins, *prefix+"_gap_times.png")
	if err != nil {
		log.Fatal(err)
	}
}

func collect(src atarplot.DataSource, lookup atarplot.CrystalLookup, filter atarplot.DecayFilter) (maxEs, gapTimes []float64) {
	indices, err := atarplot.SelectEvents(src, filter, *perGroup)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s: selected %d events", filter, len(indices))

	rec := atarplot.NewReconstructor()
	for _, i := range indices {
		hits, err := src.ATARHits(i)
		if err != nil {
			log.Fatal(err)
		}
		calo, err := src.CaloHits(i)
		if err != nil {
			log.Fatal(err)
		}
		ev, err := rec.Reconstruct(hits, calo, lookup)
		if err != nil {
			log.Fatalf("event %d: %v", i, err)
		}
		maxEs = append(maxEs, ev.MaxE)
		gapTimes = append(gapTimes, ev.GapTimes...)
	}
	return maxEs, gapTimes
}
