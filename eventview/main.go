package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pioneer-exp/atarplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <root-input-file>

options:
`,
	)
	flag.PrintDefaults()
}

var (
	events    atarplot.IntArrayFlags
	filterStr = flag.String("filter", "all", "decay selection used with -n: dif, dar, or all")
	nEvents   = flag.Int("n", 1, "number of events to select when no -event is given")
	geomFile  = flag.String("geom", "", "calorimeter crystal table CSV (id,r,theta,phi)")
	showText  = flag.Bool("text", false, "print the reconstructed series in text form")
	nPlanes   = flag.Int("nplanes", atarplot.DefaultNumPlanes, "number of ATAR planes")
	prefix    = flag.String("prefix", "event", "output file prefix")
)

func main() {
	flag.Var(&events, "event", "event index to visualize (may be repeated)")
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

	filter, err := atarplot.ParseDecayFilter(*filterStr)
	if err != nil {
		log.Fatal(err)
	}

	indices := events.Array
	if len(indices) == 0 {
		indices, err = atarplot.SelectEvents(src, filter, *nEvents)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Indices of selected events: %v", indices)
	}

	var maxEs, gapTimes []float64
	for _, i := range indices {
		mes, gts, err := atarplot.VisualizeEvent(src, lookup, i, atarplot.VisualizeOptions{
			Filter:    filter,
			ShowText:  *showText,
			NumPlanes: *nPlanes,
			Output:    fmt.Sprintf("%s_%d.png", *prefix, i),
		})
		if err != nil {
			log.Fatalf("event %d: %v", i, err)
		}
		maxEs = append(maxEs, mes...)
		gapTimes = append(gapTimes, gts...)
	}

	log.Printf("%d events, max E per event: %v", len(indices), maxEs)
	log.Printf("%d gap times: %v", len(gapTimes), gapTimes)
}
