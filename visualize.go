package atarplot

import (
	"fmt"
	"io"
	"os"
)

// VisualizeOptions controls VisualizeEvent.
type VisualizeOptions struct {
	// Filter annotates the figure with the decay classification the event
	// was selected under. It does not filter hits; event selection lives
	// in SelectEvents.
	Filter DecayFilter
	// ShowText dumps the reconstructed series to TextTo (os.Stdout when
	// nil) before rendering.
	ShowText bool
	TextTo   io.Writer
	// NumPlanes defaults to DefaultNumPlanes.
	NumPlanes int
	// Output is the figure file to write. Empty skips rendering.
	Output string
}

// VisualizeEvent reconstructs the event at the given row index, renders
// the diagnostic figure, and returns the per-event summaries (maximum
// plane energies and gap times) for aggregation across events.
func VisualizeEvent(src DataSource, lookup CrystalLookup, event int64, opts VisualizeOptions) (maxEs, gapTimes []float64, err error) {
	if opts.NumPlanes == 0 {
		opts.NumPlanes = DefaultNumPlanes
	}

	hits, err := src.ATARHits(event)
	if err != nil {
		return nil, nil, err
	}
	calo, err := src.CaloHits(event)
	if err != nil {
		return nil, nil, err
	}

	rec := Reconstructor{Dec: DefaultDecoder, NumPlanes: opts.NumPlanes}
	ev, err := rec.Reconstruct(hits, calo, lookup)
	if err != nil {
		return nil, nil, fmt.Errorf("event %d: %w", event, err)
	}

	if opts.ShowText {
		w := opts.TextTo
		if w == nil {
			w = os.Stdout
		}
		WriteEventText(w, ev)
	}

	if opts.Output != "" {
		fig, err := EventFigure(ev, opts.NumPlanes)
		if err != nil {
			return nil, nil, fmt.Errorf("event %d: %w", event, err)
		}
		if opts.Filter != AllDecays {
			fig.Plots[panelXZ].Title.Text += " [" + opts.Filter.String() + "]"
		}
		if err := saveFigure(fig, opts.Output); err != nil {
			return nil, nil, fmt.Errorf("event %d: %w", event, err)
		}
	}

	maxEs = []float64{ev.MaxE}
	gapTimes = append(gapTimes, ev.GapTimes...)
	return maxEs, gapTimes, nil
}
