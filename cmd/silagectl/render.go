package main

import (
	"fmt"
	"io"
	"strings"

	"silage/entities"
	"silage/pkg/state"
)

// cell formats an optional number; out-of-norm values get a trailing '*'.
func cell(v *float64, flagged bool) string {
	if v == nil {
		return "-"
	}
	s := fmt.Sprintf("%.2f", *v)
	if flagged {
		s += "*"
	}
	return s
}

func header(w io.Writer, cols ...string) {
	for _, c := range cols {
		fmt.Fprintf(w, "%-12s", c)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("─", 12*len(cols)))
}

func row(w io.Writer, cells ...string) {
	for _, c := range cells {
		fmt.Fprintf(w, "%-12s", c)
	}
	fmt.Fprintln(w)
}

func renderSummary(w io.Writer, s *state.State) error {
	rows := s.Summary()
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no trench control records for the selection")
		return err
	}

	cols := []string{"date", "weight", "temp", "foss", "sieve"}
	for _, f := range entities.CompositionFields {
		cols = append(cols, string(f))
	}
	header(w, cols...)
	for _, r := range rows {
		date := "-"
		if !r.TrenchControl.Date.IsZero() {
			date = r.TrenchControl.Date.String()
		}
		cells := []string{
			date,
			cell(r.TrenchControl.Weight, false),
			cell(r.AverageTemp, false),
			fmt.Sprint(r.FossCount),
			fmt.Sprint(r.SieveCount),
		}
		for _, f := range entities.CompositionFields {
			cells = append(cells, cell(r.Foss[f], r.FossOutOfNorm[f]))
		}
		row(w, cells...)
	}
	return nil
}

func renderHarvests(w io.Writer, s *state.State) error {
	reports := s.HarvestReports()
	if len(reports) == 0 {
		_, err := fmt.Fprintln(w, "no harvests for the selection")
		return err
	}
	for _, rep := range reports {
		fmt.Fprintf(w, "Harvest #%d  season %d  trench %d  total weight %.0f kg\n",
			rep.Harvest.Harvesting, rep.Harvest.Season, rep.Harvest.TrenchID, rep.Composition.TotalTrenchWeight)
		header(w, "field", "weighted", "lab", "deviation")
		for _, c := range rep.Comparison {
			weighted := fmt.Sprintf("%.2f", c.Weighted)
			if c.Undetermined {
				weighted = "-"
			}
			dev := "-"
			if c.Deviation != nil && !c.Undetermined {
				dev = fmt.Sprintf("%+.1f%%", *c.Deviation)
				if c.Highlighted {
					dev += " !"
				}
			}
			row(w, string(c.Field), weighted, cell(c.Lab, false), dev)
		}
		fmt.Fprintln(w)
	}
	return nil
}
