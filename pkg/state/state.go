// Package state keeps the in-memory collections and navigation selection of
// a records session. Every transition replaces whole collections; derived
// views are recomputed from the current collections on each call.
package state

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"silage/entities"
	"silage/pkg/aggregate"
)

// Selection is the current farm, trench and season.
type Selection struct {
	FarmID   *uint
	TrenchID *uint
	Season   int
}

type State struct {
	Farms         []entities.Farm
	Trenches      []entities.Trench
	Harvests      []entities.Harvest
	TrenchControl []entities.TrenchControl
	Foss          []entities.FossSample
	Sieve         []entities.SieveSample
	Crops         []entities.Crop
	Weather       []entities.WeatherCondition
	FossNorms     []entities.CropFossNorm
	SieveNorms    []entities.CropSieveNorm
	Lab           []entities.LabEntry

	Selection Selection
}

// Load fetches every collection concurrently. The selection defaults to the
// first farm and that farm's first trench. No partial state is returned on
// error.
func Load(ctx context.Context, src Source, season int) (*State, error) {
	s := &State{Selection: Selection{Season: season}}

	g, ctx := errgroup.WithContext(ctx)
	fetch := func(name string, fn func() error) {
		g.Go(func() error {
			if err := fn(); err != nil {
				return fmt.Errorf("load %s: %w", name, err)
			}
			return nil
		})
	}
	fetch("farms", func() (err error) { s.Farms, err = src.Farms(ctx); return })
	fetch("trenches", func() (err error) { s.Trenches, err = src.Trenches(ctx); return })
	fetch("harvests", func() (err error) { s.Harvests, err = src.Harvests(ctx); return })
	fetch("trench control", func() (err error) { s.TrenchControl, err = src.TrenchControl(ctx, season); return })
	fetch("foss", func() (err error) { s.Foss, err = src.Foss(ctx); return })
	fetch("sieve", func() (err error) { s.Sieve, err = src.Sieve(ctx); return })
	fetch("crops", func() (err error) { s.Crops, err = src.Crops(ctx); return })
	fetch("weather", func() (err error) { s.Weather, err = src.Weather(ctx); return })
	fetch("foss norms", func() (err error) { s.FossNorms, err = src.FossNorms(ctx); return })
	fetch("sieve norms", func() (err error) { s.SieveNorms, err = src.SieveNorms(ctx); return })
	fetch("lab entries", func() (err error) { s.Lab, err = src.LabEntries(ctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.TrenchControl = aggregate.SortTrenchControl(s.TrenchControl)
	s.Foss = aggregate.SortFoss(s.Foss)
	s.Sieve = aggregate.SortSieve(s.Sieve)
	if len(s.Farms) > 0 {
		s.SelectFarm(s.Farms[0].ID)
	}
	return s, nil
}

// SelectFarm also moves the trench selection to the farm's first trench, or
// clears it when the farm has none.
func (s *State) SelectFarm(farmID uint) {
	s.Selection.FarmID = &farmID
	s.Selection.TrenchID = nil
	if ts := aggregate.TrenchesForFarm(s.Trenches, farmID); len(ts) > 0 {
		id := ts[0].ID
		s.Selection.TrenchID = &id
	}
}

func (s *State) SelectTrench(trenchID uint) {
	s.Selection.TrenchID = &trenchID
}

// SelectSeason reloads the season's trench control records. On error the
// state keeps its previous season and records.
func (s *State) SelectSeason(ctx context.Context, src Source, season int) error {
	tcs, err := src.TrenchControl(ctx, season)
	if err != nil {
		return fmt.Errorf("load trench control: %w", err)
	}
	s.TrenchControl = aggregate.SortTrenchControl(tcs)
	s.Selection.Season = season
	return nil
}

func (s *State) AddTrenchControl(tc entities.TrenchControl) {
	s.TrenchControl = aggregate.SortTrenchControl(Added(s.TrenchControl, tc))
}

// ReplaceTrenchControl reports false when no record has tc's id.
func (s *State) ReplaceTrenchControl(tc entities.TrenchControl) bool {
	next, ok := Replaced(s.TrenchControl, tc, trenchControlID)
	if ok {
		s.TrenchControl = aggregate.SortTrenchControl(next)
	}
	return ok
}

func (s *State) RemoveTrenchControl(id uint) bool {
	next, ok := Removed(s.TrenchControl, id, trenchControlID)
	s.TrenchControl = next
	return ok
}

func (s *State) AddFoss(f entities.FossSample) {
	s.Foss = aggregate.SortFoss(Added(s.Foss, f))
}

func (s *State) ReplaceFoss(f entities.FossSample) bool {
	next, ok := Replaced(s.Foss, f, fossID)
	if ok {
		s.Foss = aggregate.SortFoss(next)
	}
	return ok
}

func (s *State) RemoveFoss(id uint) bool {
	next, ok := Removed(s.Foss, id, fossID)
	s.Foss = next
	return ok
}

func (s *State) AddSieve(v entities.SieveSample) {
	s.Sieve = aggregate.SortSieve(Added(s.Sieve, v))
}

func (s *State) ReplaceSieve(v entities.SieveSample) bool {
	next, ok := Replaced(s.Sieve, v, sieveID)
	if ok {
		s.Sieve = aggregate.SortSieve(next)
	}
	return ok
}

func (s *State) RemoveSieve(id uint) bool {
	next, ok := Removed(s.Sieve, id, sieveID)
	s.Sieve = next
	return ok
}

func (s *State) aggregateSelection() aggregate.Selection {
	season := s.Selection.Season
	return aggregate.Selection{FarmID: s.Selection.FarmID, TrenchID: s.Selection.TrenchID, Season: &season}
}

// VisibleTrenchControl is the selected trench's records for the season,
// newest first.
func (s *State) VisibleTrenchControl() []entities.TrenchControl {
	return aggregate.SortTrenchControl(aggregate.FilterTrenchControl(s.TrenchControl, s.Harvests, s.Trenches, s.aggregateSelection()))
}

func (s *State) Summary() []aggregate.TrenchControlSummary {
	return aggregate.SummarizeTrenchControl(s.VisibleTrenchControl(), s.Foss, s.Sieve,
		aggregate.NewFossNormIndex(s.FossNorms), aggregate.NewSieveNormIndex(s.SieveNorms))
}

func (s *State) HarvestReports() []aggregate.HarvestReport {
	return aggregate.HarvestReports(s.Harvests, s.Trenches, s.TrenchControl, s.Foss, s.Lab, s.aggregateSelection())
}
