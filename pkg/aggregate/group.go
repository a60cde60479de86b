// Package aggregate derives views from in-memory record collections: grouping
// by foreign key, simple and mass-weighted averages, sieve percentage
// normalisation and crop norm checks. Every function is pure; inputs are never
// modified.
package aggregate

import (
	"sort"

	"silage/entities"
)

func TrenchesForFarm(trenches []entities.Trench, farmID uint) []entities.Trench {
	out := make([]entities.Trench, 0, len(trenches))
	for _, t := range trenches {
		if t.FarmID == farmID {
			out = append(out, t)
		}
	}
	return out
}

// HarvestsForTrench returns the trench's harvests ordered by cut number.
func HarvestsForTrench(harvests []entities.Harvest, trenchID uint) []entities.Harvest {
	out := make([]entities.Harvest, 0, len(harvests))
	for _, h := range harvests {
		if h.TrenchID == trenchID {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Harvesting < out[j].Harvesting })
	return out
}

func TrenchControlForHarvestSet(tcs []entities.TrenchControl, harvestIDs []uint) []entities.TrenchControl {
	set := make(map[uint]struct{}, len(harvestIDs))
	for _, id := range harvestIDs {
		set[id] = struct{}{}
	}
	out := make([]entities.TrenchControl, 0, len(tcs))
	for _, tc := range tcs {
		if tc.HarvestID == nil {
			continue
		}
		if _, ok := set[*tc.HarvestID]; ok {
			out = append(out, tc)
		}
	}
	return out
}

func FossForTrenchControl(samples []entities.FossSample, tcID uint) []entities.FossSample {
	out := make([]entities.FossSample, 0)
	for _, s := range samples {
		if s.TrenchControlID == tcID {
			out = append(out, s)
		}
	}
	return out
}

func SieveForTrenchControl(samples []entities.SieveSample, tcID uint) []entities.SieveSample {
	out := make([]entities.SieveSample, 0)
	for _, s := range samples {
		if s.TrenchControlID == tcID {
			out = append(out, s)
		}
	}
	return out
}

// Selection is the navigation context. Nil members do not narrow the view.
type Selection struct {
	FarmID   *uint `json:"farm_id,omitempty"`
	TrenchID *uint `json:"trench_id,omitempty"`
	Season   *int  `json:"season,omitempty"`
}

// FilterTrenchControl narrows trench control records through
// TrenchControl -> Harvest -> Trench -> Farm. A record whose harvest or trench
// cannot be resolved is dropped.
func FilterTrenchControl(tcs []entities.TrenchControl, harvests []entities.Harvest, trenches []entities.Trench, sel Selection) []entities.TrenchControl {
	hByID := make(map[uint]entities.Harvest, len(harvests))
	for _, h := range harvests {
		hByID[h.ID] = h
	}
	tByID := make(map[uint]entities.Trench, len(trenches))
	for _, t := range trenches {
		tByID[t.ID] = t
	}

	out := make([]entities.TrenchControl, 0, len(tcs))
	for _, tc := range tcs {
		if tc.HarvestID == nil {
			continue
		}
		h, ok := hByID[*tc.HarvestID]
		if !ok {
			continue
		}
		t, ok := tByID[h.TrenchID]
		if !ok {
			continue
		}
		if sel.Season != nil && h.Season != *sel.Season {
			continue
		}
		if sel.FarmID != nil && t.FarmID != *sel.FarmID {
			continue
		}
		if sel.TrenchID != nil && t.ID != *sel.TrenchID {
			continue
		}
		out = append(out, tc)
	}
	return out
}

// HarvestsInSelection returns the harvests reachable from the selection, by
// season then cut number.
func HarvestsInSelection(harvests []entities.Harvest, trenches []entities.Trench, sel Selection) []entities.Harvest {
	tByID := make(map[uint]entities.Trench, len(trenches))
	for _, t := range trenches {
		tByID[t.ID] = t
	}
	out := make([]entities.Harvest, 0, len(harvests))
	for _, h := range harvests {
		t, ok := tByID[h.TrenchID]
		if !ok {
			continue
		}
		if sel.Season != nil && h.Season != *sel.Season {
			continue
		}
		if sel.FarmID != nil && t.FarmID != *sel.FarmID {
			continue
		}
		if sel.TrenchID != nil && t.ID != *sel.TrenchID {
			continue
		}
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Season != out[j].Season {
			return out[i].Season < out[j].Season
		}
		if out[i].TrenchID != out[j].TrenchID {
			return out[i].TrenchID < out[j].TrenchID
		}
		return out[i].Harvesting < out[j].Harvesting
	})
	return out
}
