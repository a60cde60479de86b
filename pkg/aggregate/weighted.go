package aggregate

import (
	"math"
	"sort"

	"silage/entities"
)

// DeviationThreshold is the absolute deviation from the lab reference, in
// percent, above which a weighted value is highlighted.
const DeviationThreshold = 10.0

// HarvestComposition is the mass-weighted composition of one harvest.
type HarvestComposition struct {
	HarvestID         uint                           `json:"harvest_id"`
	WeightedAverages  map[entities.FossField]float64 `json:"weighted_averages"`
	TotalTrenchWeight float64                        `json:"total_trench_weight"`
	// Undetermined lists fields that had no weighted contribution. Their
	// WeightedAverages entry is 0.
	Undetermined []entities.FossField `json:"undetermined,omitempty"`
}

// WeightedHarvest combines the trench control events of one harvest into a
// single composition. Each event contributes the simple average of its Foss
// samples weighted by its mass; events without samples or without a non-zero
// weight are skipped. TotalTrenchWeight sums every recorded weight.
func WeightedHarvest(harvestID uint, tcs []entities.TrenchControl, foss []entities.FossSample) HarvestComposition {
	return weighted(harvestID, TrenchControlForHarvestSet(tcs, []uint{harvestID}), indexFoss(foss))
}

// WeightedByHarvest computes WeightedHarvest for every harvest referenced by
// tcs, ordered by harvest id.
func WeightedByHarvest(tcs []entities.TrenchControl, foss []entities.FossSample) []HarvestComposition {
	groups := map[uint][]entities.TrenchControl{}
	for _, tc := range tcs {
		if tc.HarvestID == nil {
			continue
		}
		groups[*tc.HarvestID] = append(groups[*tc.HarvestID], tc)
	}
	ids := make([]uint, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	byTC := indexFoss(foss)
	out := make([]HarvestComposition, 0, len(ids))
	for _, id := range ids {
		out = append(out, weighted(id, groups[id], byTC))
	}
	return out
}

func indexFoss(foss []entities.FossSample) map[uint][]entities.FossSample {
	m := make(map[uint][]entities.FossSample)
	for _, s := range foss {
		m[s.TrenchControlID] = append(m[s.TrenchControlID], s)
	}
	return m
}

func weighted(harvestID uint, group []entities.TrenchControl, byTC map[uint][]entities.FossSample) HarvestComposition {
	sum := map[entities.FossField]float64{}
	mass := map[entities.FossField]float64{}
	var total float64

	for _, tc := range group {
		if tc.Weight != nil {
			total += *tc.Weight
		}
		samples := byTC[tc.ID]
		if len(samples) == 0 || tc.Weight == nil || *tc.Weight == 0 {
			continue
		}
		w := *tc.Weight
		for _, f := range entities.CompositionFields {
			avg, ok := Average(samples, func(s entities.FossSample) *float64 { return s.Value(f) })
			if !ok {
				continue
			}
			sum[f] += avg * w
			mass[f] += w
		}
	}

	hc := HarvestComposition{
		HarvestID:         harvestID,
		WeightedAverages:  make(map[entities.FossField]float64, len(entities.CompositionFields)),
		TotalTrenchWeight: total,
	}
	for _, f := range entities.CompositionFields {
		if mass[f] > 0 {
			hc.WeightedAverages[f] = sum[f] / mass[f]
			continue
		}
		hc.WeightedAverages[f] = 0
		hc.Undetermined = append(hc.Undetermined, f)
	}
	return hc
}

// Deviation is (weighted - lab) / lab * 100. ok is false when lab is missing
// or zero.
func Deviation(weighted float64, lab *float64) (float64, bool) {
	if lab == nil || *lab == 0 {
		return 0, false
	}
	return (weighted - *lab) / *lab * 100, true
}

func DeviationHighlighted(deviation float64) bool {
	return math.Abs(deviation) > DeviationThreshold
}

// LabComparisonRow compares one weighted field against the lab reference.
type LabComparisonRow struct {
	Field        entities.FossField `json:"field"`
	Weighted     float64            `json:"weighted"`
	Undetermined bool               `json:"undetermined,omitempty"`
	Lab          *float64           `json:"lab"`
	Deviation    *float64           `json:"deviation"`
	Highlighted  bool               `json:"highlighted"`
}

// CompareWithLab yields one row per composition field. lab may be nil.
func CompareWithLab(hc HarvestComposition, lab *entities.LabEntry) []LabComparisonRow {
	undetermined := make(map[entities.FossField]bool, len(hc.Undetermined))
	for _, f := range hc.Undetermined {
		undetermined[f] = true
	}
	rows := make([]LabComparisonRow, 0, len(entities.CompositionFields))
	for _, f := range entities.CompositionFields {
		row := LabComparisonRow{Field: f, Weighted: hc.WeightedAverages[f], Undetermined: undetermined[f]}
		if lab != nil {
			row.Lab = lab.Value(f)
		}
		if d, ok := Deviation(row.Weighted, row.Lab); ok {
			row.Deviation = &d
			row.Highlighted = DeviationHighlighted(d)
		}
		rows = append(rows, row)
	}
	return rows
}

// LabForHarvest returns the first lab entry recorded for the harvest.
func LabForHarvest(entries []entities.LabEntry, harvestID uint) *entities.LabEntry {
	for i := range entries {
		if entries[i].HarvestID == harvestID {
			return &entries[i]
		}
	}
	return nil
}

// HarvestReport is the weighted composition of a harvest against its lab
// reference.
type HarvestReport struct {
	Harvest     entities.Harvest   `json:"harvest"`
	Composition HarvestComposition `json:"composition"`
	Lab         *entities.LabEntry `json:"lab"`
	Comparison  []LabComparisonRow `json:"comparison"`
}

// HarvestReports builds a report for every harvest reachable from sel, in the
// order of HarvestsInSelection.
func HarvestReports(harvests []entities.Harvest, trenches []entities.Trench, tcs []entities.TrenchControl, foss []entities.FossSample, lab []entities.LabEntry, sel Selection) []HarvestReport {
	byTC := indexFoss(foss)
	in := HarvestsInSelection(harvests, trenches, sel)
	out := make([]HarvestReport, 0, len(in))
	for _, h := range in {
		hc := weighted(h.ID, TrenchControlForHarvestSet(tcs, []uint{h.ID}), byTC)
		l := LabForHarvest(lab, h.ID)
		out = append(out, HarvestReport{Harvest: h, Composition: hc, Lab: l, Comparison: CompareWithLab(hc, l)})
	}
	return out
}
