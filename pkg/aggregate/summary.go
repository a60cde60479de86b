package aggregate

import "silage/entities"

// TrenchControlSummary is the per-event row shown above the sample details.
type TrenchControlSummary struct {
	TrenchControl  entities.TrenchControl          `json:"trench_control"`
	AverageTemp    *float64                        `json:"average_temp"`
	FossCount      int                             `json:"foss_count"`
	SieveCount     int                             `json:"sieve_count"`
	Foss           FossProfile                     `json:"foss"`
	FossOutOfNorm  map[entities.FossField]bool     `json:"foss_out_of_norm"`
	Sieve          SieveProfile                    `json:"sieve"`
	SieveOutOfNorm map[entities.SieveFraction]bool `json:"sieve_out_of_norm"`
}

// SummarizeTrenchControl builds one summary per event, in the order given.
// Averages are checked against the norms of the event's crop.
func SummarizeTrenchControl(tcs []entities.TrenchControl, foss []entities.FossSample, sieve []entities.SieveSample, fossNorms *FossNormIndex, sieveNorms *SieveNormIndex) []TrenchControlSummary {
	fossByTC := indexFoss(foss)
	sieveByTC := make(map[uint][]entities.SieveSample)
	for _, s := range sieve {
		sieveByTC[s.TrenchControlID] = append(sieveByTC[s.TrenchControlID], s)
	}

	out := make([]TrenchControlSummary, 0, len(tcs))
	for _, tc := range tcs {
		fs, ss := fossByTC[tc.ID], sieveByTC[tc.ID]
		row := TrenchControlSummary{
			TrenchControl:  tc,
			AverageTemp:    optional(AverageTemperature(tc)),
			FossCount:      len(fs),
			SieveCount:     len(ss),
			Foss:           FossAverages(fs),
			FossOutOfNorm:  map[entities.FossField]bool{},
			Sieve:          SieveAverages(ss),
			SieveOutOfNorm: map[entities.SieveFraction]bool{},
		}
		for _, f := range entities.CompositionFields {
			row.FossOutOfNorm[f] = fossNorms.IsOutOfNorm(tc.CropID, f, row.Foss[f])
		}
		for _, f := range entities.SieveFractions {
			row.SieveOutOfNorm[f] = sieveNorms.IsOutOfNorm(tc.CropID, f, row.Sieve[f])
		}
		out = append(out, row)
	}
	return out
}

// FlagFossSample checks a single reading against the crop's norms.
func FlagFossSample(s entities.FossSample, cropID *uint, norms *FossNormIndex) map[entities.FossField]bool {
	out := make(map[entities.FossField]bool, len(entities.CompositionFields))
	for _, f := range entities.CompositionFields {
		out[f] = norms.IsOutOfNorm(cropID, f, s.Value(f))
	}
	return out
}

// SieveSampleView is a sieve reading with its percentages and norm flags.
type SieveSampleView struct {
	Sample      entities.SieveSample               `json:"sample"`
	Percentages map[entities.SieveFraction]float64 `json:"percentages"`
	OutOfNorm   map[entities.SieveFraction]bool    `json:"out_of_norm"`
}

// FlagSieveSample checks the sample's percentages, not its masses.
func FlagSieveSample(s entities.SieveSample, cropID *uint, norms *SieveNormIndex) SieveSampleView {
	v := SieveSampleView{
		Sample:      s,
		Percentages: SievePercentages(s),
		OutOfNorm:   make(map[entities.SieveFraction]bool, len(entities.SieveFractions)),
	}
	for _, f := range entities.SieveFractions {
		p := v.Percentages[f]
		v.OutOfNorm[f] = norms.IsOutOfNorm(cropID, f, &p)
	}
	return v
}
