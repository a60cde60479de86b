package aggregate

import "silage/entities"

// SievePercentages converts a sample's fraction masses into shares of the
// sample total. Missing masses count as zero; a zero total yields 0% for every
// fraction rather than no data.
func SievePercentages(s entities.SieveSample) map[entities.SieveFraction]float64 {
	var total float64
	for _, f := range entities.SieveFractions {
		if v := s.Value(f); v != nil {
			total += *v
		}
	}
	out := make(map[entities.SieveFraction]float64, len(entities.SieveFractions))
	for _, f := range entities.SieveFractions {
		if total <= 0 {
			out[f] = 0
			continue
		}
		var v float64
		if p := s.Value(f); p != nil {
			v = *p
		}
		out[f] = v / total * 100
	}
	return out
}

// SieveAverages is the unweighted mean of per-sample percentages. Fractions
// are nil when there are no samples.
func SieveAverages(samples []entities.SieveSample) SieveProfile {
	perSample := make([]map[entities.SieveFraction]float64, 0, len(samples))
	for _, s := range samples {
		perSample = append(perSample, SievePercentages(s))
	}
	out := make(SieveProfile, len(entities.SieveFractions))
	for _, f := range entities.SieveFractions {
		out[f] = optional(Average(perSample, func(p map[entities.SieveFraction]float64) *float64 {
			v := p[f]
			return &v
		}))
	}
	return out
}
