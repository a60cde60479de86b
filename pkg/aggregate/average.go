package aggregate

import (
	"math"

	"silage/entities"
)

// Average is the arithmetic mean of the values value returns for records,
// skipping nil and NaN. ok is false when no value remains; a true zero
// reading is never confused with missing data.
func Average[T any](records []T, value func(T) *float64) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, r := range records {
		v := value(r)
		if v == nil || math.IsNaN(*v) {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// AverageTemperature is the mean of the recorded edge and middle temperatures.
func AverageTemperature(tc entities.TrenchControl) (float64, bool) {
	return Average(tc.Temperatures(), func(v *float64) *float64 { return v })
}

// FossProfile maps a composition field to a value; nil means no data.
type FossProfile map[entities.FossField]*float64

// SieveProfile maps a sieve fraction to a percentage; nil means no data.
type SieveProfile map[entities.SieveFraction]*float64

// FossAverages averages every Foss field across samples.
func FossAverages(samples []entities.FossSample) FossProfile {
	out := make(FossProfile, len(entities.FossFields))
	for _, f := range entities.FossFields {
		out[f] = optional(Average(samples, func(s entities.FossSample) *float64 { return s.Value(f) }))
	}
	return out
}

func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
