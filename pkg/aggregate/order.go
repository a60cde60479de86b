package aggregate

import (
	"sort"

	"silage/entities"
)

// SortTrenchControl returns a copy ordered by date, most recent first.
// Undated records are treated as the oldest.
func SortTrenchControl(tcs []entities.TrenchControl) []entities.TrenchControl {
	out := append([]entities.TrenchControl(nil), tcs...)
	sort.SliceStable(out, func(i, j int) bool {
		return newer(out[i].Date.Time.IsZero(), out[j].Date.Time.IsZero(), out[i].Date.After(out[j].Date.Time))
	})
	return out
}

// SortFoss returns a copy ordered by date_time, most recent first.
func SortFoss(samples []entities.FossSample) []entities.FossSample {
	out := append([]entities.FossSample(nil), samples...)
	sort.SliceStable(out, func(i, j int) bool {
		return newer(out[i].DateTime.IsZero(), out[j].DateTime.IsZero(), out[i].DateTime.After(out[j].DateTime))
	})
	return out
}

func SortSieve(samples []entities.SieveSample) []entities.SieveSample {
	out := append([]entities.SieveSample(nil), samples...)
	sort.SliceStable(out, func(i, j int) bool {
		return newer(out[i].DateTime.IsZero(), out[j].DateTime.IsZero(), out[i].DateTime.After(out[j].DateTime))
	})
	return out
}

func newer(aZero, bZero, aAfter bool) bool {
	switch {
	case aZero:
		return false
	case bZero:
		return true
	}
	return aAfter
}
