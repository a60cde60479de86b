package state

import "silage/entities"

// Added returns a new collection with rec appended.
func Added[T any](items []T, rec T) []T {
	out := make([]T, 0, len(items)+1)
	return append(append(out, items...), rec)
}

// Replaced returns a copy with the record sharing rec's id swapped for rec.
// ok is false, and items is returned as is, when there is no such record.
func Replaced[T any](items []T, rec T, id func(T) uint) ([]T, bool) {
	for i := range items {
		if id(items[i]) == id(rec) {
			out := append([]T(nil), items...)
			out[i] = rec
			return out, true
		}
	}
	return items, false
}

// Removed returns a copy without the record with the given id.
func Removed[T any](items []T, recID uint, id func(T) uint) ([]T, bool) {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if id(it) != recID {
			out = append(out, it)
		}
	}
	if len(out) == len(items) {
		return items, false
	}
	return out, true
}

func trenchControlID(tc entities.TrenchControl) uint { return tc.ID }
func fossID(f entities.FossSample) uint              { return f.ID }
func sieveID(s entities.SieveSample) uint            { return s.ID }
