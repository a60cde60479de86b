package aggregate

import "silage/entities"

// OutOfRange reports whether value lies strictly below lower or strictly
// above upper. A nil bound leaves that side open.
func OutOfRange(lower, upper *float64, value float64) bool {
	if lower != nil && value < *lower {
		return true
	}
	if upper != nil && value > *upper {
		return true
	}
	return false
}

// Norm is a per-crop set of limits.
type Norm[F ~string] interface {
	Crop() uint
	Bounds(F) (lower, upper *float64)
}

// NormIndex looks norms up by crop id. When several norms exist for a crop
// the first one given wins.
type NormIndex[F ~string, N Norm[F]] struct {
	byCrop map[uint]N
}

type (
	FossNormIndex  = NormIndex[entities.FossField, entities.CropFossNorm]
	SieveNormIndex = NormIndex[entities.SieveFraction, entities.CropSieveNorm]
)

func newNormIndex[F ~string, N Norm[F]](norms []N) *NormIndex[F, N] {
	idx := &NormIndex[F, N]{byCrop: make(map[uint]N, len(norms))}
	for _, n := range norms {
		if _, dup := idx.byCrop[n.Crop()]; !dup {
			idx.byCrop[n.Crop()] = n
		}
	}
	return idx
}

func NewFossNormIndex(norms []entities.CropFossNorm) *FossNormIndex {
	return newNormIndex[entities.FossField](norms)
}

func NewSieveNormIndex(norms []entities.CropSieveNorm) *SieveNormIndex {
	return newNormIndex[entities.SieveFraction](norms)
}

func (x *NormIndex[F, N]) Lookup(cropID uint) (N, bool) {
	n, ok := x.byCrop[cropID]
	return n, ok
}

// IsOutOfNorm is false without a crop, a value or a norm for the crop.
// Sieve callers pass percentages, not grams.
func (x *NormIndex[F, N]) IsOutOfNorm(cropID *uint, field F, value *float64) bool {
	if x == nil || cropID == nil || value == nil {
		return false
	}
	n, ok := x.byCrop[*cropID]
	if !ok {
		return false
	}
	lower, upper := n.Bounds(field)
	return OutOfRange(lower, upper, *value)
}
