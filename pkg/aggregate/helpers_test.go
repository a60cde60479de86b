package aggregate_test

import "silage/entities"

func f64(v float64) *float64 { return &v }

func u(v uint) *uint { return &v }

func fossDM(id, tcID uint, dm float64) entities.FossSample {
	return entities.FossSample{ID: id, TrenchControlID: tcID, DryMatter: f64(dm)}
}
