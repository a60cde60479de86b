package aggregate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"silage/entities"
	"silage/pkg/aggregate"
)

type rec struct{ x *float64 }

func byX(r rec) *float64 { return r.x }

func TestAverage_EmptyIsUndefined(t *testing.T) {
	_, ok := aggregate.Average([]rec{}, byX)
	assert.False(t, ok)

	_, ok = aggregate.Average([]rec{{nil}, {nil}}, byX)
	assert.False(t, ok)

	nan := math.NaN()
	_, ok = aggregate.Average([]rec{{&nan}}, byX)
	assert.False(t, ok)
}

func TestAverage_ExcludesNulls(t *testing.T) {
	avg, ok := aggregate.Average([]rec{{f64(10)}, {nil}, {f64(20)}}, byX)
	assert.True(t, ok)
	assert.Equal(t, 15.0, avg)
}

func TestAverage_ZeroIsData(t *testing.T) {
	avg, ok := aggregate.Average([]rec{{f64(0)}}, byX)
	assert.True(t, ok)
	assert.Equal(t, 0.0, avg)
}

func TestAverageTemperature(t *testing.T) {
	avg, ok := aggregate.AverageTemperature(entities.TrenchControl{LeftEdgeTemp: f64(20), RightEdgeTemp: f64(30)})
	assert.True(t, ok)
	assert.Equal(t, 25.0, avg)

	_, ok = aggregate.AverageTemperature(entities.TrenchControl{})
	assert.False(t, ok)
}

func TestFossAverages(t *testing.T) {
	samples := []entities.FossSample{
		{DryMatter: f64(30), Protein: f64(8)},
		{DryMatter: f64(34)},
	}
	p := aggregate.FossAverages(samples)
	if assert.NotNil(t, p[entities.FieldDryMatter]) {
		assert.Equal(t, 32.0, *p[entities.FieldDryMatter])
	}
	if assert.NotNil(t, p[entities.FieldProtein]) {
		assert.Equal(t, 8.0, *p[entities.FieldProtein])
	}
	assert.Nil(t, p[entities.FieldStarch])
	assert.Contains(t, p, entities.FieldMW)
}
