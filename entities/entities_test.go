package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestDate_JSON(t *testing.T) {
	var tc TrenchControl
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-03-01T15:04:05Z"}`), &tc))
	assert.Equal(t, NewDate(2024, time.March, 1), tc.Date)

	b, err := json.Marshal(tc)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"date":"2024-03-01"`)

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &tc))
	assert.True(t, tc.Date.IsZero())
	b, err = json.Marshal(tc)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"date":null`)

	assert.Error(t, json.Unmarshal([]byte(`{"date":"01.03.2024"}`), &tc))
}

func TestDate_Scan(t *testing.T) {
	cases := []struct {
		src  any
		want Date
	}{
		{nil, Date{}},
		{time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), NewDate(2024, time.March, 1)},
		{"2024-03-01 00:00:00+00:00", NewDate(2024, time.March, 1)},
		{[]byte("2024-03-01"), NewDate(2024, time.March, 1)},
	}
	for _, c := range cases {
		var d Date
		require.NoError(t, d.Scan(c.src))
		assert.Equal(t, c.want, d)
	}

	var d Date
	assert.Error(t, d.Scan(42))

	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestLimits_Check(t *testing.T) {
	ok := FossLimits{DryMatterLowerLimit: f64(30), DryMatterUpperLimit: f64(30), AshUpperLimit: f64(5)}
	assert.NoError(t, ok.Check())

	bad := FossLimits{ProteinLowerLimit: f64(9), ProteinUpperLimit: f64(8)}
	err := bad.Check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "protein_lower_limit")

	assert.Error(t, SieveLimits{PalletLowerLimit: f64(20), PalletUpperLimit: f64(10)}.Check())
	assert.NoError(t, SieveLimits{HighLowerLimit: f64(20)}.Check())
}

func TestValueAccessors(t *testing.T) {
	s := FossSample{}
	s.Set(FieldStarch, f64(28))
	assert.Equal(t, 28.0, *s.Value(FieldStarch))
	assert.Nil(t, s.Value(FieldADF))

	lo, hi := SieveLimits{LowLowerLimit: f64(1)}.Bounds(FractionLow)
	assert.Equal(t, 1.0, *lo)
	assert.Nil(t, hi)

	lab := LabEntry{RawFat: f64(3.1)}
	assert.Equal(t, 3.1, *lab.Value(FieldRawFat))
}
