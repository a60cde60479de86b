package state_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silage/entities"
	"silage/pkg/state"
)

func f64(v float64) *float64 { return &v }
func u(v uint) *uint         { return &v }

// fakeSource serves fixed collections. tcBySeason keys trench control by
// season; failOn names a collection whose fetch fails.
type fakeSource struct {
	farms      []entities.Farm
	trenches   []entities.Trench
	harvests   []entities.Harvest
	tcBySeason map[int][]entities.TrenchControl
	foss       []entities.FossSample
	sieve      []entities.SieveSample
	fossNorms  []entities.CropFossNorm
	lab        []entities.LabEntry
	failOn     string
}

var errDown = errors.New("connection refused")

func (f *fakeSource) fail(name string) error {
	if f.failOn == name {
		return errDown
	}
	return nil
}

func (f *fakeSource) Farms(context.Context) ([]entities.Farm, error) {
	return f.farms, f.fail("farms")
}

func (f *fakeSource) Trenches(context.Context) ([]entities.Trench, error) {
	return f.trenches, f.fail("trenches")
}

func (f *fakeSource) Harvests(context.Context) ([]entities.Harvest, error) {
	return f.harvests, f.fail("harvests")
}

func (f *fakeSource) TrenchControl(_ context.Context, season int) ([]entities.TrenchControl, error) {
	return f.tcBySeason[season], f.fail("trench_control")
}

func (f *fakeSource) Foss(context.Context) ([]entities.FossSample, error) {
	return f.foss, f.fail("foss")
}

func (f *fakeSource) Sieve(context.Context) ([]entities.SieveSample, error) {
	return f.sieve, f.fail("sieve")
}

func (f *fakeSource) Crops(context.Context) ([]entities.Crop, error) {
	return []entities.Crop{{ID: 1, Name: "Maize", Active: true}}, f.fail("crops")
}

func (f *fakeSource) Weather(context.Context) ([]entities.WeatherCondition, error) {
	return nil, f.fail("weather")
}

func (f *fakeSource) FossNorms(context.Context) ([]entities.CropFossNorm, error) {
	return f.fossNorms, f.fail("foss_norms")
}

func (f *fakeSource) SieveNorms(context.Context) ([]entities.CropSieveNorm, error) {
	return nil, f.fail("sieve_norms")
}

func (f *fakeSource) LabEntries(context.Context) ([]entities.LabEntry, error) {
	return f.lab, f.fail("lab")
}

// scenario: farm 1 with trenches 1 and 2, farm 2 with trench 3. Harvest 3 of
// trench 1 has events of 500 kg (DM 32) and 1500 kg (DM 35); lab DM is 34.
func scenario() *fakeSource {
	return &fakeSource{
		farms:    []entities.Farm{{ID: 1, Name: "North"}, {ID: 2, Name: "South"}},
		trenches: []entities.Trench{{ID: 1, FarmID: 1, Name: "T1"}, {ID: 2, FarmID: 1, Name: "T2"}, {ID: 3, FarmID: 2, Name: "T3"}},
		harvests: []entities.Harvest{{ID: 3, TrenchID: 1, Season: 2024, Harvesting: 1}, {ID: 4, TrenchID: 3, Season: 2024, Harvesting: 1}},
		tcBySeason: map[int][]entities.TrenchControl{
			2024: {
				{ID: 10, HarvestID: u(3), CropID: u(1), Date: entities.NewDate(2024, 5, 1), Weight: f64(500)},
				{ID: 11, HarvestID: u(3), CropID: u(1), Date: entities.NewDate(2024, 5, 3), Weight: f64(1500)},
				{ID: 12, HarvestID: u(4), Date: entities.NewDate(2024, 5, 2)},
			},
			2023: {
				{ID: 1, HarvestID: u(3), Date: entities.NewDate(2023, 6, 1)},
			},
		},
		foss: []entities.FossSample{
			{ID: 1, TrenchControlID: 10, DryMatter: f64(32)},
			{ID: 2, TrenchControlID: 11, DryMatter: f64(35)},
		},
		fossNorms: []entities.CropFossNorm{{ID: 1, CropID: 1, FossLimits: entities.FossLimits{DryMatterLowerLimit: f64(33)}}},
		lab:       []entities.LabEntry{{ID: 1, HarvestID: 3, DryMatter: f64(34)}},
	}
}

func tcIDs(tcs []entities.TrenchControl) []uint {
	out := make([]uint, 0, len(tcs))
	for _, tc := range tcs {
		out = append(out, tc.ID)
	}
	return out
}

func TestLoad_DefaultsSelectionToFirstFarmAndTrench(t *testing.T) {
	s, err := state.Load(context.Background(), scenario(), 2024)
	require.NoError(t, err)

	assert.Equal(t, uint(1), *s.Selection.FarmID)
	assert.Equal(t, uint(1), *s.Selection.TrenchID)
	assert.Equal(t, 2024, s.Selection.Season)
	assert.Equal(t, []uint{11, 12, 10}, tcIDs(s.TrenchControl))
	assert.Equal(t, []uint{11, 10}, tcIDs(s.VisibleTrenchControl()))
}

func TestLoad_NoFarmsLeavesSelectionEmpty(t *testing.T) {
	s, err := state.Load(context.Background(), &fakeSource{}, 2024)
	require.NoError(t, err)
	assert.Nil(t, s.Selection.FarmID)
	assert.Nil(t, s.Selection.TrenchID)
	assert.Empty(t, s.VisibleTrenchControl())
}

func TestLoad_FailureReturnsNoState(t *testing.T) {
	src := scenario()
	src.failOn = "foss"
	s, err := state.Load(context.Background(), src, 2024)
	require.ErrorIs(t, err, errDown)
	assert.Nil(t, s)
}

func TestSelectFarm_MovesTrenchToFarmsFirst(t *testing.T) {
	s, err := state.Load(context.Background(), scenario(), 2024)
	require.NoError(t, err)

	s.SelectFarm(2)
	assert.Equal(t, uint(3), *s.Selection.TrenchID)
	assert.Equal(t, []uint{12}, tcIDs(s.VisibleTrenchControl()))

	s.SelectFarm(9)
	assert.Nil(t, s.Selection.TrenchID)

	s.SelectFarm(1)
	s.SelectTrench(2)
	assert.Empty(t, s.VisibleTrenchControl())
}

func TestSelectSeason_ReloadsAndKeepsStateOnError(t *testing.T) {
	ctx := context.Background()
	src := scenario()
	s, err := state.Load(ctx, src, 2024)
	require.NoError(t, err)

	require.NoError(t, s.SelectSeason(ctx, src, 2023))
	assert.Equal(t, 2023, s.Selection.Season)
	assert.Equal(t, []uint{1}, tcIDs(s.TrenchControl))

	src.failOn = "trench_control"
	require.Error(t, s.SelectSeason(ctx, src, 2024))
	assert.Equal(t, 2023, s.Selection.Season)
	assert.Equal(t, []uint{1}, tcIDs(s.TrenchControl))
}

func TestTrenchControlTransitions_KeepNewestFirst(t *testing.T) {
	s, err := state.Load(context.Background(), scenario(), 2024)
	require.NoError(t, err)

	s.AddTrenchControl(entities.TrenchControl{ID: 13, HarvestID: u(3)})
	s.AddTrenchControl(entities.TrenchControl{ID: 14, HarvestID: u(3), Date: entities.NewDate(2024, 3, 1)})
	assert.Equal(t, []uint{11, 12, 10, 14, 13}, tcIDs(s.TrenchControl))

	assert.True(t, s.ReplaceTrenchControl(entities.TrenchControl{ID: 10, HarvestID: u(3), Date: entities.NewDate(2024, 7, 1), Weight: f64(500)}))
	assert.Equal(t, []uint{10, 11, 12, 14, 13}, tcIDs(s.TrenchControl))
	assert.False(t, s.ReplaceTrenchControl(entities.TrenchControl{ID: 99}))

	assert.True(t, s.RemoveTrenchControl(12))
	assert.False(t, s.RemoveTrenchControl(12))
	assert.Equal(t, []uint{10, 11, 14, 13}, tcIDs(s.TrenchControl))
}

func TestSampleTransitions(t *testing.T) {
	s, err := state.Load(context.Background(), scenario(), 2024)
	require.NoError(t, err)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.AddFoss(entities.FossSample{ID: 3, TrenchControlID: 10, DateTime: now, DryMatter: f64(31)})
	assert.Equal(t, uint(3), s.Foss[0].ID)
	assert.True(t, s.ReplaceFoss(entities.FossSample{ID: 3, TrenchControlID: 10, DateTime: now, DryMatter: f64(40)}))
	assert.Equal(t, 40.0, *s.Foss[0].DryMatter)
	assert.True(t, s.RemoveFoss(3))
	assert.Len(t, s.Foss, 2)

	s.AddSieve(entities.SieveSample{ID: 1, TrenchControlID: 10, High: f64(10)})
	assert.True(t, s.ReplaceSieve(entities.SieveSample{ID: 1, TrenchControlID: 10, High: f64(20)}))
	assert.Equal(t, 20.0, *s.Sieve[0].High)
	assert.True(t, s.RemoveSieve(1))
	assert.Empty(t, s.Sieve)
}

func TestDerivedViews(t *testing.T) {
	s, err := state.Load(context.Background(), scenario(), 2024)
	require.NoError(t, err)

	rows := s.Summary()
	require.Len(t, rows, 2)
	assert.Equal(t, uint(11), rows[0].TrenchControl.ID)
	assert.False(t, rows[0].FossOutOfNorm[entities.FieldDryMatter])
	assert.True(t, rows[1].FossOutOfNorm[entities.FieldDryMatter])

	reports := s.HarvestReports()
	require.Len(t, reports, 1)
	hc := reports[0].Composition
	assert.InDelta(t, 34.25, hc.WeightedAverages[entities.FieldDryMatter], 1e-9)
	assert.Equal(t, 2000.0, hc.TotalTrenchWeight)
	dm := reports[0].Comparison[0]
	assert.Equal(t, entities.FieldDryMatter, dm.Field)
	assert.InDelta(t, 0.735, *dm.Deviation, 1e-3)
	assert.False(t, dm.Highlighted)
}

func TestCollectionHelpersDoNotAliasInput(t *testing.T) {
	in := []entities.Farm{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	id := func(f entities.Farm) uint { return f.ID }

	out, ok := state.Replaced(in, entities.Farm{ID: 2, Name: "c"}, id)
	require.True(t, ok)
	assert.Equal(t, "b", in[1].Name)
	assert.Equal(t, "c", out[1].Name)

	out, ok = state.Removed(in, 1, id)
	require.True(t, ok)
	assert.Len(t, in, 2)
	assert.Equal(t, []entities.Farm{{ID: 2, Name: "b"}}, out)

	out = state.Added(in[:1], entities.Farm{ID: 3})
	assert.Equal(t, uint(2), in[1].ID)
	assert.Len(t, out, 2)
}
