package state

import (
	"context"

	"silage/entities"
	"silage/pkg/client"
)

// Source lists the full collections the state is built from.
type Source interface {
	Farms(ctx context.Context) ([]entities.Farm, error)
	Trenches(ctx context.Context) ([]entities.Trench, error)
	Harvests(ctx context.Context) ([]entities.Harvest, error)
	TrenchControl(ctx context.Context, season int) ([]entities.TrenchControl, error)
	Foss(ctx context.Context) ([]entities.FossSample, error)
	Sieve(ctx context.Context) ([]entities.SieveSample, error)
	Crops(ctx context.Context) ([]entities.Crop, error)
	Weather(ctx context.Context) ([]entities.WeatherCondition, error)
	FossNorms(ctx context.Context) ([]entities.CropFossNorm, error)
	SieveNorms(ctx context.Context) ([]entities.CropSieveNorm, error)
	LabEntries(ctx context.Context) ([]entities.LabEntry, error)
}

// FromClient reads every collection through the API client.
func FromClient(c *client.Client) Source { return apiSource{c} }

type apiSource struct{ c *client.Client }

func (s apiSource) Farms(ctx context.Context) ([]entities.Farm, error) {
	return s.c.Farms().List(ctx, nil)
}

func (s apiSource) Trenches(ctx context.Context) ([]entities.Trench, error) {
	return s.c.Trenches().List(ctx, nil)
}

func (s apiSource) Harvests(ctx context.Context) ([]entities.Harvest, error) {
	return s.c.Harvests().List(ctx, nil)
}

func (s apiSource) TrenchControl(ctx context.Context, season int) ([]entities.TrenchControl, error) {
	return s.c.TrenchControlForSeason(ctx, season)
}

func (s apiSource) Foss(ctx context.Context) ([]entities.FossSample, error) {
	return s.c.Foss().List(ctx, nil)
}

func (s apiSource) Sieve(ctx context.Context) ([]entities.SieveSample, error) {
	return s.c.Sieve().List(ctx, nil)
}

func (s apiSource) Crops(ctx context.Context) ([]entities.Crop, error) {
	return s.c.Crops().List(ctx, nil)
}

func (s apiSource) Weather(ctx context.Context) ([]entities.WeatherCondition, error) {
	return s.c.Weather().List(ctx, nil)
}

func (s apiSource) FossNorms(ctx context.Context) ([]entities.CropFossNorm, error) {
	return s.c.FossNorms().List(ctx, nil)
}

func (s apiSource) SieveNorms(ctx context.Context) ([]entities.CropSieveNorm, error) {
	return s.c.SieveNorms().List(ctx, nil)
}

func (s apiSource) LabEntries(ctx context.Context) ([]entities.LabEntry, error) {
	return s.c.LabEntries().List(ctx, nil)
}
