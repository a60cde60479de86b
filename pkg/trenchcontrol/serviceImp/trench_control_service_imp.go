package serviceImp

import (
	"context"

	"go.uber.org/zap"

	"silage/entities"
	"silage/pkg/aggregate"
	"silage/pkg/crud/repository"
	"silage/pkg/crud/service"
	crud "silage/pkg/crud/serviceImp"
	tcrepo "silage/pkg/trenchcontrol/repository"
)

// Refs are the tables a trench control record points at.
type Refs struct {
	Harvests crud.Exister
	Crops    crud.Exister
	Weather  crud.Exister
}

type tcSvc struct {
	service.Service[entities.TrenchControl]
	repo tcrepo.TrenchControlRepository
}

// NewTrenchControlService lists records newest first. List accepts season,
// farm_id, trench_id and harvest_id filters.
func NewTrenchControlService(base repository.Repository[entities.TrenchControl], repo tcrepo.TrenchControlRepository, refs Refs, log *zap.Logger) service.Service[entities.TrenchControl] {
	return &tcSvc{
		Service: crud.New("trench control", base, crud.Hooks[entities.TrenchControl]{
			Validate: func(ctx context.Context, _ uint, tc *entities.TrenchControl) error {
				if err := crud.OptionalRef(ctx, refs.Harvests, "harvest_id", tc.HarvestID); err != nil {
					return err
				}
				if err := crud.OptionalRef(ctx, refs.Crops, "crop_id", tc.CropID); err != nil {
					return err
				}
				return crud.OptionalRef(ctx, refs.Weather, "weather_id", tc.WeatherID)
			},
		}, log),
		repo: repo,
	}
}

func (s *tcSvc) List(ctx context.Context, f repository.Filter) ([]entities.TrenchControl, error) {
	var sel aggregate.Selection
	var harvestID *uint
	if v, ok := f["season"].(int); ok {
		sel.Season = &v
	}
	if v, ok := f["farm_id"].(uint); ok {
		sel.FarmID = &v
	}
	if v, ok := f["trench_id"].(uint); ok {
		sel.TrenchID = &v
	}
	if v, ok := f["harvest_id"].(uint); ok {
		harvestID = &v
	}
	out, err := s.repo.ListSelection(ctx, sel, harvestID)
	if err != nil {
		return nil, err
	}
	return aggregate.SortTrenchControl(out), nil
}
