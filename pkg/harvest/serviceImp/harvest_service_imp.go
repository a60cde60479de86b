package serviceImp

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"silage/entities"
	"silage/pkg/apperr"
	"silage/pkg/crud/repository"
	"silage/pkg/crud/service"
	crud "silage/pkg/crud/serviceImp"
)

// NewHarvestService enforces one harvest per (trench, season, cut number).
// Duplicates fail with a conflict naming trenches_harvest_uniq.
func NewHarvestService(harvests repository.Repository[entities.Harvest], trenches crud.Exister, log *zap.Logger) service.Service[entities.Harvest] {
	return crud.New("harvest", harvests, crud.Hooks[entities.Harvest]{
		Validate: func(ctx context.Context, _ uint, h *entities.Harvest) error {
			if h.Season <= 0 {
				return apperr.Invalid("season must be positive")
			}
			if h.Harvesting < 1 {
				return apperr.Invalid("harvesting must be at least 1")
			}
			return crud.RequireRef(ctx, trenches, "trench_id", h.TrenchID)
		},
		Sort: func(hs []entities.Harvest) []entities.Harvest {
			sort.SliceStable(hs, func(i, j int) bool {
				if hs[i].Season != hs[j].Season {
					return hs[i].Season > hs[j].Season
				}
				if hs[i].TrenchID != hs[j].TrenchID {
					return hs[i].TrenchID < hs[j].TrenchID
				}
				return hs[i].Harvesting < hs[j].Harvesting
			})
			return hs
		},
	}, log)
}

func NewLabService(labs repository.Repository[entities.LabEntry], harvests crud.Exister, log *zap.Logger) service.Service[entities.LabEntry] {
	return crud.New("lab entry", labs, crud.Hooks[entities.LabEntry]{
		Validate: func(ctx context.Context, _ uint, l *entities.LabEntry) error {
			return crud.RequireRef(ctx, harvests, "harvest_id", l.HarvestID)
		},
	}, log)
}
