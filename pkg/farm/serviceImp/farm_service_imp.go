package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"silage/entities"
	"silage/pkg/apperr"
	"silage/pkg/crud/repository"
	"silage/pkg/crud/service"
	crud "silage/pkg/crud/serviceImp"
)

func NewFarmService(farms repository.Repository[entities.Farm], log *zap.Logger) service.Service[entities.Farm] {
	return crud.New("farm", farms, crud.Hooks[entities.Farm]{
		Prepare: func(f *entities.Farm) { f.Name = strings.TrimSpace(f.Name) },
		Validate: func(_ context.Context, _ uint, f *entities.Farm) error {
			if f.Name == "" {
				return apperr.Invalid("name is required")
			}
			return nil
		},
	}, log)
}

func NewTrenchService(trenches repository.Repository[entities.Trench], farms crud.Exister, log *zap.Logger) service.Service[entities.Trench] {
	return crud.New("trench", trenches, crud.Hooks[entities.Trench]{
		Prepare: func(t *entities.Trench) { t.Name = strings.TrimSpace(t.Name) },
		Validate: func(ctx context.Context, _ uint, t *entities.Trench) error {
			if t.Name == "" {
				return apperr.Invalid("name is required")
			}
			return crud.RequireRef(ctx, farms, "farm_id", t.FarmID)
		},
	}, log)
}
