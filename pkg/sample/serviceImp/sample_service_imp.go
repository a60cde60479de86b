package serviceImp

import (
	"context"
	"time"

	"go.uber.org/zap"

	"silage/entities"
	"silage/pkg/aggregate"
	"silage/pkg/apperr"
	"silage/pkg/crud/repository"
	"silage/pkg/crud/service"
	crud "silage/pkg/crud/serviceImp"
)

var now = func() time.Time { return time.Now().UTC() }

// NewFossService lists readings newest first. A reading without date_time is
// stamped with the current time.
func NewFossService(foss repository.Repository[entities.FossSample], tcs crud.Exister, log *zap.Logger) service.Service[entities.FossSample] {
	return crud.New("foss sample", foss, crud.Hooks[entities.FossSample]{
		Defaults: func(s *entities.FossSample) {
			if s.DateTime.IsZero() {
				s.DateTime = now()
			}
		},
		Validate: func(ctx context.Context, _ uint, s *entities.FossSample) error {
			return crud.RequireRef(ctx, tcs, "trench_control_id", s.TrenchControlID)
		},
		Sort: aggregate.SortFoss,
	}, log)
}

func NewSieveService(sieve repository.Repository[entities.SieveSample], tcs crud.Exister, log *zap.Logger) service.Service[entities.SieveSample] {
	return crud.New("sieve sample", sieve, crud.Hooks[entities.SieveSample]{
		Defaults: func(s *entities.SieveSample) {
			if s.DateTime.IsZero() {
				s.DateTime = now()
			}
		},
		Validate: func(ctx context.Context, _ uint, s *entities.SieveSample) error {
			for _, f := range entities.SieveFractions {
				if v := s.Value(f); v != nil && *v < 0 {
					return apperr.Invalid("%s must not be negative", f)
				}
			}
			return crud.RequireRef(ctx, tcs, "trench_control_id", s.TrenchControlID)
		},
		Sort: aggregate.SortSieve,
	}, log)
}
