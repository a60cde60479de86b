package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"silage/pkg/apperr"
	"silage/pkg/report/repository"
)

type reportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReportRepository { return &reportRepo{db} }

// Load reads all collections inside one read transaction so the views are
// computed from a consistent state.
func (r *reportRepo) Load(ctx context.Context) (*repository.Snapshot, error) {
	var s repository.Snapshot
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dst := range []any{
			&s.Farms, &s.Trenches, &s.Harvests, &s.TrenchControl, &s.Foss,
			&s.Sieve, &s.Crops, &s.FossNorms, &s.SieveNorms, &s.Lab,
		} {
			if err := tx.Order("id").Find(dst).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}
	return &s, nil
}
