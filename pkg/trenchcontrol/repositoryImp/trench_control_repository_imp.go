package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"silage/entities"
	"silage/pkg/aggregate"
	"silage/pkg/apperr"
	"silage/pkg/trenchcontrol/repository"
)

type tcRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TrenchControlRepository { return &tcRepo{db} }

func (r *tcRepo) ListSelection(ctx context.Context, sel aggregate.Selection, harvestID *uint) ([]entities.TrenchControl, error) {
	q := r.db.WithContext(ctx).Model(&entities.TrenchControl{}).Select("trench_control.*")
	if sel.Season != nil || sel.FarmID != nil || sel.TrenchID != nil {
		q = q.Joins("JOIN harvest ON harvest.id = trench_control.harvest_id").
			Joins("JOIN trenches ON trenches.id = harvest.trench_id")
		if sel.Season != nil {
			q = q.Where("harvest.season = ?", *sel.Season)
		}
		if sel.FarmID != nil {
			q = q.Where("trenches.farm_id = ?", *sel.FarmID)
		}
		if sel.TrenchID != nil {
			q = q.Where("trenches.id = ?", *sel.TrenchID)
		}
	}
	if harvestID != nil {
		q = q.Where("trench_control.harvest_id = ?", *harvestID)
	}
	out := make([]entities.TrenchControl, 0)
	if err := q.Order("trench_control.id").Find(&out).Error; err != nil {
		return nil, apperr.FromDB(err, "")
	}
	return out, nil
}
