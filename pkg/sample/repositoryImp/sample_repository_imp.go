package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"silage/entities"
	"silage/pkg/apperr"
	"silage/pkg/sample/repository"
)

type importRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ImportRepository { return &importRepo{db} }

func (r *importRepo) CreateFoss(ctx context.Context, tcID uint, samples []entities.FossSample) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.TrenchControl{}).Where("id = ?", tcID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return apperr.Invalid("trench_control_id %d does not exist", tcID)
		}
		for i := range samples {
			samples[i].ID = 0
			samples[i].TrenchControlID = tcID
		}
		return tx.Create(&samples).Error
	})
	return apperr.FromDB(err, "")
}
