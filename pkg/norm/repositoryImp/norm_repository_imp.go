package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"silage/entities"
	"silage/pkg/apperr"
	"silage/pkg/norm/repository"
)

type templateRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TemplateRepository { return &templateRepo{db} }

// ApplyFossTemplate creates or overwrites the crop's Foss norm with the
// template limits and records the template on the crop, in one transaction.
func (r *templateRepo) ApplyFossTemplate(ctx context.Context, cropID, templateID uint) (*entities.CropFossNorm, error) {
	var out entities.CropFossNorm
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tpl entities.FossTemplate
		if err := findOr404(tx, &tpl, templateID, "foss template"); err != nil {
			return err
		}
		if err := tx.Where("crop_id = ?", cropID).Order("id").First(&out).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		out.CropID = cropID
		out.FossLimits = tpl.FossLimits
		if err := setTemplate(tx, cropID, "template_foss_id", templateID); err != nil {
			return err
		}
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}
	return &out, nil
}

func (r *templateRepo) ApplySieveTemplate(ctx context.Context, cropID, templateID uint) (*entities.CropSieveNorm, error) {
	var out entities.CropSieveNorm
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tpl entities.SieveTemplate
		if err := findOr404(tx, &tpl, templateID, "sieve template"); err != nil {
			return err
		}
		if err := tx.Where("crop_id = ?", cropID).Order("id").First(&out).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		out.CropID = cropID
		out.SieveLimits = tpl.SieveLimits
		if err := setTemplate(tx, cropID, "template_sieve_id", templateID); err != nil {
			return err
		}
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}
	return &out, nil
}

func findOr404(tx *gorm.DB, dst any, id uint, what string) error {
	err := tx.First(dst, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("%s %d not found", what, id)
	}
	return err
}

func setTemplate(tx *gorm.DB, cropID uint, column string, templateID uint) error {
	res := tx.Model(&entities.Crop{}).Where("id = ?", cropID).Update(column, templateID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("crop %d not found", cropID)
	}
	return nil
}
