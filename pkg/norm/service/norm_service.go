package service

import (
	"context"

	"silage/entities"
)

type TemplateService interface {
	ApplyFossTemplate(ctx context.Context, cropID, templateID uint) (*entities.CropFossNorm, error)
	ApplySieveTemplate(ctx context.Context, cropID, templateID uint) (*entities.CropSieveNorm, error)
}
