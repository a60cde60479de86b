package repository

import (
	"context"

	"silage/entities"
)

// TemplateRepository copies template limits into a crop's norm.
type TemplateRepository interface {
	ApplyFossTemplate(ctx context.Context, cropID, templateID uint) (*entities.CropFossNorm, error)
	ApplySieveTemplate(ctx context.Context, cropID, templateID uint) (*entities.CropSieveNorm, error)
}
