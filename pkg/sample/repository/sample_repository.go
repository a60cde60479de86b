package repository

import (
	"context"

	"silage/entities"
)

// ImportRepository stores imported readings as a unit.
type ImportRepository interface {
	// CreateFoss stores every sample under the trench control record, or
	// none of them.
	CreateFoss(ctx context.Context, trenchControlID uint, samples []entities.FossSample) error
}
