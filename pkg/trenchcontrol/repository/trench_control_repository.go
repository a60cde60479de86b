package repository

import (
	"context"

	"silage/entities"
	"silage/pkg/aggregate"
)

type TrenchControlRepository interface {
	// ListSelection joins through harvest and trench when the selection
	// narrows by season, farm or trench; unresolved rows are then dropped.
	ListSelection(ctx context.Context, sel aggregate.Selection, harvestID *uint) ([]entities.TrenchControl, error)
}
