package repository

import "context"

// Filter narrows List by column equality; keys are column names.
type Filter map[string]any

type Repository[T any] interface {
	List(ctx context.Context, f Filter) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, rec *T) error
	// Update replaces every column of row id with rec and reloads rec.
	Update(ctx context.Context, id uint, rec *T) error
	Delete(ctx context.Context, id uint) error
}
