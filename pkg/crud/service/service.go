package service

import (
	"context"

	"silage/pkg/crud/repository"
)

type Service[T any] interface {
	List(ctx context.Context, f repository.Filter) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, rec *T) (*T, error)
	Update(ctx context.Context, id uint, rec *T) (*T, error)
	Delete(ctx context.Context, id uint) error
}
