package serviceImp

import (
	"context"

	"go.uber.org/zap"

	"silage/pkg/crud/repository"
	"silage/pkg/crud/service"
)

// Hooks carry the per-entity business rules. Every member is optional.
type Hooks[T any] struct {
	// Prepare normalises input before validation, on create and update.
	Prepare func(rec *T)
	// Defaults fills unset values on create only.
	Defaults func(rec *T)
	// Validate checks rec; id is 0 on create.
	Validate func(ctx context.Context, id uint, rec *T) error
	// Sort orders List results; the default is by id.
	Sort func([]T) []T
}

type crudSvc[T any] struct {
	name  string
	repo  repository.Repository[T]
	hooks Hooks[T]
	log   *zap.Logger
}

func New[T any](name string, repo repository.Repository[T], hooks Hooks[T], log *zap.Logger) service.Service[T] {
	return &crudSvc[T]{name: name, repo: repo, hooks: hooks, log: log.With(zap.String("entity", name))}
}

func (s *crudSvc[T]) List(ctx context.Context, f repository.Filter) ([]T, error) {
	out, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if s.hooks.Sort != nil {
		out = s.hooks.Sort(out)
	}
	return out, nil
}

func (s *crudSvc[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *crudSvc[T]) Create(ctx context.Context, rec *T) (*T, error) {
	if s.hooks.Prepare != nil {
		s.hooks.Prepare(rec)
	}
	if s.hooks.Defaults != nil {
		s.hooks.Defaults(rec)
	}
	if err := s.validate(ctx, 0, rec); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		s.log.Warn("create failed", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (s *crudSvc[T]) Update(ctx context.Context, id uint, rec *T) (*T, error) {
	if s.hooks.Prepare != nil {
		s.hooks.Prepare(rec)
	}
	if err := s.validate(ctx, id, rec); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, rec); err != nil {
		s.log.Warn("update failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (s *crudSvc[T]) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Warn("delete failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *crudSvc[T]) validate(ctx context.Context, id uint, rec *T) error {
	if s.hooks.Validate == nil {
		return nil
	}
	return s.hooks.Validate(ctx, id, rec)
}
