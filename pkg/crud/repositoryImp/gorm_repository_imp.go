package repositoryImp

import (
	"context"
	"reflect"

	"gorm.io/gorm"

	"silage/pkg/apperr"
	"silage/pkg/crud/repository"
)

type gormRepo[T any] struct {
	db         *gorm.DB
	constraint string
}

// New returns a gorm-backed repository. constraint names the table's unique
// constraint, if any, for conflict messages.
func New[T any](db *gorm.DB, constraint string) repository.Repository[T] {
	return &gormRepo[T]{db: db, constraint: constraint}
}

func (r *gormRepo[T]) List(ctx context.Context, f repository.Filter) ([]T, error) {
	q := r.db.WithContext(ctx).Model(new(T))
	for col, v := range f {
		q = q.Where(col+" = ?", v)
	}
	out := make([]T, 0)
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, apperr.FromDB(err, r.constraint)
	}
	return out, nil
}

func (r *gormRepo[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var out T
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, apperr.FromDB(err, r.constraint)
	}
	return &out, nil
}

func (r *gormRepo[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, apperr.FromDB(err, r.constraint)
	}
	return n > 0, nil
}

// Create inserts rec with a store-assigned id; any id set by the caller is
// discarded.
func (r *gormRepo[T]) Create(ctx context.Context, rec *T) error {
	if err := r.clearID(ctx, rec); err != nil {
		return apperr.FromDB(err, "")
	}
	return apperr.FromDB(r.db.WithContext(ctx).Create(rec).Error, r.constraint)
}

func (r *gormRepo[T]) clearID(ctx context.Context, rec *T) error {
	stmt := &gorm.Statement{DB: r.db}
	if err := stmt.Parse(rec); err != nil {
		return err
	}
	pk := stmt.Schema.PrioritizedPrimaryField
	if pk == nil {
		return nil
	}
	return pk.Set(ctx, reflect.ValueOf(rec).Elem(), reflect.Zero(pk.FieldType).Interface())
}

func (r *gormRepo[T]) Update(ctx context.Context, id uint, rec *T) error {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Select("*").Omit("id").Updates(rec)
	if res.Error != nil {
		return apperr.FromDB(res.Error, r.constraint)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("record %d not found", id)
	}
	var fresh T
	if err := r.db.WithContext(ctx).First(&fresh, id).Error; err != nil {
		return apperr.FromDB(err, r.constraint)
	}
	*rec = fresh
	return nil
}

func (r *gormRepo[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, r.constraint)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("record %d not found", id)
	}
	return nil
}
