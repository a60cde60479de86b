package serviceImp

import (
	"context"

	"silage/pkg/apperr"
)

// Exister is the part of a repository reference checks need.
type Exister interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// RequireRef fails with Invalid when id does not name a row of repo.
func RequireRef(ctx context.Context, repo Exister, field string, id uint) error {
	if id == 0 {
		return apperr.Invalid("%s is required", field)
	}
	ok, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Invalid("%s %d does not exist", field, id)
	}
	return nil
}

// OptionalRef is RequireRef for nullable references.
func OptionalRef(ctx context.Context, repo Exister, field string, id *uint) error {
	if id == nil {
		return nil
	}
	return RequireRef(ctx, repo, field, *id)
}
