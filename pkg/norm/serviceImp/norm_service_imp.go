package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"silage/entities"
	"silage/pkg/apperr"
	"silage/pkg/crud/repository"
	crudsvc "silage/pkg/crud/service"
	crud "silage/pkg/crud/serviceImp"
	normrepo "silage/pkg/norm/repository"
	"silage/pkg/norm/service"
)

// A crop has at most one norm of each kind. Lookups tolerate duplicates left
// by older data by taking the first, but new ones are refused.
func NewFossNormService(norms repository.Repository[entities.CropFossNorm], crops crud.Exister, log *zap.Logger) crudsvc.Service[entities.CropFossNorm] {
	return crud.New("foss norm", norms, crud.Hooks[entities.CropFossNorm]{
		Validate: func(ctx context.Context, id uint, n *entities.CropFossNorm) error {
			if err := crud.RequireRef(ctx, crops, "crop_id", n.CropID); err != nil {
				return err
			}
			if err := n.Check(); err != nil {
				return apperr.Invalid("%s", err.Error())
			}
			return onePerCrop(ctx, norms, "foss", id, n.CropID, func(n entities.CropFossNorm) uint { return n.ID })
		},
	}, log)
}

func NewSieveNormService(norms repository.Repository[entities.CropSieveNorm], crops crud.Exister, log *zap.Logger) crudsvc.Service[entities.CropSieveNorm] {
	return crud.New("sieve norm", norms, crud.Hooks[entities.CropSieveNorm]{
		Validate: func(ctx context.Context, id uint, n *entities.CropSieveNorm) error {
			if err := crud.RequireRef(ctx, crops, "crop_id", n.CropID); err != nil {
				return err
			}
			if err := n.Check(); err != nil {
				return apperr.Invalid("%s", err.Error())
			}
			return onePerCrop(ctx, norms, "sieve", id, n.CropID, func(n entities.CropSieveNorm) uint { return n.ID })
		},
	}, log)
}

func onePerCrop[T any](ctx context.Context, norms repository.Repository[T], kind string, id, cropID uint, idOf func(T) uint) error {
	existing, err := norms.List(ctx, repository.Filter{"crop_id": cropID})
	if err != nil {
		return err
	}
	for _, n := range existing {
		if idOf(n) != id {
			return apperr.Conflict("crop %d already has a %s norm (id %d)", cropID, kind, idOf(n))
		}
	}
	return nil
}

func NewFossTemplateService(templates repository.Repository[entities.FossTemplate], log *zap.Logger) crudsvc.Service[entities.FossTemplate] {
	return crud.New("foss template", templates, crud.Hooks[entities.FossTemplate]{
		Prepare: func(t *entities.FossTemplate) { t.Name = strings.TrimSpace(t.Name) },
		Validate: func(_ context.Context, _ uint, t *entities.FossTemplate) error {
			if t.Name == "" {
				return apperr.Invalid("name is required")
			}
			if err := t.Check(); err != nil {
				return apperr.Invalid("%s", err.Error())
			}
			return nil
		},
	}, log)
}

func NewSieveTemplateService(templates repository.Repository[entities.SieveTemplate], log *zap.Logger) crudsvc.Service[entities.SieveTemplate] {
	return crud.New("sieve template", templates, crud.Hooks[entities.SieveTemplate]{
		Prepare: func(t *entities.SieveTemplate) { t.Name = strings.TrimSpace(t.Name) },
		Validate: func(_ context.Context, _ uint, t *entities.SieveTemplate) error {
			if t.Name == "" {
				return apperr.Invalid("name is required")
			}
			if err := t.Check(); err != nil {
				return apperr.Invalid("%s", err.Error())
			}
			return nil
		},
	}, log)
}

type templateSvc struct {
	repo normrepo.TemplateRepository
	log  *zap.Logger
}

func NewTemplateService(repo normrepo.TemplateRepository, log *zap.Logger) service.TemplateService {
	return &templateSvc{repo: repo, log: log}
}

func (s *templateSvc) ApplyFossTemplate(ctx context.Context, cropID, templateID uint) (*entities.CropFossNorm, error) {
	n, err := s.repo.ApplyFossTemplate(ctx, cropID, templateID)
	if err != nil {
		s.log.Warn("apply foss template failed", zap.Uint("crop_id", cropID), zap.Uint("template_id", templateID), zap.Error(err))
		return nil, err
	}
	s.log.Info("foss template applied", zap.Uint("crop_id", cropID), zap.Uint("template_id", templateID))
	return n, nil
}

func (s *templateSvc) ApplySieveTemplate(ctx context.Context, cropID, templateID uint) (*entities.CropSieveNorm, error) {
	n, err := s.repo.ApplySieveTemplate(ctx, cropID, templateID)
	if err != nil {
		s.log.Warn("apply sieve template failed", zap.Uint("crop_id", cropID), zap.Uint("template_id", templateID), zap.Error(err))
		return nil, err
	}
	s.log.Info("sieve template applied", zap.Uint("crop_id", cropID), zap.Uint("template_id", templateID))
	return n, nil
}
