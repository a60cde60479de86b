package serviceImp

import (
	"context"
	"io"

	"go.uber.org/zap"

	"silage/entities"
	"silage/pkg/apperr"
	crud "silage/pkg/crud/serviceImp"
	"silage/pkg/fossimport"
	"silage/pkg/sample/repository"
	"silage/pkg/sample/service"
)

type importSvc struct {
	repo repository.ImportRepository
	tcs  crud.Exister
	log  *zap.Logger
}

// NewImportService stores an import in one transaction: a failed row leaves
// nothing behind.
func NewImportService(repo repository.ImportRepository, tcs crud.Exister, log *zap.Logger) service.ImportService {
	return &importSvc{repo: repo, tcs: tcs, log: log}
}

func (s *importSvc) ImportFoss(ctx context.Context, tcID uint, body io.Reader, contentType string) ([]entities.FossSample, error) {
	if err := crud.RequireRef(ctx, s.tcs, "trench_control_id", tcID); err != nil {
		return nil, err
	}
	parsed, err := fossimport.Parse(body, contentType)
	if err != nil {
		return nil, apperr.Invalid("%s", err.Error())
	}
	if len(parsed) == 0 {
		return nil, apperr.Invalid("no Foss readings found")
	}
	stamp := now()
	for i := range parsed {
		if parsed[i].DateTime.IsZero() {
			parsed[i].DateTime = stamp
		}
	}
	if err := s.repo.CreateFoss(ctx, tcID, parsed); err != nil {
		s.log.Warn("foss import failed", zap.Uint("trench_control_id", tcID), zap.Int("rows", len(parsed)), zap.Error(err))
		return nil, err
	}
	s.log.Info("foss import", zap.Uint("trench_control_id", tcID), zap.Int("stored", len(parsed)))
	return parsed, nil
}
