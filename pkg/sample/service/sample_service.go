package service

import (
	"context"
	"io"

	"silage/entities"
)

type ImportService interface {
	// ImportFoss parses an instrument export and stores its readings under
	// the trench control record.
	ImportFoss(ctx context.Context, trenchControlID uint, body io.Reader, contentType string) ([]entities.FossSample, error)
}
