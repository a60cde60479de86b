package service

import (
	"context"
	"io"

	"silage/entities"
	"silage/pkg/aggregate"
)

// FossSampleView is a Foss reading with its norm flags.
type FossSampleView struct {
	Sample    entities.FossSample         `json:"sample"`
	OutOfNorm map[entities.FossField]bool `json:"out_of_norm"`
}

// SamplesView is the detail of one trench control event.
type SamplesView struct {
	TrenchControl entities.TrenchControl      `json:"trench_control"`
	Foss          []FossSampleView            `json:"foss"`
	Sieve         []aggregate.SieveSampleView `json:"sieve"`
}

// HarvestReport is the weighted composition of a harvest against its lab
// reference.
type HarvestReport = aggregate.HarvestReport

type ReportService interface {
	TrenchControl(ctx context.Context, sel aggregate.Selection) ([]aggregate.TrenchControlSummary, error)
	Samples(ctx context.Context, trenchControlID uint) (*SamplesView, error)
	Harvests(ctx context.Context, sel aggregate.Selection) ([]HarvestReport, error)
	// Export writes an xlsx workbook of both views.
	Export(ctx context.Context, sel aggregate.Selection, w io.Writer) error
}
