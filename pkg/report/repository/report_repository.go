package repository

import (
	"context"

	"silage/entities"
)

// Snapshot is every collection the report views are derived from.
type Snapshot struct {
	Farms         []entities.Farm
	Trenches      []entities.Trench
	Harvests      []entities.Harvest
	TrenchControl []entities.TrenchControl
	Foss          []entities.FossSample
	Sieve         []entities.SieveSample
	Crops         []entities.Crop
	FossNorms     []entities.CropFossNorm
	SieveNorms    []entities.CropSieveNorm
	Lab           []entities.LabEntry
}

type ReportRepository interface {
	Load(ctx context.Context) (*Snapshot, error)
}
