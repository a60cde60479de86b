package serviceImp

import (
	"context"

	"silage/entities"
	"silage/pkg/aggregate"
	"silage/pkg/apperr"
	"silage/pkg/report/repository"
	"silage/pkg/report/service"
)

type reportSvc struct{ repo repository.ReportRepository }

func New(repo repository.ReportRepository) service.ReportService { return &reportSvc{repo} }

func (s *reportSvc) TrenchControl(ctx context.Context, sel aggregate.Selection) ([]aggregate.TrenchControlSummary, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(snap, sel), nil
}

func summarize(snap *repository.Snapshot, sel aggregate.Selection) []aggregate.TrenchControlSummary {
	tcs := visible(snap, sel)
	return aggregate.SummarizeTrenchControl(tcs, snap.Foss, snap.Sieve,
		aggregate.NewFossNormIndex(snap.FossNorms), aggregate.NewSieveNormIndex(snap.SieveNorms))
}

// visible is the selection's trench control view, newest first. An empty
// selection keeps rows that are not linked to a harvest.
func visible(snap *repository.Snapshot, sel aggregate.Selection) []entities.TrenchControl {
	tcs := snap.TrenchControl
	if sel.FarmID != nil || sel.TrenchID != nil || sel.Season != nil {
		tcs = aggregate.FilterTrenchControl(tcs, snap.Harvests, snap.Trenches, sel)
	}
	return aggregate.SortTrenchControl(tcs)
}

func (s *reportSvc) Samples(ctx context.Context, id uint) (*service.SamplesView, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	var tc *entities.TrenchControl
	for i := range snap.TrenchControl {
		if snap.TrenchControl[i].ID == id {
			tc = &snap.TrenchControl[i]
			break
		}
	}
	if tc == nil {
		return nil, apperr.NotFound("trench control %d not found", id)
	}

	fossNorms := aggregate.NewFossNormIndex(snap.FossNorms)
	sieveNorms := aggregate.NewSieveNormIndex(snap.SieveNorms)
	out := &service.SamplesView{
		TrenchControl: *tc,
		Foss:          []service.FossSampleView{},
		Sieve:         []aggregate.SieveSampleView{},
	}
	for _, f := range aggregate.SortFoss(aggregate.FossForTrenchControl(snap.Foss, id)) {
		out.Foss = append(out.Foss, service.FossSampleView{Sample: f, OutOfNorm: aggregate.FlagFossSample(f, tc.CropID, fossNorms)})
	}
	for _, sv := range aggregate.SortSieve(aggregate.SieveForTrenchControl(snap.Sieve, id)) {
		out.Sieve = append(out.Sieve, aggregate.FlagSieveSample(sv, tc.CropID, sieveNorms))
	}
	return out, nil
}

func (s *reportSvc) Harvests(ctx context.Context, sel aggregate.Selection) ([]service.HarvestReport, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return harvestReports(snap, sel), nil
}

func harvestReports(snap *repository.Snapshot, sel aggregate.Selection) []service.HarvestReport {
	return aggregate.HarvestReports(snap.Harvests, snap.Trenches, snap.TrenchControl, snap.Foss, snap.Lab, sel)
}
