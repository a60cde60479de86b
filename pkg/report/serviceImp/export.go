package serviceImp

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"silage/entities"
	"silage/pkg/aggregate"
	"silage/pkg/report/repository"
	"silage/pkg/report/service"
)

const (
	sheetTrenchControl = "Trench control"
	sheetHarvests      = "Harvest vs lab"
)

func (s *reportSvc) Export(ctx context.Context, sel aggregate.Selection, w io.Writer) error {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetTrenchControl); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetHarvests); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	st, err := newStyles(f)
	if err != nil {
		return err
	}
	if err := writeTrenchControl(f, st, snap, summarize(snap, sel)); err != nil {
		return err
	}
	if err := writeHarvests(f, st, snap, harvestReports(snap, sel)); err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type styles struct{ header, flagged int }

func newStyles(f *excelize.File) (styles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return styles{}, fmt.Errorf("header style: %w", err)
	}
	flagged, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#9C0006"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFC7CE"}, Pattern: 1},
	})
	if err != nil {
		return styles{}, fmt.Errorf("flag style: %w", err)
	}
	return styles{header: header, flagged: flagged}, nil
}

func writeHeader(f *excelize.File, sheet string, style int, headers []string) error {
	for i, h := range headers {
		if err := setCell(f, sheet, i+1, 1, h, style, true); err != nil {
			return err
		}
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func setCell(f *excelize.File, sheet string, col, row int, v any, style int, styled bool) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if v != nil {
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("cell %s: %w", cell, err)
		}
	}
	if styled {
		return f.SetCellStyle(sheet, cell, cell, style)
	}
	return nil
}

func writeTrenchControl(f *excelize.File, st styles, snap *repository.Snapshot, rows []aggregate.TrenchControlSummary) error {
	headers := []string{"Date", "Harvest", "Crop", "Weight", "Avg temp", "Foss samples"}
	for _, fld := range entities.CompositionFields {
		headers = append(headers, string(fld))
	}
	for _, fr := range entities.SieveFractions {
		headers = append(headers, string(fr)+" %")
	}
	if err := writeHeader(f, sheetTrenchControl, st.header, headers); err != nil {
		return err
	}

	harvests := harvestLabels(snap)
	crops := make(map[uint]string, len(snap.Crops))
	for _, c := range snap.Crops {
		crops[c.ID] = c.Name
	}

	for i, r := range rows {
		row := i + 2
		tc := r.TrenchControl
		var date, harvest, crop any
		if !tc.Date.IsZero() {
			date = tc.Date.String()
		}
		if tc.HarvestID != nil {
			harvest = harvests[*tc.HarvestID]
		}
		if tc.CropID != nil {
			crop = crops[*tc.CropID]
		}
		values := []any{date, harvest, crop, deref(tc.Weight), deref(r.AverageTemp), r.FossCount}
		for col, v := range values {
			if err := setCell(f, sheetTrenchControl, col+1, row, v, 0, false); err != nil {
				return err
			}
		}
		col := len(values) + 1
		for _, fld := range entities.CompositionFields {
			if err := setCell(f, sheetTrenchControl, col, row, deref(r.Foss[fld]), st.flagged, r.FossOutOfNorm[fld]); err != nil {
				return err
			}
			col++
		}
		for _, fr := range entities.SieveFractions {
			if err := setCell(f, sheetTrenchControl, col, row, deref(r.Sieve[fr]), st.flagged, r.SieveOutOfNorm[fr]); err != nil {
				return err
			}
			col++
		}
	}
	return nil
}

func writeHarvests(f *excelize.File, st styles, snap *repository.Snapshot, reports []service.HarvestReport) error {
	headers := []string{"Harvest", "Total weight", "Field", "Weighted", "Lab", "Deviation %"}
	if err := writeHeader(f, sheetHarvests, st.header, headers); err != nil {
		return err
	}
	labels := harvestLabels(snap)
	row := 2
	for _, rep := range reports {
		for _, cmp := range rep.Comparison {
			var weighted any = cmp.Weighted
			if cmp.Undetermined {
				weighted = nil
			}
			values := []any{labels[rep.Harvest.ID], rep.Composition.TotalTrenchWeight, string(cmp.Field), weighted, deref(cmp.Lab), deref(cmp.Deviation)}
			for col, v := range values {
				if err := setCell(f, sheetHarvests, col+1, row, v, st.flagged, cmp.Highlighted && col >= 3); err != nil {
					return err
				}
			}
			row++
		}
	}
	return nil
}

// harvestLabels names harvests "<farm> / <trench> <season> #<cut>".
func harvestLabels(snap *repository.Snapshot) map[uint]string {
	farms := make(map[uint]string, len(snap.Farms))
	for _, fm := range snap.Farms {
		farms[fm.ID] = fm.Name
	}
	trenches := make(map[uint]entities.Trench, len(snap.Trenches))
	for _, t := range snap.Trenches {
		trenches[t.ID] = t
	}
	out := make(map[uint]string, len(snap.Harvests))
	for _, h := range snap.Harvests {
		t := trenches[h.TrenchID]
		out[h.ID] = fmt.Sprintf("%s / %s %d #%d", farms[t.FarmID], t.Name, h.Season, h.Harvesting)
	}
	return out
}

func deref(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
