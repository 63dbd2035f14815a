package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/you-humble/kicad-dblib/internal/model"
	"github.com/you-humble/kicad-dblib/platform/logger"
)

const exportSheet = "Parts"

var exportHeaders = []string{
	"KiCad Part Number",
	"Description",
	"Component Type",
	"Value",
	"Symbol reference",
	"Footprint reference",
	"Manufacturer",
	"Manufacturer Part Number",
}

// ExportParts writes the listing as an xlsx workbook. It does not change the
// remembered filter.
func (h *handler) ExportParts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ct, err := parseFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.ctrl.List(ctx, filterOf(ct))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	f, err := partsWorkbook(rows)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn(ctx, "close workbook", logger.ErrorF(err))
		}
	}()

	name := "parts"
	if ct != nil {
		name += "-" + strings.ToLower(strings.ReplaceAll(string(*ct), " ", "-"))
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", name))

	if err := f.Write(w); err != nil {
		logger.Error(ctx, "write workbook", logger.ErrorF(err))
	}
}

func partsWorkbook(rows []model.PartRow) (*excelize.File, error) {
	const op = "export.partsWorkbook"

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	header := make([]any, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	last, err := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := f.SetCellStyle(exportSheet, "A1", last, headerStyle); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		values := []any{
			row.KicadPartNumber,
			row.Description,
			string(row.ComponentType),
			row.Value,
			row.SymbolRef,
			row.FootprintRef,
			row.Manufacturer,
			row.ManufacturerPartNumber,
		}
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	if err := f.SetColWidth(exportSheet, "A", lastCol, 22); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}
