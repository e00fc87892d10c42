package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/xuri/excelize/v2"

	"boxcli/internal/analytics"
	apperrors "boxcli/internal/errors"
)

// WriteWorkbook writes one xlsx workbook with a sheet per result table.
// Empty tables are skipped. Numeric cells are written as numbers so
// spreadsheet formulas work on them.
func (e *Exporter) WriteWorkbook(ctx context.Context, tables []analytics.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := 0
	for _, t := range tables {
		if t.Empty() {
			continue
		}
		sheet := sheetName(t.Name)
		if _, err := f.NewSheet(sheet); err != nil {
			return apperrors.NewExportError("create sheet "+sheet, err)
		}
		if err := writeSheet(f, sheet, t); err != nil {
			return err
		}
		sheets++
	}
	if sheets == 0 {
		return nil
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return apperrors.NewExportError("drop default sheet", err)
	}

	path := e.paths.WorkbookPath()
	if err := f.SaveAs(path); err != nil {
		return apperrors.NewExportError("write "+path, err)
	}

	e.logger.InfoContext(ctx, "exported workbook",
		slog.String("path", path),
		slog.Int("sheets", sheets))
	return nil
}

func writeSheet(f *excelize.File, sheet string, t analytics.Table) error {
	for col, label := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return apperrors.NewExportError("address header cell", err)
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return apperrors.NewExportError("write header cell", err)
		}
	}
	for row, cells := range t.Rows {
		for col := range t.Columns {
			if col >= len(cells) || cells[col] == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return apperrors.NewExportError("address cell", err)
			}
			var value interface{} = cells[col]
			if v, err := strconv.ParseFloat(cells[col], 64); err == nil {
				value = v
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return apperrors.NewExportError(fmt.Sprintf("write cell %s!%s", sheet, cell), err)
			}
		}
	}
	return nil
}

// sheetName truncates a result name to the xlsx 31-character sheet limit.
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
