package reports

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Export renders the requested report as an .xlsx workbook.
func (s *Service) Export(ctx context.Context, req Request) ([]byte, string, error) {
	report, err := s.Query(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	row := 1
	if err := setRow(f, sheet, row, []any{report.Title}); err != nil {
		return nil, "", err
	}
	row++

	if report.DateRangeTitle != "" {
		if err := setRow(f, sheet, row, []any{report.DateRangeTitle}); err != nil {
			return nil, "", err
		}
		row++
	}

	headers := make([]any, len(report.Headers))
	for i, h := range report.Headers {
		headers[i] = h
	}
	if err := setRow(f, sheet, row, headers); err != nil {
		return nil, "", err
	}
	row++

	for _, r := range report.Rows {
		cells := make([]any, len(r))
		for i, c := range r {
			cells[i] = c
		}
		if err := setRow(f, sheet, row, cells); err != nil {
			return nil, "", err
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	filename := fmt.Sprintf("%s_report.xlsx", req.Type)
	return buf.Bytes(), filename, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", row, err)
	}
	return nil
}
