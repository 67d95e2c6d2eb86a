package timetracking

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fdelacroix/billable/internal/models"
)

// ExportTimesheet writes the timesheet as a spreadsheet: one row per
// date ascending, then a synthetic Total row whose hours equal the
// sum of the hours column and whose other columns stay blank.
func ExportTimesheet(ts *models.Timesheet, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	header := []any{"date", "hours", "comment"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("export timesheet: %w", err)
	}

	rows := Rows(ts)
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []any{row.Date.Format("2006/01/02"), row.Hours, row.Comment}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("export timesheet row %d: %w", i, err)
		}
	}

	totalCell := fmt.Sprintf("A%d", len(rows)+2)
	total := []any{"Total", TotalHours(rows), ""}
	if err := f.SetSheetRow(sheet, totalCell, &total); err != nil {
		return fmt.Errorf("export timesheet total: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export timesheet: %w", err)
	}
	return nil
}
