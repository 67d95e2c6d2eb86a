package render

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/fdelacroix/billable/internal/models"
	"github.com/fdelacroix/billable/internal/timetracking"
)

func writeInvoicePDF(user *models.User, inv *models.Invoice, due *time.Time, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Invoice "+inv.Number)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	if user != nil {
		pdf.Cell(0, 5, user.Name)
		pdf.Ln(5)
		if user.VATNumber != "" {
			pdf.Cell(0, 5, "VAT: "+user.VATNumber)
			pdf.Ln(5)
		}
	}
	pdf.Cell(0, 5, "Client: "+inv.Contract.Client.Name)
	pdf.Ln(5)
	pdf.Cell(0, 5, "Date: "+inv.Date.Format("2006-01-02"))
	pdf.Ln(5)
	if due != nil {
		pdf.Cell(0, 5, "Due: "+due.Format("2006-01-02"))
		pdf.Ln(5)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 7, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 7, "Unit", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Unit price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Subtotal", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, it := range inv.Items {
		pdf.CellFormat(70, 7, it.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", it.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, it.Unit, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, it.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, it.Subtotal().StringFixed(2), "1", 1, "R", false, 0, "")
	}

	currency := inv.Contract.Currency
	pdf.Ln(3)
	pdf.CellFormat(140, 7, "Sum", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, currency+" "+inv.Sum().StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(140, 7, "VAT", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, currency+" "+inv.VATTotal().StringFixed(2), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(140, 7, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, currency+" "+inv.Total().StringFixed(2), "", 1, "R", false, 0, "")

	if user != nil && user.BankAccount != nil {
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 9)
		pdf.Cell(0, 5, "IBAN: "+user.BankAccount.IBAN+"  BIC: "+user.BankAccount.BIC)
	}

	return pdf.OutputFileAndClose(path)
}

func writeTimesheetPDF(user *models.User, ts *models.Timesheet, rows []timetracking.Row, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Timesheet "+ts.Title)
	pdf.Ln(12)

	if user != nil {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 5, user.Name)
		pdf.Ln(8)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 7, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Hours", "1", 0, "R", false, 0, "")
	pdf.CellFormat(105, 7, "Comment", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		pdf.CellFormat(40, 7, row.Date.Format("2006/01/02"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", row.Hours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(105, 7, row.Comment, "1", 1, "L", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, fmt.Sprintf("%d", timetracking.TotalHours(rows)), "1", 0, "R", false, 0, "")
	pdf.CellFormat(105, 7, "", "1", 1, "L", false, 0, "")

	return pdf.OutputFileAndClose(path)
}
