// Package invoicing derives invoice numbers, due dates, and
// VAT-correct totals from contracts and billed timesheets.
package invoicing

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fdelacroix/billable/internal/models"
	"github.com/fdelacroix/billable/internal/timetracking"
)

var (
	// ErrTermUnset means the contract carries no term of payment, so
	// the due date is undefined — never defaulted to the issue date.
	ErrTermUnset = errors.New("contract term of payment is not set")

	// ErrNoInvoicingContact blocks billing a client that has not
	// resolved an invoicing contact yet.
	ErrNoInvoicingContact = errors.New("client has no invoicing contact")
)

// GenerateNumber formats an invoice number from the issue date and a
// per-day counter. The counter is the caller's responsibility: it must
// be a monotonic per-day sequence, and reusing counter=1 for two
// invoices issued the same day will collide.
func GenerateNumber(issue time.Time, counter int) string {
	return fmt.Sprintf("%s-%02d", issue.Format("2006-01-02"), counter)
}

// DueDate is the issue date plus the contract's term of payment in
// days.
func DueDate(issue time.Time, contract models.Contract) (time.Time, error) {
	if contract.TermOfPayment == nil {
		return time.Time{}, ErrTermUnset
	}
	return issue.AddDate(0, 0, *contract.TermOfPayment), nil
}

// Totals sums the items with exact decimal arithmetic. No rounding
// happens here; display formatting is the renderer's concern.
func Totals(items []models.InvoiceItem) (sum, vatTotal, total decimal.Decimal) {
	sum, vatTotal = decimal.Zero, decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Subtotal())
		vatTotal = vatTotal.Add(it.VAT())
	}
	return sum, vatTotal, sum.Add(vatTotal)
}

// FromTimesheet builds an invoice billing one timesheet against its
// contract: one line item whose quantity is the sum of the sheet's
// daily hours, priced at the contract rate, carrying the contract's VAT rate
// on the item itself. The client must resolve an invoicing contact
// before it can be billed.
func FromTimesheet(contract models.Contract, ts *models.Timesheet, issue time.Time, counter int) (*models.Invoice, error) {
	if contract.Client.InvoicingContactID == nil {
		return nil, fmt.Errorf("invoice for contract %q: %w", contract.Title, ErrNoInvoicingContact)
	}
	hours := timetracking.TotalHours(timetracking.Rows(ts))
	inv := &models.Invoice{
		Number:     GenerateNumber(issue, counter),
		Date:       issue,
		ContractID: contract.ID,
		ProjectID:  ts.ProjectID,
		Items: []models.InvoiceItem{{
			StartDate:   ts.PeriodStart,
			EndDate:     ts.PeriodEnd,
			Quantity:    hours,
			Unit:        string(contract.Unit),
			UnitPrice:   contract.Rate,
			Description: ts.Title,
			VATRate:     contract.VATRate,
		}},
	}
	inv.Timesheets = append(inv.Timesheets, *ts)
	return inv, nil
}

var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses anything outside [a-z0-9] to
// single dashes.
func Slugify(s string) string {
	s = slugRegex.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// Prefix names an invoice's output documents: number plus slugified
// client name. Used only by the rendering collaborator.
func Prefix(inv *models.Invoice, clientName string) string {
	return fmt.Sprintf("%s-%s", inv.Number, Slugify(clientName))
}

// FileName is the PDF name derived from the prefix.
func FileName(inv *models.Invoice, clientName string) string {
	return Prefix(inv, clientName) + ".pdf"
}
