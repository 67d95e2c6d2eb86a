// Package render produces HTML and PDF documents from fully computed
// entities. It only reads derived values and sets the rendered flag;
// no other entity mutation happens here.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fdelacroix/billable/internal/invoicing"
	"github.com/fdelacroix/billable/internal/models"
	"github.com/fdelacroix/billable/internal/timetracking"
)

//go:embed templates/*.html
var templateFS embed.FS

// Format selects the output document type.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// Options control where and how documents are written. An empty
// OutDir returns the HTML instead of writing files.
type Options struct {
	OutDir string
	Format Format
}

type Renderer struct {
	log zerolog.Logger
	tpl *template.Template
}

func New(log zerolog.Logger) (*Renderer, error) {
	tpl := template.New("").Funcs(template.FuncMap{
		"currency": func(code string, d decimal.Decimal) string {
			return fmt.Sprintf("%s %s", code, d.StringFixed(2))
		},
		"percent": func(d decimal.Decimal) string {
			return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + " %"
		},
		"date": func(t time.Time) string { return t.Format("2006-01-02") },
	})
	tpl, err := tpl.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{log: log, tpl: tpl}, nil
}

type invoiceData struct {
	User       *models.User
	Invoice    *models.Invoice
	Contract   models.Contract
	Client     string
	DueDate    time.Time
	HasDueDate bool
}

// RenderInvoice renders the invoice document. With an OutDir set it
// writes {prefix}/{prefix}.html (and .pdf when requested) and flips
// the invoice's rendered flag; that flag is the renderer's only
// mutation of the entity.
func (r *Renderer) RenderInvoice(user *models.User, inv *models.Invoice, opts Options) (string, error) {
	clientName := inv.Contract.Client.Name
	data := invoiceData{
		User:     user,
		Invoice:  inv,
		Contract: inv.Contract,
		Client:   clientName,
	}
	if due, err := invoicing.DueDate(inv.Date, inv.Contract); err == nil {
		data.DueDate = due
		data.HasDueDate = true
	}

	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, "invoice.html", data); err != nil {
		return "", fmt.Errorf("render invoice %s: %w", inv.Number, err)
	}
	if opts.OutDir == "" {
		return buf.String(), nil
	}

	prefix := invoicing.Prefix(inv, clientName)
	dir := filepath.Join(opts.OutDir, prefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("render invoice %s: %w", inv.Number, err)
	}
	htmlPath := filepath.Join(dir, prefix+".html")
	if err := os.WriteFile(htmlPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("render invoice %s: %w", inv.Number, err)
	}
	r.log.Info().Str("path", htmlPath).Msg("wrote invoice html")

	if opts.Format == FormatPDF {
		pdfPath := filepath.Join(dir, invoicing.FileName(inv, clientName))
		var due *time.Time
		if data.HasDueDate {
			due = &data.DueDate
		}
		if err := writeInvoicePDF(user, inv, due, pdfPath); err != nil {
			return "", fmt.Errorf("render invoice %s pdf: %w", inv.Number, err)
		}
		r.log.Info().Str("path", pdfPath).Msg("wrote invoice pdf")
	}

	inv.Rendered = true
	return buf.String(), nil
}

type timesheetData struct {
	User      *models.User
	Timesheet *models.Timesheet
	Rows      []timetracking.Row
	Total     int
}

// RenderTimesheet renders the timesheet document under a
// Timesheet-{title} prefix and flips the sheet's rendered flag.
func (r *Renderer) RenderTimesheet(user *models.User, ts *models.Timesheet, opts Options) (string, error) {
	rows := timetracking.Rows(ts)
	data := timesheetData{
		User:      user,
		Timesheet: ts,
		Rows:      rows,
		Total:     timetracking.TotalHours(rows),
	}
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, "timesheet.html", data); err != nil {
		return "", fmt.Errorf("render timesheet %s: %w", ts.Title, err)
	}
	if opts.OutDir == "" {
		return buf.String(), nil
	}

	prefix := "Timesheet-" + invoicing.Slugify(ts.Title)
	dir := filepath.Join(opts.OutDir, prefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("render timesheet %s: %w", ts.Title, err)
	}
	htmlPath := filepath.Join(dir, prefix+".html")
	if err := os.WriteFile(htmlPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("render timesheet %s: %w", ts.Title, err)
	}
	r.log.Info().Str("path", htmlPath).Msg("wrote timesheet html")

	if opts.Format == FormatPDF {
		pdfPath := filepath.Join(dir, prefix+".pdf")
		if err := writeTimesheetPDF(user, ts, data.Rows, pdfPath); err != nil {
			return "", fmt.Errorf("render timesheet %s pdf: %w", ts.Title, err)
		}
		r.log.Info().Str("path", pdfPath).Msg("wrote timesheet pdf")
	}

	ts.Rendered = true
	return buf.String(), nil
}
