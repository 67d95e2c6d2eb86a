package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fdelacroix/billable/internal/models"
)

// Save operations assign the identifier on first persist and update in
// place afterwards.

func (s *Store) SaveContact(c *models.Contact) error {
	if c.Email != "" && !models.ValidEmail(c.Email) {
		return &models.ValidationError{Field: "email", Reason: "must match local@domain.tld"}
	}
	return s.db.Save(c).Error
}

func (s *Store) GetContact(id uint) (*models.Contact, error) {
	var c models.Contact
	if err := s.db.Preload("Address").First(&c, id).Error; err != nil {
		return nil, notFound(err, "contact", id)
	}
	return &c, nil
}

func (s *Store) SaveClient(c *models.Client) error { return s.db.Save(c).Error }

func (s *Store) GetClient(id uint) (*models.Client, error) {
	var c models.Client
	if err := s.db.Preload("InvoicingContact").First(&c, id).Error; err != nil {
		return nil, notFound(err, "client", id)
	}
	return &c, nil
}

func (s *Store) ListClients() ([]models.Client, error) {
	var cs []models.Client
	err := s.db.Preload("InvoicingContact").Order("name").Find(&cs).Error
	return cs, err
}

// SaveContract enforces the date ordering the entity itself leaves to
// its callers.
func (s *Store) SaveContract(c *models.Contract) error {
	if c.EndDate != nil && c.EndDate.Before(c.StartDate) {
		return &models.ValidationError{Field: "end_date", Reason: "must not precede start_date"}
	}
	return s.db.Save(c).Error
}

func (s *Store) GetContract(id uint) (*models.Contract, error) {
	var c models.Contract
	if err := s.db.Preload("Client.InvoicingContact").First(&c, id).Error; err != nil {
		return nil, notFound(err, "contract", id)
	}
	return &c, nil
}

func (s *Store) ListContracts() ([]models.Contract, error) {
	var cs []models.Contract
	err := s.db.Preload("Client").Order("start_date").Find(&cs).Error
	return cs, err
}

func (s *Store) SaveProject(p *models.Project) error {
	if !models.ValidTag(p.Tag) {
		return &models.ValidationError{Field: "tag", Reason: "must be #-prefixed with no whitespace"}
	}
	// title and tag carry unique indexes; surface the constraint as a
	// validation error instead of a bare driver error
	err := s.db.Save(p).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return &models.ValidationError{Field: "title/tag", Reason: "must be unique"}
	}
	return err
}

func (s *Store) GetProject(id uint) (*models.Project, error) {
	var p models.Project
	if err := s.db.Preload("Contract.Client").First(&p, id).Error; err != nil {
		return nil, notFound(err, "project", id)
	}
	return &p, nil
}

func (s *Store) ListProjects() ([]models.Project, error) {
	var ps []models.Project
	err := s.db.Preload("Contract.Client").Order("start_date").Find(&ps).Error
	return ps, err
}

func (s *Store) SaveUser(u *models.User) error { return s.db.Save(u).Error }

func (s *Store) GetUser(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.Preload("Address").Preload("BankAccount").First(&u, id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &u, nil
}

// SaveTimesheet persists the sheet together with its items.
func (s *Store) SaveTimesheet(ts *models.Timesheet) error {
	if ts.PeriodEnd.Before(ts.PeriodStart) {
		return &models.ValidationError{Field: "period_end", Reason: "must not precede period_start"}
	}
	return s.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(ts).Error
}

func (s *Store) GetTimesheet(id uint) (*models.Timesheet, error) {
	var ts models.Timesheet
	if err := s.db.Preload("Items").Preload("Project").First(&ts, id).Error; err != nil {
		return nil, notFound(err, "timesheet", id)
	}
	return &ts, nil
}

func (s *Store) GetTimeTrackingItem(id uint) (*models.TimeTrackingItem, error) {
	var item models.TimeTrackingItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, notFound(err, "time tracking item", id)
	}
	return &item, nil
}

// DeleteTimesheet removes the sheet and its items. If any child
// deletion fails the transaction rolls back, so the graph stays
// inspectable for retry.
func (s *Store) DeleteTimesheet(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return deleteTimesheetTx(tx, id)
	})
}

func deleteTimesheetTx(tx *gorm.DB, id uint) error {
	if err := tx.Where("timesheet_id = ?", id).Delete(&models.TimeTrackingItem{}).Error; err != nil {
		return fmt.Errorf("cascade timesheet %d items: %w", id, err)
	}
	if err := tx.Delete(&models.Timesheet{}, id).Error; err != nil {
		return fmt.Errorf("delete timesheet %d: %w", id, err)
	}
	return nil
}

// SaveInvoice persists the invoice with its items and claims its
// timesheets.
func (s *Store) SaveInvoice(inv *models.Invoice) error {
	return s.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(inv).Error
}

func (s *Store) GetInvoice(id uint) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.db.
		Preload("Items").
		Preload("Timesheets.Items").
		Preload("Contract.Client.InvoicingContact").
		First(&inv, id).Error
	if err != nil {
		return nil, notFound(err, "invoice", id)
	}
	return &inv, nil
}

func (s *Store) GetInvoiceItem(id uint) (*models.InvoiceItem, error) {
	var it models.InvoiceItem
	if err := s.db.First(&it, id).Error; err != nil {
		return nil, notFound(err, "invoice item", id)
	}
	return &it, nil
}

func (s *Store) ListInvoices() ([]models.Invoice, error) {
	var invs []models.Invoice
	err := s.db.Preload("Items").Order("date desc").Find(&invs).Error
	return invs, err
}

// DeleteInvoice cascades to the invoice's timesheets (and their
// items) and its line items in one transaction. A failing child
// deletion fails the whole delete; there are no silently dropped
// children.
func (s *Store) DeleteInvoice(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var sheets []models.Timesheet
		if err := tx.Where("invoice_id = ?", id).Find(&sheets).Error; err != nil {
			return fmt.Errorf("load invoice %d timesheets: %w", id, err)
		}
		for _, ts := range sheets {
			if err := deleteTimesheetTx(tx, ts.ID); err != nil {
				return fmt.Errorf("cascade invoice %d: %w", id, err)
			}
		}
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
			return fmt.Errorf("cascade invoice %d items: %w", id, err)
		}
		if err := tx.Delete(&models.Invoice{}, id).Error; err != nil {
			return fmt.Errorf("delete invoice %d: %w", id, err)
		}
		return nil
	})
}

// NextInvoiceCounter returns one past the number of invoices already
// issued on the given date. Correct as long as a single flow issues
// invoices, which is all this store supports; under concurrent writers
// uniqueness remains the caller's problem.
func (s *Store) NextInvoiceCounter(issue time.Time) (int, error) {
	day := issue.Format("2006-01-02")
	var count int64
	err := s.db.Model(&models.Invoice{}).Where("number LIKE ?", day+"-%").Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

// MarkInvoiceRendered records the renderer's one external mutation.
func (s *Store) MarkInvoiceRendered(inv *models.Invoice) error {
	inv.Rendered = true
	return s.db.Model(inv).Update("rendered", true).Error
}

// MarkTimesheetRendered is the timesheet counterpart.
func (s *Store) MarkTimesheetRendered(ts *models.Timesheet) error {
	ts.Rendered = true
	return s.db.Model(ts).Update("rendered", true).Error
}
