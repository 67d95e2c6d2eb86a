package store

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fdelacroix/billable/internal/models"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory(t.Name())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedContract(t *testing.T, s *Store) *models.Contract {
	t.Helper()
	contact, err := models.NewContact("Sam", "Lowry", "", "sam@ministry.gov")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveContact(contact); err != nil {
		t.Fatal(err)
	}
	client := &models.Client{Name: "Central Services", InvoicingContactID: &contact.ID}
	if err := s.SaveClient(client); err != nil {
		t.Fatal(err)
	}
	contract, err := models.NewContract("Ducts", client.ID, date(2024, time.January, 1), nil, decimal.RequireFromString("87.50"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveContract(contract); err != nil {
		t.Fatal(err)
	}
	return contract
}

func TestSaveAssignsIdentifier(t *testing.T) {
	s := setupStore(t)
	client := &models.Client{Name: "Central Services"}
	if err := s.SaveClient(client); err != nil {
		t.Fatal(err)
	}
	if client.ID == 0 {
		t.Fatal("first persist must assign an identifier")
	}
	client.Name = "Central Services GmbH"
	if err := s.SaveClient(client); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetClient(client.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Central Services GmbH" {
		t.Errorf("Name = %q after update", got.Name)
	}
}

func TestGetNotFound(t *testing.T) {
	s := setupStore(t)
	_, err := s.GetClient(42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSaveContractRejectsBadDates(t *testing.T) {
	s := setupStore(t)
	end := date(2023, time.December, 1)
	c := &models.Contract{Title: "Ducts", StartDate: date(2024, time.January, 1), EndDate: &end}
	var verr *models.ValidationError
	if err := s.SaveContract(c); !errors.As(err, &verr) {
		t.Fatalf("want *ValidationError, got %v", err)
	}
}

func TestSaveProjectRejectsBadTag(t *testing.T) {
	s := setupStore(t)
	p := &models.Project{Title: "Ducts", Tag: "ducts"}
	var verr *models.ValidationError
	if err := s.SaveProject(p); !errors.As(err, &verr) {
		t.Fatalf("want *ValidationError, got %v", err)
	}
}

func TestTimesheetRoundTrip(t *testing.T) {
	s := setupStore(t)
	contract := seedContract(t, s)
	project, err := models.NewProject("Ducts", "#ducts", "", contract.ID, date(2024, time.January, 1), date(2024, time.June, 30))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveProject(project); err != nil {
		t.Fatal(err)
	}
	ts, err := models.NewTimesheet("#ducts 2024-03", project.ID, date(2024, time.March, 1), date(2024, time.March, 31))
	if err != nil {
		t.Fatal(err)
	}
	begin := date(2024, time.March, 4)
	ts.Items = []models.TimeTrackingItem{
		{Begin: begin, End: begin.Add(6 * time.Hour), Tag: "#ducts"},
		{Begin: begin.AddDate(0, 0, 1), End: begin.AddDate(0, 0, 1).Add(2 * time.Hour), Tag: "#ducts"},
	}
	if err := s.SaveTimesheet(ts); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetTimesheet(ts.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(got.Items))
	}
	if got.Total() != 8*time.Hour {
		t.Errorf("Total() = %v, want 8h", got.Total())
	}
}

func TestDeleteTimesheetCascades(t *testing.T) {
	s := setupStore(t)
	ts, _ := models.NewTimesheet("x", 0, date(2024, time.March, 1), date(2024, time.March, 31))
	begin := date(2024, time.March, 4)
	ts.Items = []models.TimeTrackingItem{{Begin: begin, End: begin.Add(time.Hour)}}
	if err := s.SaveTimesheet(ts); err != nil {
		t.Fatal(err)
	}
	itemID := ts.Items[0].ID
	if itemID == 0 {
		t.Fatal("item not persisted")
	}
	if err := s.DeleteTimesheet(ts.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetTimeTrackingItem(itemID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cascaded item lookup: want ErrNotFound, got %v", err)
	}
}

func TestDeleteInvoiceCascades(t *testing.T) {
	s := setupStore(t)
	contract := seedContract(t, s)

	inv := &models.Invoice{
		Number:     "2024-03-01-01",
		Date:       date(2024, time.March, 1),
		ContractID: contract.ID,
		ProjectID:  1,
		Items: []models.InvoiceItem{
			{Quantity: 1, Unit: "hour", UnitPrice: decimal.New(100, 0), VATRate: decimal.New(19, -2)},
			{Quantity: 2, Unit: "hour", UnitPrice: decimal.New(100, 0), VATRate: decimal.New(19, -2)},
			{Quantity: 3, Unit: "hour", UnitPrice: decimal.New(100, 0), VATRate: decimal.New(19, -2)},
		},
	}
	for i := 0; i < 2; i++ {
		ts, _ := models.NewTimesheet("ts", 0, date(2024, time.March, 1), date(2024, time.March, 31))
		begin := date(2024, time.March, 4+i)
		ts.Items = []models.TimeTrackingItem{{Begin: begin, End: begin.Add(time.Hour)}}
		inv.Timesheets = append(inv.Timesheets, *ts)
	}
	if err := s.SaveInvoice(inv); err != nil {
		t.Fatal(err)
	}

	var sheetIDs, itemIDs []uint
	for _, ts := range inv.Timesheets {
		sheetIDs = append(sheetIDs, ts.ID)
	}
	for _, it := range inv.Items {
		itemIDs = append(itemIDs, it.ID)
	}
	if len(sheetIDs) != 2 || len(itemIDs) != 3 {
		t.Fatalf("seed: %d sheets, %d items", len(sheetIDs), len(itemIDs))
	}

	if err := s.DeleteInvoice(inv.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetInvoice(inv.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("invoice lookup after delete: want ErrNotFound, got %v", err)
	}
	for _, id := range sheetIDs {
		if _, err := s.GetTimesheet(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("timesheet %d: want ErrNotFound, got %v", id, err)
		}
	}
	for _, id := range itemIDs {
		if _, err := s.GetInvoiceItem(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("invoice item %d: want ErrNotFound, got %v", id, err)
		}
	}
}

// A failing child deletion must roll back the whole cascade: no
// half-deleted invoice graphs.
func TestDeleteInvoiceRollsBackOnChildFailure(t *testing.T) {
	s := setupStore(t)
	contract := seedContract(t, s)

	inv := &models.Invoice{
		Number:     "2024-03-01-01",
		Date:       date(2024, time.March, 1),
		ContractID: contract.ID,
		ProjectID:  1,
		Items: []models.InvoiceItem{
			{Quantity: 1, Unit: "hour", UnitPrice: decimal.New(100, 0), VATRate: decimal.New(19, -2)},
		},
	}
	ts, _ := models.NewTimesheet("ts", 0, date(2024, time.March, 1), date(2024, time.March, 31))
	begin := date(2024, time.March, 4)
	ts.Items = []models.TimeTrackingItem{{Begin: begin, End: begin.Add(time.Hour)}}
	inv.Timesheets = append(inv.Timesheets, *ts)
	if err := s.SaveInvoice(inv); err != nil {
		t.Fatal(err)
	}
	sheetID := inv.Timesheets[0].ID
	trackingID := inv.Timesheets[0].Items[0].ID
	itemID := inv.Items[0].ID

	const name = "billable:fail_item_delete"
	err := s.DB().Callback().Delete().Before("gorm:delete").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table == "time_tracking_items" {
			_ = tx.AddError(errors.New("injected delete failure"))
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := s.DB().Callback().Delete().Remove(name); err != nil {
			t.Fatal(err)
		}
	}()

	if err := s.DeleteInvoice(inv.ID); err == nil {
		t.Fatal("delete must fail when a child deletion fails")
	}

	// the whole graph survives the rollback
	if _, err := s.GetInvoice(inv.ID); err != nil {
		t.Errorf("invoice gone after rolled-back delete: %v", err)
	}
	if _, err := s.GetTimesheet(sheetID); err != nil {
		t.Errorf("timesheet gone after rolled-back delete: %v", err)
	}
	if _, err := s.GetTimeTrackingItem(trackingID); err != nil {
		t.Errorf("tracking item gone after rolled-back delete: %v", err)
	}
	if _, err := s.GetInvoiceItem(itemID); err != nil {
		t.Errorf("invoice item gone after rolled-back delete: %v", err)
	}
}

func TestMarkRenderedPersists(t *testing.T) {
	s := setupStore(t)
	contract := seedContract(t, s)

	inv := &models.Invoice{Number: "2024-03-01-01", Date: date(2024, time.March, 1), ContractID: contract.ID, ProjectID: 1}
	if err := s.SaveInvoice(inv); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkInvoiceRendered(inv); err != nil {
		t.Fatal(err)
	}
	gotInv, err := s.GetInvoice(inv.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !gotInv.Rendered {
		t.Error("invoice rendered flag not persisted")
	}

	ts, _ := models.NewTimesheet("ts", 0, date(2024, time.March, 1), date(2024, time.March, 31))
	if err := s.SaveTimesheet(ts); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkTimesheetRendered(ts); err != nil {
		t.Fatal(err)
	}
	gotTs, err := s.GetTimesheet(ts.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !gotTs.Rendered {
		t.Error("timesheet rendered flag not persisted")
	}
}

func TestNextInvoiceCounter(t *testing.T) {
	s := setupStore(t)
	contract := seedContract(t, s)
	issue := date(2024, time.March, 1)
	n, err := s.NextInvoiceCounter(issue)
	if err != nil || n != 1 {
		t.Fatalf("counter = %d, %v; want 1 on a fresh day", n, err)
	}
	inv := &models.Invoice{Number: "2024-03-01-01", Date: issue, ContractID: contract.ID, ProjectID: 1}
	if err := s.SaveInvoice(inv); err != nil {
		t.Fatal(err)
	}
	n, err = s.NextInvoiceCounter(issue)
	if err != nil || n != 2 {
		t.Fatalf("counter = %d, %v; want 2 after one invoice", n, err)
	}
}
