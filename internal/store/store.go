// Package store persists the entity graph in a single sqlite file.
//
// The store assumes one writing flow at a time: an entity loaded for
// editing is exclusively owned by its caller until saved. There is no
// optimistic locking; concurrent edits of the same entity are not
// supported and writes are serialized by sqlite as last-write-wins.
package store

import (
	"errors"
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fdelacroix/billable/internal/models"
)

// ErrNotFound reports a lookup by identifier that matched nothing.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *gorm.DB
}

func migrated() []interface{} {
	return []interface{}{
		&models.Address{}, &models.Contact{}, &models.Client{},
		&models.User{}, &models.BankAccount{},
		&models.Contract{}, &models.Project{},
		&models.Timesheet{}, &models.TimeTrackingItem{},
		&models.Invoice{}, &models.InvoiceItem{},
	}
}

// Open connects to the sqlite database at path and migrates the
// schema.
func Open(path string) (*Store, error) {
	return open(sqlite.Open(path))
}

// OpenInMemory opens a private in-memory database, one per name.
// Tests use it the same way the application uses Open.
func OpenInMemory(name string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	return open(sqlite.Open(dsn))
}

func open(dialector gorm.Dialector) (*Store, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, m := range migrated() {
		if err := db.AutoMigrate(m); err != nil {
			return nil, fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying handle for collaborators that run their
// own queries.
func (s *Store) DB() *gorm.DB { return s.db }

func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return err
}
