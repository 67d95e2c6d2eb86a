package calendar

// Cache holds the most recently normalized interval table for the
// calling flow. It replaces an in-memory singleton: the owner creates
// it, passes it along, and clears it explicitly.
type Cache struct {
	rows []Interval
}

func NewCache() *Cache { return &Cache{} }

// Store replaces the cached table.
func (c *Cache) Store(rows []Interval) {
	c.rows = rows
}

// Table returns the cached table and whether one has been stored.
func (c *Cache) Table() ([]Interval, bool) {
	if c.rows == nil {
		return nil, false
	}
	return c.rows, true
}

func (c *Cache) Clear() { c.rows = nil }
