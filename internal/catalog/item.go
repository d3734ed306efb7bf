package catalog

// Item is one catalog entry. Identity is (Category, Position), stable for
// the lifetime of a catalog load; items are read-only at runtime.
type Item struct {
	Category    string `db:"category"`
	Position    int    `db:"position"`
	Name        string `db:"name"`
	Price       string `db:"price"`
	Description string `db:"description"`
	// Photo is an optional media reference (file path or Telegram file ID).
	Photo string `db:"photo"`
}
