package typeduuid

import (
	"database/sql/driver"
)

// Scan implements sql.Scanner. It accepts the same inputs as uuid.UUID.Scan:
// strings, 16-byte or textual byte slices, and NULL (leaving the nil UUID).
func (id *UUID[K]) Scan(src any) error {
	if err := id.uuid.Scan(src); err != nil {
		return newParseError[K](err)
	}
	return nil
}

// Value implements driver.Valuer, storing the canonical string form.
func (id UUID[K]) Value() (driver.Value, error) {
	return id.uuid.Value()
}
