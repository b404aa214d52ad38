package uuidb64

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer. The hyphenated hex form is used so the
// value can be stored in a database's native UUID column.
func (u UUID) Value() (driver.Value, error) {
	return u.Hex(), nil
}

// Scan implements sql.Scanner. It accepts 16 raw bytes, the canonical text
// form, or any form understood by ParseHex. NULL and empty text scan as Nil.
//
// A []byte of exactly 16 bytes is always taken as the raw identifier, even
// when it happens to be printable text; the same 16 characters given as a
// string are parsed as text and rejected.
func (u *UUID) Scan(src interface{}) error {
	switch actual := src.(type) {
	case nil:
		*u = Nil
		return nil
	case string:
		return u.scanText(actual)
	case []byte:
		if len(actual) == Size {
			copy(u[:], actual)
			return nil
		}
		return u.scanText(string(actual))
	default:
		return fmt.Errorf("uuidb64: unable to scan type %T into UUID", src)
	}
}

func (u *UUID) scanText(text string) error {
	if text == "" {
		*u = Nil
		return nil
	}
	var (
		id  UUID
		err error
	)
	if len(text) == EncodedLen {
		id, err = Parse(text)
	} else {
		id, err = ParseHex(text)
	}
	if err != nil {
		return err
	}
	*u = id
	return nil
}
