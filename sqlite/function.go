package sqlite

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"

	"github.com/viant/uuidb64"
	msqlite "modernc.org/sqlite"
)

const (
	// FromTextFunction converts canonical text into hyphenated hex.
	FromTextFunction = "b64uuid"
	// ToTextFunction converts hyphenated hex or a 16 byte blob into canonical text.
	ToTextFunction = "uuidb64"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the translation functions. It is safe to call multiple
// times; the first result wins.
func Register() error {
	registerOnce.Do(func() {
		if err := msqlite.RegisterDeterministicScalarFunction(FromTextFunction, 1, fromText); err != nil {
			registerErr = fmt.Errorf("register %v: %w", FromTextFunction, err)
			return
		}
		if err := msqlite.RegisterDeterministicScalarFunction(ToTextFunction, 1, toText); err != nil {
			registerErr = fmt.Errorf("register %v: %w", ToTextFunction, err)
		}
	})
	return registerErr
}

// Open registers the translation functions and opens a SQLite database.
func Open(dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("dsn is required")
	}
	if err := Register(); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

func fromText(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch actual := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return textToHex(actual)
	case []byte:
		return textToHex(string(actual))
	default:
		return nil, fmt.Errorf("%v: unsupported argument type %T", FromTextFunction, actual)
	}
}

func toText(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch actual := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		id, err := uuidb64.ParseHex(actual)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", ToTextFunction, err)
		}
		return id.String(), nil
	case []byte:
		id, err := uuidb64.FromBytes(actual)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", ToTextFunction, err)
		}
		return id.String(), nil
	default:
		return nil, fmt.Errorf("%v: unsupported argument type %T", ToTextFunction, actual)
	}
}

func textToHex(text string) (driver.Value, error) {
	id, err := uuidb64.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", FromTextFunction, err)
	}
	return id.Hex(), nil
}
