// Package extract pulls role-listing tables and the page's "last update"
// stamp out of the fetched HTML document.
package extract

import (
	"errors"
	"fmt"
)

// ErrNoTables indicates the page yielded zero usable tables. The caller
// treats this as "nothing to do" rather than a failure.
var ErrNoTables = errors.New("no parseable tables found on page")

// TableError represents a failure to parse a single table. It is recovered
// locally: the offending table is skipped and extraction continues.
type TableError struct {
	Table   int // 1-based position in document order
	Message string
	Cause   error
}

func (e *TableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("table %d: %s: %v", e.Table, e.Message, e.Cause)
	}
	return fmt.Sprintf("table %d: %s", e.Table, e.Message)
}

func (e *TableError) Unwrap() error {
	return e.Cause
}
