// Package listing defines the role-listing rows extracted from the monitored
// page and their canonical serialized form, which is both the persisted
// representation and the fingerprint domain.
package listing

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/gocarina/gocsv"
)

// RoleListing is one data row extracted from a published roles table. Every
// field is free text; the Level field carries the heading found above the
// table the row came from.
type RoleListing struct {
	Date     string `csv:"Date"`
	Loc      string `csv:"Loc."`
	Title    string `csv:"Title"`
	Company  string `csv:"Company"`
	Location string `csv:"Location"`
	Link     string `csv:"Link"`
	Level    string `csv:"Level"`
}

// Dataset is the ordered concatenation of rows across every table on the
// page, preserving table order and within-table row order.
type Dataset []RoleListing

// Empty reports whether the dataset contains no rows.
func (d Dataset) Empty() bool {
	return len(d) == 0
}

// CSV returns the canonical serialization: the fixed seven-column header
// followed by one record per row, in dataset order.
func (d Dataset) CSV() ([]byte, error) {
	var buf bytes.Buffer
	if err := gocsv.Marshal([]RoleListing(d), &buf); err != nil {
		return nil, fmt.Errorf("failed to serialize dataset: %w", err)
	}
	return buf.Bytes(), nil
}

// Fingerprint returns a hex digest of the canonical CSV serialization.
// Because the serialization fixes both column order and row order, the
// digest changes exactly when the ordered content changes.
func (d Dataset) Fingerprint() (string, error) {
	data, err := d.CSV()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
