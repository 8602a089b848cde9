// Package state persists the monitor's baseline between runs: the last seen
// update date, the last content fingerprint, and the last combined dataset.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/elijaffe/rolewatch/internal/listing"
)

const (
	dateFile    = "last_update_date.txt"
	hashFile    = "last_data_hash.txt"
	datasetFile = "latest_combined.csv"

	dateLayout = "2006-01-02"
)

// Baseline is the previously persisted snapshot. A nil UpdateDate or empty
// Fingerprint means no prior value exists, which by construction never
// equals a freshly computed one.
type Baseline struct {
	UpdateDate  *time.Time
	Fingerprint string
}

// Store reads and writes the baseline files under one directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on the
// first Save, not here, so that runs which detect no change leave the
// filesystem untouched.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the persisted baseline. Missing files are not errors; they
// yield absent fields so a first-ever run always registers as a change.
func (s *Store) Load() (Baseline, error) {
	var b Baseline

	raw, err := os.ReadFile(filepath.Join(s.dir, dateFile))
	switch {
	case os.IsNotExist(err):
		// no prior date
	case err != nil:
		return Baseline{}, fmt.Errorf("failed to read %s: %w", dateFile, err)
	default:
		if text := strings.TrimSpace(string(raw)); text != "" {
			d, err := time.Parse(dateLayout, text)
			if err != nil {
				return Baseline{}, fmt.Errorf("malformed date in %s: %w", dateFile, err)
			}
			b.UpdateDate = &d
		}
	}

	raw, err = os.ReadFile(filepath.Join(s.dir, hashFile))
	switch {
	case os.IsNotExist(err):
		// no prior fingerprint
	case err != nil:
		return Baseline{}, fmt.Errorf("failed to read %s: %w", hashFile, err)
	default:
		b.Fingerprint = strings.TrimSpace(string(raw))
	}

	return b, nil
}

// Save overwrites the full baseline: update date, combined dataset, and the
// dataset's fingerprint. All three files are staged as temporaries first and
// renamed into place only after every stage succeeded, so a crash mid-save
// cannot leave the files pointing at inconsistent versions. A nil update
// date is persisted as an empty date file and loads back as absent.
func (s *Store) Save(updateDate *time.Time, ds listing.Dataset) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	csvData, err := ds.CSV()
	if err != nil {
		return err
	}
	fp, err := ds.Fingerprint()
	if err != nil {
		return err
	}

	dateText := ""
	if updateDate != nil {
		dateText = updateDate.Format(dateLayout)
	}

	files := []struct {
		name string
		data []byte
	}{
		{dateFile, []byte(dateText)},
		{datasetFile, csvData},
		{hashFile, []byte(fp)},
	}

	staged := make([]string, 0, len(files))
	defer func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}()

	for _, f := range files {
		tmp := filepath.Join(s.dir, f.name+".tmp")
		if err := os.WriteFile(tmp, f.data, 0o644); err != nil {
			return fmt.Errorf("failed to stage %s: %w", f.name, err)
		}
		staged = append(staged, tmp)
	}

	for i, f := range files {
		if err := os.Rename(staged[i], filepath.Join(s.dir, f.name)); err != nil {
			return fmt.Errorf("failed to replace %s: %w", f.name, err)
		}
	}
	staged = nil

	return nil
}
