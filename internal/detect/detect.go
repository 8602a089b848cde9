// Package detect decides whether a freshly observed page differs from the
// stored baseline. Compare is a pure function; both checks run independently
// and either alone marks the run as changed.
package detect

import (
	"fmt"
	"time"

	"github.com/elijaffe/rolewatch/internal/state"
)

// Observation is what the current run extracted from the page. A nil
// UpdateDate means the page carried no "last update" stamp.
type Observation struct {
	UpdateDate  *time.Time
	Fingerprint string
}

// Report lists the detected changes in human-readable form. Messages is
// empty exactly when Changed is false.
type Report struct {
	Changed  bool
	Messages []string
}

const dateLayout = "2006-01-02"

// Compare checks the observation against the baseline. The update-date check
// fires only when the page carries a date and it differs from the stored one
// (a previously absent date counts as differing). The fingerprint check
// fires whenever the digests differ, including against an absent baseline.
func Compare(cur Observation, prev state.Baseline) Report {
	var r Report

	if cur.UpdateDate != nil && (prev.UpdateDate == nil || !cur.UpdateDate.Equal(*prev.UpdateDate)) {
		r.Changed = true
		r.Messages = append(r.Messages, fmt.Sprintf(
			"Page update date changed: %s -> %s",
			formatDate(prev.UpdateDate), cur.UpdateDate.Format(dateLayout)))
	}

	if cur.Fingerprint != prev.Fingerprint {
		r.Changed = true
		r.Messages = append(r.Messages, "Table content has changed since last check.")
	}

	return r
}

func formatDate(d *time.Time) string {
	if d == nil {
		return "(none)"
	}
	return d.Format(dateLayout)
}
