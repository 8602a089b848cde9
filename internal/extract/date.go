package extract

import (
	"regexp"
	"time"
)

// updateDatePattern matches the human-authored stamp the page editors keep
// near the top of the page, e.g. "Last update: 4/12/25".
var updateDatePattern = regexp.MustCompile(`Last update:\s*(\d{1,2}/\d{1,2}/\d{2})`)

// UpdateDate scans page text for the "Last update:" stamp and returns the
// parsed date. A missing or unparseable stamp is not an error; the second
// return value reports whether a date was found.
func UpdateDate(text string) (time.Time, bool) {
	m := updateDatePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	d, err := time.Parse("1/2/06", m[1])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
