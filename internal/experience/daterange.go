package experience

import (
	"fmt"
	"strings"
	"time"
)

// monthYearLayout accepts full English month names only. time.Parse matches
// month names case-insensitively but rejects abbreviations and numeric forms,
// which is exactly the accepted input shape.
const monthYearLayout = "January 2006"

// rangeSeparator is the literal separator between the two sides of an
// employment date range, e.g. "January 2015 - Present".
const rangeSeparator = " - "

// DateRange is one parsed employment date range. When Ongoing is set the End
// field is zero and the range is still active; callers resolve it against
// their own clock via EndAt.
type DateRange struct {
	Start   time.Time
	End     time.Time
	Ongoing bool
}

// EndAt returns the effective end of the range, resolving an ongoing range to
// the supplied instant.
func (r DateRange) EndAt(now time.Time) time.Time {
	if r.Ongoing {
		return now
	}
	return r.End
}

// ParseRange parses a human-written employment date range of the form
// "<Month> <Year> - <Month> <Year>" or "<Month> <Year> - Present". The end
// markers "present" and "current" are recognized in any case. Any other shape
// is a parse error; the error is per-record and callers are expected to keep
// going.
func ParseRange(raw string) (DateRange, error) {
	parts := strings.Split(raw, rangeSeparator)
	if len(parts) != 2 {
		return DateRange{}, fmt.Errorf("employment dates %q: expected \"<start> - <end>\"", raw)
	}

	start, err := time.Parse(monthYearLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return DateRange{}, fmt.Errorf("employment dates %q: invalid start: %w", raw, err)
	}

	endStr := strings.TrimSpace(parts[1])
	switch strings.ToLower(endStr) {
	case "present", "current":
		return DateRange{Start: start, Ongoing: true}, nil
	}

	end, err := time.Parse(monthYearLayout, endStr)
	if err != nil {
		return DateRange{}, fmt.Errorf("employment dates %q: invalid end: %w", raw, err)
	}

	return DateRange{Start: start, End: end}, nil
}

// Years computes the duration of the range in fractional years at month
// granularity: whole years plus remainder months divided by twelve. Day and
// time components are ignored, matching the precision of resume date ranges.
// A range that ends before it starts yields an error so callers can treat it
// like any other malformed entry.
func (r DateRange) Years(now time.Time) (float64, error) {
	end := r.EndAt(now)

	months := (end.Year()-r.Start.Year())*12 + int(end.Month()) - int(r.Start.Month())
	if months < 0 {
		return 0, fmt.Errorf("employment dates end %s before start %s",
			end.Format(monthYearLayout), r.Start.Format(monthYearLayout))
	}

	return float64(months/12) + float64(months%12)/12, nil
}
