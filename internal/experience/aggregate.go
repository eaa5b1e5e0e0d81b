package experience

import (
	"math"
	"time"

	"talentlens/internal/logging"
	"talentlens/pkg/models"
)

// Result is the outcome of aggregating the work experience entries of one
// resume. Records holds the surviving entries in input order, each with its
// experience_years field populated. Dropped counts the entries excluded under
// the drop-on-parse-failure policy: an entry whose employment_dates field
// cannot be parsed is removed from the output entirely rather than kept with
// a zero duration, and the count is exposed so the loss is observable.
type Result struct {
	TotalYears float64
	Records    []models.JobRecord
	Dropped    int
}

// Aggregate walks the work experience entries, parses each employment date
// range, and accumulates total experience in fractional years. Ongoing
// ("Present") ranges resolve against the supplied instant, so one request
// resolves every record against the same clock and tests can pin it.
//
// Each record's experience_years is rounded to one decimal for display; the
// running total accumulates the unrounded values and is rounded once after
// summation. The two orders are not numerically identical and this one is
// pinned by a regression test.
func Aggregate(records []models.JobRecord, now time.Time) Result {
	logger := logging.GetGlobalLogger()

	var total float64
	kept := make([]models.JobRecord, 0, len(records))
	dropped := 0

	for _, job := range records {
		raw, _ := job[models.EmploymentDatesKey].(string)

		rng, err := ParseRange(raw)
		if err != nil {
			logger.Warn("Could not parse dates for job, dropping record", map[string]interface{}{
				"employment_dates": raw,
				"error":            err.Error(),
			})
			dropped++
			continue
		}

		years, err := rng.Years(now)
		if err != nil {
			logger.Warn("Inverted date range for job, dropping record", map[string]interface{}{
				"employment_dates": raw,
				"error":            err.Error(),
			})
			dropped++
			continue
		}

		total += years
		job[models.ExperienceYearsKey] = round1(years)
		kept = append(kept, job)
	}

	return Result{
		TotalYears: round1(total),
		Records:    kept,
		Dropped:    dropped,
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RecordsFromAny converts the decoded work_experience value of a resume parse
// into job records. Entries that are not JSON objects are discarded; the
// model occasionally emits a bare string where an object belongs.
func RecordsFromAny(raw interface{}) []models.JobRecord {
	entries, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	records := make([]models.JobRecord, 0, len(entries))
	for _, entry := range entries {
		if record, ok := entry.(map[string]interface{}); ok {
			records = append(records, models.JobRecord(record))
		}
	}
	return records
}
