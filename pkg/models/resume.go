package models

// The resume document is model-shaped: the extraction prompt fixes the field
// names but nothing enforces them, and the job-description tree has no fixed
// shape at all. Both are therefore carried as generic JSON maps end to end,
// and only the keys the post-processing steps touch are named here.

// JobRecord is a single work_experience entry from the extracted resume.
type JobRecord = map[string]interface{}

// Keys of the resume document read or written during post-processing.
const (
	WorkExperienceKey  = "work_experience"
	TotalExperienceKey = "total_experience"
	EmploymentDatesKey = "employment_dates"
	ExperienceYearsKey = "experience_years"
)
