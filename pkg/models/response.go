package models

import "time"

// ErrorDetail is the failure envelope returned by the domain endpoints.
// Caller input errors carry a 400 status, processing failures a 500.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// ProcessQueryResponse is the response for a structured-query request
type ProcessQueryResponse struct {
	ParsedQuery  map[string]interface{} `json:"parsed_query"`
	ElasticQuery map[string]interface{} `json:"elastic_query"`
	QuerySent    time.Time              `json:"query_sent"`
}

// ParseJDResponse is the response for a job description parse request
type ParseJDResponse struct {
	Message    string                 `json:"message"`
	JobID      string                 `json:"job_id"`
	ParsedData map[string]interface{} `json:"parsed_data"`
}

// MatchResponse is the response for a resume/job-description match request
type MatchResponse struct {
	Message         string                                         `json:"message"`
	MatchingResults map[string]map[string]map[string]*MatchOutcome `json:"matching_results"`
	CategoryScores  map[string]float64                             `json:"category_scores"`
	OverallScore    float64                                        `json:"overall_score"`
}

// UploadResumeResponse is the response for a resume upload request
type UploadResumeResponse struct {
	Message     string                 `json:"message"`
	GPTResponse map[string]interface{} `json:"gpt_response"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response from the operational endpoints
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
