package models

// ProcessQueryRequest is the body of a structured-query request
type ProcessQueryRequest struct {
	Query string `json:"query" validate:"required"`
}

// MatchRequest is the body of a match request. Both sides are model-shaped
// JSON documents produced by the parse endpoints.
type MatchRequest struct {
	JobDescription struct {
		ParsedData map[string]interface{} `json:"parsed_data"`
	} `json:"job_description"`
	Resume struct {
		Response map[string]interface{} `json:"response"`
	} `json:"resume"`
}
