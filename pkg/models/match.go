package models

// Match levels as emitted by the model. Anything outside this set is kept
// verbatim in the results but scores zero.
const (
	MatchLevelFull    = "Full match"
	MatchLevelPartial = "Partial match"
	MatchLevelNone    = "No match"
	MatchLevelError   = "Error"
)

// MatchScores maps a match level to its numeric score contribution.
var MatchScores = map[string]float64{
	MatchLevelFull:    1.0,
	MatchLevelPartial: 0.5,
	MatchLevelNone:    0.0,
	MatchLevelError:   0.0,
}

// MatchOutcome is the result of matching a single job requirement against a
// candidate resume.
type MatchOutcome struct {
	MatchLevel string `json:"match_level"`
	Reason     string `json:"reason"`
	Evidence   string `json:"evidence"`
}

// ScoreFor returns the numeric score for a match level. Unrecognized levels
// score zero.
func ScoreFor(level string) float64 {
	return MatchScores[level]
}
