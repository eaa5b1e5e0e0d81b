package processors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CoercionError reports an LLM reply that could not be coerced into a JSON
// object. Raw carries the original reply so handlers can log or surface it.
type CoercionError struct {
	Raw string
	Err error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("failed to coerce LLM response to JSON: %v", e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

// CleanJSONBlock strips markdown code fences that models often wrap around
// JSON replies, then trims surrounding whitespace. The content between the
// fences is returned untouched.
func CleanJSONBlock(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	return strings.TrimSpace(cleaned)
}

// CoerceJSONObject turns a raw LLM reply into a decoded JSON object. The reply
// is stripped of code fences and whitespace, checked for object boundaries,
// and parsed. If strict parsing fails, one repair is attempted: single quotes
// are rewritten to double quotes and the parse is retried. The repair only
// runs after a failed strict parse so that valid documents containing
// apostrophes are never rewritten.
func CoerceJSONObject(raw string) (map[string]interface{}, error) {
	cleaned := CleanJSONBlock(raw)

	if !strings.HasPrefix(cleaned, "{") || !strings.HasSuffix(cleaned, "}") {
		return nil, &CoercionError{Raw: raw, Err: fmt.Errorf("response is not a JSON object")}
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
		return result, nil
	}

	repaired := strings.ReplaceAll(cleaned, "'", `"`)
	if err := json.Unmarshal([]byte(repaired), &result); err != nil {
		return nil, &CoercionError{Raw: raw, Err: err}
	}

	return result, nil
}
