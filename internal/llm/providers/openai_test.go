package providers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentlens/pkg/models"
)

func marshalRequest(t *testing.T, req models.CompletionRequest) map[string]interface{} {
	t.Helper()

	raw, err := json.Marshal(chatCompletionRequest("gpt-4", req))
	require.NoError(t, err)

	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &wire))
	return wire
}

// A zero temperature must survive serialization: the wire field is omitempty,
// and losing it would silently run deterministic tasks at the API default.
func TestChatCompletionRequestSerializesZeroTemperature(t *testing.T) {
	wire := marshalRequest(t, models.CompletionRequest{
		Messages:    []models.Message{{Role: models.RoleUser, Content: "extract the query"}},
		MaxTokens:   500,
		Temperature: 0,
	})

	temperature, present := wire["temperature"]
	require.True(t, present, "temperature missing from serialized request")
	assert.Greater(t, temperature.(float64), 0.0)
	assert.Less(t, temperature.(float64), 1e-30)
}

func TestChatCompletionRequestKeepsExplicitTemperature(t *testing.T) {
	wire := marshalRequest(t, models.CompletionRequest{
		Messages:    []models.Message{{Role: models.RoleSystem, Content: "You are a helpful assistant."}},
		MaxTokens:   2000,
		Temperature: 0.7,
	})

	require.Contains(t, wire, "temperature")
	assert.InDelta(t, 0.7, wire["temperature"].(float64), 1e-6)
}

func TestChatCompletionRequestCarriesMessagesAndModel(t *testing.T) {
	wire := marshalRequest(t, models.CompletionRequest{
		Messages: []models.Message{
			{Role: models.RoleSystem, Content: "system text"},
			{Role: models.RoleUser, Content: "user text"},
		},
		MaxTokens: 750,
	})

	assert.Equal(t, "gpt-4", wire["model"])
	assert.Equal(t, float64(750), wire["max_tokens"])

	messages := wire["messages"].([]interface{})
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
	assert.Equal(t, "user", messages[1].(map[string]interface{})["role"])
}
