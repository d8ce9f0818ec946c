package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeededPassthrough(t *testing.T) {
	payload := `{"type":"task.phase","task_id":"t1"}`
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestTruncateIfNeededEnvelope(t *testing.T) {
	big := TaskPhasePayload{
		Type:    EventTypeTaskPhase,
		EventID: "e1",
		TaskID:  "t1",
		Phase:   "validating",
		Detail:  strings.Repeat("x", 9000),
	}
	payloadJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(payloadJSON))
	require.NoError(t, err)
	assert.Less(t, len(out), 7900)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, EventTypeTaskPhase, envelope["type"])
	assert.Equal(t, "t1", envelope["task_id"])
	assert.Equal(t, "e1", envelope["event_id"])
	assert.Equal(t, true, envelope["truncated"])
	assert.NotContains(t, out, "xxxx", "oversized detail dropped")
}

func TestTruncateEnvelopeOmitsEmptyEventID(t *testing.T) {
	big := TaskProgressPayload{
		Type:   EventTypeTaskProgress,
		TaskID: "t1",
		Detail: strings.Repeat("y", 9000),
	}
	payloadJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(payloadJSON))
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.NotContains(t, envelope, "event_id")
}

func TestBuildTruncatedPayloadRejectsMalformedJSON(t *testing.T) {
	_, err := buildTruncatedPayload([]byte("not json"))
	assert.Error(t, err)
}
