package interfaces

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

// Test doubles for the injected respond helpers, emitting the same
// envelope the composition root does.
func testRespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func testRespondError(w http.ResponseWriter, status int, message string, fieldErrors ...[]*financeErrors.ValidationError) {
	payload := map[string]interface{}{
		"success": false,
		"error":   message,
	}
	if len(fieldErrors) > 0 && len(fieldErrors[0]) > 0 {
		payload["errors"] = fieldErrors[0]
	}
	testRespondJSON(w, status, payload)
}

func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	if body == nil {
		return httptest.NewRequest(method, target, nil)
	}
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(method, target, bytes.NewReader(encoded))
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	return body
}

// fieldErrorMessages flattens the envelope's errors array into a
// field -> message map.
func fieldErrorMessages(t *testing.T, body map[string]interface{}) map[string]string {
	t.Helper()
	rawErrors, ok := body["errors"].([]interface{})
	require.True(t, ok, "expected errors array in %v", body)
	messages := make(map[string]string)
	for _, raw := range rawErrors {
		entry, ok := raw.(map[string]interface{})
		require.True(t, ok)
		messages[entry["field"].(string)] = entry["message"].(string)
	}
	return messages
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
