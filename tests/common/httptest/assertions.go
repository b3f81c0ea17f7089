//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorBody mirrors the JSON error envelope written by the handlers.
type ErrorBody struct {
	Message string `json:"message"`
	Detail  any    `json:"detail"`
}

// Field is the form field named by a 422 detail, or "".
func (b ErrorBody) Field() string {
	detail, _ := b.Detail.(map[string]any)
	field, _ := detail["field"].(string)
	return field
}

func DecodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var envelope struct {
		Error ErrorBody `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "error body: %s", w.Body.String())
	return envelope.Error
}

// AssertSuccessResponse checks the status and, when target is set, decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target != nil && expectedStatus < 300 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error message contains expectedMsg.
// An empty expectedMsg only checks the envelope.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "body: %s", w.Body.String())
	body := DecodeError(t, w)
	if expectedMsg != "" {
		assert.Contains(t, body.Message, expectedMsg)
	}
	return body
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s", k)
	}
}
