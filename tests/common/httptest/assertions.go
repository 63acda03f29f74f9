//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and, for 2xx with a target,
// decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, status int, target any) {
	t.Helper()

	if !assert.Equalf(t, status, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target == nil || status < 200 || status >= 300 {
		return
	}
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error message contains
// wantMsg. An empty wantMsg only checks that the body is an error envelope.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, wantMsg string) httperr.Response {
	t.Helper()

	assert.Equalf(t, status, w.Code, "body: %s", w.Body.String())

	var resp httperr.Response
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	if wantMsg != "" {
		assert.Contains(t, resp.Error.Message, wantMsg)
	}
	return resp
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, want map[string]string) {
	t.Helper()
	for k, v := range want {
		assert.Equalf(t, v, w.Header().Get(k), "header %s", k)
	}
}
