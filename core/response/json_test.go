package response_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudgyt/scaiguide/core/response"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestOK(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.OK(rec, 200, map[string]any{"sessionId": "abc"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(200), body["statusCode"])
	assert.Equal(t, "abc", body["sessionId"])
}

func TestFail(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.Fail(rec, 404, "Session does not exist")

	assert.Equal(t, 404, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Session does not exist", body["error"])
}

func TestFailWith(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.FailWith(rec, 404, "Session expired due to inactivity", map[string]any{"expired": true})

	body := decode(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, true, body["expired"])
	assert.Equal(t, "Session expired due to inactivity", body["message"])
}
