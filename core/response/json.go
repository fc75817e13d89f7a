// Package response shapes the JSON envelope shared by every endpoint:
// {ok, statusCode, ...} on success, {ok:false, statusCode, error} on
// failure, mirroring what the guide clients already consume.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the common response wrapper. Extra carries endpoint-specific
// fields that are flattened into the top-level JSON object.
type Envelope struct {
	OK         bool           `json:"ok"`
	StatusCode int            `json:"statusCode"`
	Message    string         `json:"message,omitempty"`
	Error      string         `json:"error,omitempty"`
	Extra      map[string]any `json:"-"`
}

// MarshalJSON flattens Extra into the envelope object.
func (e Envelope) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"ok":         e.OK,
		"statusCode": e.StatusCode,
	}
	if e.Message != "" {
		out["message"] = e.Message
	}
	if e.Error != "" {
		out["error"] = e.Error
	}
	for k, v := range e.Extra {
		out[k] = v
	}
	return json.Marshal(out)
}

// JSON writes v as an application/json response with the given status.
// Encoding goes directly to the response writer.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if status == http.StatusNoContent || v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a success envelope with optional extra fields.
func OK(w http.ResponseWriter, status int, extra map[string]any) {
	JSON(w, status, Envelope{OK: true, StatusCode: status, Extra: extra})
}

// Fail writes a failure envelope with an error message.
func Fail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{OK: false, StatusCode: status, Error: msg})
}

// FailWith writes a failure envelope with extra fields, used where clients
// branch on flags like expired:true.
func FailWith(w http.ResponseWriter, status int, msg string, extra map[string]any) {
	JSON(w, status, Envelope{OK: false, StatusCode: status, Message: msg, Extra: extra})
}
