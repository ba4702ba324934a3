package jsonerr

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// rejection is the wire shape of an error response.
type rejection struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Reject writes a webhook rejection to w.
//
// Every rejection represents a malformed or unauthenticated request, never
// an internal fault, so the status is always 400 Bad Request.
func Reject(w http.ResponseWriter, err error) {
	Error(w, err, http.StatusBadRequest)
}

// Error writes structured error information to w using JSON encoding.
// The given status code is used if it is non-zero, otherwise it is
// set to 500.
//
// If err is nil it sets the status to 200 OK and writes:
//
//	{"code":"ok","message":""}
func Error(w http.ResponseWriter, err error, code int) {
	if code == 0 {
		code = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if err == nil {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"code":"ok","message":""}` + "\n"))
		return
	}

	data, _ := json.Marshal(&rejection{
		Code:    http.StatusText(code),
		Message: err.Error(),
	})
	w.WriteHeader(code)
	_, _ = w.Write(data)
}
