package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON encodes v with the given status. Encoding errors are dropped once the
// header is written.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes {"error": message}.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// NoContent answers 204 with no body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// SafeMessage is the client-facing text for err. Statuses of 500 and above
// answer with the generic status text so internal errors never reach the view.
func SafeMessage(err error, status int) string {
	if status >= http.StatusInternalServerError || err == nil {
		return http.StatusText(status)
	}
	return err.Error()
}
