package api

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError sends the fixed client-facing message. The underlying error
// detail is only included outside production mode; production clients get
// the generic message and the detail stays in the server log.
func writeError(w http.ResponseWriter, status int, message string, err error, devMode bool) {
	if devMode && err != nil {
		message = err.Error()
	}
	writeJSON(w, status, map[string]string{"error": message})
}
