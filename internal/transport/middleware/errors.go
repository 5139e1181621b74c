package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody has the same shape as the REST handlers' error responses so
// clients parse one format whichever layer rejected the request.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message, Code: code})
}
