package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Response is the envelope of every JSON answer
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Details   []string    `json:"details,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// writeJSON sends a JSON envelope around data
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	writeEnvelope(w, statusCode, Response{
		Success:   statusCode >= 200 && statusCode < 300,
		Data:      data,
		Timestamp: time.Now(),
	})
}

// writeError sends an error envelope
func writeError(w http.ResponseWriter, statusCode int, message string, err error, details ...string) {
	resp := Response{
		Success:   false,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.Error = err.Error()
	}
	writeEnvelope(w, statusCode, resp)
}

func writeEnvelope(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}
