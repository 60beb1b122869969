package output

import (
	"github.com/cronozapp/cronoz/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// StatusResponse represents the status output in JSON.
type StatusResponse struct {
	Status         string            `json:"status"`
	ActiveRecord   *model.TimeRecord `json:"activeRecord,omitempty"`
	ElapsedSeconds float64           `json:"elapsedSeconds,omitempty"`
}

// StartResponse represents the start command output in JSON.
type StartResponse struct {
	Status        string            `json:"status"`
	Record        *model.TimeRecord `json:"record"`
	StoppedRecord *model.TimeRecord `json:"stoppedRecord,omitempty"`
}

// StopResponse represents the stop command output in JSON.
type StopResponse struct {
	Status string            `json:"status"`
	Record *model.TimeRecord `json:"record,omitempty"`
}

// ErrorResponse represents an error in JSON output.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintError prints an error response.
func (j *JSONFormatter) PrintError(code, message, suggestion string) error {
	return j.JSON(ErrorResponse{Error: code, Message: message, Suggestion: suggestion})
}
