package models

import "fmt"

// ImportError classifications
const (
	ErrorTypeValidation = "Validation"
	ErrorTypeData       = "Data"
	ErrorTypeResolution = "Resolution"
)

// ImportError is one structured problem found during import or
// validation. RowNumber is the 1-based spreadsheet row, 0 for
// sheet-level errors.
type ImportError struct {
	Field     string `json:"field"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	RowNumber int    `json:"row_number,omitempty"`
}

// ImportResult is the caller-visible outcome of one import or
// validation invocation. It is never persisted.
type ImportResult struct {
	Success           bool          `json:"success"`
	TotalRecords      int           `json:"processed_count"`
	SuccessfulRecords int           `json:"success_count"`
	FailedRecords     int           `json:"error_count"`
	Messages          []string      `json:"messages"`
	Errors            []ImportError `json:"errors"`
}

// NewImportResult returns an empty, successful result. Success stays
// true until a row or sheet reports a failure.
func NewImportResult() *ImportResult {
	return &ImportResult{
		Success:  true,
		Messages: []string{},
		Errors:   []ImportError{},
	}
}

// AddError records a structured error and flips Success.
func (r *ImportResult) AddError(field, message, errType string, rowNumber int) {
	r.Success = false
	r.Errors = append(r.Errors, ImportError{
		Field:     field,
		Message:   message,
		Type:      errType,
		RowNumber: rowNumber,
	})
}

// AddMessage appends a human-readable progress message.
func (r *ImportResult) AddMessage(format string, args ...interface{}) {
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}

// Merge folds another result into this one. Success is the conjunction,
// so one failing sheet or row marks the aggregate unsuccessful.
func (r *ImportResult) Merge(other *ImportResult) {
	if other == nil {
		return
	}
	r.Success = r.Success && other.Success
	r.TotalRecords += other.TotalRecords
	r.SuccessfulRecords += other.SuccessfulRecords
	r.FailedRecords += other.FailedRecords
	r.Messages = append(r.Messages, other.Messages...)
	r.Errors = append(r.Errors, other.Errors...)
}

// HasRowError reports whether any collected error refers to the given
// spreadsheet row.
func (r *ImportResult) HasRowError(rowNumber int) bool {
	for _, e := range r.Errors {
		if e.RowNumber == rowNumber {
			return true
		}
	}
	return false
}
