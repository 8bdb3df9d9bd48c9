package domain

import (
	"fmt"
	"strings"
)

// FieldError describes a single invalid form field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// ValidationError collects every invalid field in a request so the
// form layer can surface all problems at once. Generation is blocked
// until the request validates.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid order request"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid order request: " + strings.Join(msgs, "; ")
}

// Add appends a field error.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Addf appends a field error for an indexed field such as a task line.
func (e *ValidationError) Addf(fieldFormat string, index int, message string) {
	e.Add(fmt.Sprintf(fieldFormat, index), message)
}

// ByField returns the first message recorded for the given field,
// or "" if the field validated.
func (e *ValidationError) ByField(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// RenderError wraps a failure inside document assembly. It is not
// retried automatically and no partial document is ever returned
// alongside it.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering document: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
