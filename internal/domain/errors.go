package domain

import "errors"

var (
	// ErrNotFound signals that a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidState signals a state token outside the known enum.
	ErrInvalidState = errors.New("invalid transaction state")
)

// FieldGeneral collects errors that are not attributable to a single
// input field, such as persistence failures surfaced to the caller.
const FieldGeneral = "general"

// FieldErrors maps a field name to an ordered list of human-readable
// messages. Callers render the first message per field for compact display.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// First returns the first message recorded for a field, or "".
func (fe FieldErrors) First(field string) string {
	if msgs := fe[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (fe FieldErrors) HasField(field string) bool { return len(fe[field]) > 0 }

func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// GeneralErrors wraps a single non-field message into the error mapping,
// so downstream failures share the validation error shape.
func GeneralErrors(message string) FieldErrors {
	return FieldErrors{FieldGeneral: []string{message}}
}

// Error makes FieldErrors usable as an error value.
func (fe FieldErrors) Error() string {
	if msg := fe.First(FieldGeneral); msg != "" {
		return msg
	}
	for field, msgs := range fe {
		if len(msgs) > 0 {
			return field + ": " + msgs[0]
		}
	}
	return "validation failed"
}
