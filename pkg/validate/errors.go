package validate

import "strings"

// FieldError is a single user-correctable problem with one form field. The
// message is display copy, not an error code.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects every failing field for one validation pass. A nil or
// empty slice means the record is valid.
type FieldErrors []FieldError

// Valid reports whether the validation pass produced no errors.
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// ByField returns the message for a field, or "" when the field passed.
func (e FieldErrors) ByField(name string) string {
	for _, fe := range e {
		if fe.Field == name {
			return fe.Message
		}
	}
	return ""
}

// Fields returns the names of every failing field in report order.
func (e FieldErrors) Fields() []string {
	if len(e) == 0 {
		return nil
	}
	out := make([]string, 0, len(e))
	for _, fe := range e {
		out = append(out, fe.Field)
	}
	return out
}

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validate: no errors"
	}
	var b strings.Builder
	b.WriteString("validate: ")
	for i, fe := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
}
