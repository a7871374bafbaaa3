package structure

import "fmt"

// StructuralError reports a failure of the underlying syntax: malformed or
// truncated input on read, a mis-nested element stream on write. It is always
// fatal to the current decode.
type StructuralError struct {
	Source string
	Err    error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error in %s: %v", e.Source, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// LiteralFormatError reports a present value whose text cannot be parsed as
// the type its field declares.
type LiteralFormatError struct {
	Field string
	Text  string
	Want  string
	Err   error
}

func (e *LiteralFormatError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("invalid value %q for %q", e.Text, e.Field)
	}
	return fmt.Sprintf("invalid value %q for %q: expected %s", e.Text, e.Field, e.Want)
}

func (e *LiteralFormatError) Unwrap() error { return e.Err }

// MissingFieldError reports a field the decoded shape requires but the
// element does not carry. It is fatal to that one definition only.
type MissingFieldError struct {
	Definition string
	Field      string
}

func (e *MissingFieldError) Error() string {
	if e.Definition == "" {
		return fmt.Sprintf("missing required field %q", e.Field)
	}
	return fmt.Sprintf("%s: missing required field %q", e.Definition, e.Field)
}
