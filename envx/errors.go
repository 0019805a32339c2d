package envx

import (
	"fmt"
	"strings"
)

// ErrorCode defines string error
type ErrorCode string

// ErrorCode returns error message
func (e ErrorCode) Error() string {
	return string(e)
}

// ErrRequired indicates that required value is missing
const ErrRequired = ErrorCode("value is required")

// Error describes a problem with a single variable.
type Error struct {
	VarName string
	Reason  string
	Cause   error
}

func (e Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "variable %q", e.VarName)
	if e.Reason != "" {
		sb.WriteByte(' ')
		sb.WriteString(e.Reason)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

func (e Error) Unwrap() error {
	return e.Cause
}
