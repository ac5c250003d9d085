package snapflag

import (
	"errors"
	"strconv"
)

// ErrorType represents the category of a parse failure.
// These categories drive exit-code mapping (via ExitCodeManager) and suggestion logic.
type ErrorType string

const (
	// ErrorTypeHelp is returned when -help or -h is given and not registered as a flag.
	// It is a designed short-circuit rather than a real failure.
	ErrorTypeHelp ErrorType = "help"
	// ErrorTypeNumArgs is returned when the argument vector lacks the program name slot.
	ErrorTypeNumArgs ErrorType = "num_args"
	// ErrorTypeBadSyntax is returned when a flag body begins with '-' or '='.
	ErrorTypeBadSyntax ErrorType = "bad_syntax"
	// ErrorTypeUndefinedFlag is returned for flags that were never registered.
	ErrorTypeUndefinedFlag ErrorType = "undefined_flag"
	// ErrorTypeMissingValue is returned when a non-boolean flag has no value to consume.
	ErrorTypeMissingValue ErrorType = "missing_value"
	// ErrorTypeBadValue is returned when a converter rejects the value text.
	ErrorTypeBadValue ErrorType = "bad_value"
)

// ErrHelp matches, via errors.Is, any ParseError of type ErrorTypeHelp.
var ErrHelp = errors.New("help requested")

// ParseError is the single error value produced by a failed Parse call.
type ParseError struct {
	Type       ErrorType
	Message    string
	Flag       string // Flag name involved, without dashes
	Value      string // Offending value text (BadValue only)
	Suggestion string // Closest registered flag name (UndefinedFlag only)
	Err        error  // Converter failure (BadValue only)
}

func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap exposes the converter failure behind a BadValue error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrHelp and this is a help request.
func (e *ParseError) Is(target error) bool {
	return target == ErrHelp && e.Type == ErrorTypeHelp
}

// NewParseError creates a new ParseError with the given type and message
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    errType,
		Message: message,
	}
}

// IsType reports whether err is a *ParseError of the given type.
func IsType(err error, typ ErrorType) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Type == typ
}

// ValueError is a converter failure: the text could not be turned into a value of Kind.
type ValueError struct {
	Kind ValueKind
	Msg  string
}

func (e *ValueError) Error() string {
	return e.Msg
}

func badSyntax(body string) *ParseError {
	return &ParseError{Type: ErrorTypeBadSyntax, Message: "bad flag syntax: " + body}
}

func undefinedFlag(name, suggestion string) *ParseError {
	return &ParseError{
		Type:       ErrorTypeUndefinedFlag,
		Message:    "flag provided but not defined: " + name,
		Flag:       name,
		Suggestion: suggestion,
	}
}

func missingValue(name string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingValue,
		Message: "flag is missing a value: " + name,
		Flag:    name,
	}
}

func badValue(flag *Flag, value string, err error) *ParseError {
	msg := "bad value " + strconv.Quote(value) + " for flag " + flag.Name + ": " + err.Error()
	if flag.IsBool() {
		msg = "bad boolean value " + strconv.Quote(value) + " for flag " + flag.Name + ": " + err.Error()
	}
	return &ParseError{
		Type:    ErrorTypeBadValue,
		Message: msg,
		Flag:    flag.Name,
		Value:   value,
		Err:     err,
	}
}
