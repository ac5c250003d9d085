package snapflag

import "errors"

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2}
}

// ExitCodeManager maps parse results to process exit codes.
// The zero value uses the default mapping.
type ExitCodeManager struct {
	codesByType map[ErrorType]int
	defaults    ExitCodeDefaults
	custom      bool // Default was called
}

// NewExitCodeManager returns a manager with the default mapping: help is a
// success, every other parse error is a misusage, anything else is a
// general error.
func NewExitCodeManager() *ExitCodeManager {
	return &ExitCodeManager{
		codesByType: make(map[ErrorType]int),
	}
}

// Define overrides the exit code used for a parse error category.
func (m *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	if m.codesByType == nil {
		m.codesByType = make(map[ErrorType]int)
	}
	m.codesByType[typ] = code
	return m
}

// Default replaces the manager's default codes. Categories registered with
// Define keep their codes.
func (m *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	m.defaults, m.custom = d, true
	return m
}

// Resolve converts an error returned by Parse to an exit code.
// Precedence:
//  1. nil is Success
//  2. ParseError category mapping (Define)
//  3. help is Success, any other ParseError is MisusageError
//  4. GeneralError
func (m *ExitCodeManager) Resolve(err error) int {
	d := m.defaults
	if !m.custom {
		d = defaultExitDefaults()
	}
	if err == nil {
		return d.Success
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		if code, ok := m.codesByType[pe.Type]; ok {
			return code
		}
		if pe.Type == ErrorTypeHelp {
			return d.Success
		}
		return d.MisusageError
	}
	return d.GeneralError
}

var defaultExitCodes = NewExitCodeManager()

// ExitCode resolves err with the default mapping.
func ExitCode(err error) int {
	return defaultExitCodes.Resolve(err)
}
