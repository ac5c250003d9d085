package snapflag

import (
	"strings"

	"github.com/dzonerzy/go-snapflag/internal/fuzzy"
	"github.com/dzonerzy/go-snapflag/internal/pool"
)

// parseState represents the current phase of the scanner
type parseState int

const (
	stateFlags parseState = iota
	statePositional
)

// scanner walks the argument vector left to right, once.
type scanner struct {
	set   *FlagSet
	args  []string // argv without the program name
	pos   int      // next unconsumed token
	state parseState
}

// Parse parses argv, whose first element is the program name and is always
// skipped. Flags are scanned until "--", the first non-flag token, or the end
// of input; everything after that is kept as positional arguments.
//
// Parsed reports true after any call, including a failed one. Positional
// arguments from a previous call are discarded. Parse stops at the first
// error, which is always a *ParseError.
func (f *FlagSet) Parse(argv []string) error {
	f.parsed = true
	f.args = []string{}

	if len(argv) < 1 {
		return NewParseError(ErrorTypeNumArgs, "at least 1 argument is needed")
	}

	s := &scanner{set: f, args: argv[1:]}
	for s.state == stateFlags && s.pos < len(s.args) {
		if err := s.parseOne(); err != nil {
			return err
		}
	}

	// Slurp up remaining positional arguments.
	f.args = append(f.args, s.args[s.pos:]...)
	return nil
}

// parseOne handles the token at s.pos. It either consumes a flag (and
// possibly its value) or switches the scanner to positional mode.
func (s *scanner) parseOne() error {
	arg := s.args[s.pos]
	if len(arg) < 2 || arg[0] != '-' {
		// Not a flag; this token starts the positional arguments.
		s.state = statePositional
		return nil
	}

	dashes := 1
	if arg[1] == '-' {
		dashes++
		if len(arg) == 2 {
			// "--" terminates the flags and is dropped.
			s.pos++
			s.state = statePositional
			return nil
		}
	}
	s.pos++

	body := arg[dashes:]
	if body[0] == '-' || body[0] == '=' {
		return badSyntax(body)
	}

	// '=' cannot be first, see above
	name, value, hasValue := body, "", false
	if eq := strings.IndexByte(body, '='); eq > 0 {
		name, value, hasValue = body[:eq], body[eq+1:], true
	}

	flag := s.set.formal[name]
	if flag == nil {
		if name == "help" || name == "h" {
			return NewParseError(ErrorTypeHelp, "")
		}
		return undefinedFlag(name, s.set.suggest(name))
	}

	switch {
	case flag.IsBool():
		if !hasValue {
			value = "true"
		}
	case !hasValue:
		// Value is the next argument
		if s.pos >= len(s.args) {
			return missingValue(name)
		}
		value = s.args[s.pos]
		s.pos++
	}

	if err := flag.set(value); err != nil {
		return badValue(flag, value, err)
	}
	return nil
}

// suggest finds the registered flag name closest to an undefined one.
func (f *FlagSet) suggest(name string) string {
	if f.noSuggest || len(f.formal) == 0 {
		return ""
	}
	maxDistance := f.maxDistance
	if maxDistance == 0 {
		maxDistance = defaultMaxDistance
	}
	names := f.names()
	defer pool.PutStringSlice(names)
	return fuzzy.FindBestFlag(name, *names, maxDistance)
}
