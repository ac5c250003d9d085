package snapflag

import (
	"fmt"
	"sort"
	"time"

	"github.com/dzonerzy/go-snapflag/internal/pool"
)

// defaultMaxDistance is the edit distance used for "did you mean" suggestions.
const defaultMaxDistance = 2

// Flag is a registry entry: a name bound to a converter that writes through
// to a caller-owned destination.
type Flag struct {
	Name     string
	Usage    string
	Kind     ValueKind
	Optional bool   // Bound through OptionalVar
	DefValue string // Destination value at registration time, for usage output

	set func(text string) error
}

// IsBool reports whether the flag uses boolean syntax (no value consumed
// from the next token).
func (f *Flag) IsBool() bool {
	return f.Kind == KindBool
}

// FlagSet is a set of registered flags plus the state of one parsing session.
// The zero value is an empty, unnamed set ready for use.
//
// A FlagSet is not safe for concurrent use.
type FlagSet struct {
	name   string
	parsed bool
	args   []string
	formal map[string]*Flag

	maxDistance int
	noSuggest   bool
}

// NewFlagSet returns an empty flag set with the given name. The name is only
// used in usage output.
func NewFlagSet(name string) *FlagSet {
	return &FlagSet{
		name:   name,
		formal: make(map[string]*Flag),
	}
}

// Name returns the name of the flag set.
func (f *FlagSet) Name() string { return f.name }

// Parsed reports whether Parse has been called, regardless of its outcome.
func (f *FlagSet) Parsed() bool { return f.parsed }

// Args returns the positional arguments collected by the most recent Parse.
func (f *FlagSet) Args() []string { return f.args }

// NArg is the number of positional arguments.
func (f *FlagSet) NArg() int { return len(f.args) }

// Arg returns the i'th positional argument, or "" if it does not exist.
func (f *FlagSet) Arg(i int) string {
	if i < 0 || i >= len(f.args) {
		return ""
	}
	return f.args[i]
}

// SetSuggestions sets the maximum edit distance for suggesting a registered
// flag when an undefined one is given. A value <= 0 disables suggestions.
func (f *FlagSet) SetSuggestions(maxDistance int) {
	f.noSuggest = maxDistance <= 0
	f.maxDistance = maxDistance
}

// Lookup returns the registry entry for name, or nil.
func (f *FlagSet) Lookup(name string) *Flag {
	return f.formal[name]
}

// VisitAll calls fn for every registered flag in lexicographical order.
func (f *FlagSet) VisitAll(fn func(*Flag)) {
	names := f.names()
	defer pool.PutStringSlice(names)

	sort.Strings(*names)
	for _, name := range *names {
		fn(f.formal[name])
	}
}

// names collects the registered flag names into a pooled slice. The caller
// returns it with pool.PutStringSlice.
func (f *FlagSet) names() *[]string {
	names := pool.GetStringSlice()
	for name := range f.formal {
		*names = append(*names, name)
	}
	return names
}

// register stores flag under its name. Names are not validated and a later
// registration replaces an earlier one.
func (f *FlagSet) register(flag *Flag) {
	if f.formal == nil {
		f.formal = make(map[string]*Flag)
	}
	f.formal[flag.Name] = flag
}

// Var registers a flag that converts its value to T and stores it in *dst.
// The set retains dst and writes through it during Parse; dst is left
// untouched when the flag does not appear. It panics if dst is nil.
func Var[T Scalar](f *FlagSet, dst *T, name, usage string) {
	if dst == nil {
		panic("snapflag: nil destination for flag " + name)
	}
	kind := kindOf[T]()
	f.register(&Flag{
		Name:     name,
		Usage:    usage,
		Kind:     kind,
		DefValue: fmt.Sprint(*dst),
		set: func(text string) error {
			v, err := parseValue(kind, text)
			if err != nil {
				return err
			}
			*dst = v.(T)
			return nil
		},
	})
}

// OptionalVar registers a flag bound to an Optional. The Optional becomes
// present only when the flag is given and its value converts.
func OptionalVar[T Scalar](f *FlagSet, dst *Optional[T], name, usage string) {
	if dst == nil {
		panic("snapflag: nil destination for flag " + name)
	}
	kind := kindOf[T]()
	def := ""
	if v, ok := dst.Get(); ok {
		def = fmt.Sprint(v)
	}
	f.register(&Flag{
		Name:     name,
		Usage:    usage,
		Kind:     kind,
		Optional: true,
		DefValue: def,
		set: func(text string) error {
			v, err := parseValue(kind, text)
			if err != nil {
				return err
			}
			*dst = Some(v.(T))
			return nil
		},
	})
}

// Typed registration helpers

// BoolVar registers a boolean flag.
func (f *FlagSet) BoolVar(dst *bool, name, usage string) { Var(f, dst, name, usage) }

// IntVar registers an int flag.
func (f *FlagSet) IntVar(dst *int, name, usage string) { Var(f, dst, name, usage) }

// Int64Var registers an int64 flag.
func (f *FlagSet) Int64Var(dst *int64, name, usage string) { Var(f, dst, name, usage) }

// Float32Var registers a float32 flag. Values follow strconv.ParseFloat, so
// besides decimal and exponent forms it accepts "inf", "NaN" and hexadecimal
// floats such as "0x1p3".
func (f *FlagSet) Float32Var(dst *float32, name, usage string) { Var(f, dst, name, usage) }

// Float64Var registers a float64 flag. It accepts the same forms as
// Float32Var, including "inf", "NaN" and hexadecimal floats.
func (f *FlagSet) Float64Var(dst *float64, name, usage string) { Var(f, dst, name, usage) }

// StringVar registers a string flag.
func (f *FlagSet) StringVar(dst *string, name, usage string) { Var(f, dst, name, usage) }

// DurationVar registers a time.Duration flag.
func (f *FlagSet) DurationVar(dst *time.Duration, name, usage string) { Var(f, dst, name, usage) }
