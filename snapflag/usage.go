package snapflag

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PrintDefaults writes one entry per registered flag, sorted by name, in the
// form:
//
//	-name kind
//	    	usage (default value)
//
// Boolean flags omit the kind. The default is shown when it differs from the
// zero value of the flag's kind.
func (f *FlagSet) PrintDefaults(w io.Writer) {
	_, _ = io.WriteString(w, f.Defaults())
}

// Defaults returns the text written by PrintDefaults.
func (f *FlagSet) Defaults() string {
	var b strings.Builder
	f.VisitAll(func(flag *Flag) {
		b.WriteString("  -")
		b.WriteString(flag.Name)
		if !flag.IsBool() {
			b.WriteString(" ")
			b.WriteString(flag.Kind.String())
		}
		if flag.Optional {
			b.WriteString(" (optional)")
		}
		b.WriteString("\n    \t")
		b.WriteString(strings.ReplaceAll(flag.Usage, "\n", "\n    \t"))
		if !isZeroValue(flag) {
			if flag.Kind == KindString {
				fmt.Fprintf(&b, " (default %s)", strconv.Quote(flag.DefValue))
			} else {
				fmt.Fprintf(&b, " (default %s)", flag.DefValue)
			}
		}
		b.WriteString("\n")
	})
	return b.String()
}

// Usage returns a complete usage block: a header naming the set followed by
// the flag defaults.
func (f *FlagSet) Usage() string {
	name := f.name
	if name == "" {
		name = "command"
	}
	return "Usage of " + name + ":\n" + f.Defaults()
}

func isZeroValue(flag *Flag) bool {
	switch flag.DefValue {
	case "":
		return true
	case "false":
		return flag.Kind == KindBool
	case "0":
		return flag.Kind != KindString
	case "0s":
		return flag.Kind == KindDuration
	}
	return false
}
