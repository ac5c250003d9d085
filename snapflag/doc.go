// Package snapflag parses command-line flags into typed, caller-owned
// variables.
//
// A FlagSet is built by registering destinations and then parsing the full
// argument vector once:
//
//	fs := snapflag.NewFlagSet("serve")
//	var port int
//	var verbose bool
//	var name snapflag.Optional[string]
//	fs.IntVar(&port, "port", "listen port")
//	fs.BoolVar(&verbose, "v", "verbose output")
//	snapflag.OptionalVar(fs, &name, "name", "instance name")
//
//	if err := fs.Parse(os.Args); err != nil {
//	    if errors.Is(err, snapflag.ErrHelp) {
//	        fmt.Print(fs.Usage())
//	    }
//	    os.Exit(snapflag.ExitCode(err))
//	}
//	rest := fs.Args()
//
// # Syntax
//
// Flags start with one or two dashes; both forms are equivalent. Values are
// attached with '=' (-port=80) or, for non-boolean flags, taken from the next
// token (-port 80). Boolean flags never consume the next token: -v sets true,
// -v=false sets false. Accepted boolean spellings are true, t, yes, y and
// false, f, no, n.
//
// Scanning stops at "--" (which is dropped), at a lone "-", or at the first
// token not starting with '-'. That token and all following ones are
// positional arguments. Grouped short flags (-abc) are not supported; -abc is
// the single flag "abc".
//
// # Errors
//
// Parse returns at most one *ParseError, for the first problem found. Its Type
// is one of ErrorTypeHelp, ErrorTypeNumArgs, ErrorTypeBadSyntax,
// ErrorTypeUndefinedFlag, ErrorTypeMissingValue or ErrorTypeBadValue.
// -help and -h produce ErrorTypeHelp unless a flag with that name exists.
package snapflag
