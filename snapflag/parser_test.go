package snapflag_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzonerzy/go-snapflag/snapflag"
)

func requireParseError(t *testing.T, err error, typ snapflag.ErrorType) *snapflag.ParseError {
	t.Helper()
	require.Error(t, err)
	var pe *snapflag.ParseError
	require.True(t, errors.As(err, &pe), "expected *ParseError, got %T", err)
	require.Equal(t, typ, pe.Type, "message: %s", pe.Message)
	return pe
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want snapflag.ErrorType
	}{
		{"empty argv", []string{}, snapflag.ErrorTypeNumArgs},
		{"nil argv", nil, snapflag.ErrorTypeNumArgs},
		{"three dashes", []string{"program", "---"}, snapflag.ErrorTypeBadSyntax},
		{"three dashes with name", []string{"program", "---x"}, snapflag.ErrorTypeBadSyntax},
		{"equals after double dash", []string{"program", "--="}, snapflag.ErrorTypeBadSyntax},
		{"equals after single dash", []string{"program", "-=x"}, snapflag.ErrorTypeBadSyntax},
		{"undefined flag", []string{"program", "-d"}, snapflag.ErrorTypeUndefinedFlag},
		{"undefined long flag", []string{"program", "--debug=1"}, snapflag.ErrorTypeUndefinedFlag},
		{"help long", []string{"program", "--help", "--", "arg"}, snapflag.ErrorTypeHelp},
		{"help short", []string{"program", "-h", "--", "arg"}, snapflag.ErrorTypeHelp},
		{"help with value", []string{"program", "-help=1"}, snapflag.ErrorTypeHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := snapflag.NewFlagSet("program")
			require.False(t, fs.Parsed())

			err := fs.Parse(tt.args)
			requireParseError(t, err, tt.want)
			assert.True(t, fs.Parsed())
			assert.Empty(t, fs.Args())
		})
	}
}

func TestBadSyntaxReportsStrippedBody(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"---x", "bad flag syntax: -x"},
		{"--=", "bad flag syntax: ="},
		{"-=x", "bad flag syntax: =x"},
		{"---", "bad flag syntax: -"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			fs := snapflag.NewFlagSet("program")
			pe := requireParseError(t, fs.Parse([]string{"program", tt.arg}), snapflag.ErrorTypeBadSyntax)
			assert.Equal(t, tt.want, pe.Message)
		})
	}
}

func TestHelpIsErrHelp(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	err := fs.Parse([]string{"program", "-h"})
	assert.ErrorIs(t, err, snapflag.ErrHelp)
	assert.Empty(t, err.Error())

	err = fs.Parse([]string{"program", "-x"})
	assert.NotErrorIs(t, err, snapflag.ErrHelp)
}

func TestHelpCanBeRegistered(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	var help bool
	var h string
	fs.BoolVar(&help, "help", "show help")
	fs.StringVar(&h, "h", "host")

	require.NoError(t, fs.Parse([]string{"program", "--help", "-h", "example.org"}))
	assert.True(t, help)
	assert.Equal(t, "example.org", h)
}

func TestPositionalArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no arguments", []string{"program"}, []string{}},
		{"plain positionals", []string{"program", "arg1", "arg2"}, []string{"arg1", "arg2"}},
		{"lone dash is positional", []string{"program", "-", "arg2"}, []string{"-", "arg2"}},
		{"separator dropped", []string{"program", "--", "arg1", "arg2"}, []string{"arg1", "arg2"}},
		{"flags after separator", []string{"program", "--", "-x", "--", "--y=1"}, []string{"-x", "--", "--y=1"}},
		{"flags after first positional", []string{"program", "arg", "-x"}, []string{"arg", "-x"}},
		{"empty token ends flags", []string{"program", "", "-x"}, []string{"", "-x"}},
		{"separator at end", []string{"program", "--"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := snapflag.NewFlagSet("program")
			require.NoError(t, fs.Parse(tt.args))
			if diff := cmp.Diff(tt.want, fs.Args()); diff != "" {
				t.Errorf("Args() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.want), fs.NArg())
		})
	}
}

func TestBoolFlag(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		initial bool
		want    bool
	}{
		{"not passed keeps false", []string{"program"}, false, false},
		{"not passed keeps true", []string{"program"}, true, true},
		{"bare", []string{"program", "-b"}, false, true},
		{"double dash", []string{"program", "--b"}, false, true},
		{"empty value", []string{"program", "-b="}, false, true},
		{"true", []string{"program", "-b=true"}, false, true},
		{"t", []string{"program", "-b=t"}, false, true},
		{"yes", []string{"program", "-b=yes"}, false, true},
		{"y", []string{"program", "-b=y"}, false, true},
		{"false", []string{"program", "-b=false"}, true, false},
		{"f", []string{"program", "-b=f"}, true, false},
		{"no", []string{"program", "-b=no"}, true, false},
		{"n", []string{"program", "-b=n"}, true, false},
		{"last write wins", []string{"program", "-b", "-b=false"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := snapflag.NewFlagSet("program")
			b := tt.initial
			fs.BoolVar(&b, "b", "A boolean")

			require.NoError(t, fs.Parse(tt.args))
			assert.Equal(t, tt.want, b)
			assert.Empty(t, fs.Args())
		})
	}
}

func TestBoolFlagDoesNotConsumeNextToken(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	var b bool
	fs.BoolVar(&b, "b", "A boolean")

	require.NoError(t, fs.Parse([]string{"program", "-b", "false"}))
	assert.True(t, b)
	assert.Equal(t, []string{"false"}, fs.Args())
}

func TestBoolFlagBadValue(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	b := false
	fs.BoolVar(&b, "b", "A boolean")

	pe := requireParseError(t, fs.Parse([]string{"program", "-b=maybe"}), snapflag.ErrorTypeBadValue)
	assert.Equal(t, "b", pe.Flag)
	assert.Equal(t, "maybe", pe.Value)
	assert.Contains(t, pe.Message, "maybe")
	assert.Contains(t, pe.Message, "unknown boolean value")
	assert.False(t, b)

	var ve *snapflag.ValueError
	require.ErrorAs(t, pe, &ve)
	assert.Equal(t, snapflag.KindBool, ve.Kind)
}

func TestStringFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
		rest []string
	}{
		{"attached", []string{"program", "-s=foo"}, "foo", []string{}},
		{"empty attached", []string{"program", "-s="}, "", []string{}},
		{"next token", []string{"program", "-s", "foo", "bar"}, "foo", []string{"bar"}},
		{"next token looks like flag", []string{"program", "-s", "-x"}, "-x", []string{}},
		{"value containing equals", []string{"program", "--s=a=b"}, "a=b", []string{}},
		{"next token is separator", []string{"program", "-s", "--", "x"}, "--", []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := snapflag.NewFlagSet("program")
			s := "unchanged"
			fs.StringVar(&s, "s", "A string flag")

			require.NoError(t, fs.Parse(tt.args))
			assert.Equal(t, tt.want, s)
			if diff := cmp.Diff(tt.rest, fs.Args()); diff != "" {
				t.Errorf("Args() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMissingValue(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	var s string
	var i int
	fs.StringVar(&s, "s", "A string flag")
	fs.IntVar(&i, "i", "An integer flag")

	pe := requireParseError(t, fs.Parse([]string{"program", "-s"}), snapflag.ErrorTypeMissingValue)
	assert.Equal(t, "s", pe.Flag)

	pe = requireParseError(t, fs.Parse([]string{"program", "-s=x", "--i"}), snapflag.ErrorTypeMissingValue)
	assert.Equal(t, "i", pe.Flag)
	assert.Equal(t, "x", s)
}

func TestIntFlag(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{"positive", []string{"program", "-i=1"}, 1, false},
		{"negative", []string{"program", "-i=-1"}, -1, false},
		{"negative next token", []string{"program", "-i", "-7"}, -7, false},
		{"leading plus", []string{"program", "-i=+1"}, 0, true},
		{"not a number", []string{"program", "-i=abc"}, 0, true},
		{"trailing garbage", []string{"program", "-i=12abc"}, 0, true},
		{"empty", []string{"program", "-i="}, 0, true},
		{"out of range", []string{"program", "-i=99999999999999999999999"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := snapflag.NewFlagSet("program")
			var i int
			fs.IntVar(&i, "i", "An integer flag")

			err := fs.Parse(tt.args)
			if tt.wantErr {
				requireParseError(t, err, snapflag.ErrorTypeBadValue)
				assert.Equal(t, 0, i, "destination must be untouched on failure")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, i)
		})
	}
}

func TestIntOutOfRangeMessage(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	var i int64
	fs.Int64Var(&i, "i", "An integer flag")

	pe := requireParseError(t, fs.Parse([]string{"program", "-i", "99999999999999999999"}), snapflag.ErrorTypeBadValue)
	assert.Contains(t, pe.Message, "number is out of range")
}

func TestFloatFlags(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"1", 1},
		{"1.4", 1.4},
		{"-1.93", -1.93},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			fs := snapflag.NewFlagSet("program")
			var f32 float32
			var f64 float64
			fs.Float32Var(&f32, "f", "A float")
			fs.Float64Var(&f64, "d", "A double")

			require.NoError(t, fs.Parse([]string{"program", "-f=" + tt.text, "-d", tt.text}))
			assert.InDelta(t, tt.want, float64(f32), 1e-5)
			assert.InDelta(t, tt.want, f64, 1e-9)
		})
	}

	fs := snapflag.NewFlagSet("program")
	var f32 float32
	var f64 float64
	fs.Float32Var(&f32, "f", "A float")
	fs.Float64Var(&f64, "d", "A double")

	pe := requireParseError(t, fs.Parse([]string{"program", "-f=abc"}), snapflag.ErrorTypeBadValue)
	assert.Contains(t, pe.Message, "not a float")
	pe = requireParseError(t, fs.Parse([]string{"program", "-d=abc"}), snapflag.ErrorTypeBadValue)
	assert.Contains(t, pe.Message, "not a double")
}

func TestDurationFlag(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	var d time.Duration
	fs.DurationVar(&d, "timeout", "request timeout")

	require.NoError(t, fs.Parse([]string{"program", "--timeout", "1m30s"}))
	assert.Equal(t, 90*time.Second, d)

	requireParseError(t, fs.Parse([]string{"program", "--timeout=soon"}), snapflag.ErrorTypeBadValue)
}

func TestGenericVar(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	var count int
	var name string
	snapflag.Var(fs, &count, "count", "how many")
	snapflag.Var(fs, &name, "name", "who")

	require.NoError(t, fs.Parse([]string{"program", "--count=3", "-name", "gopher", "rest"}))
	assert.Equal(t, 3, count)
	assert.Equal(t, "gopher", name)
	assert.Equal(t, []string{"rest"}, fs.Args())
	assert.Equal(t, "rest", fs.Arg(0))
	assert.Equal(t, "", fs.Arg(1))
	assert.Equal(t, "", fs.Arg(-1))
}

func TestSeparatorScenario(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	var b bool
	fs.BoolVar(&b, "b", "A boolean")

	require.NoError(t, fs.Parse([]string{"program", "-b", "--", "-x", "arg2"}))
	assert.True(t, b)
	if diff := cmp.Diff([]string{"-x", "arg2"}, fs.Args()); diff != "" {
		t.Errorf("Args() mismatch (-want +got):\n%s", diff)
	}
}

func TestFirstErrorStopsParsing(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	var a, b int
	fs.IntVar(&a, "a", "")
	fs.IntVar(&b, "b", "")

	pe := requireParseError(t, fs.Parse([]string{"program", "-a=1", "-x", "-b=2", "pos"}), snapflag.ErrorTypeUndefinedFlag)
	assert.Equal(t, "x", pe.Flag)
	assert.Equal(t, 1, a)
	assert.Equal(t, 0, b, "flags after the failure must not be applied")
	assert.Empty(t, fs.Args())
}

func TestUndefinedFlagSuggestion(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	var verbose bool
	var port int
	fs.BoolVar(&verbose, "verbose", "")
	fs.IntVar(&port, "port", "")

	pe := requireParseError(t, fs.Parse([]string{"program", "--verbos"}), snapflag.ErrorTypeUndefinedFlag)
	assert.Equal(t, "verbose", pe.Suggestion)
	assert.Equal(t, "flag provided but not defined: verbos", pe.Message)

	pe = requireParseError(t, fs.Parse([]string{"program", "--zzzzzz"}), snapflag.ErrorTypeUndefinedFlag)
	assert.Empty(t, pe.Suggestion)

	fs.SetSuggestions(0)
	pe = requireParseError(t, fs.Parse([]string{"program", "--verbos"}), snapflag.ErrorTypeUndefinedFlag)
	assert.Empty(t, pe.Suggestion)
}

func TestRepeatedParseResetsArgs(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	var n int
	fs.IntVar(&n, "n", "")

	require.NoError(t, fs.Parse([]string{"program", "-n=1", "a", "b"}))
	first := append([]string(nil), fs.Args()...)
	require.NoError(t, fs.Parse([]string{"program", "-n=2", "c"}))

	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, []string{"c"}, fs.Args())
	assert.Equal(t, 2, n)

	// A failing parse still clears the previous positionals.
	require.Error(t, fs.Parse([]string{"program", "-q"}))
	assert.Empty(t, fs.Args())
}

func TestDuplicateRegistrationReplaces(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	var first string
	var second int
	fs.StringVar(&first, "x", "first")
	fs.IntVar(&second, "x", "second")

	require.NoError(t, fs.Parse([]string{"program", "-x", "5"}))
	assert.Equal(t, "", first)
	assert.Equal(t, 5, second)
	assert.Equal(t, "second", fs.Lookup("x").Usage)
	assert.Equal(t, snapflag.KindInt, fs.Lookup("x").Kind)
}

func TestNamesAreNotValidated(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	var empty, withEq string
	fs.StringVar(&empty, "", "empty name")
	fs.StringVar(&withEq, "a=b", "name with equals")

	// "a=b" can never be reached: the scanner splits at the first '='.
	require.NoError(t, fs.Parse([]string{"program", "--", "-a=b=c"}))
	assert.Equal(t, "", withEq)
	assert.NotNil(t, fs.Lookup(""))
	assert.NotNil(t, fs.Lookup("a=b"))
}

func TestZeroValueFlagSet(t *testing.T) {
	var fs snapflag.FlagSet
	var b bool
	fs.BoolVar(&b, "b", "")

	require.NoError(t, fs.Parse([]string{"program", "-b", "x"}))
	assert.True(t, b)
	assert.Equal(t, []string{"x"}, fs.Args())
	assert.Equal(t, "", fs.Name())
}

func TestNilDestinationPanics(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	assert.Panics(t, func() { fs.IntVar(nil, "n", "") })
	assert.Panics(t, func() { snapflag.OptionalVar[string](fs, nil, "s", "") })
}

func TestVisitAllSorted(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	var a, b, c bool
	fs.BoolVar(&c, "charlie", "")
	fs.BoolVar(&a, "alpha", "")
	fs.BoolVar(&b, "bravo", "")

	var names []string
	fs.VisitAll(func(f *snapflag.Flag) { names = append(names, f.Name) })
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, names)
	assert.Nil(t, fs.Lookup("delta"))
}

func TestIsType(t *testing.T) {
	fs := snapflag.NewFlagSet("program")
	err := fs.Parse([]string{"program", "--nope"})
	assert.True(t, snapflag.IsType(err, snapflag.ErrorTypeUndefinedFlag))
	assert.False(t, snapflag.IsType(err, snapflag.ErrorTypeBadValue))
	assert.False(t, snapflag.IsType(errors.New("other"), snapflag.ErrorTypeUndefinedFlag))
	assert.False(t, snapflag.IsType(nil, snapflag.ErrorTypeHelp))
}
