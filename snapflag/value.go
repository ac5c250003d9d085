package snapflag

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ValueKind identifies the converter bound to a flag. The set is closed:
// every kind has exactly one conversion in parseValue.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindInt
	KindInt64
	KindFloat32
	KindFloat64
	KindString
	KindDuration
)

// String returns the kind name used in usage output.
func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// Scalar is the set of destination types a flag can bind to.
type Scalar interface {
	bool | int | int64 | float32 | float64 | string | time.Duration
}

// Accepted boolean spellings. Matching is exact and case-sensitive.
var (
	trueValues  = []string{"true", "t", "yes", "y"}
	falseValues = []string{"false", "f", "no", "n"}
)

// kindOf maps a Scalar type parameter to its variant.
func kindOf[T Scalar]() ValueKind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case int:
		return KindInt
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case string:
		return KindString
	case time.Duration:
		return KindDuration
	}
	// Unreachable: Scalar admits no other types.
	panic(fmt.Sprintf("snapflag: unsupported destination type %T", zero))
}

// parseValue is the single dispatch point from kind to converter.
// The returned value's dynamic type is the Go type belonging to kind.
func parseValue(kind ValueKind, text string) (any, error) {
	switch kind {
	case KindBool:
		return parseBool(text)
	case KindInt:
		v, err := parseInt(text, kind, strconv.IntSize)
		return int(v), err
	case KindInt64:
		return parseInt(text, kind, 64)
	case KindFloat32:
		v, err := parseFloat(text, kind, 32, "number is not a float")
		return float32(v), err
	case KindFloat64:
		return parseFloat(text, kind, 64, "number is not a double")
	case KindString:
		return text, nil
	case KindDuration:
		return parseDuration(text)
	default:
		return nil, &ValueError{Kind: kind, Msg: "unsupported value kind"}
	}
}

// parseBool accepts the empty string as true so that a bare boolean flag
// and an explicit value share one converter.
func parseBool(text string) (bool, error) {
	if text == "" {
		return true, nil
	}
	for _, v := range trueValues {
		if text == v {
			return true, nil
		}
	}
	for _, v := range falseValues {
		if text == v {
			return false, nil
		}
	}
	return false, &ValueError{Kind: KindBool, Msg: "unknown boolean value"}
}

// parseInt accepts an optional '-' followed by decimal digits and nothing else.
func parseInt(text string, kind ValueKind, bitSize int) (int64, error) {
	// strconv would accept a leading '+'; this grammar does not.
	if text == "" || text[0] == '+' {
		return 0, &ValueError{Kind: kind, Msg: "number is not an integer"}
	}
	v, err := strconv.ParseInt(text, 10, bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ValueError{Kind: kind, Msg: "number is out of range"}
		}
		return 0, &ValueError{Kind: kind, Msg: "number is not an integer"}
	}
	return v, nil
}

func parseFloat(text string, kind ValueKind, bitSize int, syntaxMsg string) (float64, error) {
	v, err := strconv.ParseFloat(text, bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ValueError{Kind: kind, Msg: "number is out of range"}
		}
		return 0, &ValueError{Kind: kind, Msg: syntaxMsg}
	}
	return v, nil
}

func parseDuration(text string) (time.Duration, error) {
	d, err := time.ParseDuration(text)
	if err != nil {
		return 0, &ValueError{Kind: KindDuration, Msg: "invalid duration"}
	}
	return d, nil
}
