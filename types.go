package commands

import (
	"strconv"
	"strings"
)

// ArgType is a named coercion function. Parse converts a raw token into a
// typed value; the second return reports whether the token matched. Matchers
// must be pure and must never panic — "no match" is signaled, not thrown.
//
// An Argument carries an ordered list of accepted types; the first matcher to
// succeed wins. This lets one argument accept multiple shapes (for example a
// page number OR a command name) with declaration order as the tie-break.
type ArgType struct {
	Name  string
	Parse func(input string) (any, bool)
}

// Predefined argument types.
var (
	// String matches any token and yields it unchanged.
	String = ArgType{
		Name: "string",
		Parse: func(input string) (any, bool) {
			return input, true
		},
	}

	// Int matches base-10 integers and yields an int.
	Int = ArgType{
		Name: "int",
		Parse: func(input string) (any, bool) {
			n, err := strconv.Atoi(input)
			if err != nil {
				return nil, false
			}
			return n, true
		},
	}

	// Number matches any numeric token and yields a float64.
	Number = ArgType{
		Name: "number",
		Parse: func(input string) (any, bool) {
			f, err := strconv.ParseFloat(input, 64)
			if err != nil {
				return nil, false
			}
			return f, true
		},
	}

	// Boolean matches the forms accepted by [strconv.ParseBool].
	Boolean = ArgType{
		Name: "boolean",
		Parse: func(input string) (any, bool) {
			b, err := strconv.ParseBool(input)
			if err != nil {
				return nil, false
			}
			return b, true
		},
	}
)

// Choice returns a matcher that accepts exactly the given values,
// case-insensitively, and yields the canonical (declared) spelling.
func Choice(values ...string) ArgType {
	return ArgType{
		Name: "choice",
		Parse: func(input string) (any, bool) {
			for _, v := range values {
				if strings.EqualFold(input, v) {
					return v, true
				}
			}
			return nil, false
		},
	}
}

// Enum returns a matcher that maps tokens to values of an arbitrary type.
// Keys are compared case-insensitively. The name is used for diagnostics
// only.
func Enum[T any](name string, values map[string]T) ArgType {
	return ArgType{
		Name: name,
		Parse: func(input string) (any, bool) {
			for k, v := range values {
				if strings.EqualFold(input, k) {
					return v, true
				}
			}
			return nil, false
		},
	}
}
