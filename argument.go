package commands

// Argument declares a single positional argument in a command's schema.
// Arguments are configured as struct literals and bound left to right, in
// declaration order, by the parser.
type Argument struct {
	// Name identifies the argument for lookups on the dispatch context. It
	// must be unique within one command's schema.
	Name string

	// Display is the label shown in help and error messages. When empty, the
	// Name is used.
	Display string

	// Description is shown in detailed help listings.
	Description string

	// Required marks the argument as counting toward the schema's minimum
	// token count. Required arguments must precede optional ones; schemas
	// that violate this are rejected at registration time.
	Required bool

	// Nullable permits a nil coerced value for a required argument. Without
	// it, a required argument whose token matches none of the accepted types
	// fails the dispatch with an invalid-input error.
	Nullable bool

	// Types is the ordered list of accepted types. The first matcher to
	// succeed provides the value. An empty list is equivalent to [String].
	Types []ArgType

	// Default is used when no token was supplied for this argument. A nil
	// Default means the argument has none.
	Default any
}

// display returns the label used in help and error messages.
func (a *Argument) display() string {
	if a.Display != "" {
		return a.Display
	}
	return a.Name
}

// coerce runs the accepted-type matchers in order against input and returns
// the first successful value, or nil if none matched.
func (a *Argument) coerce(input string) any {
	types := a.Types
	if len(types) == 0 {
		types = []ArgType{String}
	}
	for _, t := range types {
		if t.Parse == nil {
			continue
		}
		if v, ok := t.Parse(input); ok {
			return v
		}
	}
	return nil
}

// minimumArgs computes the minimum raw-token count for a schema: the number
// of required positional arguments, plus one if the trailing extra slot is
// itself required.
func minimumArgs(args []*Argument, extra *Argument) int {
	min := 0
	for _, a := range args {
		if a.Required {
			min++
		}
	}
	if extra != nil && extra.Required {
		min++
	}
	return min
}

// validateSchema rejects schemas whose minimum-count check would be
// meaningless: once an optional argument appears, no later argument may be
// required.
func validateSchema(args []*Argument) error {
	seenOptional := false
	for _, a := range args {
		if a == nil {
			return registrationErrorf("argument schema contains a nil argument")
		}
		if a.Name == "" {
			return registrationErrorf("argument has no name")
		}
		if !a.Required && !seenOptional {
			seenOptional = true
			continue
		}
		if a.Required && seenOptional {
			return registrationErrorf("required argument %q follows an optional argument", a.Name)
		}
	}
	return nil
}
