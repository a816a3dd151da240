package commands

import "strings"

// ParsedArgument pairs an Argument declaration with the raw token bound to it
// (if any) and the coerced value (if any). A nil Value with HasInput set
// means the token matched none of the accepted types — this distinction lets
// required/nullable checks tell "no input" from "invalid input".
type ParsedArgument struct {
	Argument *Argument
	Value    any
	Input    string
	HasInput bool
}

// ParsedArgs is the ordered collection of per-argument records produced by
// one dispatch, plus the leftover raw-token bucket. It is created fresh for
// each dispatch and never shared across calls.
type ParsedArgs struct {
	args  []*ParsedArgument
	extra []string
}

// parseArgs binds raw tokens to a schema, positionally and left to right:
//
//  1. Each schema entry consumes the next token if one remains.
//  2. A consumed token is coerced by the first accepted type that matches;
//     if none match, Value stays nil but the token is still recorded.
//  3. With no token remaining, the declared default (if any) becomes the
//     value and the input is marked absent.
//  4. Tokens beyond the schema are collected verbatim as extra.
//
// Missing-required detection is not this function's job; the caller performs
// the minimum-count check before parsing.
func parseArgs(schema []*Argument, tokens []string) *ParsedArgs {
	parsed := &ParsedArgs{
		args: make([]*ParsedArgument, 0, len(schema)),
	}
	for i, arg := range schema {
		pa := &ParsedArgument{Argument: arg}
		if i < len(tokens) {
			pa.Input = tokens[i]
			pa.HasInput = true
			pa.Value = arg.coerce(tokens[i])
		} else if arg.Default != nil {
			pa.Value = arg.Default
		}
		parsed.args = append(parsed.args, pa)
	}
	if len(tokens) > len(schema) {
		parsed.extra = append(parsed.extra, tokens[len(schema):]...)
	}
	return parsed
}

// All returns the per-argument records in schema order.
func (p *ParsedArgs) All() []*ParsedArgument { return p.args }

// Lookup returns the record for the argument with the given name, or nil.
// Names are compared case-insensitively, consistent with command lookup.
func (p *ParsedArgs) Lookup(name string) *ParsedArgument {
	for _, pa := range p.args {
		if strings.EqualFold(pa.Argument.Name, name) {
			return pa
		}
	}
	return nil
}

// Get returns the coerced value for the named argument, or nil if the
// argument is unknown or has no value.
func (p *ParsedArgs) Get(name string) any {
	if pa := p.Lookup(name); pa != nil {
		return pa.Value
	}
	return nil
}

// Input returns the raw token bound to the named argument and whether one
// was supplied.
func (p *ParsedArgs) Input(name string) (string, bool) {
	if pa := p.Lookup(name); pa != nil {
		return pa.Input, pa.HasInput
	}
	return "", false
}

// Extra returns the leftover raw tokens that were not claimed by the schema,
// in their original order.
func (p *ParsedArgs) Extra() []string { return p.extra }

// InputJoined returns all supplied raw tokens joined with sep.
func (p *ParsedArgs) InputJoined(sep string) string {
	var inputs []string
	for _, pa := range p.args {
		if pa.HasInput {
			inputs = append(inputs, pa.Input)
		}
	}
	return strings.Join(inputs, sep)
}
