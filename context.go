package commands

import (
	"fmt"
	"strings"
)

// Context is the per-dispatch bundle handed to a command handler: the
// sender, the resolved prefix, the resolved command, the parsed arguments,
// and an open attached-data slot for cross-cutting enrichment. A fresh
// Context is created for every dispatch and never reused.
type Context struct {
	sender Sender
	prefix string
	cmd    *Command
	args   *ParsedArgs
	data   map[string]any
}

func newContext(sender Sender, prefix string, cmd *Command, args *ParsedArgs) *Context {
	return &Context{
		sender: sender,
		prefix: prefix,
		cmd:    cmd,
		args:   args,
	}
}

// Sender returns the origin of the command.
func (c *Context) Sender() Sender { return c.sender }

// Prefix returns the portion of the input consumed while resolving the
// command, up to and including the command's own token.
func (c *Context) Prefix() string { return c.prefix }

// Command returns the resolved command.
func (c *Context) Command() *Command { return c.cmd }

// Args returns the parsed arguments.
func (c *Context) Args() *ParsedArgs { return c.args }

// Get returns the coerced value of the named argument, or nil.
func (c *Context) Get(name string) any { return c.args.Get(name) }

// Input returns the raw token supplied for the named argument and whether
// one was supplied at all.
func (c *Context) Input(name string) (string, bool) { return c.args.Input(name) }

// HasInput reports whether a raw token was supplied for the named argument.
func (c *Context) HasInput(name string) bool {
	_, ok := c.args.Input(name)
	return ok
}

// Extra returns the leftover raw tokens not claimed by the schema.
func (c *Context) Extra() []string { return c.args.Extra() }

// ExtraJoined returns the leftover tokens joined with sep.
func (c *Context) ExtraJoined(sep string) string {
	return strings.Join(c.args.Extra(), sep)
}

// FullCommandString reconstructs the dispatched line: prefix, argument
// inputs, and leftover tokens, space-separated.
func (c *Context) FullCommandString() string {
	parts := []string{c.prefix}
	if in := c.args.InputJoined(" "); in != "" {
		parts = append(parts, in)
	}
	if ex := c.ExtraJoined(" "); ex != "" {
		parts = append(parts, ex)
	}
	return strings.Join(parts, " ")
}

// Print writes to the sender's normal channel. See [Sender].
func (c *Context) Print(format string, args ...any) {
	if c.sender != nil {
		c.sender.Print(format, args...)
	}
}

// PrintErr writes to the sender's error channel. See [Sender].
func (c *Context) PrintErr(format string, args ...any) {
	if c.sender != nil {
		c.sender.PrintErr(format, args...)
	}
}

// Set attaches a value to the context under key. The slot exists for
// cross-cutting enrichment by dispatch hooks; commands should prefer their
// declared arguments.
func (c *Context) Set(key string, value any) {
	if c.data == nil {
		c.data = make(map[string]any)
	}
	c.data[key] = value
}

// Value returns the attached value for key and whether one was set.
func (c *Context) Value(key string) (any, bool) {
	v, ok := c.data[key]
	return v, ok
}

// RunSelf directly invokes the bound handler with this context. It returns
// [ErrNoHandler] when the command has none.
//
// RunSelf must not be called from within a handler already executing for
// this same context: no recursion guard exists, and repeated self-invocation
// will exhaust the call stack.
func (c *Context) RunSelf() error {
	if c.cmd.Handler == nil {
		return ErrNoHandler
	}
	return c.cmd.Handler(c)
}

func (c *Context) String() string {
	var pairs []string
	for _, pa := range c.args.All() {
		pairs = append(pairs, fmt.Sprintf("%s=%q", pa.Argument.Name, pa.Input))
	}
	return fmt.Sprintf("Context{name=%s, %s}", c.cmd.Name, strings.Join(pairs, ", "))
}

// GetArg retrieves a typed argument value from the context. A nil value
// (nullable or optional argument without input) yields the zero value of T.
//
// If the argument name is unknown or the value's dynamic type does not match
// T, GetArg panics: both indicate a programming error in the command's
// schema or handler, and it's better to fail loud and early than to silently
// misbehave.
func GetArg[T any](c *Context, name string) T {
	pa := c.args.Lookup(name)
	if pa == nil {
		panic(fmt.Sprintf("internal error: no argument named %q in command %q", name, c.cmd.Name))
	}
	if pa.Value == nil {
		var zero T
		return zero
	}
	v, ok := pa.Value.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for argument %q in command %q: have %T, requested %T",
			name, c.cmd.Name, pa.Value, *new(T)))
	}
	return v
}

// GetData retrieves a typed value from the context's attached-data slot. It
// returns the zero value and false when the key is absent or the value's
// dynamic type does not match T.
func GetData[T any](c *Context, key string) (T, bool) {
	var zero T
	v, ok := c.data[key]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
