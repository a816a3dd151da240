package commands

import (
	"strings"
	"unicode"
)

// Handler is the execution logic bound to a command. It receives the
// per-dispatch [Context] and returns an error if execution fails; the
// dispatching Manager contains the failure and reports it through the
// sender's error channel.
type Handler func(*Context) error

// Command represents one node in the command tree: an identity (name plus
// aliases), a positional argument schema, an optional handler, and an
// optional nested Manager that turns the node into a router.
//
// Commands are configured as struct literals and validated when registered;
// after registration they must be treated as immutable.
type Command struct {
	// Name is the command's primary token. Names and aliases must be
	// non-empty and free of whitespace; lookup is case-insensitive.
	Name string

	// Aliases are alternate tokens resolving to this command.
	Aliases []string

	// Description is a one-line summary shown in help listings.
	Description string

	// Args is the ordered positional argument schema. Required arguments
	// must precede optional ones.
	Args []*Argument

	// Extra declares the single trailing variadic slot, if any. Only its
	// Display, Description, and Required fields are consulted: leftover
	// tokens remain available verbatim through [Context.Extra], and a
	// required Extra raises the schema's minimum token count by one.
	Extra *Argument

	// Handler is invoked when the command is dispatched. A nil handler makes
	// dispatch fail silently; router-only commands typically bind
	// [UnknownSubCommandHandler] instead.
	Handler Handler

	// SubCommands is the nested registry that makes this command a router.
	SubCommands *Manager

	// Hidden asks help listings to omit this command. It is a hint: the
	// listing provided by this package honors it, custom ones may not.
	Hidden bool
}

// HasAlias reports whether alias matches the command's name or any of its
// aliases, case-insensitively.
func (c *Command) HasAlias(alias string) bool {
	if strings.EqualFold(c.Name, alias) {
		return true
	}
	for _, a := range c.Aliases {
		if strings.EqualFold(a, alias) {
			return true
		}
	}
	return false
}

// HasAliases reports whether the command has any aliases beyond its name.
func (c *Command) HasAliases() bool { return len(c.Aliases) > 0 }

// AllAliases returns the command's aliases, optionally with the name as the
// first element.
func (c *Command) AllAliases(includeName bool) []string {
	var list []string
	if includeName {
		list = append(list, c.Name)
	}
	return append(list, c.Aliases...)
}

// IsNested reports whether a nested registry is attached.
func (c *Command) IsNested() bool { return c.SubCommands != nil }

// HasSubCommands reports whether a nested registry is attached and contains
// at least one command.
func (c *Command) HasSubCommands() bool {
	return c.SubCommands != nil && len(c.SubCommands.Commands()) > 0
}

// Minimum returns the minimum number of raw tokens the command's schema
// requires.
func (c *Command) Minimum() int { return minimumArgs(c.Args, c.Extra) }

// CreateContext binds rawArgs to the command's schema and wraps the result,
// together with the sender and the resolved prefix, into a fresh dispatch
// context. It returns nil when fewer tokens than the schema minimum were
// supplied; the caller reports that as an arity failure.
func (c *Command) CreateContext(sender Sender, prefix string, rawArgs []string) *Context {
	if len(rawArgs) < c.Minimum() {
		return nil
	}
	return newContext(sender, prefix, c, parseArgs(c.Args, rawArgs))
}

// UnknownSubCommandHandler is a ready-made handler for router-only commands:
// commands that accept sub-commands but do nothing on their own. It reports
// the first leftover token as an unrecognized sub-command, or does nothing
// when the command was invoked bare.
func UnknownSubCommandHandler(ctx *Context) error {
	extra := ctx.Extra()
	if len(extra) == 0 || extra[0] == "" {
		return nil
	}
	ctx.PrintErr("Unknown sub-command: '%s'", extra[0])
	return nil
}

// validateCommand checks a command's identity and schema at registration
// time. Nested commands are validated by their own Manager as they are
// registered into it.
func validateCommand(c *Command) error {
	if c == nil {
		return registrationErrorf("command is nil")
	}
	if err := checkAlias(c.Name); err != nil {
		return err
	}
	for _, alias := range c.Aliases {
		if err := checkAlias(alias); err != nil {
			return err
		}
	}
	return validateSchema(c.Args)
}

func checkAlias(alias string) error {
	if alias == "" {
		return registrationErrorf("alias cannot be empty")
	}
	if strings.ContainsFunc(alias, unicode.IsSpace) {
		return registrationErrorf("alias %q cannot contain whitespace", alias)
	}
	return nil
}
