package commands

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"strings"
)

// Manager stores, organizes, and dispatches a list of sibling commands. It
// enforces alias uniqueness at registration time, performs recursive path
// resolution over nested registries, and drives the dispatch state machine.
//
// A Manager is intended to be fully built before any dispatch occurs;
// concurrent registration and dispatch are unsupported. Once populated, a
// Manager may be shared across goroutines as long as it is treated as
// immutable.
type Manager struct {
	commands []*Command

	// WillDispatch is called when a command is about to run. Returning false
	// vetoes the dispatch: the handler does not run and Dispatch returns
	// false with no output. A nil hook allows every dispatch.
	WillDispatch func(*Command, *Context) bool

	// DidDispatch is called after a handler completed successfully. It runs
	// outside the protected region around the handler, so a failure here is
	// not mistaken for a handler failure.
	DidDispatch func(*Command, *Context)

	// ContextCreated is called as soon as context creation was attempted for
	// a dispatch. The context is nil when too few arguments were supplied.
	ContextCreated func(*Context)

	// NewHelpListing builds the formatting strategy used by the built-in
	// help command. Nil selects [NewDefaultHelpListing].
	NewHelpListing func(fullCmd string, cmds []*Command) HelpListing

	// Logger, when non-nil, receives diagnostics the sender should never
	// see: contained handler failures and panic stacks.
	Logger *slog.Logger
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Commands returns the registered commands in registration (or sorted)
// order.
func (m *Manager) Commands() []*Command { return m.commands }

// VisibleCommands returns the commands a help listing should show to
// sender: every registered command not marked hidden.
func (m *Manager) VisibleCommands(sender Sender) []*Command {
	visible := make([]*Command, 0, len(m.commands))
	for _, c := range m.commands {
		if !c.Hidden {
			visible = append(visible, c)
		}
	}
	return visible
}

// HasCommandWithAlias reports whether any registered command answers to the
// given name or alias, case-insensitively.
func (m *Manager) HasCommandWithAlias(alias string) bool {
	return m.Lookup(alias) != nil
}

// Lookup returns the first registered command whose name or alias equals
// token, case-insensitively, or nil.
func (m *Manager) Lookup(token string) *Command {
	for _, c := range m.commands {
		if c.HasAlias(token) {
			return c
		}
	}
	return nil
}

// Register validates cmd and appends it. It fails with a
// [RegistrationError] when the command is malformed or when any of its
// name/aliases collides with an already registered command; on failure the
// Manager is left unchanged.
func (m *Manager) Register(cmd *Command) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}
	for _, alias := range cmd.AllAliases(true) {
		if m.HasCommandWithAlias(alias) {
			return registrationErrorf("a command with the alias %q already exists", alias)
		}
	}
	m.commands = append(m.commands, cmd)
	return nil
}

// MustRegister registers each command in turn and panics on the first
// failure. It returns the Manager, enabling chained setup:
//
//	mgr := commands.NewManager().
//		MustRegister(eat, bake, inventory)
//
// Use [Manager.Register] when registration errors should be handled instead.
func (m *Manager) MustRegister(cmds ...*Command) *Manager {
	for _, c := range cmds {
		if err := m.Register(c); err != nil {
			panic(err)
		}
	}
	return m
}

// CommandInfo is the transient result of path resolution: the resolved
// command, the space-joined prefix consumed to reach it, and the tokens left
// over for its argument schema. It is created and consumed within a single
// dispatch call.
type CommandInfo struct {
	Prefix  string
	Command *Command
	Args    []string
}

// Resolve greedily walks nested registries: while the current command has a
// nested registry and the next token matches a child's name or alias,
// descend one level and consume the token. It stops at the first token that
// matches no child, or when no nested registry remains.
//
// The first token selects the root command; Resolve returns nil when it
// matches nothing, or when tokens is empty.
func (m *Manager) Resolve(tokens []string) *CommandInfo {
	if len(tokens) == 0 {
		return nil
	}
	cmd := m.Lookup(tokens[0])
	if cmd == nil {
		return nil
	}
	prefix := tokens[0]
	rest := tokens[1:]
	for len(rest) > 0 && cmd.SubCommands != nil {
		child := cmd.SubCommands.Lookup(rest[0])
		if child == nil {
			break
		}
		cmd = child
		prefix += " " + rest[0]
		rest = rest[1:]
	}
	return &CommandInfo{Prefix: prefix, Command: cmd, Args: rest}
}

// Dispatch splits line on runs of whitespace and dispatches it. The first
// token is the root command name or alias. It returns true only when a
// handler ran to completion; every runtime failure is reported through the
// sender and absorbed.
func (m *Manager) Dispatch(sender Sender, line string) bool {
	return m.DispatchTokens(sender, strings.Fields(line))
}

// DispatchTokens dispatches a pre-tokenized command line. See
// [Manager.Dispatch].
func (m *Manager) DispatchTokens(sender Sender, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	info := m.Resolve(tokens)
	if info == nil {
		sender.PrintErr("[CommandErr] <%s> - Not found", tokens[0])
		return false
	}
	return m.DispatchResolved(sender, info.Command, info.Prefix, info.Args)
}

// DispatchResolved runs the validation/hook/handler state machine for an
// already resolved command. The prefix is the full command string up to and
// including the command's own token; args are the raw tokens left for its
// schema.
func (m *Manager) DispatchResolved(sender Sender, cmd *Command, prefix string, args []string) bool {
	ctx := cmd.CreateContext(sender, prefix, args)
	if m.ContextCreated != nil {
		m.ContextCreated(ctx)
	}
	if ctx == nil {
		sender.PrintErr("[CommandErr] '%s' - Expected at least %d argument(s), but got %d",
			prefix, cmd.Minimum(), len(args))
		return false
	}

	for _, pa := range ctx.Args().All() {
		arg := pa.Argument
		if arg.Required && !arg.Nullable && pa.Value == nil {
			sender.PrintErr("[CommandErr] '%s' - Invalid input for argument '%s': \"%s\"",
				prefix, arg.display(), pa.Input)
			return false
		}
	}

	if m.WillDispatch != nil && !m.WillDispatch(cmd, ctx) {
		return false
	}

	if err := m.runHandler(ctx); err != nil {
		if errors.Is(err, ErrNoHandler) {
			return false
		}
		// Users read "error" more readily than "exception" or "panic"; the
		// detail goes to the logger, not the sender.
		if m.Logger != nil {
			m.Logger.Error("command handler failed",
				slog.String("command", cmd.Name),
				slog.String("prefix", prefix),
				slog.Any("error", err))
		}
		ctx.PrintErr("An error occurred while running this command")
		return false
	}

	if m.DidDispatch != nil {
		m.DidDispatch(cmd, ctx)
	}
	return true
}

// runHandler invokes the handler inside the protected region: a panic is
// recovered and converted into an ordinary error.
func (m *Manager) runHandler(ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if m.Logger != nil {
				m.Logger.Error("command handler panicked",
					slog.String("command", ctx.Command().Name),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())))
			}
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return ctx.RunSelf()
}

// Sort reorders the command list in place by name, ascending.
func (m *Manager) Sort() {
	m.SortFunc(func(a, b *Command) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

// SortFunc reorders the command list in place with a custom comparator.
func (m *Manager) SortFunc(compare func(a, b *Command) int) {
	slices.SortFunc(m.commands, compare)
}
