package commands

import (
	"fmt"
	"strings"

	"github.com/MalignantShadow/api-commands/pkg/suggest"
	"github.com/MalignantShadow/api-commands/pkg/textutil"
)

// Defaults for the built-in help command.
const (
	DefaultHelpName  = "help"
	DefaultHelpAlias = "?"

	// DefaultHelpPageSize is the number of command lines per help page.
	DefaultHelpPageSize = 8

	helpWrapWidth = 76
)

// HelpListing formats a paginated help view of a command list. The built-in
// help command consumes this contract; embedders customize help by injecting
// a different implementation through [Manager.NewHelpListing] rather than by
// subclassing.
type HelpListing interface {
	// FormatFullCommand formats a resolved command path.
	FormatFullCommand(fullCmd string) string
	// FormatArg formats one argument display, wrapped in <> when required
	// and [] when optional.
	FormatArg(display string, required bool) string
	// FormatArgs formats a whole schema, space-separated.
	FormatArgs(args []*Argument) string
	// FormatAliases formats a name/alias list.
	FormatAliases(aliases []string) string
	// FormatDescription formats a command or argument description.
	FormatDescription(desc string) string
	// FormatSimpleCommand renders the one-line syntax of a leaf command.
	FormatSimpleCommand(cmd *Command) string
	// FormatNestedCommand renders the one-line syntax of a router command.
	FormatNestedCommand(cmd *Command) string
	// GetHelp returns the lines of the given 1-based page, or nil when the
	// page does not exist.
	GetHelp(page int) []string
}

// DefaultHelpListing is the plain-text HelpListing. Its zero-value Style
// renders unstyled strings; see [ColorHelpStyle] for a colored one.
type DefaultHelpListing struct {
	FullCmd  string
	Commands []*Command

	// PageSize is the number of command lines per page; zero means
	// [DefaultHelpPageSize].
	PageSize int

	Style HelpStyle
}

// NewDefaultHelpListing returns a plain listing over the given command path
// and commands.
func NewDefaultHelpListing(fullCmd string, cmds []*Command) HelpListing {
	return &DefaultHelpListing{FullCmd: fullCmd, Commands: cmds}
}

func (l *DefaultHelpListing) FormatFullCommand(fullCmd string) string {
	return l.Style.Command.Render(fullCmd)
}

func (l *DefaultHelpListing) FormatArg(display string, required bool) string {
	if required {
		return l.Style.Required.Render(fmt.Sprintf("<%s>", display))
	}
	return l.Style.Optional.Render(fmt.Sprintf("[%s]", display))
}

func (l *DefaultHelpListing) FormatArgs(args []*Argument) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, l.FormatArg(a.display(), a.Required))
	}
	return strings.Join(parts, " ")
}

func (l *DefaultHelpListing) FormatAliases(aliases []string) string {
	return l.Style.Alias.Render(strings.Join(aliases, "/"))
}

func (l *DefaultHelpListing) FormatDescription(desc string) string {
	if desc == "" {
		return ""
	}
	return l.Style.Description.Render("- " + desc)
}

func (l *DefaultHelpListing) FormatSimpleCommand(cmd *Command) string {
	args := cmd.Args
	if cmd.Extra != nil {
		args = append(append([]*Argument{}, args...), cmd.Extra)
	}
	line := strings.TrimSpace(l.FormatAliases(cmd.AllAliases(true)) + " " + l.FormatArgs(args))
	return strings.TrimSpace(line + " " + l.FormatDescription(cmd.Description))
}

func (l *DefaultHelpListing) FormatNestedCommand(cmd *Command) string {
	line := l.FormatAliases(cmd.AllAliases(true)) + " " + l.FormatArg("command", true)
	return strings.TrimSpace(line + " " + l.FormatDescription(cmd.Description))
}

// commandHelp picks the nested or simple rendering for one command.
func (l *DefaultHelpListing) commandHelp(cmd *Command) string {
	if cmd.IsNested() {
		return l.FormatNestedCommand(cmd)
	}
	return l.FormatSimpleCommand(cmd)
}

func (l *DefaultHelpListing) GetHelp(page int) []string {
	size := l.PageSize
	if size <= 0 {
		size = DefaultHelpPageSize
	}
	pages := (len(l.Commands) + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if page < 1 || page > pages {
		return nil
	}

	usage := "Usage: <command>"
	if l.FullCmd != "" {
		usage = "Usage: " + l.FormatFullCommand(l.FullCmd) + " <command>"
	}
	lines := []string{usage, "", "Commands:"}

	start := (page - 1) * size
	end := min(start+size, len(l.Commands))
	for _, c := range l.Commands[start:end] {
		lines = append(lines, "  "+l.commandHelp(c))
	}
	return lines
}

// RegisterHelpCommand synthesizes and registers a help command. Its single
// optional argument accepts either a 1-based page number or a sibling
// command name; with no argument it prints page 1 of the listing. An empty
// name selects the defaults ("help" with alias "?").
func (m *Manager) RegisterHelpCommand(name string, aliases ...string) error {
	if name == "" {
		name, aliases = DefaultHelpName, []string{DefaultHelpAlias}
	}
	return m.Register(&Command{
		Name:        name,
		Aliases:     aliases,
		Description: "View help",
		Args: []*Argument{{
			Name:        "arg",
			Display:     "page | command",
			Description: "The page to view or a command to get help for",
			Types:       []ArgType{Number, String},
		}},
		Handler: m.helpHandler,
	})
}

// helpListing builds the injected (or default) listing over the commands
// visible to sender.
func (m *Manager) helpListing(fullCmd string, sender Sender) HelpListing {
	build := m.NewHelpListing
	if build == nil {
		build = NewDefaultHelpListing
	}
	return build(fullCmd, m.VisibleCommands(sender))
}

func (m *Manager) helpHandler(ctx *Context) error {
	// The prefix ends with the help command's own token; the listing wants
	// the path leading to it.
	fields := strings.Fields(ctx.Prefix())
	parent := ""
	if len(fields) > 1 {
		parent = strings.Join(fields[:len(fields)-1], " ")
	}
	listing := m.helpListing(parent, ctx.Sender())

	switch v := ctx.Get("arg").(type) {
	case nil:
		m.printHelpPage(ctx, listing, 1)
	case float64:
		m.printHelpPage(ctx, listing, int(v))
	case int:
		m.printHelpPage(ctx, listing, v)
	case string:
		m.printCommandHelp(ctx, listing, parent, v)
	}
	return nil
}

func (m *Manager) printHelpPage(ctx *Context, listing HelpListing, page int) {
	lines := listing.GetHelp(page)
	if lines == nil {
		ctx.PrintErr("Page %d does not exist", page)
		return
	}
	for _, line := range lines {
		ctx.Print(line)
	}
}

// printCommandHelp prints the detailed argument help for one sibling
// command, or an error (with typo suggestions) when the name is unknown.
func (m *Manager) printCommandHelp(ctx *Context, listing HelpListing, parent, name string) {
	cmd := m.Lookup(name)
	if cmd == nil {
		ctx.PrintErr("Sub-command with name/alias '%s' does not exist", name)
		var known []string
		for _, c := range m.VisibleCommands(ctx.Sender()) {
			known = append(known, c.Name)
		}
		if similar := suggest.FindSimilar(name, known, 3); len(similar) > 0 {
			ctx.PrintErr("Did you mean one of these?")
			for _, s := range similar {
				ctx.PrintErr("\t%s", s)
			}
		}
		return
	}

	header := listing.FormatSimpleCommand(cmd)
	if parent != "" {
		header = listing.FormatFullCommand(parent) + " " + header
	}
	ctx.Print(header)

	for _, a := range cmd.Args {
		line := strings.TrimSpace(listing.FormatArg(a.display(), a.Required) + " " + listing.FormatDescription(a.Description))
		for i, wrapped := range textutil.Wrap(line, helpWrapWidth) {
			if i == 0 {
				ctx.Print("  " + wrapped)
			} else {
				ctx.Print("    " + wrapped)
			}
		}
	}
}
