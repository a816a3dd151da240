package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandAliases(t *testing.T) {
	t.Parallel()

	cmd := &Command{Name: "inventory", Aliases: []string{"inv", "i"}}

	assert.True(t, cmd.HasAlias("inventory"))
	assert.True(t, cmd.HasAlias("INV"))
	assert.True(t, cmd.HasAlias("I"))
	assert.False(t, cmd.HasAlias("inven"))

	assert.True(t, cmd.HasAliases())
	assert.Equal(t, []string{"inventory", "inv", "i"}, cmd.AllAliases(true))
	assert.Equal(t, []string{"inv", "i"}, cmd.AllAliases(false))
	assert.False(t, (&Command{Name: "solo"}).HasAliases())
}

func TestCommandNesting(t *testing.T) {
	t.Parallel()

	plain := &Command{Name: "plain"}
	assert.False(t, plain.IsNested())
	assert.False(t, plain.HasSubCommands())

	empty := &Command{Name: "router", SubCommands: NewManager()}
	assert.True(t, empty.IsNested())
	assert.False(t, empty.HasSubCommands(), "attached but empty registry has no sub-commands")

	full := &Command{Name: "router", SubCommands: NewManager().MustRegister(&Command{Name: "child"})}
	assert.True(t, full.HasSubCommands())
}

func TestCommandMinimum(t *testing.T) {
	t.Parallel()

	cmd := &Command{
		Name: "mix",
		Args: []*Argument{
			{Name: "a", Required: true},
			{Name: "b", Required: true},
			{Name: "c"},
		},
	}
	assert.Equal(t, 2, cmd.Minimum())

	cmd.Extra = &Argument{Display: "files", Required: true}
	assert.Equal(t, 3, cmd.Minimum(), "a required extra slot raises the minimum")

	cmd.Extra = &Argument{Display: "files"}
	assert.Equal(t, 2, cmd.Minimum())
}

func TestCreateContext(t *testing.T) {
	t.Parallel()

	cmd := &Command{
		Name: "greet",
		Args: []*Argument{
			{Name: "who", Required: true},
			{Name: "times", Types: []ArgType{Int}, Default: 1},
		},
	}

	t.Run("below minimum yields no context", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, cmd.CreateContext(&testSender{}, "greet", nil))
	})
	t.Run("binds arguments and identity", func(t *testing.T) {
		t.Parallel()
		sender := &testSender{}
		ctx := cmd.CreateContext(sender, "greet", []string{"world"})
		require.NotNil(t, ctx)
		assert.Equal(t, "greet", ctx.Prefix())
		assert.Same(t, cmd, ctx.Command())
		assert.Equal(t, "world", ctx.Get("who"))
		assert.Equal(t, 1, ctx.Get("times"))
	})
}

func TestUnknownSubCommandHandler(t *testing.T) {
	t.Parallel()

	cmd := &Command{Name: "router", Handler: UnknownSubCommandHandler}

	t.Run("reports first extra token", func(t *testing.T) {
		t.Parallel()
		sender := &testSender{}
		ctx := cmd.CreateContext(sender, "router", []string{"mystery", "more"})
		require.NotNil(t, ctx)
		require.NoError(t, ctx.RunSelf())
		assert.Equal(t, "Unknown sub-command: 'mystery'\n", sender.err.String())
	})
	t.Run("quiet with no extra tokens", func(t *testing.T) {
		t.Parallel()
		sender := &testSender{}
		ctx := cmd.CreateContext(sender, "router", nil)
		require.NotNil(t, ctx)
		require.NoError(t, ctx.RunSelf())
		assert.Empty(t, sender.err.String())
	})
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmd     *Command
		wantErr string
	}{
		{"valid", &Command{Name: "ok", Aliases: []string{"o"}}, ""},
		{"nil", nil, "command is nil"},
		{"empty name", &Command{}, "alias cannot be empty"},
		{"whitespace name", &Command{Name: "a b"}, "cannot contain whitespace"},
		{"empty alias", &Command{Name: "ok", Aliases: []string{""}}, "alias cannot be empty"},
		{"tab alias", &Command{Name: "ok", Aliases: []string{"a\tb"}}, "cannot contain whitespace"},
		{
			"unnamed argument",
			&Command{Name: "ok", Args: []*Argument{{}}},
			"argument has no name",
		},
		{
			"required after optional",
			&Command{Name: "ok", Args: []*Argument{{Name: "a"}, {Name: "b", Required: true}}},
			"follows an optional argument",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateCommand(tt.cmd)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
