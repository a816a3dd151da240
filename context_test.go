package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, sender Sender, tokens ...string) *Context {
	t.Helper()
	cmd := &Command{
		Name: "eat",
		Args: []*Argument{
			{Name: "type", Required: true},
			{Name: "amount", Types: []ArgType{Int}, Default: 1},
		},
		Handler: func(ctx *Context) error { return nil },
	}
	ctx := cmd.CreateContext(sender, "cookie eat", tokens)
	require.NotNil(t, ctx)
	return ctx
}

func TestContextAccessors(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(t, &testSender{}, "sugar", "2", "left", "over")

	assert.Equal(t, "cookie eat", ctx.Prefix())
	assert.Equal(t, "sugar", ctx.Get("type"))
	assert.Equal(t, 2, ctx.Get("amount"))

	in, ok := ctx.Input("amount")
	assert.True(t, ok)
	assert.Equal(t, "2", in)
	assert.True(t, ctx.HasInput("type"))
	assert.False(t, ctx.HasInput("missing"))

	assert.Equal(t, []string{"left", "over"}, ctx.Extra())
	assert.Equal(t, "left,over", ctx.ExtraJoined(","))
	assert.Equal(t, "cookie eat sugar 2 left over", ctx.FullCommandString())
	assert.Equal(t, `Context{name=eat, type="sugar", amount="2"}`, ctx.String())
}

func TestContextPrint(t *testing.T) {
	t.Parallel()

	sender := &testSender{}
	ctx := newTestContext(t, sender, "sugar")

	ctx.Print("plain %s is verbatim")
	ctx.Print("ate %d", 3)
	ctx.PrintErr("oops")

	assert.Equal(t, "plain %s is verbatim\nate 3\n", sender.out.String())
	assert.Equal(t, "oops\n", sender.err.String())
}

func TestContextData(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(t, &testSender{}, "sugar")

	_, ok := ctx.Value("user")
	assert.False(t, ok)

	ctx.Set("user", "shadow")
	v, ok := ctx.Value("user")
	require.True(t, ok)
	assert.Equal(t, "shadow", v)

	s, ok := GetData[string](ctx, "user")
	require.True(t, ok)
	assert.Equal(t, "shadow", s)

	_, ok = GetData[int](ctx, "user")
	assert.False(t, ok, "wrong type reads as absent")
}

func TestGetArg(t *testing.T) {
	t.Parallel()

	t.Run("typed access", func(t *testing.T) {
		t.Parallel()
		ctx := newTestContext(t, &testSender{}, "sugar", "4")
		assert.Equal(t, "sugar", GetArg[string](ctx, "type"))
		assert.Equal(t, 4, GetArg[int](ctx, "amount"))
	})
	t.Run("nil value yields zero", func(t *testing.T) {
		t.Parallel()
		cmd := &Command{Name: "opt", Args: []*Argument{{Name: "maybe", Types: []ArgType{Int}}}}
		ctx := cmd.CreateContext(&testSender{}, "opt", nil)
		require.NotNil(t, ctx)
		assert.Equal(t, 0, GetArg[int](ctx, "maybe"))
	})
	t.Run("unknown name panics", func(t *testing.T) {
		t.Parallel()
		ctx := newTestContext(t, &testSender{}, "sugar")
		assert.Panics(t, func() { GetArg[string](ctx, "nope") })
	})
	t.Run("type mismatch panics", func(t *testing.T) {
		t.Parallel()
		ctx := newTestContext(t, &testSender{}, "sugar", "4")
		assert.Panics(t, func() { GetArg[string](ctx, "amount") })
	})
}

func TestRunSelf(t *testing.T) {
	t.Parallel()

	t.Run("invokes the handler", func(t *testing.T) {
		t.Parallel()
		ran := false
		cmd := &Command{Name: "go", Handler: func(ctx *Context) error {
			ran = true
			return nil
		}}
		ctx := cmd.CreateContext(&testSender{}, "go", nil)
		require.NoError(t, ctx.RunSelf())
		assert.True(t, ran)
	})
	t.Run("no handler", func(t *testing.T) {
		t.Parallel()
		cmd := &Command{Name: "mute"}
		ctx := cmd.CreateContext(&testSender{}, "mute", nil)
		require.ErrorIs(t, ctx.RunSelf(), ErrNoHandler)
	})
}
