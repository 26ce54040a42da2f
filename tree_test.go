package fli

import (
	"testing"

	"github.com/napalu/fli/errs"
	"github.com/napalu/fli/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_WalkOrder(t *testing.T) {
	app := newGitApp(t)

	var paths []string
	app.Walk(func(cmd *Command) bool {
		paths = append(paths, cmd.Path())
		return true
	})

	assert.Equal(t, []string{
		"git",
		"git status",
		"git commit",
		"git checkout",
		"git move",
		"git plot",
		"git copy",
		"git run",
		"git run fast",
	}, paths)

	var visited int
	app.Walk(func(cmd *Command) bool {
		visited++
		return cmd.Name() != "commit"
	})
	assert.Equal(t, 3, visited)
}

func TestCommand_InheritableOptions(t *testing.T) {
	app, err := NewApp("tool", "1.0.0", "")
	require.NoError(t, err)
	require.NoError(t, app.AddOption("debug", "debug output", "d", "", types.None()))

	before, err := app.Command("before", "")
	require.NoError(t, err)
	require.NoError(t, app.MarkInheritable("-d"))
	after, err := app.Command("after", "")
	require.NoError(t, err)
	deeper, err := after.Command("deeper", "")
	require.NoError(t, err)

	_, ok := before.Option("debug")
	assert.False(t, ok, "commands created before marking do not inherit")
	_, ok = after.Option("-d")
	assert.True(t, ok)
	_, ok = deeper.Option("--debug")
	assert.True(t, ok, "inherited options are inherited again")

	res, err := app.Resolve([]string{"after", "deeper", "-d"})
	require.NoError(t, err)
	assert.True(t, res.Flag("debug"))

	_, err = app.Resolve([]string{"before", "-d"})
	assert.ErrorIs(t, err, errs.ErrOptionNotFound)
}

func TestCommand_AutoOptions(t *testing.T) {
	app := newGitApp(t)

	_, ok := app.Root().Option("-h")
	assert.True(t, ok)
	_, ok = app.Root().Option("-V")
	assert.True(t, ok)

	fast, ok := app.Root().Subcommand("run")
	require.True(t, ok)
	fast, ok = fast.Subcommand("fast")
	require.True(t, ok)
	help, ok := fast.Option("--help")
	require.True(t, ok, "commands registered during NewApp get help")
	assert.True(t, help.Preserved)
	assert.Equal(t, errs.MsgHelpDescriptionKey, help.DescriptionKey)
	assert.NotEmpty(t, help.Description)
	_, ok = fast.Option("version")
	assert.False(t, ok)

	late, err := app.Command("late", "")
	require.NoError(t, err)
	_, ok = late.Option("help")
	assert.True(t, ok, "commands registered after NewApp get help")
}

func TestCommand_AutoOptionsDisabled(t *testing.T) {
	app, err := NewApp("tool", "1.0.0", "", WithoutHelp(), WithoutVersion(), WithCommand("sub", ""))
	require.NoError(t, err)

	assert.Empty(t, app.Root().Options())
	sub, _ := app.Root().Subcommand("sub")
	assert.Empty(t, sub.Options())

	_, err = app.Resolve([]string{"-h"})
	assert.ErrorIs(t, err, errs.ErrOptionNotFound)
}

func TestCommand_UserOptionsTakePrecedenceOverHelp(t *testing.T) {
	app, err := NewApp("tool", "1.0.0", "",
		WithOption("host", "target host", "h", "", types.RequiredSingle(types.String(""))),
		WithCommand("sub", ""))
	require.NoError(t, err)

	_, ok := app.Root().Option("help")
	assert.False(t, ok)
	host, ok := app.Root().Option("-h")
	require.True(t, ok)
	assert.Equal(t, "host", host.Name)

	sub, _ := app.Root().Subcommand("sub")
	_, ok = sub.Option("-h")
	assert.True(t, ok)

	res, err := app.Resolve([]string{"-h", "example.org"})
	require.NoError(t, err)
	assert.Empty(t, res.Preserved)
}

func TestCommand_Metadata(t *testing.T) {
	app := newGitApp(t)
	checkout, ok := app.Root().Subcommand("checkout")
	require.True(t, ok)

	assert.Equal(t, "switch branches", checkout.Description())
	assert.Equal(t, 1, checkout.ExpectedPositionalArgs())
	assert.Equal(t, types.Exact, checkout.Strictness())
	assert.Same(t, app, checkout.App())
	assert.False(t, checkout.HasCallback())
	assert.Len(t, app.Root().Subcommands(), 7)

	opts := checkout.Options()
	require.Len(t, opts, 2)
	assert.Equal(t, "verbose", opts[0].Name)
	assert.Equal(t, HelpOption, opts[1].Name)

	opts[0].Name = "changed"
	again, _ := checkout.Option("verbose")
	assert.Equal(t, "verbose", again.Name, "options are returned as copies")

	_, ok = app.Root().Subcommand("nope")
	assert.False(t, ok)
}
