package fli

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/napalu/fli/errs"
	"github.com/napalu/fli/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGitApp(t *testing.T, configs ...ConfigureAppFunc) *App {
	t.Helper()

	base := []ConfigureAppFunc{
		WithOption("verbose", "verbose output", "v", "", types.None(), AsInheritable()),
		WithOption("name", "user name", "n", "", types.RequiredSingle(types.String(""))),
		WithCommand("status", "show the working tree status"),
		WithCommand("commit", "record changes",
			WithCommandOption("message", "commit message", "m", "", types.RequiredSingle(types.String("")))),
		WithCommand("checkout", "switch branches", WithExpectedPositionalArgs(1)),
		WithCommand("move", "move files",
			WithCommandOption("path", "paths to move", "p", "", types.RequiredMultiple(types.Unbounded))),
		WithCommand("plot", "plot a point",
			WithCommandOption("coords", "x y z", "c", "", types.RequiredMultiple(3, types.Int(0))),
			WithCommandOption("offset", "offset", "o", "", types.RequiredSingle(types.Int(0))),
			WithCommandOption("label", "label", "l", "", types.OptionalSingle(types.String("none")))),
		WithCommand("copy", "copy files", WithExpectedPositionalArgs(2), WithStrictness(types.AtLeast)),
		WithCommand("run", "run things", WithExpectedPositionalArgs(2),
			WithSubcommand("fast", "fast mode")),
	}

	app, err := NewApp("git", "1.2.3", "a tiny git", append(base, configs...)...)
	require.NoError(t, err)

	return app
}

func manyStrings(t *testing.T, d types.Descriptor) []string {
	t.Helper()
	values, ok := d.AsMany()
	require.True(t, ok, "descriptor %s is not multi-valued", d)
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = v.String()
	}

	return result
}

func TestResolve_MoveWithRequiredMultiple(t *testing.T) {
	app := newGitApp(t)

	res, err := app.Resolve([]string{"move", "-p", "a.txt", "b.txt"})
	require.NoError(t, err)

	assert.Equal(t, "move", res.Command.Name())
	assert.Empty(t, res.Arguments())

	path, ok := res.OptionValue("path")
	require.True(t, ok)
	assert.Equal(t, []string{"a.txt", "b.txt"}, manyStrings(t, path))

	want := []ChainElement{
		{Kind: SubCommandElement, Name: "move", Depth: 1, Position: 0},
		{
			Kind:       OptionElement,
			Name:       "path",
			Descriptor: types.RequiredMultiple(types.Unbounded).WithValues(types.String("a.txt"), types.String("b.txt")),
			Depth:      1,
			Position:   1,
		},
	}
	if diff := cmp.Diff(want, res.Chain); diff != "" {
		t.Errorf("chain mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_MissingRequiredSingle(t *testing.T) {
	app := newGitApp(t)

	_, err := app.Resolve([]string{"-n"})

	var mv *errs.MissingValueError
	require.True(t, errors.As(err, &mv))
	assert.Equal(t, "name", mv.Option)
	assert.ErrorIs(t, err, errs.ErrMissingValue)
}

func TestResolve_SeparatorMakesArguments(t *testing.T) {
	app := newGitApp(t)

	res, err := app.Resolve([]string{"--", "-v"})
	require.NoError(t, err)

	want := []ChainElement{{Kind: ArgumentElement, Value: "-v", Depth: 0, Position: 1}}
	if diff := cmp.Diff(want, res.Chain); diff != "" {
		t.Errorf("chain mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, res.Provided("verbose"))

	res, err = app.Resolve([]string{"copy", "a", "--", "--help", "-", "status"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "--help", "-", "status"}, res.Arguments())
	assert.Empty(t, res.Preserved)
}

func TestResolve_FlagPresenceIsDistinguishable(t *testing.T) {
	app := newGitApp(t)

	absent, err := app.Resolve(nil)
	require.NoError(t, err)
	present, err := app.Resolve([]string{"-v"})
	require.NoError(t, err)

	assert.False(t, absent.Flag("verbose"))
	assert.True(t, present.Flag("verbose"))
	assert.True(t, present.Flag("-v"))
	assert.True(t, present.Flag("--verbose"))

	registered, ok := absent.OptionValue("verbose")
	require.True(t, ok, "the flag exists in the schema even when absent")
	seen, ok := present.OptionValue("verbose")
	require.True(t, ok)
	assert.False(t, registered.Equal(seen))

	v, _ := seen.AsSingle()
	assert.True(t, v.Equal(types.Bool(true)))

	schema, _ := app.Root().Option("verbose")
	assert.False(t, schema.Descriptor.IsSet(), "resolution must not mutate the registry")
}

func TestResolve_UnknownCommandSuggestions(t *testing.T) {
	app := newGitApp(t)

	_, err := app.Resolve([]string{"statu"})

	var uc *errs.UnknownCommandError
	require.True(t, errors.As(err, &uc))
	assert.Equal(t, "statu", uc.Token)
	require.NotEmpty(t, uc.Suggestions)
	assert.Equal(t, "status", uc.Suggestions[0])

	_, err = app.Resolve([]string{"xyzzy"})
	require.True(t, errors.As(err, &uc))
	assert.Empty(t, uc.Suggestions)
}

func TestResolve_SuggestionRankingAmongSiblings(t *testing.T) {
	app, err := NewApp("vcs", "0.1.0", "", WithoutHelp(), WithoutVersion())
	require.NoError(t, err)
	for _, name := range []string{"status", "commit", "checkout", "stats", "statue"} {
		_, err := app.Command(name, "")
		require.NoError(t, err)
	}

	_, err = app.Resolve([]string{"statu"})
	var uc *errs.UnknownCommandError
	require.True(t, errors.As(err, &uc))
	// status, stats and statue are all one edit away: registration order breaks the tie
	assert.Equal(t, []string{"status", "stats", "statue"}, uc.Suggestions)

	noSuggest, err := NewApp("vcs", "0.1.0", "", WithSuggestionThreshold(0),
		WithCommand("status", ""))
	require.NoError(t, err)
	_, err = noSuggest.Resolve([]string{"statu"})
	require.True(t, errors.As(err, &uc))
	assert.Empty(t, uc.Suggestions)
}

func TestResolve_BoundedRequiredMultiple(t *testing.T) {
	app := newGitApp(t)

	t.Run("exactly at the bound", func(t *testing.T) {
		res, err := app.Resolve([]string{"plot", "-c", "1", "2", "3"})
		require.NoError(t, err)
		coords, _ := res.OptionValue("coords")
		assert.Equal(t, []string{"1", "2", "3"}, manyStrings(t, coords))
		values, _ := coords.AsMany()
		assert.Equal(t, types.KindInt, values[2].Kind())
		assert.Empty(t, res.Arguments())
	})

	t.Run("one short of the bound", func(t *testing.T) {
		_, err := app.Resolve([]string{"plot", "-c", "1", "2"})
		var mv *errs.MissingValueError
		require.True(t, errors.As(err, &mv))
		assert.Equal(t, "coords", mv.Option)
	})

	t.Run("one past the bound becomes a positional", func(t *testing.T) {
		res, err := app.Resolve([]string{"plot", "-c", "1", "2", "3", "4"})
		require.NoError(t, err)
		coords, _ := res.OptionValue("coords")
		assert.Equal(t, []string{"1", "2", "3"}, manyStrings(t, coords))
		assert.Equal(t, []string{"4"}, res.Arguments())
	})

	t.Run("one past the bound becomes a flag", func(t *testing.T) {
		res, err := app.Resolve([]string{"plot", "-c", "1", "2", "3", "-v"})
		require.NoError(t, err)
		assert.True(t, res.Flag("verbose"))
	})

	t.Run("a recognized flag stops collection", func(t *testing.T) {
		_, err := app.Resolve([]string{"plot", "-c", "1", "2", "-v", "3"})
		assert.ErrorIs(t, err, errs.ErrMissingValue)
	})
}

func TestResolve_ValueCoercion(t *testing.T) {
	app := newGitApp(t)

	_, err := app.Resolve([]string{"plot", "-c", "1", "x", "3"})
	var vpe *errs.ValueParseError
	require.True(t, errors.As(err, &vpe))
	assert.Equal(t, "coords", vpe.Option)
	assert.Equal(t, "x", vpe.Raw)
	assert.Equal(t, "integer", vpe.Expected)
	assert.ErrorIs(t, err, errs.ErrParseInt)

	res, err := app.Resolve([]string{"plot", "-o", "-5"})
	require.NoError(t, err, "unrecognized dash tokens are values")
	offset, _ := res.OptionValue("offset")
	v, ok := offset.AsSingle()
	require.True(t, ok)
	assert.True(t, v.Equal(types.Int(-5)))
}

func TestResolve_OptionalSingleKeepsDefault(t *testing.T) {
	app := newGitApp(t)

	res, err := app.Resolve([]string{"plot", "-l"})
	require.NoError(t, err)
	assert.True(t, res.Provided("label"))
	label, _ := res.OptionValue("label")
	v, _ := label.AsSingle()
	assert.Equal(t, "none", v.String())

	res, err = app.Resolve([]string{"plot", "--label", "peak"})
	require.NoError(t, err)
	label, _ = res.OptionValue("-l")
	v, _ = label.AsSingle()
	assert.Equal(t, "peak", v.String())
}

func TestResolve_InlineValues(t *testing.T) {
	app := newGitApp(t)

	for _, argv := range [][]string{{"--name=alice"}, {"-n=alice"}, {"--name", "alice"}} {
		res, err := app.Resolve(argv)
		require.NoError(t, err, argv)
		name, _ := res.OptionValue("name")
		v, _ := name.AsSingle()
		assert.Equal(t, "alice", v.String(), argv)
	}

	res, err := app.Resolve([]string{"move", "--path=a", "b"})
	require.NoError(t, err)
	path, _ := res.OptionValue("path")
	assert.Equal(t, []string{"a", "b"}, manyStrings(t, path))
}

func TestResolve_LastOccurrenceWins(t *testing.T) {
	app := newGitApp(t)

	res, err := app.Resolve([]string{"-n", "a", "--name", "b"})
	require.NoError(t, err)

	name, _ := res.OptionValue("name")
	v, _ := name.AsSingle()
	assert.Equal(t, "b", v.String())
	assert.Len(t, res.Chain, 2, "both occurrences stay in the chain")
}

func TestResolve_UnexpectedToken(t *testing.T) {
	app := newGitApp(t)

	tests := []struct {
		argv     []string
		token    string
		position int
	}{
		{[]string{"---x"}, "---x", 0},
		{[]string{"move", "--=v"}, "--=v", 1},
		{[]string{"-=v"}, "-=v", 0},
		{[]string{"-n", "bob", "-v=true"}, "-v=true", 2},
	}

	for _, tt := range tests {
		_, err := app.Resolve(tt.argv)
		var ut *errs.UnexpectedTokenError
		if assert.True(t, errors.As(err, &ut), "%v", tt.argv) {
			assert.Equal(t, tt.token, ut.Token)
			assert.Equal(t, tt.position, ut.Position)
		}
	}
}

func TestResolve_OptionNotFound(t *testing.T) {
	app := newGitApp(t)

	_, err := app.Resolve([]string{"--nope"})
	var nf *errs.OptionNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "--nope", nf.Token)

	// subcommands shadow the options of their parent
	_, err = app.Resolve([]string{"move", "-n", "bob"})
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "-n", nf.Token)
}

func TestResolve_AncestorOptions(t *testing.T) {
	app := newGitApp(t)

	res, err := app.Resolve([]string{"-n", "bob", "-v", "move", "-p", "a"})
	require.NoError(t, err)

	name, ok := res.OptionValue("name")
	require.True(t, ok)
	v, _ := name.AsSingle()
	assert.Equal(t, "bob", v.String())
	assert.True(t, res.Flag("verbose"), "a value supplied on an ancestor wins over the inherited default")

	res, err = app.Resolve([]string{"move", "-v", "-p", "a"})
	require.NoError(t, err)
	assert.True(t, res.Flag("-v"), "inherited flags are accepted after descending")
}

func TestResolve_PreservedShortCircuits(t *testing.T) {
	app := newGitApp(t)

	res, err := app.Resolve([]string{"copy", "-h"})
	require.NoError(t, err, "positional validation is skipped")
	assert.Equal(t, HelpOption, res.Preserved)
	assert.Equal(t, "copy", res.Command.Name())

	want := []ChainElement{
		{Kind: SubCommandElement, Name: "copy", Depth: 1, Position: 0},
		{Kind: PreservedOptionElement, Name: HelpOption, Depth: 1, Position: 1},
	}
	if diff := cmp.Diff(want, res.Chain); diff != "" {
		t.Errorf("chain mismatch (-want +got):\n%s", diff)
	}

	res, err = app.Resolve([]string{"--help", "--nope", "statu"})
	require.NoError(t, err, "nothing after a preserved option is parsed")
	assert.Equal(t, HelpOption, res.Preserved)
	assert.True(t, res.Command.IsRoot())

	res, err = app.Resolve([]string{"-V"})
	require.NoError(t, err)
	assert.Equal(t, VersionOption, res.Preserved)

	_, err = app.Resolve([]string{"move", "-V"})
	assert.ErrorIs(t, err, errs.ErrOptionNotFound, "version is only registered on the root")
}

func TestResolve_PositionalCounts(t *testing.T) {
	app := newGitApp(t)

	res, err := app.Resolve([]string{"checkout", "main"})
	require.NoError(t, err)
	arg, ok := res.ArgumentAt(0)
	assert.True(t, ok)
	assert.Equal(t, "main", arg)
	_, ok = res.ArgumentAt(1)
	assert.False(t, ok)

	_, err = app.Resolve([]string{"checkout", "main", "dev"})
	var pc *errs.PositionalArgCountError
	require.True(t, errors.As(err, &pc))
	assert.Equal(t, "git checkout", pc.Command)
	assert.Equal(t, 1, pc.Expected)
	assert.Equal(t, 2, pc.Actual)
	assert.False(t, pc.AtLeast)

	_, err = app.Resolve([]string{"copy", "a", "b", "c"})
	assert.NoError(t, err, "at least two")

	_, err = app.Resolve([]string{"copy", "a"})
	require.True(t, errors.As(err, &pc))
	assert.True(t, pc.AtLeast)
	assert.Equal(t, 1, pc.Actual)

	copyCmd, _ := app.Root().Subcommand("copy")
	copyCmd.SetPositionalStrictness(types.Exact)
	_, err = app.Resolve([]string{"copy", "a", "b", "c"})
	assert.ErrorIs(t, err, errs.ErrPositionalCount)
}

func TestResolve_SubcommandMatchingEndsAtFirstArgument(t *testing.T) {
	app := newGitApp(t)

	res, err := app.Resolve([]string{"run", "fast"})
	require.NoError(t, err)
	assert.Equal(t, "git run fast", res.Command.Path())

	res, err = app.Resolve([]string{"run", "x", "fast"})
	require.NoError(t, err)
	assert.Equal(t, "run", res.Command.Name())
	assert.Equal(t, []string{"x", "fast"}, res.Arguments())

	_, err = app.Resolve([]string{"run", "nope"})
	assert.ErrorIs(t, err, errs.ErrPositionalCount, "nodes expecting positionals take unknown tokens as arguments")
}

func TestResolve_AtLeastZeroWithSubcommands(t *testing.T) {
	app, err := NewApp("git", "1.0.0", "",
		WithCommand("remote", "manage remotes",
			WithSubcommand("add", "add a remote"),
			WithExpectedPositionalArgs(0),
			WithStrictness(types.AtLeast)))
	require.NoError(t, err)

	res, err := app.Resolve([]string{"remote", "origin"})
	require.NoError(t, err)
	assert.Equal(t, "git remote", res.Command.Path())
	assert.Equal(t, []string{"origin"}, res.Arguments())

	res, err = app.Resolve([]string{"remote", "add"})
	require.NoError(t, err)
	assert.Equal(t, "git remote add", res.Command.Path())

	remote, _ := app.Root().Subcommand("remote")
	remote.SetPositionalStrictness(types.Exact)
	_, err = app.Resolve([]string{"remote", "origin"})
	assert.ErrorIs(t, err, errs.ErrUnknownCommand)
}

func TestResolve_LoneDashIsArgument(t *testing.T) {
	app := newGitApp(t)

	res, err := app.Resolve([]string{"-"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-"}, res.Arguments())
}

func TestCommand_ResolveSubtree(t *testing.T) {
	app := newGitApp(t)
	move, ok := app.Root().Subcommand("move")
	require.True(t, ok)

	res, err := move.Resolve([]string{"move", "-p", "x"})
	require.NoError(t, err)
	assert.Equal(t, "move", res.Command.Name())
	assert.Equal(t, ChainElement{Kind: SubCommandElement, Name: "move", Depth: 1, Position: 0}, res.Chain[0])

	_, err = move.Resolve([]string{"copy", "-p", "x"})
	var cm *errs.CommandMismatchError
	require.True(t, errors.As(err, &cm))
	assert.Equal(t, "move", cm.Expected)
	assert.Equal(t, "copy", cm.Actual)

	_, err = move.Resolve(nil)
	assert.ErrorIs(t, err, errs.ErrCommandMismatch)
}

func TestApp_ResolveString(t *testing.T) {
	app := newGitApp(t)

	res, err := app.ResolveString(`commit -m "first commit"`)
	require.NoError(t, err)
	msg, _ := res.OptionValue("message")
	v, _ := msg.AsSingle()
	assert.Equal(t, "first commit", v.String())

	_, err = app.ResolveString(`commit -m "unterminated`)
	assert.Error(t, err)
}

func TestResolve_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	app := newGitApp(t, WithLogger(logger))

	_, err := app.Resolve([]string{"move", "-p", "a"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "descend")
	assert.Contains(t, out, "collected values")
	assert.Contains(t, out, "to=DescendingCommands")
	assert.Contains(t, out, "to=Resolved")
}

func TestResolve_ResultDoesNotAliasInput(t *testing.T) {
	app := newGitApp(t)
	argv := []string{"copy", "a", "b"}

	res, err := app.Resolve(argv)
	require.NoError(t, err)
	argv[1] = "changed"

	args := res.Arguments()
	assert.Equal(t, []string{"a", "b"}, args)
	args[0] = "mutated"
	assert.Equal(t, "a", res.Arguments()[0])
}
