// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package fli is a declarative command-line argument interpreter.
//
// An App describes a tree of commands, each owning options whose accepted values are
// declared with types.Descriptor. Resolve turns an argument vector into a Resolution:
// the command the invocation ended on and the chain of subcommands, options and
// positional arguments which led there. Run resolves and dispatches to callbacks.
// The package never prints and never exits: rendering lives in the render package.
package fli

import (
	"io"
	"log/slog"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/iancoleman/strcase"
	"github.com/napalu/fli/errs"
	"github.com/napalu/fli/parse"
	"github.com/napalu/fli/types"
	"github.com/napalu/fli/util"
)

// App is the root of a command tree. Commands are stored in an arena owned by the
// App and exposed through *Command handles.
type App struct {
	name        string
	version     *semver.Version
	description string
	nodes       []*node

	logger              *slog.Logger
	suggestionThreshold int
	flagNameConverter   NameConversionFunc
	handlers            map[string]CommandFunc
	withoutHelp         bool
	withoutVersion      bool
	built               bool
}

// NewApp creates an application. version must be a semantic version. The configs are
// applied in order; help and version options are registered once they all succeeded.
func NewApp(name, version, description string, configs ...ConfigureAppFunc) (*App, error) {
	if name == "" {
		return nil, errs.NewInternal(errs.ErrEmptyName)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, errs.NewInternal(errs.ErrInvalidVersion.WithArgs(version).Wrap(err))
	}

	app := &App{
		name:                name,
		version:             v,
		description:         description,
		logger:              slog.New(slog.NewTextHandler(io.Discard, nil)),
		suggestionThreshold: util.DefaultSuggestionThreshold,
		flagNameConverter:   strcase.ToKebab,
		handlers:            make(map[string]CommandFunc),
	}
	app.newNode(name, description, noParent)

	for _, config := range configs {
		config(app, &err)
		if err != nil {
			return nil, err
		}
	}

	for _, n := range app.nodes {
		if err = app.addAutoOptions(n); err != nil {
			return nil, err
		}
	}
	app.built = true

	return app, nil
}

// Name returns the application name
func (a *App) Name() string {
	return a.name
}

// Version returns the application version as given to NewApp
func (a *App) Version() string {
	return a.version.Original()
}

// SemVer returns the parsed application version
func (a *App) SemVer() *semver.Version {
	return a.version
}

// Description returns the application description
func (a *App) Description() string {
	return a.description
}

// Root returns the command representing the application itself
func (a *App) Root() *Command {
	return &Command{app: a, id: 0}
}

// AddOption registers an option on the root command
func (a *App) AddOption(name, description, short, long string, descriptor types.Descriptor, configs ...ConfigureOptionFunc) error {
	return a.Root().AddOption(name, description, short, long, descriptor, configs...)
}

// Command registers a subcommand of the root
func (a *App) Command(name, description string) (*Command, error) {
	return a.Root().Command(name, description)
}

// SetCallback sets the callback run when no subcommand is given
func (a *App) SetCallback(fn CommandFunc) {
	a.Root().SetCallback(fn)
}

// SetExpectedPositionalArgs declares the positional count of the root command
func (a *App) SetExpectedPositionalArgs(n int) {
	a.Root().SetExpectedPositionalArgs(n)
}

// SetPositionalStrictness sets the positional strictness of the root command
func (a *App) SetPositionalStrictness(s types.Strictness) {
	a.Root().SetPositionalStrictness(s)
}

// MarkInheritable marks root options as inheritable by subcommands created afterwards
func (a *App) MarkInheritable(flags ...string) error {
	return a.Root().MarkInheritable(flags...)
}

// Resolve resolves argv, the process arguments without the program name
func (a *App) Resolve(argv []string) (*Resolution, error) {
	a.logger.Debug("resolve", "app", a.name, "args", len(argv))
	return newResolver(a, 0, argv).resolve()
}

// ResolveString splits line with shell quoting rules and resolves the result
func (a *App) ResolveString(line string) (*Resolution, error) {
	argv, err := parse.Split(line)
	if err != nil {
		return nil, err
	}

	return a.Resolve(argv)
}

// Run resolves argv and dispatches the result. See Dispatch.
func (a *App) Run(argv []string) error {
	res, err := a.Resolve(argv)
	if err != nil {
		return err
	}

	return a.Dispatch(res)
}

// Execute runs the application with the process arguments
func (a *App) Execute() error {
	return a.Run(os.Args[1:])
}

// Dispatch calls the callback matching res. A preserved option runs its own callback,
// or else the handler registered for its name on the App; otherwise the resolved
// command's callback runs. Missing callbacks are not an error. Callback errors are
// wrapped in errs.ErrCommandCallback.
func (a *App) Dispatch(res *Resolution) error {
	ctx := res.Context()

	var fn CommandFunc
	if res.Preserved != "" {
		if opt, ok := res.Command.node().options.lookup(res.Preserved); ok && opt.Callback != nil {
			fn = opt.Callback
		} else {
			fn = a.handlers[res.Preserved]
		}
	} else {
		fn = res.Command.node().callback
	}

	if fn == nil {
		a.logger.Debug("nothing to dispatch", "command", res.Command.Path(), "preserved", res.Preserved)
		return nil
	}

	a.logger.Debug("dispatch", "command", res.Command.Path(), "preserved", res.Preserved)
	if err := fn(ctx); err != nil {
		return errs.ErrCommandCallback.WithArgs(res.Command.Path()).Wrap(err)
	}

	return nil
}
