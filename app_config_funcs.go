package fli

import (
	"log/slog"

	"github.com/napalu/fli/types"
)

// WithLogger sets the logger receiving debug records of registration and resolution
func WithLogger(logger *slog.Logger) ConfigureAppFunc {
	return func(app *App, err *error) {
		if logger != nil {
			app.logger = logger
		}
	}
}

// WithSuggestionThreshold caps the edit distance of unknown command suggestions.
// 0 disables suggestions.
func WithSuggestionThreshold(max int) ConfigureAppFunc {
	return func(app *App, err *error) {
		if max < 0 {
			max = 0
		}
		app.suggestionThreshold = max
	}
}

// WithFlagNameConverter sets the function deriving long flags from canonical names
// when AddOption is called without a long flag. Defaults to strcase.ToKebab.
func WithFlagNameConverter(converter NameConversionFunc) ConfigureAppFunc {
	return func(app *App, err *error) {
		if converter != nil {
			app.flagNameConverter = converter
		}
	}
}

// WithoutHelp disables the automatic -h/--help option of every command
func WithoutHelp() ConfigureAppFunc {
	return func(app *App, err *error) {
		app.withoutHelp = true
	}
}

// WithoutVersion disables the automatic -V/--version option of the root
func WithoutVersion() ConfigureAppFunc {
	return func(app *App, err *error) {
		app.withoutVersion = true
	}
}

// WithHelpHandler sets the function Dispatch runs for the help option
func WithHelpHandler(fn CommandFunc) ConfigureAppFunc {
	return WithPreservedHandler(HelpOption, fn)
}

// WithVersionHandler sets the function Dispatch runs for the version option
func WithVersionHandler(fn CommandFunc) ConfigureAppFunc {
	return WithPreservedHandler(VersionOption, fn)
}

// WithPreservedHandler sets the function Dispatch runs for the preserved option called
// name, when the option carries no callback of its own
func WithPreservedHandler(name string, fn CommandFunc) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.handlers[name] = fn
	}
}

// WithOption is a wrapper for AddOption on the root command
func WithOption(name, description, short, long string, descriptor types.Descriptor, configs ...ConfigureOptionFunc) ConfigureAppFunc {
	return func(app *App, err *error) {
		*err = app.AddOption(name, description, short, long, descriptor, configs...)
	}
}

// WithCommand registers a subcommand of the root and configures it
func WithCommand(name, description string, configs ...ConfigureCommandFunc) ConfigureAppFunc {
	return func(app *App, err *error) {
		var cmd *Command
		cmd, *err = app.Command(name, description)
		if *err != nil {
			return
		}
		cmd.Set(err, configs...)
	}
}

// WithRootCallback sets the callback run when no subcommand is given
func WithRootCallback(fn CommandFunc) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.SetCallback(fn)
	}
}

// WithRootPositionalArgs declares the positional count of the root command
func WithRootPositionalArgs(n int, strictness types.Strictness) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.SetExpectedPositionalArgs(n)
		app.SetPositionalStrictness(strictness)
	}
}

// WithInheritable marks root options as inheritable by subcommands registered afterwards
func WithInheritable(flags ...string) ConfigureAppFunc {
	return func(app *App, err *error) {
		*err = app.MarkInheritable(flags...)
	}
}
