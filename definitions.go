package fli

import (
	"github.com/napalu/fli/types"
)

// CommandFunc is called with the resolution context when a command, or a preserved
// option, is dispatched by Run
type CommandFunc func(ctx *Context) error

// NameConversionFunc converts a canonical option name into its long flag form
type NameConversionFunc func(string) string

// ConfigureAppFunc is used when defining an App with NewApp
type ConfigureAppFunc func(app *App, err *error)

// ConfigureCommandFunc is used when defining commands with WithCommand and WithSubcommand
type ConfigureCommandFunc func(cmd *Command, err *error)

// ConfigureOptionFunc is used when defining options with AddOption
type ConfigureOptionFunc func(opt *Option, err *error)

// Names of the preserved options registered automatically
const (
	HelpOption    = "help"
	VersionOption = "version"
)

// Option describes a single command-line option owned by one command
type Option struct {
	// Name is the canonical name, unique within the owning command
	Name string
	// Short is the short flag form, used as -x
	Short string
	// Long is the long flag form, used as --name
	Long        string
	Description string
	// DescriptionKey, when set, is translated by renderers in place of Description
	DescriptionKey string
	Descriptor     types.Descriptor
	// Preserved options short-circuit resolution, e.g. help
	Preserved bool
	// Callback is run by Run when the preserved option is seen
	Callback CommandFunc
	// Inheritable options are copied to subcommands created afterwards
	Inheritable bool
}

// ElementKind identifies the kind of a ChainElement
type ElementKind int

const (
	SubCommandElement      ElementKind = iota // SubCommandElement is a matched subcommand
	OptionElement                             // OptionElement is a resolved option and its values
	ArgumentElement                           // ArgumentElement is a positional argument
	PreservedOptionElement                    // PreservedOptionElement is a preserved option which ended resolution
)

// String returns the string representation of an ElementKind
func (k ElementKind) String() string {
	switch k {
	case SubCommandElement:
		return "subcommand"
	case OptionElement:
		return "option"
	case ArgumentElement:
		return "argument"
	case PreservedOptionElement:
		return "preserved"
	}
	return "unknown"
}

// ChainElement is one event of a resolved invocation. Name holds the subcommand or
// canonical option name, Value the raw positional argument.
type ChainElement struct {
	Kind       ElementKind
	Name       string
	Value      string
	Descriptor types.Descriptor
	// Depth is the command tree level the element was produced at, 0 being the root
	Depth int
	// Position is the index of the token in the resolved argument vector
	Position int
}
