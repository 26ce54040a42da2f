// Package render prints help screens, versions, errors and command trees for a fli.App.
// It only reads the metadata exposed by fli.Command.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/napalu/fli"
	"github.com/napalu/fli/errs"
	"github.com/napalu/fli/i18n"
	"github.com/napalu/fli/types"
	"github.com/napalu/fli/util"
)

// CompactWidth is the terminal width below which options are listed without a table
const CompactWidth = 60

var (
	headingColor    = color.New(color.Bold)
	flagColor       = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed, color.Bold)
	suggestionColor = color.New(color.FgGreen)
)

// PrettyPrintConfig is used to print the list of accepted commands as a tree in Tree
type PrettyPrintConfig struct {
	// NewCommandPrefix precedes the start of a new top-level command
	NewCommandPrefix string
	// DefaultPrefix precedes sub-commands by default
	DefaultPrefix string
	// TerminalPrefix precedes terminal commands, i.e. commands which don't have sub-commands
	TerminalPrefix string
	// OuterLevelBindPrefix is used for indentation. The indentation is repeated for each level under the
	// top-level commands, which are at level 0.
	OuterLevelBindPrefix string
}

// DefaultPrettyPrintConfig is used by Tree when no config is given
var DefaultPrettyPrintConfig = &PrettyPrintConfig{
	NewCommandPrefix:     " +",
	DefaultPrefix:        " │",
	TerminalPrefix:       " └",
	OuterLevelBindPrefix: "─",
}

// DefaultRenderer renders fli metadata with translations from an i18n.Bundle
type DefaultRenderer struct {
	bundle   *i18n.Bundle
	terminal util.Terminal
	fd       int
}

// NewRenderer returns a renderer using the default bundle and sizing its output to stdout
func NewRenderer() *DefaultRenderer {
	return &DefaultRenderer{
		bundle:   i18n.Default(),
		terminal: util.DefaultTerminal{},
		fd:       int(os.Stdout.Fd()),
	}
}

// WithBundle sets the bundle used for translations
func (r *DefaultRenderer) WithBundle(bundle *i18n.Bundle) *DefaultRenderer {
	if bundle != nil {
		r.bundle = bundle
	}
	return r
}

// WithTerminal sets the terminal queried for the output width
func (r *DefaultRenderer) WithTerminal(terminal util.Terminal, fd int) *DefaultRenderer {
	r.terminal = terminal
	r.fd = fd
	return r
}

// Width returns the width available for rendering
func (r *DefaultRenderer) Width() int {
	return util.TerminalWidth(r.terminal, r.fd)
}

// OptionDescription returns the translated description when the option has a known
// DescriptionKey, its Description otherwise
func (r *DefaultRenderer) OptionDescription(opt fli.Option) string {
	if opt.DescriptionKey != "" && r.bundle.HasKey(r.bundle.DefaultLanguage(), opt.DescriptionKey) {
		return r.bundle.T(opt.DescriptionKey)
	}

	return opt.Description
}

// OptionFlags returns the flag forms of opt, e.g. "-p, --path"
func (r *DefaultRenderer) OptionFlags(opt fli.Option) string {
	var forms []string
	if opt.Short != "" {
		forms = append(forms, "-"+opt.Short)
	}
	if opt.Long != "" {
		forms = append(forms, "--"+opt.Long)
	}
	if len(forms) == 0 {
		forms = append(forms, "--"+opt.Name)
	}

	return strings.Join(forms, ", ")
}

// Shape describes what a descriptor accepts, e.g. "multiple (exactly 3) <integer>"
func (r *DefaultRenderer) Shape(d types.Descriptor) string {
	var shape string
	switch d.Shape() {
	case types.ShapeNone:
		return r.bundle.T(errs.MsgShapeNoneKey)
	case types.ShapeRequiredSingle:
		shape = r.bundle.T(errs.MsgShapeSingleRequiredKey)
	case types.ShapeOptionalSingle:
		shape = r.bundle.T(errs.MsgShapeSingleOptionalKey)
	case types.ShapeRequiredMultiple:
		if d.Bounded() {
			shape = r.bundle.T(errs.MsgShapeMultipleExactlyKey, d.Max())
		} else {
			shape = r.bundle.T(errs.MsgShapeMultipleOneOrMoreKey)
		}
	case types.ShapeOptionalMultiple:
		if d.Bounded() {
			shape = r.bundle.T(errs.MsgShapeMultipleMaxKey, d.Max())
		} else {
			shape = r.bundle.T(errs.MsgShapeMultipleAnyKey)
		}
	}

	return fmt.Sprintf("%s <%s>", shape, d.Template(0).Kind())
}

// Usage returns the usage line of cmd
func (r *DefaultRenderer) Usage(cmd *fli.Command) string {
	usage := cmd.Path()
	if len(cmd.Options()) > 0 {
		usage += " [options]"
	}
	if len(cmd.Subcommands()) > 0 {
		usage += " <command>"
	}
	switch n := cmd.ExpectedPositionalArgs(); {
	case n > 0 && cmd.Strictness() == types.AtLeast:
		usage += fmt.Sprintf(" <args: %d+>", n)
	case n > 0:
		usage += fmt.Sprintf(" <args: %d>", n)
	case n == types.Unconstrained && len(cmd.Subcommands()) == 0:
		usage += " [args...]"
	}

	return usage
}

// Help writes the help screen of cmd
func (r *DefaultRenderer) Help(w io.Writer, cmd *fli.Command) error {
	var sb strings.Builder

	sb.WriteString(headingColor.Sprint(r.bundle.T(errs.MsgUsageKey)) + ": " + r.Usage(cmd) + "\n")
	description := cmd.Description()
	if cmd.IsRoot() {
		description = cmd.App().Description()
	}
	if description != "" {
		sb.WriteString("\n" + description + "\n")
	}

	if opts := cmd.Options(); len(opts) > 0 {
		sb.WriteString("\n" + headingColor.Sprint(r.bundle.T(errs.MsgOptionsKey)) + ":\n")
		if r.Width() < CompactWidth {
			r.compactOptions(&sb, opts)
		} else {
			r.optionTable(&sb, opts)
		}
	}

	if subs := cmd.Subcommands(); len(subs) > 0 {
		sb.WriteString("\n" + headingColor.Sprint(r.bundle.T(errs.MsgSubcommandsKey)) + ":\n")
		tw := tabwriter.NewWriter(&sb, 0, 4, 3, ' ', 0)
		for _, sub := range subs {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name(), sub.Description())
		}
		_ = tw.Flush()
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *DefaultRenderer) optionTable(sb *strings.Builder, opts []fli.Option) {
	tw := tabwriter.NewWriter(sb, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
		r.bundle.T(errs.MsgHeaderFlagKey),
		r.bundle.T(errs.MsgHeaderLongKey),
		r.bundle.T(errs.MsgHeaderValueKey),
		r.bundle.T(errs.MsgHeaderDescriptionKey))
	for _, opt := range opts {
		short, long := "", ""
		if opt.Short != "" {
			short = "-" + opt.Short
		}
		if opt.Long != "" {
			long = "--" + opt.Long
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", short, long, r.Shape(opt.Descriptor), r.OptionDescription(opt))
	}
	_ = tw.Flush()
}

func (r *DefaultRenderer) compactOptions(sb *strings.Builder, opts []fli.Option) {
	for _, opt := range opts {
		sb.WriteString("  " + flagColor.Sprint(r.OptionFlags(opt)))
		if opt.Descriptor.ExpectsValue() {
			sb.WriteString(" " + r.Shape(opt.Descriptor))
		}
		sb.WriteString("\n")
		if description := r.OptionDescription(opt); description != "" {
			sb.WriteString("      " + description + "\n")
		}
	}
}

// Error writes err followed by the suggestions of an unknown command
func (r *DefaultRenderer) Error(w io.Writer, err error) error {
	if err == nil {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(errorColor.Sprint(err.Error()) + "\n")

	var uc *errs.UnknownCommandError
	if errors.As(err, &uc) && len(uc.Suggestions) > 0 {
		sb.WriteString("\n" + r.bundle.T(errs.MsgDidYouMeanKey) + ":\n")
		for _, s := range uc.Suggestions {
			sb.WriteString("  " + suggestionColor.Sprint(s) + "\n")
		}
	}

	_, werr := io.WriteString(w, sb.String())
	return werr
}

// ErrorWithHint writes err like Error, followed by a pointer to the help of app
func (r *DefaultRenderer) ErrorWithHint(w io.Writer, app *fli.App, err error) error {
	if err == nil {
		return nil
	}
	if werr := r.Error(w, err); werr != nil {
		return werr
	}

	_, werr := fmt.Fprintln(w, r.bundle.T(errs.MsgHelpHintKey, app.Name()))
	return werr
}

// Version writes the application name and version
func (r *DefaultRenderer) Version(w io.Writer, app *fli.App) error {
	_, err := fmt.Fprintf(w, "%s %s\n", app.Name(), app.Version())
	return err
}

// Tree writes the command tree of app below its root using config
func (r *DefaultRenderer) Tree(w io.Writer, app *fli.App, config *PrettyPrintConfig) error {
	if config == nil {
		config = DefaultPrettyPrintConfig
	}

	var err error
	app.Walk(func(cmd *fli.Command) bool {
		if cmd.IsRoot() {
			return true
		}
		level := cmd.Depth() - 1

		var start = config.DefaultPrefix
		switch {
		case level == 0:
			start = config.NewCommandPrefix
		case len(cmd.Subcommands()) == 0:
			start = config.TerminalPrefix
		}
		_, err = fmt.Fprintf(w, "%s%s %s \"%s\"\n", start, strings.Repeat(config.OuterLevelBindPrefix, level),
			cmd.Name(), cmd.Description())

		return err == nil
	})

	return err
}

var defaultRenderer = NewRenderer()

// Help writes the help screen of cmd with the default renderer
func Help(w io.Writer, cmd *fli.Command) error {
	return defaultRenderer.Help(w, cmd)
}

// Error writes err and its suggestions with the default renderer
func Error(w io.Writer, err error) error {
	return defaultRenderer.Error(w, err)
}

// Tree writes the command tree of app with the default renderer
func Tree(w io.Writer, app *fli.App, config *PrettyPrintConfig) error {
	return defaultRenderer.Tree(w, app, config)
}

// HelpHandler returns a handler for fli.WithHelpHandler printing the help of the resolved command
func HelpHandler(w io.Writer) fli.CommandFunc {
	return func(ctx *fli.Context) error {
		return defaultRenderer.Help(w, ctx.Command())
	}
}

// VersionHandler returns a handler for fli.WithVersionHandler printing the application version
func VersionHandler(w io.Writer) fli.CommandFunc {
	return func(ctx *fli.Context) error {
		return defaultRenderer.Version(w, ctx.App())
	}
}
