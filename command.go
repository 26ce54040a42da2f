package fli

import (
	"github.com/napalu/fli/errs"
	"github.com/napalu/fli/types"
)

// Command is a handle to a command of an App. Handles are cheap values: two handles
// to the same command are interchangeable.
type Command struct {
	app *App
	id  int
}

func (c *Command) node() *node {
	return c.app.nodes[c.id]
}

// Name returns the name the command is invoked with
func (c *Command) Name() string {
	return c.node().name
}

// Path returns the names from the root down to this command, separated by spaces
func (c *Command) Path() string {
	return c.app.path(c.id)
}

// Description returns the command description
func (c *Command) Description() string {
	return c.node().description
}

// Depth returns the level of the command in the tree, 0 for the root
func (c *Command) Depth() int {
	return c.node().depth
}

// IsRoot reports whether the command is the application itself
func (c *Command) IsRoot() bool {
	return c.node().parent == noParent
}

// Parent returns the parent command, nil for the root
func (c *Command) Parent() *Command {
	if c.IsRoot() {
		return nil
	}

	return &Command{app: c.app, id: c.node().parent}
}

// App returns the application owning the command
func (c *Command) App() *App {
	return c.app
}

// Options returns copies of the command's options in registration order
func (c *Command) Options() []Option {
	opts := c.node().options.all()
	result := make([]Option, len(opts))
	for i, opt := range opts {
		result[i] = *opt
	}

	return result
}

// Option returns a copy of the option registered under nameOrFlag, which may be
// the canonical name, "-short" or "--long"
func (c *Command) Option(nameOrFlag string) (Option, bool) {
	opt, ok := c.node().options.lookup(nameOrFlag)
	if !ok {
		return Option{}, false
	}

	return *opt, true
}

// Subcommands returns the direct subcommands in registration order
func (c *Command) Subcommands() []*Command {
	n := c.node()
	subs := make([]*Command, 0, n.children.Len())
	for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
		subs = append(subs, &Command{app: c.app, id: pair.Value})
	}

	return subs
}

// Subcommand returns the direct subcommand called name
func (c *Command) Subcommand(name string) (*Command, bool) {
	id, ok := c.app.child(c.id, name)
	if !ok {
		return nil, false
	}

	return &Command{app: c.app, id: id}, true
}

// ExpectedPositionalArgs returns the declared positional count, types.Unconstrained if none
func (c *Command) ExpectedPositionalArgs() int {
	return c.node().expected
}

// Strictness returns how the expected positional count is enforced
func (c *Command) Strictness() types.Strictness {
	return c.node().strictness
}

// HasCallback reports whether a callback was set on the command
func (c *Command) HasCallback() bool {
	return c.node().callback != nil
}

// Command registers a subcommand and returns its handle
func (c *Command) Command(name, description string) (*Command, error) {
	child, err := c.app.addChild(c.id, name, description)
	if err != nil {
		return nil, err
	}

	return &Command{app: c.app, id: child.id}, nil
}

// AddOption registers an option on the command. An empty long flag is derived from
// name with the app's flag name converter.
func (c *Command) AddOption(name, description, short, long string, descriptor types.Descriptor, configs ...ConfigureOptionFunc) error {
	opt := &Option{
		Name:        name,
		Short:       short,
		Long:        long,
		Description: description,
		Descriptor:  descriptor,
	}
	if opt.Long == "" && name != "" {
		opt.Long = c.app.flagNameConverter(name)
	}

	var err error
	for _, config := range configs {
		config(opt, &err)
		if err != nil {
			return err
		}
	}

	return c.node().options.add(c.Path(), opt)
}

// MarkInheritable marks options as inheritable: subcommands created afterwards receive a copy
func (c *Command) MarkInheritable(flags ...string) error {
	n := c.node()
	for _, flag := range flags {
		opt, ok := n.options.lookup(flag)
		if !ok {
			return errs.NewInternal(errs.ErrOptionNotRegistered.WithArgs(flag, c.Path()))
		}
		opt.Inheritable = true
	}

	return nil
}

// SetCallback sets the function run by App.Run when the command is resolved
func (c *Command) SetCallback(fn CommandFunc) {
	c.node().callback = fn
}

// SetExpectedPositionalArgs declares how many positional arguments the command takes.
// A negative count removes the constraint.
func (c *Command) SetExpectedPositionalArgs(n int) {
	if n < 0 {
		n = types.Unconstrained
	}
	c.node().expected = n
}

// SetPositionalStrictness selects whether the expected count is exact or a minimum
func (c *Command) SetPositionalStrictness(s types.Strictness) {
	c.node().strictness = s
}

// Resolve resolves an invocation of this command's subtree: argv[0] must be the
// command's own name.
func (c *Command) Resolve(argv []string) (*Resolution, error) {
	if len(argv) == 0 || argv[0] != c.Name() {
		actual := ""
		if len(argv) > 0 {
			actual = argv[0]
		}
		return nil, &errs.CommandMismatchError{Expected: c.Name(), Actual: actual}
	}

	r := newResolver(c.app, c.id, argv)
	r.state.Advance()
	r.emit(ChainElement{Kind: SubCommandElement, Name: c.Name()})

	return r.resolve()
}
