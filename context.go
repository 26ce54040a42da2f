package fli

import (
	"github.com/napalu/fli/types"
)

// OptionValue returns the descriptor of the option known as nameOrFlag ("name", "-n"
// or "--name"). The resolved command is searched first, then its ancestors. The value
// supplied on the command line wins; otherwise the registered descriptor of the
// nearest command defining the option is returned.
func (r *Resolution) OptionValue(nameOrFlag string) (types.Descriptor, bool) {
	d, _, found := r.lookup(nameOrFlag)
	return d, found
}

// Provided reports whether the option was supplied on the command line
func (r *Resolution) Provided(nameOrFlag string) bool {
	_, provided, _ := r.lookup(nameOrFlag)
	return provided
}

// Flag returns the boolean state of an option: whether a flag was supplied, or the
// value of a boolean single-valued option
func (r *Resolution) Flag(nameOrFlag string) bool {
	d, provided, found := r.lookup(nameOrFlag)
	if !found {
		return false
	}
	if d.Shape() == types.ShapeNone {
		return provided
	}
	if v, ok := d.AsSingle(); ok {
		b, _ := v.AsBool()
		return b
	}

	return false
}

// Arguments returns the positional arguments in input order
func (r *Resolution) Arguments() []string {
	args := make([]string, len(r.arguments))
	copy(args, r.arguments)

	return args
}

// ArgumentAt returns the positional argument at index
func (r *Resolution) ArgumentAt(index int) (string, bool) {
	if index < 0 || index >= len(r.arguments) {
		return "", false
	}

	return r.arguments[index], true
}

// Context returns the callback context of the resolution
func (r *Resolution) Context() *Context {
	return &Context{res: r}
}

func (r *Resolution) lookup(nameOrFlag string) (d types.Descriptor, provided bool, found bool) {
	app := r.Command.app
	for i := len(r.path) - 1; i >= 0; i-- {
		id := r.path[i]
		opt, ok := app.nodes[id].options.lookup(nameOrFlag)
		if !ok {
			continue
		}
		if el, ok := r.values[id][opt.Name]; ok {
			return el.Descriptor, true, true
		}
		if !found {
			d, found = opt.Descriptor, true
		}
	}

	return d, false, found
}

// Context is handed to command callbacks after a successful resolution
type Context struct {
	res *Resolution
}

// Command returns the resolved command
func (c *Context) Command() *Command {
	return c.res.Command
}

// App returns the application
func (c *Context) App() *App {
	return c.res.Command.app
}

// Chain returns a copy of the resolved chain
func (c *Context) Chain() []ChainElement {
	chain := make([]ChainElement, len(c.res.Chain))
	copy(chain, c.res.Chain)

	return chain
}

// Preserved returns the preserved option which ended resolution, if any
func (c *Context) Preserved() string {
	return c.res.Preserved
}

// Resolution returns the underlying resolution
func (c *Context) Resolution() *Resolution {
	return c.res
}

// OptionValue is Resolution.OptionValue
func (c *Context) OptionValue(nameOrFlag string) (types.Descriptor, bool) {
	return c.res.OptionValue(nameOrFlag)
}

// Provided is Resolution.Provided
func (c *Context) Provided(nameOrFlag string) bool {
	return c.res.Provided(nameOrFlag)
}

// Flag is Resolution.Flag
func (c *Context) Flag(nameOrFlag string) bool {
	return c.res.Flag(nameOrFlag)
}

// Arguments is Resolution.Arguments
func (c *Context) Arguments() []string {
	return c.res.Arguments()
}

// ArgumentAt is Resolution.ArgumentAt
func (c *Context) ArgumentAt(index int) (string, bool) {
	return c.res.ArgumentAt(index)
}
