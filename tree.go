package fli

import (
	"strings"

	"github.com/ef-ds/deque"
	"github.com/napalu/fli/errs"
	"github.com/napalu/fli/i18n"
	"github.com/napalu/fli/types"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const noParent = -1

// node is a command stored in the App arena. Nodes reference each other by index.
type node struct {
	id          int
	name        string
	description string
	parent      int
	depth       int
	children    *orderedmap.OrderedMap[string, int]
	options     *registry
	callback    CommandFunc
	expected    int
	strictness  types.Strictness
}

func (a *App) newNode(name, description string, parent int) *node {
	n := &node{
		id:          len(a.nodes),
		name:        name,
		description: description,
		parent:      parent,
		children:    orderedmap.New[string, int](),
		options:     newRegistry(),
		expected:    types.Unconstrained,
		strictness:  types.Exact,
	}
	if parent != noParent {
		n.depth = a.nodes[parent].depth + 1
	}
	a.nodes = append(a.nodes, n)

	return n
}

// addChild registers a subcommand below parent. The child receives copies of the
// parent's inheritable options and, once the app is built, its own help option.
func (a *App) addChild(parent int, name, description string) (*node, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewInternal(errs.ErrEmptyName)
	}
	p := a.nodes[parent]
	if _, exists := p.children.Get(name); exists {
		return nil, errs.NewInternal(errs.ErrDuplicateCommand.WithArgs(name, a.path(parent)))
	}

	child := a.newNode(name, description, parent)
	p.children.Set(name, child.id)

	for _, opt := range p.options.all() {
		if !opt.Inheritable || opt.Preserved {
			continue
		}
		inherited := *opt
		if err := child.options.add(a.path(child.id), &inherited); err != nil {
			return nil, err
		}
	}

	if a.built {
		if err := a.addAutoOptions(child); err != nil {
			return nil, err
		}
	}
	a.logger.Debug("registered command", "command", a.path(child.id), "inherited", child.options.len())

	return child, nil
}

// addAutoOptions registers the preserved help option, plus version on the root.
// An option whose flags are already taken by user options is skipped.
func (a *App) addAutoOptions(n *node) error {
	if !a.withoutHelp {
		if err := a.addPreserved(n, HelpOption, "h", "help", errs.MsgHelpDescriptionKey); err != nil {
			return err
		}
	}
	if n.parent == noParent && !a.withoutVersion {
		if err := a.addPreserved(n, VersionOption, "V", "version", errs.MsgVersionDescriptionKey); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) addPreserved(n *node, name, short, long, descriptionKey string) error {
	if n.options.taken(name) || n.options.taken(short) || n.options.taken(long) {
		return nil
	}

	return n.options.add(a.path(n.id), &Option{
		Name:           name,
		Short:          short,
		Long:           long,
		Description:    i18n.Default().T(descriptionKey),
		DescriptionKey: descriptionKey,
		Descriptor:     types.None(),
		Preserved:      true,
	})
}

func (a *App) child(parent int, name string) (int, bool) {
	return a.nodes[parent].children.Get(name)
}

func (a *App) childNames(parent int) []string {
	p := a.nodes[parent]
	names := make([]string, 0, p.children.Len())
	for pair := p.children.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// path returns the space separated names from the root down to id
func (a *App) path(id int) string {
	var names []string
	for n := a.nodes[id]; ; n = a.nodes[n.parent] {
		names = append(names, n.name)
		if n.parent == noParent {
			break
		}
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}

	return strings.Join(names, " ")
}

// Walk visits every command depth first, parents before children and siblings in
// registration order. It stops when fn returns false.
func (a *App) Walk(fn func(cmd *Command) bool) {
	stack := deque.New()
	stack.PushBack(0)

	for stack.Len() > 0 {
		v, _ := stack.PopBack()
		id := v.(int)
		if !fn(&Command{app: a, id: id}) {
			return
		}

		n := a.nodes[id]
		for pair := n.children.Newest(); pair != nil; pair = pair.Prev() {
			stack.PushBack(pair.Value)
		}
	}
}
