package fli

import (
	"github.com/napalu/fli/errs"
	"github.com/napalu/fli/parse"
	"github.com/napalu/fli/types"
	"github.com/napalu/fli/util"
)

// resolvePhase is the command-level progress of a resolution
type resolvePhase int

const (
	atRoot resolvePhase = iota
	descendingCommands
	parsingOptionsAndArgs
	resolved
	failed
)

func (p resolvePhase) String() string {
	switch p {
	case atRoot:
		return "AtRoot"
	case descendingCommands:
		return "DescendingCommands"
	case parsingOptionsAndArgs:
		return "ParsingOptionsAndArgs"
	case resolved:
		return "Resolved"
	case failed:
		return "Failed"
	}
	return "Unknown"
}

// Resolution is the outcome of resolving an argument vector: the command resolution
// ended on and the chain of events that led there. It shares no state with the App.
type Resolution struct {
	// Command is the deepest command matched
	Command *Command
	// Chain holds every resolved element in input order
	Chain []ChainElement
	// Preserved is the canonical name of the preserved option which ended resolution,
	// empty when resolution ran to completion
	Preserved string

	values    map[int]map[string]ChainElement
	arguments []string
	path      []int
}

// resolver walks an argument vector once, left to right
type resolver struct {
	app       *App
	state     parse.State
	current   int
	phase     resolvePhase
	tokState  tokenState
	chain     []ChainElement
	values    map[int]map[string]ChainElement
	arguments []string
	path      []int
	preserved string
}

func newResolver(app *App, start int, argv []string) *resolver {
	args := make([]string, len(argv))
	copy(args, argv)

	return &resolver{
		app:      app,
		state:    parse.NewState(args),
		current:  start,
		phase:    atRoot,
		tokState: expectingToken,
		values:   make(map[int]map[string]ChainElement),
		path:     []int{start},
	}
}

func (r *resolver) emit(el ChainElement) {
	r.emitAt(el, r.state.Pos())
}

func (r *resolver) emitAt(el ChainElement, pos int) {
	el.Depth = r.app.nodes[r.current].depth
	el.Position = pos
	r.chain = append(r.chain, el)
}

// record stores the resolved descriptor of opt at the current level; a repeated
// option replaces the previous occurrence
func (r *resolver) record(opt *Option, d types.Descriptor, pos int) {
	el := ChainElement{Kind: OptionElement, Name: opt.Name, Descriptor: d}
	r.emitAt(el, pos)

	level, ok := r.values[r.current]
	if !ok {
		level = make(map[string]ChainElement)
		r.values[r.current] = level
	}
	level[opt.Name] = r.chain[len(r.chain)-1]
}

func (r *resolver) setPhase(p resolvePhase) {
	if r.phase == p {
		return
	}
	r.app.logger.Debug("resolve phase", "from", r.phase.String(), "to", p.String())
	r.phase = p
}

func (r *resolver) resolve() (*Resolution, error) {
	res, err := r.walk()
	if err != nil {
		r.setPhase(failed)
		r.app.logger.Debug("resolution failed", "error", err)
		return nil, err
	}
	r.setPhase(resolved)

	return res, nil
}

func (r *resolver) walk() (*Resolution, error) {
	for r.state.Advance() {
		tok := r.state.CurrentArg()

		switch {
		case r.tokState == breaking, tok == "-":
			r.addArgument(tok)
		case tok == separator:
			if err := r.transition(breaking); err != nil {
				return nil, err
			}
			r.setPhase(parsingOptionsAndArgs)
		case isFlagSyntax(tok):
			stop, err := r.resolveOption(tok)
			if err != nil {
				return nil, err
			}
			if stop {
				return r.result(), nil
			}
		default:
			if err := r.bareToken(tok); err != nil {
				return nil, err
			}
		}
	}

	if err := r.transition(done); err != nil {
		return nil, err
	}
	if err := r.validatePositionals(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// bareToken descends into a matching subcommand as long as no positional argument
// was collected at the current level, otherwise the token is an argument
func (r *resolver) bareToken(tok string) error {
	if r.phase != parsingOptionsAndArgs {
		if id, ok := r.app.child(r.current, tok); ok {
			r.current = id
			r.path = append(r.path, id)
			r.setPhase(descendingCommands)
			r.emit(ChainElement{Kind: SubCommandElement, Name: tok})
			r.app.logger.Debug("descend", "command", r.app.path(id), "position", r.state.Pos())
			return nil
		}

		n := r.app.nodes[r.current]
		if n.children.Len() > 0 && acceptsNoArguments(n) {
			return &errs.UnknownCommandError{
				Token:       tok,
				Suggestions: util.Suggest(tok, r.app.childNames(r.current), r.app.suggestionThreshold),
			}
		}
	}

	r.addArgument(tok)

	return nil
}

// acceptsNoArguments reports whether a bare token that names no subcommand of n must be
// an unknown command rather than a positional argument
func acceptsNoArguments(n *node) bool {
	return n.expected == types.Unconstrained || (n.expected == 0 && n.strictness == types.Exact)
}

func (r *resolver) addArgument(tok string) {
	r.setPhase(parsingOptionsAndArgs)
	r.emit(ChainElement{Kind: ArgumentElement, Value: tok})
	r.arguments = append(r.arguments, tok)
}

// validatePositionals enforces the expected positional count of the final command
func (r *resolver) validatePositionals() error {
	n := r.app.nodes[r.current]
	if n.expected == types.Unconstrained {
		return nil
	}

	actual := len(r.arguments)
	atLeast := n.strictness == types.AtLeast
	if (atLeast && actual >= n.expected) || (!atLeast && actual == n.expected) {
		return nil
	}

	return &errs.PositionalArgCountError{
		Command:  r.app.path(r.current),
		Expected: n.expected,
		Actual:   actual,
		AtLeast:  atLeast,
	}
}

func (r *resolver) result() *Resolution {
	return &Resolution{
		Command:   &Command{app: r.app, id: r.current},
		Chain:     r.chain,
		Preserved: r.preserved,
		values:    r.values,
		arguments: r.arguments,
		path:      r.path,
	}
}
