package fli

import (
	"errors"
	"strings"

	"github.com/napalu/fli/errs"
)

// tokenState is the state of the token-level state machine
type tokenState int

const (
	expectingToken tokenState = iota
	resolvingOption
	collectingValues
	breaking
	done
)

func (s tokenState) String() string {
	switch s {
	case expectingToken:
		return "ExpectingToken"
	case resolvingOption:
		return "ResolvingOption"
	case collectingValues:
		return "CollectingValues"
	case breaking:
		return "Breaking"
	case done:
		return "Done"
	}
	return "Unknown"
}

var tokenTransitions = map[tokenState][]tokenState{
	expectingToken:   {expectingToken, resolvingOption, breaking, done},
	resolvingOption:  {expectingToken, collectingValues, done},
	collectingValues: {expectingToken},
	breaking:         {breaking, done},
	done:             {},
}

// separator ends option resolution: every following token is an argument
const separator = "--"

// flagToken is a token in -name, --name or --name=value form
type flagToken struct {
	raw       string
	name      string
	long      bool
	inline    string
	hasInline bool
}

// isFlagSyntax reports whether tok has to be resolved as an option. The separator and
// a lone dash are not flags.
func isFlagSyntax(tok string) bool {
	return len(tok) > 1 && tok[0] == '-' && tok != separator
}

// splitFlag parses a flag token. Malformed syntax yields ok == false.
func splitFlag(tok string) (flagToken, bool) {
	ft := flagToken{raw: tok}
	switch {
	case strings.HasPrefix(tok, "---"):
		return ft, false
	case strings.HasPrefix(tok, "--"):
		ft.long = true
		ft.name = tok[2:]
	default:
		ft.name = tok[1:]
	}

	if idx := strings.IndexByte(ft.name, '='); idx >= 0 {
		ft.inline = ft.name[idx+1:]
		ft.hasInline = true
		ft.name = ft.name[:idx]
	}

	return ft, ft.name != ""
}

// transition moves the token state machine, rejecting undeclared transitions
func (r *resolver) transition(to tokenState) error {
	for _, allowed := range tokenTransitions[r.tokState] {
		if allowed == to {
			r.app.logger.Debug("token state", "from", r.tokState.String(), "to", to.String(), "position", r.state.Pos())
			r.tokState = to
			return nil
		}
	}

	return errs.NewInternal(errs.ErrInvalidTransition.WithArgs(r.tokState.String(), to.String()))
}

// lookupFlag resolves a flag token against the active registry
func (r *resolver) lookupFlag(ft flagToken) (*Option, bool) {
	reg := r.app.nodes[r.current].options
	if ft.long {
		return reg.lookupLong(ft.name)
	}

	return reg.lookupShort(ft.name)
}

// isRecognizedFlag reports whether tok would resolve to an option of the active registry
func (r *resolver) isRecognizedFlag(tok string) bool {
	if !isFlagSyntax(tok) {
		return false
	}
	ft, ok := splitFlag(tok)
	if !ok {
		return false
	}
	_, found := r.lookupFlag(ft)

	return found
}

// resolveOption handles a flag token at the current position. It reports whether a
// preserved option ended resolution.
func (r *resolver) resolveOption(tok string) (bool, error) {
	if err := r.transition(resolvingOption); err != nil {
		return false, err
	}
	pos := r.state.Pos()

	ft, ok := splitFlag(tok)
	if !ok {
		return false, &errs.UnexpectedTokenError{Token: tok, Position: pos}
	}
	opt, found := r.lookupFlag(ft)
	if !found {
		return false, &errs.OptionNotFoundError{Token: tok}
	}
	if !opt.Descriptor.ExpectsValue() && ft.hasInline {
		return false, &errs.UnexpectedTokenError{Token: tok, Position: pos}
	}

	if opt.Preserved {
		r.emitAt(ChainElement{Kind: PreservedOptionElement, Name: opt.Name}, pos)
		r.preserved = opt.Name
		r.app.logger.Debug("preserved option", "option", opt.Name, "command", r.app.path(r.current))
		return true, r.transition(done)
	}

	if !opt.Descriptor.ExpectsValue() {
		r.record(opt, opt.Descriptor.Mark(), pos)
		return false, r.transition(expectingToken)
	}

	if err := r.transition(collectingValues); err != nil {
		return false, err
	}
	if err := r.collectValues(opt, ft, pos); err != nil {
		return false, err
	}

	return false, r.transition(expectingToken)
}

// collectValues consumes the values of opt. Collection stops at the end of input, at
// the separator, at a recognized flag or once the descriptor maximum is reached.
func (r *resolver) collectValues(opt *Option, ft flagToken, pos int) error {
	d := opt.Descriptor
	var raws []string
	if ft.hasInline {
		raws = append(raws, ft.inline)
	}

	for !d.Bounded() || len(raws) < d.Max() {
		next, ok := r.state.Peek()
		if !ok || next == separator || r.isRecognizedFlag(next) {
			break
		}
		r.state.Advance()
		raws = append(raws, next)
	}

	if len(raws) < d.Min() {
		return &errs.MissingValueError{Option: opt.Name}
	}
	if len(raws) == 0 {
		r.record(opt, d.Mark(), pos)
		return nil
	}

	resolved, err := d.Parse(raws...)
	if err != nil {
		var vpe *errs.ValueParseError
		if errors.As(err, &vpe) {
			vpe.Option = opt.Name
		}
		return err
	}
	r.app.logger.Debug("collected values", "option", opt.Name, "count", len(raws))
	r.record(opt, resolved, pos)

	return nil
}
