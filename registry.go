package fli

import (
	"strings"

	"github.com/napalu/fli/errs"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// registry holds the options of one command. Options are stored once, keyed by
// canonical name in registration order; short and long flags are aliases.
type registry struct {
	options *orderedmap.OrderedMap[string, *Option]
	shorts  map[string]string
	longs   map[string]string
}

func newRegistry() *registry {
	return &registry{
		options: orderedmap.New[string, *Option](),
		shorts:  make(map[string]string),
		longs:   make(map[string]string),
	}
}

// add registers opt. Every lookup key of opt must be free across all options of the
// registry, whichever form it was registered as.
func (r *registry) add(owner string, opt *Option) error {
	if opt.Name == "" {
		return errs.NewInternal(errs.ErrEmptyName)
	}
	if !opt.Descriptor.Validate() || !validFlagName(opt.Name) || !validFlagName(opt.Short) || !validFlagName(opt.Long) {
		return errs.NewInternal(errs.ErrInvalidDescriptor.WithArgs(opt.Name))
	}

	for _, key := range []string{opt.Name, opt.Short, opt.Long} {
		if key != "" && r.taken(key) {
			return errs.NewInternal(errs.ErrDuplicateOption.WithArgs(key, owner))
		}
	}

	r.options.Set(opt.Name, opt)
	if opt.Short != "" {
		r.shorts[opt.Short] = opt.Name
	}
	if opt.Long != "" {
		r.longs[opt.Long] = opt.Name
	}

	return nil
}

func (r *registry) taken(key string) bool {
	if _, ok := r.options.Get(key); ok {
		return true
	}
	if _, ok := r.shorts[key]; ok {
		return true
	}
	_, ok := r.longs[key]

	return ok
}

// lookupLong resolves the name of a --name token: long flag, then canonical name
func (r *registry) lookupLong(name string) (*Option, bool) {
	if canonical, ok := r.longs[name]; ok {
		return r.options.Get(canonical)
	}

	return r.options.Get(name)
}

// lookupShort resolves the name of a -name token: short flag, then long flag, then canonical name
func (r *registry) lookupShort(name string) (*Option, bool) {
	if canonical, ok := r.shorts[name]; ok {
		return r.options.Get(canonical)
	}

	return r.lookupLong(name)
}

// lookup resolves a name given with or without its dashes
func (r *registry) lookup(nameOrFlag string) (*Option, bool) {
	switch {
	case strings.HasPrefix(nameOrFlag, "--"):
		return r.lookupLong(nameOrFlag[2:])
	case strings.HasPrefix(nameOrFlag, "-"):
		return r.lookupShort(nameOrFlag[1:])
	}

	if opt, ok := r.options.Get(nameOrFlag); ok {
		return opt, true
	}

	return r.lookupShort(nameOrFlag)
}

// all returns the options in registration order
func (r *registry) all() []*Option {
	opts := make([]*Option, 0, r.options.Len())
	for pair := r.options.Oldest(); pair != nil; pair = pair.Next() {
		opts = append(opts, pair.Value)
	}

	return opts
}

func (r *registry) len() int {
	return r.options.Len()
}

func validFlagName(name string) bool {
	return !strings.HasPrefix(name, "-") && !strings.ContainsAny(name, "= \t")
}
