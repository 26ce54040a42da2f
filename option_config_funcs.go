package fli

// AsPreserved marks the option as preserved: seeing it ends resolution immediately
func AsPreserved() ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Preserved = true
	}
}

// WithPreservedCallback marks the option as preserved and sets the callback Dispatch runs for it
func WithPreservedCallback(fn CommandFunc) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Preserved = true
		opt.Callback = fn
	}
}

// AsInheritable marks the option as inheritable by subcommands registered afterwards
func AsInheritable() ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Inheritable = true
	}
}

// WithDescriptionKey sets a translation key renderers use in place of the description
func WithDescriptionKey(key string) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.DescriptionKey = key
	}
}
