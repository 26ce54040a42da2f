package fli

import "github.com/napalu/fli/types"

// Set applies configs to the command, stopping at the first error which is stored in err
func (c *Command) Set(err *error, configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c, err)
		if *err != nil {
			return
		}
	}
}

// WithSubcommand registers a subcommand and configures it
func WithSubcommand(name, description string, configs ...ConfigureCommandFunc) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		var sub *Command
		sub, *err = command.Command(name, description)
		if *err != nil {
			return
		}
		sub.Set(err, configs...)
	}
}

// WithCallback sets the callback function for the command. This function is run when the command gets executed.
func WithCallback(callback CommandFunc) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.SetCallback(callback)
	}
}

// WithCommandOption is a wrapper for AddOption on the configured command
func WithCommandOption(name, description, short, long string, descriptor types.Descriptor, configs ...ConfigureOptionFunc) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		*err = command.AddOption(name, description, short, long, descriptor, configs...)
	}
}

// WithExpectedPositionalArgs declares how many positional arguments the command takes
func WithExpectedPositionalArgs(n int) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.SetExpectedPositionalArgs(n)
	}
}

// WithStrictness sets how the expected positional count is enforced
func WithStrictness(strictness types.Strictness) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.SetPositionalStrictness(strictness)
	}
}

// WithInheritableOptions marks options of the command as inheritable
func WithInheritableOptions(flags ...string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		*err = command.MarkInheritable(flags...)
	}
}
