package cmd

import "io"

type (
	Command = command
	Option  = option
)

func NewCommand(opts ...Option) (c *Command, err error) {
	return newCommand(opts...)
}

func WithArgs(a ...string) Option {
	return func(c *command) {
		c.root.SetArgs(a)
	}
}

func WithInput(r io.Reader) Option {
	return func(c *command) {
		c.root.SetIn(r)
	}
}

func WithOutput(w io.Writer) Option {
	return func(c *command) {
		c.root.SetOut(w)
	}
}

func WithErrorOutput(w io.Writer) Option {
	return func(c *command) {
		c.root.SetErr(w)
	}
}

func WithHomeDir(dir string) Option {
	return func(c *command) {
		c.homeDir = dir
	}
}
