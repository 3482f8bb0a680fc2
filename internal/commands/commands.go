package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrMissing is returned by Execute for an empty line.
var ErrMissing = errors.New("missing command")

// Command is a console command with its own flags and a Run function.
// Flags are defined on FlagSet; Run receives the positional arguments left after parsing.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds commands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// NewFlagSet returns a flag set that reports errors instead of exiting and prints nothing.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds a command. fs may be nil for commands without flags; run is called after fs.Parse succeeds.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = NewFlagSet(name)
	}
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Usage returns the usage line of a command, or "" if it is not registered.
func (r *Registry) Usage(name string) string {
	if c, ok := r.cmds[name]; ok {
		return c.Usage
	}
	return ""
}

// Parse splits a console line into tokens. A leading "/" is allowed and ignored. ok is false for blank lines.
func Parse(line string) (args []string, ok bool) {
	line = strings.TrimPrefix(strings.TrimSpace(line), "/")
	args = strings.Fields(line)
	return args, len(args) > 0
}

// Execute runs the command in args[0] with args[1:] as flag/positional arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissing
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w (usage: %s)", name, err, cmd.Usage)
	}
	return cmd.Run(cmd.FlagSet.Args())
}

// ExecuteLine parses and runs one console line.
func (r *Registry) ExecuteLine(line string) error {
	args, ok := Parse(line)
	if !ok {
		return ErrMissing
	}
	return r.Execute(args)
}
