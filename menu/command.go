package menu

import (
	"errors"
	"fmt"
)

// Command is the behavior bound to a menu entry. Enabled and Visible are queried
// once, when the menu is built, and must not have side effects.
type Command interface {
	Execute(ctx *Context) error
	Enabled(ctx *Context) bool
	Visible(ctx *Context) bool
}

// Func adapts a plain function to a Command that is always enabled and visible.
type Func func(ctx *Context) error

func (f Func) Execute(ctx *Context) error {
	if f == nil {
		return nil
	}
	return f(ctx)
}

func (f Func) Enabled(*Context) bool { return true }

func (f Func) Visible(*Context) bool { return true }

// Null is a placeholder command for entries without behavior yet.
type Null struct{}

func (Null) Execute(*Context) error { return nil }

func (Null) Enabled(*Context) bool { return true }

func (Null) Visible(*Context) bool { return true }

// Predicate is a build-time query against the context.
type Predicate func(ctx *Context) bool

type guarded struct {
	cmd     Command
	enabled Predicate
	visible Predicate
}

// When wraps cmd with its own enabled and visible predicates. A nil predicate
// defers to the wrapped command.
func When(cmd Command, enabled, visible Predicate) Command {
	if cmd == nil {
		cmd = Null{}
	}
	return &guarded{cmd: cmd, enabled: enabled, visible: visible}
}

func (g *guarded) Execute(ctx *Context) error {
	return g.cmd.Execute(ctx)
}

func (g *guarded) Enabled(ctx *Context) bool {
	if g.enabled != nil {
		return g.enabled(ctx)
	}
	return g.cmd.Enabled(ctx)
}

func (g *guarded) Visible(ctx *Context) bool {
	if g.visible != nil {
		return g.visible(ctx)
	}
	return g.cmd.Visible(ctx)
}

// Composite runs an ordered list of commands as one.
//
// It is visible when any member is visible, and enabled when it has at least one
// visible member and every visible member is enabled.
type Composite struct {
	commands []Command
}

// NewComposite creates a composite from the given commands. Nil members are dropped.
func NewComposite(commands ...Command) *Composite {
	c := &Composite{}
	c.Add(commands...)
	return c
}

// Add appends commands to the composite.
func (c *Composite) Add(commands ...Command) *Composite {
	for _, cmd := range commands {
		if cmd != nil {
			c.commands = append(c.commands, cmd)
		}
	}
	return c
}

// Len returns the number of member commands.
func (c *Composite) Len() int {
	return len(c.commands)
}

// Execute runs every member once, in order. A member that fails or panics does
// not stop the ones after it; all failures are returned joined.
func (c *Composite) Execute(ctx *Context) error {
	var errs []error
	for i, cmd := range c.commands {
		if err := Run(cmd, ctx); err != nil {
			errs = append(errs, fmt.Errorf("command %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Composite) Enabled(ctx *Context) bool {
	anyVisible := false
	for _, cmd := range c.commands {
		if !cmd.Visible(ctx) {
			continue
		}
		anyVisible = true
		if !cmd.Enabled(ctx) {
			return false
		}
	}
	return anyVisible
}

func (c *Composite) Visible(ctx *Context) bool {
	for _, cmd := range c.commands {
		if cmd.Visible(ctx) {
			return true
		}
	}
	return false
}

// ErrPanic wraps a panic recovered while running a command.
var ErrPanic = errors.New("command panicked")

// Run executes cmd and converts a panic into an error, so a faulty command never
// unwinds through the caller.
func Run(cmd Command, ctx *Context) (err error) {
	if cmd == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return cmd.Execute(ctx)
}
