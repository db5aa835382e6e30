// Package dispatch resolves which context menu appears for a trigger on the canvas
// and runs the entry the user picks.
package dispatch

import (
	"errors"
	"fmt"

	"canvasmenu/log"
	"canvasmenu/menu"
)

// ErrClosed is returned when a pending menu is completed twice.
var ErrClosed = errors.New("menu already closed")

// HitTester finds the topmost selectable item at a canvas position.
type HitTester interface {
	HitTest(p menu.Point) (menu.Item, bool)
}

// Surface presents a menu modally and reports the chosen entry. It returns false
// when the menu is dismissed without a choice.
type Surface interface {
	Present(m menu.Menu, at menu.Point) (menu.Entry, bool)
}

// Options are the collaborators handed to every context the dispatcher builds.
type Options struct {
	Canvas    menu.Canvas
	Notifier  menu.Notifier
	Clipboard menu.Clipboard
}

// Dispatcher is the single place that decides what menu a trigger gets.
type Dispatcher struct {
	registry *menu.Registry
	hits     HitTester
	surface  Surface
	opts     Options
}

// New creates a dispatcher. surface may be nil when menus are only opened through Open.
func New(registry *menu.Registry, hits HitTester, surface Surface, opts Options) *Dispatcher {
	if registry == nil {
		registry = menu.NewRegistry()
	}
	return &Dispatcher{
		registry: registry,
		hits:     hits,
		surface:  surface,
		opts:     opts,
	}
}

// Result describes what happened to one trigger.
type Result struct {
	// Handled is true when a menu was shown. The trigger must not be forwarded to
	// any default handling.
	Handled bool
	// Kind is the kind the menu was resolved for.
	Kind menu.Kind
	// Menu is the menu that was shown.
	Menu menu.Menu
	// Chosen is the label of the entry picked, or empty when dismissed.
	Chosen string
	// Err is the error the chosen command returned. It has already been reported.
	Err error
}

// Resolve runs hit test, classification and strategy lookup for pos. It reports
// false when no menu should be shown.
func (d *Dispatcher) Resolve(pos menu.Point) (menu.Kind, *menu.Context, menu.Strategy, bool) {
	item, hit := d.hitTest(pos)

	kind := menu.KindBackground
	if hit {
		kind = item.Kind()
	}

	strategy, ok := d.registry.Create(kind)
	if !ok {
		if hit {
			log.WarningLog.Printf("no menu strategy registered for %s at (%d,%d)", kind, pos.X, pos.Y)
		} else {
			log.WarningLog.Printf("no background menu strategy registered")
		}
		return kind, nil, nil, false
	}

	ctx := &menu.Context{
		Canvas:    d.opts.Canvas,
		Surface:   d.surface,
		Notifier:  d.opts.Notifier,
		Clipboard: d.opts.Clipboard,
		Pos:       pos,
	}
	if hit {
		ctx.Selection = []menu.Item{item}
	}
	return kind, ctx, strategy, true
}

// Open builds the menu for pos without presenting it, for event-loop UIs that show
// the menu themselves. It reports false when no menu should be shown.
func (d *Dispatcher) Open(pos menu.Point) (*Pending, bool) {
	kind, ctx, strategy, ok := d.Resolve(pos)
	if !ok {
		return nil, false
	}
	m := strategy.Build(ctx)
	log.InfoLog.Printf("opened %s menu with %d entries at (%d,%d)", kind, m.Len(), pos.X, pos.Y)
	return &Pending{kind: kind, ctx: ctx, menu: m}, true
}

// Dispatch resolves, builds and presents the menu for pos, blocking on the surface
// until the user chooses or dismisses. The chosen command runs before it returns.
func (d *Dispatcher) Dispatch(pos menu.Point) Result {
	p, ok := d.Open(pos)
	if !ok {
		kind := menu.KindBackground
		if item, hit := d.hitTest(pos); hit {
			kind = item.Kind()
		}
		return Result{Kind: kind}
	}
	if d.surface == nil {
		return p.Dismiss()
	}
	entry, chosen := d.surface.Present(p.Menu(), pos)
	if !chosen {
		return p.Dismiss()
	}
	return p.Choose(entry)
}

// Registry returns the dispatcher's registry.
func (d *Dispatcher) Registry() *menu.Registry {
	return d.registry
}

func (d *Dispatcher) hitTest(pos menu.Point) (menu.Item, bool) {
	if d.hits == nil {
		return nil, false
	}
	item, ok := d.hits.HitTest(pos)
	return item, ok && item != nil
}

// Pending is a built menu waiting for the user's choice. It is completed exactly
// once, by Choose or Dismiss.
type Pending struct {
	kind menu.Kind
	ctx  *menu.Context
	menu menu.Menu
	done bool
}

// Kind returns the kind the menu was built for.
func (p *Pending) Kind() menu.Kind { return p.kind }

// Menu returns the built menu.
func (p *Pending) Menu() menu.Menu { return p.menu }

// Context returns the trigger context, or nil once the menu is closed.
func (p *Pending) Context() *menu.Context { return p.ctx }

// Closed reports whether the menu has been completed.
func (p *Pending) Closed() bool { return p.done }

// Choose runs entry's command and closes the menu. Separators, submenu headers
// and disabled entries do nothing.
func (p *Pending) Choose(entry menu.Entry) Result {
	if p.done {
		return Result{Handled: true, Kind: p.kind, Menu: p.menu, Err: ErrClosed}
	}
	res := Result{Handled: true, Kind: p.kind, Menu: p.menu, Chosen: entry.Label}
	res.Err = execute(p.ctx, entry)
	p.close()
	return res
}

// Dismiss closes the menu without running anything.
func (p *Pending) Dismiss() Result {
	p.close()
	return Result{Handled: true, Kind: p.kind, Menu: p.menu}
}

func (p *Pending) close() {
	p.done = true
	p.ctx = nil
}

// execute runs the entry's command. Failures are reported to the user here and
// never unwind through the menu.
func execute(ctx *menu.Context, entry menu.Entry) error {
	if entry.Separator || entry.HasSubmenu() {
		return nil
	}
	if !entry.Enabled {
		log.InfoLog.Printf("ignored disabled entry %q", entry.Label)
		return nil
	}
	if err := menu.Run(entry.Command, ctx); err != nil {
		err = fmt.Errorf("%s: %w", entry.Label, err)
		log.ErrorLog.Printf("menu command failed: %v", err)
		ctx.Notify("Error", "%v", err)
		return err
	}
	log.InfoLog.Printf("ran %q", entry.Label)
	return nil
}
