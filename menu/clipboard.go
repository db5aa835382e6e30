package menu

import (
	"errors"
	"fmt"

	"canvasmenu/log"
)

// Copy calls Copy on every live item in the selection.
type Copy struct{}

func (Copy) Execute(ctx *Context) error {
	var errs []error
	for _, item := range ctx.LiveSelection() {
		if err := item.Copy(ctx); err != nil {
			errs = append(errs, fmt.Errorf("copy %s: %w", item.Kind(), err))
		}
	}
	return errors.Join(errs...)
}

func (Copy) Enabled(ctx *Context) bool {
	return len(ctx.LiveSelection()) > 0
}

func (Copy) Visible(*Context) bool { return true }

// Remove detaches the live selection from the owning canvas.
type Remove struct{}

func (Remove) Execute(ctx *Context) error {
	if ctx == nil || ctx.Canvas == nil {
		return nil
	}
	live := ctx.LiveSelection()
	if len(live) == 0 {
		return nil
	}
	ctx.Canvas.Remove(live...)
	return nil
}

func (Remove) Enabled(ctx *Context) bool {
	return ctx != nil && ctx.Canvas != nil && len(ctx.LiveSelection()) > 0
}

func (Remove) Visible(*Context) bool { return true }

// Cut copies the selection and then removes it from the canvas.
func Cut() *Composite {
	return NewComposite(Copy{}, Remove{})
}

// Paste surfaces the clipboard text. It is enabled only while the clipboard holds
// non-empty text; whitespace counts as text.
type Paste struct{}

func (Paste) Execute(ctx *Context) error {
	text, err := clipboardText(ctx)
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	if text == "" {
		return nil
	}
	ctx.Notify("Paste", "%s", text)
	return nil
}

func (Paste) Enabled(ctx *Context) bool {
	text, err := clipboardText(ctx)
	if err != nil {
		log.WarningLog.Printf("clipboard unavailable: %v", err)
		return false
	}
	return text != ""
}

func (Paste) Visible(*Context) bool { return true }

func clipboardText(ctx *Context) (string, error) {
	if ctx == nil || ctx.Clipboard == nil {
		return "", nil
	}
	return ctx.Clipboard.ReadText()
}
