// Package clip provides the clipboard implementations used by the menu engine.
package clip

import (
	"fmt"
	"sync"
	"time"

	"canvasmenu/log"

	"github.com/atotto/clipboard"
)

// System reads the operating system clipboard.
type System struct{}

// ReadText returns the current clipboard text.
func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("no clipboard utility available on this system")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}

// WriteText replaces the clipboard text.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available on this system")
	}
	return clipboard.WriteAll(text)
}

// Static is a fixed clipboard value, used when the clipboard is overridden from
// the command line and in tests.
type Static string

// ReadText returns the fixed text.
func (s Static) ReadText() (string, error) {
	return string(s), nil
}

// Writer is a clipboard that can also be written.
type Writer interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// Memory is an in-process clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

// ReadText returns the last text written.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// WriteText replaces the text.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Fallback reads the primary clipboard and falls back to an in-process copy of
// the last text written when the primary cannot be read.
type Fallback struct {
	Primary Writer
	mem     Memory
	every   *log.Every
}

// NewFallback wraps primary, which may be nil.
func NewFallback(primary Writer) *Fallback {
	return &Fallback{Primary: primary, every: log.NewEvery(time.Minute)}
}

// ReadText returns the primary clipboard text, or the in-process copy.
func (f *Fallback) ReadText() (string, error) {
	if f.Primary != nil {
		text, err := f.Primary.ReadText()
		if err == nil {
			return text, nil
		}
		if f.every == nil || f.every.ShouldLog() {
			log.WarningLog.Printf("using in-process clipboard: %v", err)
		}
	}
	return f.mem.ReadText()
}

// WriteText stores text in process and then on the primary clipboard. The
// in-process copy is kept even when the primary write fails.
func (f *Fallback) WriteText(text string) error {
	_ = f.mem.WriteText(text)
	if f.Primary == nil {
		return nil
	}
	if err := f.Primary.WriteText(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}
