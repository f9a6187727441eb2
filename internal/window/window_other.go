//go:build !windows

package window

import "github.com/schoolboyqueue/ccnotify/internal/notify"

// noopLocator reports no window, so the dispatcher silently skips
// highlighting on platforms without a window implementation.
type noopLocator struct{}

// NewLocator returns a locator that never finds a window.
func NewLocator() notify.WindowLocator {
	return &noopLocator{}
}

func (l *noopLocator) Locate(_ string) (notify.WindowHandle, bool) {
	return 0, false
}

type noopHighlighter struct{}

// NewHighlighter returns a highlighter that does nothing.
func NewHighlighter() notify.WindowHighlighter {
	return &noopHighlighter{}
}

func (h *noopHighlighter) Highlight(_ notify.WindowHandle, _ notify.HighlightMode, _ int) error {
	return nil
}
