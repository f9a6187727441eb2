//go:build !windows

package window

import (
	"testing"

	"github.com/schoolboyqueue/ccnotify/internal/notify"
)

func TestNoopLocatorNeverFindsAWindow(t *testing.T) {
	t.Parallel()

	handle, ok := NewLocator().Locate("/work/proj")

	if ok || handle != 0 {
		t.Errorf("Locate() = (%v, %v), want (0, false)", handle, ok)
	}
}

func TestNoopHighlighterNeverFails(t *testing.T) {
	t.Parallel()

	if err := NewHighlighter().Highlight(1, notify.ModeFlash, 5); err != nil {
		t.Errorf("Highlight() = %v, want nil", err)
	}
}
