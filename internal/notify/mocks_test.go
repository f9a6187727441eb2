package notify

import (
	"errors"
	"path/filepath"
	"testing"
)

// recorder captures the side effects of a dispatch in call order so
// tests can assert both what happened and in which sequence.
type recorder struct {
	calls []string
}

func (r *recorder) record(call string) {
	r.calls = append(r.calls, call)
}

type mockLocator struct {
	rec    *recorder
	handle WindowHandle
	found  bool
}

func (m *mockLocator) Locate(workdir string) (WindowHandle, bool) {
	m.rec.record("locate:" + workdir)
	return m.handle, m.found
}

type mockHighlighter struct {
	rec *recorder
	err error
}

func (m *mockHighlighter) Highlight(handle WindowHandle, mode HighlightMode, flashCount int) error {
	m.rec.record("highlight:" + string(mode))
	return m.err
}

type mockPlayer struct {
	rec *recorder

	// failUntil makes Play fail for the first N calls, exercising the
	// fallback chain.
	failUntil int
	plays     int
}

func (m *mockPlayer) Play(path string) error {
	m.plays++
	m.rec.record("play:" + filepath.Base(path))
	if m.plays <= m.failUntil {
		return errors.New("decoder error")
	}
	return nil
}

func (m *mockPlayer) Beep() {
	m.rec.record("beep")
}

// testDispatcher builds a Dispatcher around the mocks with the
// interactive-session gate forced open, plus the shared recorder.
func testDispatcher(t *testing.T, loc *mockLocator, hl *mockHighlighter, pl *mockPlayer, soundDir string) *Dispatcher {
	t.Helper()
	d := NewDispatcher(loc, hl, pl, NewSoundSource(soundDir))
	d.gate = func() bool { return true }
	return d
}
