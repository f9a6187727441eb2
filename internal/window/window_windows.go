//go:build windows

package window

import (
	"fmt"
	"path/filepath"
	"strings"
	"syscall"
	"time"
	"unsafe"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/windows"

	"github.com/schoolboyqueue/ccnotify/internal/logging"
	"github.com/schoolboyqueue/ccnotify/internal/notify"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procIsWindow                 = user32.NewProc("IsWindow")
	procGetWindowThreadProcessID = user32.NewProc("GetWindowThreadProcessId")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procFlashWindowEx            = user32.NewProc("FlashWindowEx")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procGetConsoleWindow         = kernel32.NewProc("GetConsoleWindow")
)

// terminalTitlePatterns mark a window as a plausible Claude Code host.
var terminalTitlePatterns = []string{
	"claude",
	"terminal",
	"windows terminal",
	"powershell",
	"cmd",
	"command prompt",
}

// nonTerminalPatterns exclude windows that match a terminal pattern by
// accident (e.g. a browser tab titled "Terminal basics").
var nonTerminalPatterns = []string{
	"chrome",
	"firefox",
	"edge",
	"explorer",
	"program manager",
	"taskbar",
	"notification",
	"search",
	"setting",
}

// terminalProcessNames are executables whose windows are preferred
// during the parent-process walk.
var terminalProcessNames = map[string]bool{
	"windowsterminal.exe": true,
	"openconsole.exe":     true,
	"conhost.exe":         true,
	"wezterm-gui.exe":     true,
	"alacritty.exe":       true,
}

type winLocator struct {
	log *log.Logger
}

// NewLocator returns the Windows window locator.
func NewLocator() notify.WindowLocator {
	return &winLocator{log: logging.New("window")}
}

// Locate runs the three search strategies in order.
func (l *winLocator) Locate(workdir string) (notify.WindowHandle, bool) {
	// The hook process owns a hidden console with no title; only trust
	// the console window when it is actually visible to the user.
	if h, _, _ := procGetConsoleWindow.Call(); h != 0 {
		if strings.TrimSpace(windowTitle(h)) != "" {
			l.log.Debug("found window via console handle", "hwnd", h)
			return notify.WindowHandle(h), true
		}
	}
	if h := l.findByProcessTree(); h != 0 {
		l.log.Debug("found window via process tree", "hwnd", h)
		return notify.WindowHandle(h), true
	}
	if h := l.findByTitle(workdir); h != 0 {
		l.log.Debug("found window via title match", "hwnd", h)
		return notify.WindowHandle(h), true
	}
	l.log.Debug("no terminal window found")
	return 0, false
}

// findByProcessTree walks up the parent-process chain (bounded depth)
// and returns the largest titled window owned by an ancestor.
func (l *winLocator) findByProcessTree() uintptr {
	parents, err := parentChain(windows.GetCurrentProcessId(), 10)
	if err != nil {
		l.log.Debug("process snapshot failed", "err", err)
		return 0
	}
	for _, p := range parents {
		if terminalProcessNames[p.name] {
			if h := mainWindowForPID(p.pid); h != 0 {
				return h
			}
		}
	}
	for _, p := range parents {
		if h := mainWindowForPID(p.pid); h != 0 {
			return h
		}
	}
	return 0
}

type processInfo struct {
	pid  uint32
	name string
}

// parentChain resolves the ancestors of pid, nearest first, using a
// Toolhelp32 process snapshot.
func parentChain(pid uint32, maxDepth int) ([]processInfo, error) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, fmt.Errorf("creating process snapshot: %w", err)
	}
	defer windows.CloseHandle(snap)

	type procEntry struct {
		parent uint32
		name   string
	}
	procs := make(map[uint32]procEntry)
	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err := windows.Process32First(snap, &entry); err == nil; err = windows.Process32Next(snap, &entry) {
		procs[entry.ProcessID] = procEntry{
			parent: entry.ParentProcessID,
			name:   strings.ToLower(windows.UTF16ToString(entry.ExeFile[:])),
		}
	}

	var chain []processInfo
	seen := map[uint32]bool{pid: true}
	current := pid
	for range maxDepth {
		p, ok := procs[current]
		if !ok || p.parent == 0 || seen[p.parent] {
			break
		}
		seen[p.parent] = true
		parent := procs[p.parent]
		chain = append(chain, processInfo{pid: p.parent, name: parent.name})
		current = p.parent
	}
	return chain, nil
}

// mainWindowForPID returns the largest visible titled window owned by
// the process, skipping non-terminal windows.
func mainWindowForPID(pid uint32) uintptr {
	var best uintptr
	var bestArea int64 = -1
	enumWindows(func(hwnd uintptr) bool {
		var windowPID uint32
		procGetWindowThreadProcessID.Call(hwnd, uintptr(unsafe.Pointer(&windowPID)))
		if windowPID != pid || !windowVisible(hwnd) {
			return true
		}
		title := windowTitle(hwnd)
		if title == "" || matchesAny(title, nonTerminalPatterns) {
			return true
		}
		if area := windowArea(hwnd); area > bestArea {
			best, bestArea = hwnd, area
		}
		return true
	})
	return best
}

// findByTitle scans all visible windows for terminal-looking titles,
// preferring one that mentions a component of workdir.
func (l *winLocator) findByTitle(workdir string) uintptr {
	type match struct {
		hwnd  uintptr
		title string
	}
	var matches []match
	enumWindows(func(hwnd uintptr) bool {
		if !windowVisible(hwnd) {
			return true
		}
		title := windowTitle(hwnd)
		if title == "" {
			return true
		}
		if matchesAny(title, terminalTitlePatterns) && !matchesAny(title, nonTerminalPatterns) {
			matches = append(matches, match{hwnd: hwnd, title: title})
		}
		return true
	})
	if len(matches) == 0 {
		return 0
	}
	if workdir != "" {
		for _, m := range matches {
			if titleMentionsPath(m.title, workdir) {
				return m.hwnd
			}
		}
	}
	return matches[0].hwnd
}

// titleMentionsPath reports whether the title contains a path component
// of workdir longer than three characters.
func titleMentionsPath(title, workdir string) bool {
	lower := strings.ToLower(title)
	parts := strings.Split(filepath.ToSlash(workdir), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		part := strings.ToLower(parts[i])
		if len(part) > 3 && strings.Contains(lower, part) {
			return true
		}
	}
	return false
}

func matchesAny(title string, patterns []string) bool {
	lower := strings.ToLower(title)
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func enumWindows(visit func(hwnd uintptr) bool) {
	cb := syscall.NewCallback(func(hwnd, _ uintptr) uintptr {
		if visit(hwnd) {
			return 1
		}
		return 0
	})
	procEnumWindows.Call(cb, 0)
}

func windowTitle(hwnd uintptr) string {
	var buf [512]uint16
	n, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func windowVisible(hwnd uintptr) bool {
	visible, _, _ := procIsWindowVisible.Call(hwnd)
	return visible != 0
}

func windowArea(hwnd uintptr) int64 {
	var rect struct {
		left, top, right, bottom int32
	}
	ok, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rect)))
	if ok == 0 {
		return 0
	}
	return int64(rect.right-rect.left) * int64(rect.bottom-rect.top)
}

// flashwinfo mirrors the user32 FLASHWINFO struct.
type flashwinfo struct {
	cbSize    uint32
	hwnd      uintptr
	dwFlags   uint32
	uCount    uint32
	dwTimeout uint32
}

const (
	flashwAll   = 0x00000003 // caption and taskbar button
	flashwTimer = 0x00000004 // flash uCount times

	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010

	flashTimeoutMS = 500
)

var (
	hwndTopmost   = ^uintptr(0)     // (HWND)-1
	hwndNoTopmost = ^uintptr(0) - 1 // (HWND)-2
)

// topmostResetDelay is how long a topmost pin lasts before it is
// released again.
const topmostResetDelay = 3 * time.Second

type winHighlighter struct {
	log *log.Logger
}

// NewHighlighter returns the Windows window highlighter.
func NewHighlighter() notify.WindowHighlighter {
	return &winHighlighter{log: logging.New("window")}
}

// Highlight issues the requested effect. All underlying calls are
// asynchronous OS requests; this never waits for an animation.
func (h *winHighlighter) Highlight(handle notify.WindowHandle, mode notify.HighlightMode, flashCount int) error {
	hwnd := uintptr(handle)
	if valid, _, _ := procIsWindow.Call(hwnd); valid == 0 {
		return fmt.Errorf("window handle %#x is no longer valid", hwnd)
	}
	switch mode {
	case notify.ModeFocus:
		return h.bringToFront(hwnd)
	case notify.ModeFlash:
		return h.flash(hwnd, flashCount)
	case notify.ModeTopmost:
		return h.setTopmost(hwnd)
	case notify.ModeAll:
		if err := h.bringToFront(hwnd); err != nil {
			h.log.Warn("focus failed, flashing anyway", "err", err)
		}
		return h.flash(hwnd, flashCount)
	default:
		return fmt.Errorf("unknown highlight mode %q", mode)
	}
}

// flash requests count flashes of the caption and taskbar button. A
// count of zero means the highlight was requested but no visible flash
// should occur.
func (h *winHighlighter) flash(hwnd uintptr, count int) error {
	if count <= 0 {
		return nil
	}
	info := flashwinfo{
		hwnd:      hwnd,
		dwFlags:   flashwAll | flashwTimer,
		uCount:    uint32(count),
		dwTimeout: flashTimeoutMS,
	}
	info.cbSize = uint32(unsafe.Sizeof(info))
	ret, _, _ := procFlashWindowEx.Call(uintptr(unsafe.Pointer(&info)))
	_ = ret // previous flash state, not an error indicator
	return nil
}

func (h *winHighlighter) bringToFront(hwnd uintptr) error {
	ok, _, _ := procSetForegroundWindow.Call(hwnd)
	if ok == 0 {
		return fmt.Errorf("SetForegroundWindow refused for %#x", hwnd)
	}
	return nil
}

// setTopmost pins the window above others and schedules the un-pin.
// The timer only fires while the process is alive; dispatch normally
// blocks on sound playback long enough for it to run.
func (h *winHighlighter) setTopmost(hwnd uintptr) error {
	ok, _, _ := procSetWindowPos.Call(hwnd, hwndTopmost, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
	if ok == 0 {
		return fmt.Errorf("SetWindowPos topmost refused for %#x", hwnd)
	}
	time.AfterFunc(topmostResetDelay, func() {
		procSetWindowPos.Call(hwnd, hwndNoTopmost, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
	})
	return nil
}
