// Package window implements the window-locating and highlighting
// capabilities consumed by the notify dispatcher.
//
// On Windows the locator tries three strategies in order: the current
// console window (skipped when untitled, which is the hidden console a
// hook process owns), a walk up the parent-process chain looking for a
// titled window, and finally title matching against known terminal
// patterns with a preference for titles containing the working
// directory name. Highlighting uses FlashWindowEx, SetForegroundWindow
// and SetWindowPos; all requests are asynchronous at the OS level.
//
// On other platforms the locator reports no window, so highlighting is
// silently skipped and only sound notifications apply.
package window
