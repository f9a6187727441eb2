// Package notify resolves and dispatches notifications for Claude Code
// events.
//
// A dispatch cycle resolves the merged configuration plus CLI overrides
// into an Action (sound? highlight? mode? flash count?), then executes
// it in two phases: the window highlight is issued first as a
// fire-and-forget OS request, and sound playback then blocks until the
// clip finishes. The two effects overlap instead of serializing total
// latency.
//
// Sound resolution falls through a fixed chain: explicit override path,
// per-event file in the project sound directory, the generic
// notice.mp3, and finally a system beep that is assumed never to fail.
// Playback uses native OS tools via os/exec (afplay, paplay/aplay,
// PowerShell), keeping the binary CGO-free.
package notify
