package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/ccnotify/internal/config"
	"github.com/schoolboyqueue/ccnotify/internal/logging"
	"github.com/schoolboyqueue/ccnotify/internal/notify"
	"github.com/schoolboyqueue/ccnotify/internal/window"
)

func newNotifyCmd() *cobra.Command {
	var (
		eventName   string
		toolName    string
		workdir     string
		mode        string
		flashCount  int
		soundPath   string
		noSound     bool
		noHighlight bool
	)

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Trigger one notification dispatch cycle",
		Long: `Trigger one notification dispatch cycle for a Claude Code event.

Resolves the merged configuration (defaults < global < project < CLI
flags) into a sound/highlight decision and executes it. Exits 0 even
when the notification is suppressed or no terminal window is found.`,
		Example: `  ccnotify notify --event stop
  ccnotify notify --event tool_complete --tool-name Bash
  ccnotify notify --event permission --mode focus
  ccnotify notify --event error --flash-count 8 --no-sound`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !notify.ValidEvent(eventName) {
				return NewExitError(ExitInvalidArguments, fmt.Errorf(
					"unknown event %q, expected one of: %s", eventName, strings.Join(config.EventNames, ", ")))
			}
			if cmd.Flags().Changed("mode") && !notify.ValidHighlightMode(mode) {
				return NewExitError(ExitInvalidArguments, fmt.Errorf(
					"unknown highlight mode %q, expected flash, focus, topmost or all", mode))
			}
			if cmd.Flags().Changed("flash-count") && flashCount < 0 {
				return NewExitError(ExitInvalidArguments, fmt.Errorf(
					"flash count must not be negative, got %d", flashCount))
			}

			ov := notify.Overrides{
				NoSound:       noSound,
				NoHighlight:   noHighlight,
				Mode:          notify.HighlightMode(mode),
				ModeSet:       cmd.Flags().Changed("mode"),
				FlashCount:    flashCount,
				FlashCountSet: cmd.Flags().Changed("flash-count"),
				SoundPath:     soundPath,
				Workdir:       workdir,
				ToolName:      toolName,
			}
			runNotify(notify.Event(eventName), ov)
			return nil
		},
	}

	cmd.Flags().StringVar(&eventName, "event", "", "Event type: stop, tool_complete, permission, error")
	cmd.Flags().StringVar(&toolName, "tool-name", "", "Name of the tool (for tool_complete events)")
	cmd.Flags().StringVar(&workdir, "workdir", "", "Working directory used to bias window matching")
	cmd.Flags().StringVar(&mode, "mode", "", "Window highlight mode: flash, focus, topmost, all")
	cmd.Flags().IntVar(&flashCount, "flash-count", 0, "Number of flash iterations")
	cmd.Flags().StringVar(&soundPath, "sound", "", "Custom sound file path")
	cmd.Flags().BoolVar(&noSound, "no-sound", false, "Disable sound for this notification")
	cmd.Flags().BoolVar(&noHighlight, "no-highlight", false, "Disable window highlight for this notification")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}

// runNotify performs the load-merge-resolve-dispatch cycle. It never
// fails: a missing or broken config, window or sound degrades inside
// the dispatcher, and the hook caller always sees exit 0.
func runNotify(event notify.Event, ov notify.Overrides) {
	log := logging.New("notify")
	store := config.NewStore()

	var globalDoc, projectDoc *config.Document
	if globalPath, err := config.GlobalPath(); err == nil {
		if doc, ok := store.Load(globalPath); ok {
			globalDoc = &doc
		}
	} else {
		log.Warn("cannot resolve global config path", "err", err)
	}
	if doc, ok := store.Load(config.ProjectPath()); ok {
		projectDoc = &doc
	}

	eff := config.EffectiveFrom(globalDoc, projectDoc, config.EnvOverlay())
	action := notify.Resolve(eff, event, ov)
	if action.Suppressed() {
		log.Debug("notification suppressed", "event", event)
		return
	}
	if ov.ToolName != "" {
		log.Debug("dispatching", "event", event, "tool", ov.ToolName)
	}

	dispatcher := notify.NewDispatcher(
		window.NewLocator(),
		window.NewHighlighter(),
		notify.NewPlayer(),
		notify.NewSoundSource(config.SoundDir()),
	)
	outcome := dispatcher.Dispatch(action)
	log.Debug("dispatch complete",
		"event", event,
		"sound_played", outcome.SoundPlayed,
		"highlight_applied", outcome.HighlightApplied)
}
