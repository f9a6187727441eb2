// Package cli provides the Cobra commands for ccnotify: the notify
// command fired by Claude Code hooks, and the toggle command tree for
// managing the two-tier notification configuration.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/ccnotify/internal/logging"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "ccnotify",
		Short: "Sound and window-highlight notifications for Claude Code",
		Long: `ccnotify - sound and window-highlight notifications for Claude Code events.

Wire the notify command into Claude Code hooks to get a sound and a
terminal-window highlight when a session stops, a tool completes, a
permission prompt appears, or an error occurs. Behavior is controlled
by a global config (~/.claude/notification_config.json) with optional
per-project overrides (.claude/notification_config.json).`,
		Example: `  # From a Stop hook
  ccnotify notify --event stop

  # Tool completion, focus the window instead of flashing
  ccnotify notify --event tool_complete --tool-name Bash --mode focus

  # Disable sound for this project
  ccnotify toggle sound-off

  # Show the merged configuration with provenance
  ccnotify toggle status`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetDebug(debug)
		},
	}

	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	root.AddCommand(newNotifyCmd())
	root.AddCommand(newToggleCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
