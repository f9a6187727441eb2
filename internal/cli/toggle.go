package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/ccnotify/internal/config"
	"github.com/schoolboyqueue/ccnotify/internal/status"
)

func newToggleCmd() *cobra.Command {
	var useGlobal, useProject bool

	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Manage notification configuration",
		Long: `Manage the notification configuration.

Mutations target the project config (.claude/notification_config.json)
by default; pass --global to target ~/.claude/notification_config.json
instead. Untouched keys in the target file are preserved.`,
		Example: `  ccnotify toggle status
  ccnotify toggle enable
  ccnotify toggle disable --global
  ccnotify toggle sound-off
  ccnotify toggle highlight-off --global`,
	}

	cmd.PersistentFlags().BoolVar(&useGlobal, "global", false, "Operate on the global config instead of the project config")
	cmd.PersistentFlags().BoolVar(&useProject, "project", false, "Explicitly operate on the project config")

	cmd.AddCommand(newToggleMutation("enable", "Enable notifications",
		"notifications enabled", &useGlobal, &useProject,
		func(doc *config.Document) {
			// Re-enabling switches the category toggles back on too, so
			// a plain "enable" always restores a working setup.
			doc.Enabled = config.Bool(true)
			doc.SoundEnabled = config.Bool(true)
			doc.HighlightEnabled = config.Bool(true)
		}))
	cmd.AddCommand(newToggleMutation("disable", "Disable notifications",
		"notifications disabled", &useGlobal, &useProject,
		func(doc *config.Document) {
			doc.Enabled = config.Bool(false)
		}))
	cmd.AddCommand(newToggleMutation("sound-off", "Disable sound (keep highlight)",
		"sound disabled (window highlight still active)", &useGlobal, &useProject,
		func(doc *config.Document) {
			doc.SoundEnabled = config.Bool(false)
		}))
	cmd.AddCommand(newToggleMutation("highlight-off", "Disable window highlight (keep sound)",
		"window highlight disabled (sound still active)", &useGlobal, &useProject,
		func(doc *config.Document) {
			doc.HighlightEnabled = config.Bool(false)
		}))
	cmd.AddCommand(newToggleStatusCmd())

	return cmd
}

// newToggleMutation builds one load-patch-save command against the
// selected tier.
func newToggleMutation(use, short, done string, useGlobal, useProject *bool, patch func(*config.Document)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, tier, err := targetPath(*useGlobal, *useProject)
			if err != nil {
				return err
			}
			if err := config.NewStore().Apply(path, patch); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "[x] Failed to update %s config: %v\n", tier, err)
				return NewExitError(ExitSaveFailed, fmt.Errorf("updating %s config: %w", tier, err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[+] %s %s\n    Config: %s\n", titleCase(tier), done, path)
			return nil
		},
	}
}

func newToggleStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the merged configuration with provenance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := config.NewStore()

			globalPath, err := config.GlobalPath()
			if err != nil {
				globalPath = "(unresolvable: " + err.Error() + ")"
			}
			projectPath := config.ProjectPath()

			var globalDoc, projectDoc *config.Document
			if err == nil {
				if doc, ok := store.Load(globalPath); ok {
					globalDoc = &doc
				}
			}
			if doc, ok := store.Load(projectPath); ok {
				projectDoc = &doc
			}

			view := status.Report(globalDoc, projectDoc, globalPath, projectPath)
			status.Render(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

// targetPath resolves the document path for a mutation.
func targetPath(useGlobal, useProject bool) (path, tier string, err error) {
	if useGlobal && useProject {
		return "", "", NewExitError(ExitInvalidArguments,
			fmt.Errorf("--global and --project are mutually exclusive"))
	}
	if useGlobal {
		p, err := config.GlobalPath()
		if err != nil {
			return "", "", NewExitError(ExitSaveFailed, fmt.Errorf("resolving global config path: %w", err))
		}
		return p, "global", nil
	}
	return config.ProjectPath(), "project", nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
