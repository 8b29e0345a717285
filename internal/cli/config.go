package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/regreset/internal/config"
)

var configInitForce bool

// configCmd is the parent command for settings management.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	Long:  `Manage the settings file that lists selectable PowerBuilder versions.`,
}

// configInitCmd writes the default settings file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSettingsStore()
		if err != nil {
			return err
		}

		exists, err := store.Exists()
		if err != nil {
			return errors.Wrap(err, "failed to check settings file")
		}
		if exists && !configInitForce {
			return fmt.Errorf("settings file %s already exists; use --force to overwrite", store.Path())
		}

		if err := store.Save(config.DefaultSettings()); err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), map[string]any{"path": store.Path(), "written": true})
		}
		newPrinter(cmd).Success(fmt.Sprintf("Wrote settings: %s", store.Path()))
		return nil
	},
}

// configShowCmd prints the effective settings.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSettingsStore()
		if err != nil {
			return err
		}

		settings, found, err := store.Load()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), map[string]any{
				"path":     store.Path(),
				"found":    found,
				"settings": settings,
			})
		}

		p := newPrinter(cmd)
		p.Section("Settings")
		source := store.Path()
		if !found {
			source += " (not found, using defaults)"
		}
		p.LabelValue("File", source)
		p.LabelValue("Versions", fmt.Sprintf("%v", settings.Versions))
		p.LabelValue("Default", settings.ResolveVersion(""))
		p.LabelValue("Separator escape", settings.SeparatorEscape)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing settings file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
