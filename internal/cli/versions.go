package cli

import (
	"github.com/spf13/cobra"
)

// versionsCmd lists the configured PowerBuilder versions.
var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List the selectable PowerBuilder versions",
	Long: `List the PowerBuilder versions configured in the settings file.
The default version is marked with '*'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.close()

		current := s.version("")
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), map[string]any{
				"versions": s.settings.Versions,
				"default":  current,
			})
		}

		p := newPrinter(cmd)
		p.Section("PowerBuilder Versions")
		if len(s.settings.Versions) == 0 {
			p.EmptyState("No versions configured; any version is accepted")
			return nil
		}
		rows := make([][]string, 0, len(s.settings.Versions))
		for _, v := range s.settings.Versions {
			mark := " "
			if v == current {
				mark = "*"
			}
			rows = append(rows, []string{mark, v})
		}
		p.Table([]string{"", "Version"}, rows)
		return nil
	},
}
