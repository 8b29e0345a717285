package cli

import (
	"github.com/spf13/cobra"
)

var pathVersion string

// pathCmd prints the registry key for a version.
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the workspace registry key for a version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.close()

		version := s.version(pathVersion)
		keyPath, err := s.engine.WorkspacePath(version)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), map[string]string{
				"version": version,
				"hive":    "HKEY_CURRENT_USER",
				"keyPath": keyPath,
			})
		}

		newPrinter(cmd).Info(registryDisplayPath(keyPath))
		return nil
	},
}

func init() {
	pathCmd.Flags().StringVarP(&pathVersion, "pb-version", "p", "", "PowerBuilder version (default from settings)")
}
