package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danieljhkim/regreset/internal/engine"
)

var (
	lsVersion string
	lsSearch  string
)

// lsCmd lists workspace keys.
var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List workspace entries",
	Long: `List the workspace entries stored for a PowerBuilder version.

Each entry shows the raw registry key name and the workspace path it encodes.
--search keeps entries whose name or path contains the text, ignoring case.
The text is matched literally; characters such as '.' and '*' have no special meaning.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.close()

		result, err := s.engine.ListWorkspaces(context.Background(), &engine.ListWorkspacesRequest{
			Version: s.version(lsVersion),
			Search:  lsSearch,
		})
		if err != nil {
			return err
		}
		s.log.Debug("listed workspaces",
			zap.String("keyPath", result.KeyPath),
			zap.Bool("exists", result.Exists),
			zap.Int("enumerated", result.Enumerated),
			zap.Int("shown", len(result.Entries)))

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		printWorkspaces(newPrinter(cmd), fmt.Sprintf("Workspaces (PowerBuilder %s)", result.Version), result)
		return nil
	},
}

// printWorkspaces renders a list result.
func printWorkspaces(p *printer, title string, result *engine.ListWorkspacesResult) {
	p.Section(title)
	p.LabelValue("Key", registryDisplayPath(result.KeyPath))
	if result.Search != "" {
		p.LabelValue("Search", result.Search)
	}
	fmt.Fprintln(p.out)

	if len(result.Entries) == 0 {
		switch {
		case !result.Exists:
			p.EmptyState("No workspace key for this version")
		case result.Search != "":
			p.EmptyState(fmt.Sprintf("No workspaces match %q", result.Search))
		default:
			p.EmptyState("No workspaces found")
		}
		return
	}

	rows := make([][]string, 0, len(result.Entries))
	for _, e := range result.Entries {
		rows = append(rows, []string{e.Name, e.Path})
	}
	p.Table([]string{"Key Name", "Workspace Path"}, rows)
	fmt.Fprintln(p.out)
	p.Info(pluralize(len(result.Entries), "workspace", "workspaces"))
}

func init() {
	lsCmd.Flags().StringVarP(&lsVersion, "pb-version", "p", "", "PowerBuilder version (default from settings)")
	lsCmd.Flags().StringVarP(&lsSearch, "search", "s", "", "Only show entries whose name or path contains this text")
}
