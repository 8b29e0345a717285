package cli

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danieljhkim/regreset/internal/engine"
)

var (
	rmVersion string
	rmMatch   string
	rmYes     bool
	rmDryRun  bool
)

// rmCmd deletes workspace keys.
var rmCmd = &cobra.Command{
	Use:   "rm [key-name...]",
	Short: "Delete workspace entries",
	Long: `Delete workspace entries and everything stored beneath them.

Select entries by raw key name (as shown by 'regreset ls'), with --match to
select every entry 'regreset ls --search' would show, or both.

You'll be asked to confirm unless --yes or --dry-run is given. Each entry is
deleted independently: an entry that has already disappeared is reported and
the others are still deleted. There is no undo.`,
	Example: `  regreset rm 'C:$work$old$old.pbw'
  regreset rm --match old --dry-run
  regreset rm -p 2017 --match 'C:$tmp' --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.close()

		ctx := context.Background()
		p := newPrinter(cmd)
		version := s.version(rmVersion)

		names, err := selectNames(ctx, s, cmd, version, args)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return errors.Wrap(engine.ErrInvalidSelection, "give key names or --match")
		}

		if !rmYes && !rmDryRun {
			if jsonOutput {
				return errors.New("--json requires --yes when deleting")
			}
			keyPath, err := s.engine.WorkspacePath(version)
			if err != nil {
				return err
			}
			p.Section("Delete Workspaces")
			p.LabelValue("Key", registryDisplayPath(keyPath))
			fmt.Fprintln(p.out)
			p.List(names, 1)
			fmt.Fprintln(p.out)

			ok, err := confirm(fmt.Sprintf("Delete %s", pluralize(len(names), "workspace entry", "workspace entries")))
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("deletion cancelled by user")
			}
		}

		result, err := s.engine.DeleteWorkspaces(ctx, &engine.DeleteWorkspacesRequest{
			Version: version,
			Names:   names,
			DryRun:  rmDryRun,
		})
		if err != nil {
			return err
		}
		for _, o := range result.Outcomes {
			s.log.Debug("delete outcome",
				zap.String("name", o.Name),
				zap.String("status", string(o.Status)),
				zap.Error(o.Err))
		}

		// Deleting invalidates any earlier listing, so list again.
		var remaining *engine.ListWorkspacesResult
		if !rmDryRun {
			remaining, err = s.engine.ListWorkspaces(ctx, &engine.ListWorkspacesRequest{Version: version})
			if err != nil {
				return errors.Wrap(err, "failed to refresh workspace list")
			}
		}

		if jsonOutput {
			if err := outputJSON(cmd.OutOrStdout(), rmOutput{Result: result, Remaining: remaining}); err != nil {
				return err
			}
		} else {
			printDeleteResult(p, result)
			if remaining != nil {
				printWorkspaces(p, "Remaining Workspaces", remaining)
			}
		}

		if failed := result.Failed(); len(failed) > 0 && !rmDryRun {
			return fmt.Errorf("%d of %d workspace entries could not be deleted", len(failed), len(result.Outcomes))
		}
		return nil
	},
}

// rmOutput is the JSON shape of rm.
type rmOutput struct {
	Result    *engine.DeleteWorkspacesResult `json:"result"`
	Remaining *engine.ListWorkspacesResult   `json:"remaining,omitempty"`
}

// selectNames combines explicit names with the entries matched by --match.
func selectNames(ctx context.Context, s *session, cmd *cobra.Command, version string, args []string) ([]string, error) {
	names := append([]string{}, args...)
	if !cmd.Flags().Changed("match") {
		return names, nil
	}

	listed, err := s.engine.ListWorkspaces(ctx, &engine.ListWorkspacesRequest{
		Version: version,
		Search:  rmMatch,
	})
	if err != nil {
		return nil, err
	}
	if len(listed.Entries) == 0 && len(names) == 0 {
		return nil, errors.Wrapf(engine.ErrInvalidSelection, "no workspace entries match %q", rmMatch)
	}

	matched := lo.Map(listed.Entries, func(e engine.WorkspaceEntry, _ int) string { return e.Name })
	s.log.Debug("matched workspaces", zap.String("search", rmMatch), zap.Strings("names", matched))
	return lo.Uniq(append(names, matched...)), nil
}

// printDeleteResult renders per-name outcomes.
func printDeleteResult(p *printer, result *engine.DeleteWorkspacesResult) {
	title := "Delete Workspaces"
	if result.DryRun {
		title = "Dry Run: Delete Workspaces"
	}
	p.Section(title)

	rows := make([][]string, 0, len(result.Outcomes))
	for _, o := range result.Outcomes {
		detail := o.Path
		if o.Err != nil {
			detail = o.Error
		}
		rows = append(rows, []string{string(o.Status), o.Name, detail})
	}
	p.Table([]string{"Status", "Key Name", "Detail"}, rows)
	fmt.Fprintln(p.out)

	succeeded, failed := len(result.Succeeded()), len(result.Failed())
	switch {
	case result.DryRun:
		p.Info(fmt.Sprintf("Would delete %s", pluralize(succeeded, "entry", "entries")))
		if failed > 0 {
			p.Warning(fmt.Sprintf("%s would be skipped", pluralize(failed, "entry", "entries")))
		}
		p.Warning("Run without --dry-run to delete")
	case failed == 0:
		p.Success(fmt.Sprintf("Deleted %s", pluralize(succeeded, "entry", "entries")))
	default:
		if succeeded > 0 {
			p.Success(fmt.Sprintf("Deleted %s", pluralize(succeeded, "entry", "entries")))
		}
		p.Error(fmt.Sprintf("%s not deleted", pluralize(failed, "entry", "entries")))
	}
}

func init() {
	rmCmd.Flags().StringVarP(&rmVersion, "pb-version", "p", "", "PowerBuilder version (default from settings)")
	rmCmd.Flags().StringVar(&rmMatch, "match", "", "Select every entry whose name or path contains this text")
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Delete without confirmation")
	rmCmd.Flags().BoolVar(&rmDryRun, "dry-run", false, "Show what would be deleted without deleting")
}
