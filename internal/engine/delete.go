package engine

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/danieljhkim/regreset/internal/regkey"
)

// DeleteWorkspaces deletes the selected workspace keys and their subtrees.
// Algorithm steps:
// 1. Reject an empty selection before touching the registry
// 2. Resolve the concrete key path from the version
// 3. Collapse duplicate names; mark excluded and empty names
// 4. Open the key (write, or read for dry-run)
// 5. Delete (or check) each remaining name independently
// 6. Return one outcome per distinct name
//
// Per-name failures are recorded in the outcomes and never stop the loop.
// Only failures opening the workspace key itself are returned as an error.
func (e *Engine) DeleteWorkspaces(ctx context.Context, req *DeleteWorkspacesRequest) (*DeleteWorkspacesResult, error) {
	// Step 1: Reject empty selection
	if len(req.Names) == 0 {
		return nil, ErrInvalidSelection
	}

	// Step 2: Resolve path
	keyPath, err := e.WorkspacePath(req.Version)
	if err != nil {
		return nil, err
	}

	result := &DeleteWorkspacesResult{
		Version: req.Version,
		KeyPath: keyPath,
		DryRun:  req.DryRun,
	}

	// Step 3: Build outcomes in selection order
	names := lo.Uniq(req.Names)
	result.Outcomes = make([]DeleteOutcome, len(names))
	var pending []int
	for i, name := range names {
		result.Outcomes[i] = DeleteOutcome{Name: name, Path: DisplayPath(name, e.escape)}
		switch {
		case name == "" || strings.Contains(name, regkey.Separator):
			result.Outcomes[i].fail(StatusInvalid, errors.Wrapf(ErrInvalidSelection, "invalid key name %q", name))
		case e.isExcluded(name):
			result.Outcomes[i].fail(StatusExcluded, errors.Wrapf(ErrExcluded, "%s", name))
		default:
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return result, nil
	}

	// Step 4: Open workspace key
	access := regkey.Write
	if req.DryRun {
		access = regkey.Read
	}
	key, err := e.registry.OpenKey(keyPath, access)
	if err != nil {
		err = classify(err)
		if !errors.Is(err, ErrPathNotFound) {
			return nil, errors.Wrapf(err, "failed to open %s", keyPath)
		}
		for _, i := range pending {
			result.Outcomes[i].fail(StatusMissing, errors.Wrapf(ErrDeleteTargetMissing, "%s", names[i]))
		}
		return result, nil
	}
	defer func() {
		_ = key.Close()
	}()

	// Step 5: Process each name
	if req.DryRun {
		e.checkExisting(key, names, pending, result)
		return result, nil
	}
	for _, i := range pending {
		o := &result.Outcomes[i]
		if err := key.DeleteTree(o.Name); err != nil {
			o.failFromRegistry(err)
			continue
		}
		o.Status = StatusDeleted
	}

	// Step 6: Return outcomes
	return result, nil
}

// checkExisting fills dry-run outcomes from the current subkey list.
func (e *Engine) checkExisting(key regkey.Key, names []string, pending []int, result *DeleteWorkspacesResult) {
	existing, err := key.SubKeyNames()
	if err != nil {
		err = classify(err)
		for _, i := range pending {
			result.Outcomes[i].failFromRegistry(err)
		}
		return
	}

	for _, i := range pending {
		present := lo.ContainsBy(existing, func(n string) bool {
			return strings.EqualFold(n, names[i])
		})
		if !present {
			result.Outcomes[i].fail(StatusMissing, errors.Wrapf(ErrDeleteTargetMissing, "%s", names[i]))
			continue
		}
		result.Outcomes[i].Status = StatusWouldDelete
	}
}

// isExcluded compares case-insensitively because registry names are
// case-insensitive; "mrulist" must not delete MRUList.
func (e *Engine) isExcluded(name string) bool {
	return lo.ContainsBy(e.exclusions, func(x string) bool {
		return strings.EqualFold(x, name)
	})
}

func (o *DeleteOutcome) fail(status DeleteStatus, err error) {
	o.Status = status
	o.Err = err
	o.Error = err.Error()
}

func (o *DeleteOutcome) failFromRegistry(err error) {
	switch {
	case errors.Is(err, regkey.ErrNotExist), errors.Is(err, ErrPathNotFound):
		o.fail(StatusMissing, errors.Wrapf(ErrDeleteTargetMissing, "%s", o.Name))
	default:
		o.fail(StatusFailed, classify(err))
	}
}
