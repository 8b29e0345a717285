package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/manifoldco/promptui"
)

// confirm asks a yes/no question; replaced in tests.
var confirm = promptConfirm

// promptConfirm prompts the user for a yes/no confirmation. Anything other
// than an explicit yes, including Ctrl-C, counts as no.
func promptConfirm(label string) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := p.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort), errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return false, nil
	default:
		return false, errors.Wrap(err, "failed to read confirmation")
	}
}
