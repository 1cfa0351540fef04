// Package terminal provides terminal detection and confirmation prompts.
package terminal

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/conn-castle/xig/internal/messages"
)

// ErrRequiresTerminal indicates a prompt was requested without an interactive terminal.
var ErrRequiresTerminal = errors.New(messages.PromptRequiresTerminal)

// IsInteractive reports whether stdin and stdout are both interactive terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(title string) (bool, error)
}

// HuhConfirmer implements Confirmer using charmbracelet/huh.
type HuhConfirmer struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhConfirmer creates a HuhConfirmer using the default terminal check.
func NewHuhConfirmer() *HuhConfirmer {
	return &HuhConfirmer{isTerminal: IsInteractive}
}

// Confirm renders a yes/no prompt on stderr. Aborting the form counts as "no".
func (c *HuhConfirmer) Confirm(title string) (bool, error) {
	checker := c.isTerminal
	if checker == nil {
		checker = IsInteractive
	}
	if !checker() {
		return false, ErrRequiresTerminal
	}

	value := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&value),
		),
	)
	form.WithProgramOptions(tea.WithOutput(os.Stderr))

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value, nil
}
