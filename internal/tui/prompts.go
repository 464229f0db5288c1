package tui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled
// via SYNCMAIN_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (SYNCMAIN_TEST_NO_INTERACTIVE is set)")

// IsInteractive reports whether stdout is attached to a terminal
func IsInteractive() bool {
	if os.Getenv("SYNCMAIN_TEST_NO_INTERACTIVE") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// PromptConfirm asks the user a yes/no question
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	if os.Getenv("SYNCMAIN_TEST_NO_INTERACTIVE") != "" {
		return false, ErrInteractiveDisabled
	}

	confirmed := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
