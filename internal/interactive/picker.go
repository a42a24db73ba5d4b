package interactive

import (
	"fmt"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"
)

// Picker handles interactive suite selection
type Picker struct{}

// NewPicker creates a new interactive picker
func NewPicker() *Picker {
	return &Picker{}
}

// PickSuite asks the user to choose one of the available suites
func (p *Picker) PickSuite(names []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no suites available")
	}

	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("cannot prompt for a suite without a terminal; pass the suite name as an argument")
	}

	prompt := &survey.Select{
		Message: "Choose a suite to run:",
		Options: names,
	}

	var choice string
	if err := survey.AskOne(prompt, &choice, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	return choice, nil
}
