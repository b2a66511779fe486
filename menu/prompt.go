package menu

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Prompter asks the user for input.
type Prompter interface {
	// Choose returns the index of the selected option.
	Choose(message string, options []string) (int, error)

	// Ask reads a line of text. suggest may be nil.
	Ask(message string, suggest func(string) []string) (string, error)
}

// Survey prompts on the terminal.
type Survey struct{}

func (Survey) Choose(message string, options []string) (int, error) {
	var index int
	err := survey.AskOne(&survey.Select{
		Message:  message,
		Options:  options,
		PageSize: len(options),
	}, &index)
	return index, err
}

func (Survey) Ask(message string, suggest func(string) []string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{
		Message: message,
		Suggest: suggest,
	}, &answer)
	return answer, err
}

func interrupted(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}
