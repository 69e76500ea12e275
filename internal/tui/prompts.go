package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via GITDASH_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (GITDASH_NO_INTERACTIVE is set)")

// ErrCanceled is returned when the user aborts a prompt
var ErrCanceled = errors.New("canceled")

// checkInteractiveAllowed returns an error if prompts cannot be shown
func checkInteractiveAllowed() error {
	if os.Getenv("GITDASH_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	if !IsTTY() {
		return ErrInteractiveDisabled
	}
	return nil
}

// InteractiveAllowed reports whether prompts can be shown
func InteractiveAllowed() bool {
	return checkInteractiveAllowed() == nil
}

func askOne(prompt survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	if err := survey.AskOne(prompt, response, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return ErrCanceled
		}
		return err
	}
	return nil
}

// PromptTextInput prompts the user for text input
func PromptTextInput(prompt, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var answer string
	input := &survey.Input{
		Message: prompt,
		Default: defaultValue,
	}
	if err := askOne(input, &answer); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// PromptRequiredText prompts until a non-empty value is given
func PromptRequiredText(prompt string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var answer string
	input := &survey.Input{Message: prompt}
	if err := askOne(input, &answer, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// PromptSecret prompts for a value without echoing it
func PromptSecret(prompt string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var answer string
	input := &survey.Password{Message: prompt}
	if err := askOne(input, &answer, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// PromptConfirm prompts the user for a yes/no answer
func PromptConfirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	var answer bool
	confirm := &survey.Confirm{
		Message: prompt,
		Default: defaultValue,
	}
	if err := askOne(confirm, &answer); err != nil {
		return false, err
	}
	return answer, nil
}
