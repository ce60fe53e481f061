package main

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

type prompter interface {
	Ask(label string, def string) (string, error)
	Confirm(label string) (bool, error)
	Secret(label string) (string, error)
}

var prompt prompter = promptuiPrompter{}

type promptuiPrompter struct{}

func (promptuiPrompter) Ask(label string, def string) (string, error) {
	return (&promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
	}).Run()
}

func (promptuiPrompter) Confirm(label string) (bool, error) {
	_, err := (&promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}).Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (promptuiPrompter) Secret(label string) (string, error) {
	return (&promptui.Prompt{
		Label:    label,
		Mask:     '*',
		Validate: validatePassphrase,
	}).Run()
}

func validatePassphrase(s string) error {
	if len(s) < 4 {
		return errors.New("passphrase must be at least 4 characters")
	}
	return nil
}

// askOr returns flagValue when set, the default in non-interactive mode,
// and the prompted answer otherwise.
func askOr(flagValue string, label string, def string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if nonInteractive {
		return def, nil
	}
	v, err := prompt.Ask(label, def)
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

// passphrase returns the configured value or prompts for one. New keys
// are asked for twice.
func passphrase(configured string, label string, envName string, verify bool) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if nonInteractive {
		return "", fmt.Errorf("%s is required: set %s", label, envName)
	}
	p, err := prompt.Secret(label)
	if err != nil {
		return "", err
	}
	if verify {
		again, err := prompt.Secret("Verify " + label)
		if err != nil {
			return "", err
		}
		if again != p {
			return "", errors.New("passphrases do not match")
		}
	}
	return p, nil
}

// confirmOverwrite reports whether an existing CA may be replaced.
func confirmOverwrite(what string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if nonInteractive {
		return false, fmt.Errorf("%s already exists: use --force to overwrite", what)
	}
	return prompt.Confirm("Overwrite " + what)
}
