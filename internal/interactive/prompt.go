// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package interactive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrQuit is returned by a Prompter when the user interrupts or input ends.
var ErrQuit = errors.New("input closed")

// Prompter asks the user for input.
type Prompter interface {
	// Select returns the index of the chosen item.
	Select(label string, items []string) (int, error)

	// Input returns a line of text. validate may be nil.
	Input(label string, validate func(string) error) (string, error)

	// Confirm returns true for yes.
	Confirm(label string) (bool, error)
}

// TermPrompter prompts on the terminal with promptui.
type TermPrompter struct{}

func quit(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrQuit
	}
	return err
}

// Select implements Prompter.
func (TermPrompter) Select(label string, items []string) (int, error) {
	p := promptui.Select{Label: label, Items: items, Size: len(items)}
	i, _, err := p.Run()
	return i, quit(err)
}

// Input implements Prompter.
func (TermPrompter) Input(label string, validate func(string) error) (string, error) {
	p := promptui.Prompt{Label: label}
	if validate != nil {
		p.Validate = promptui.ValidateFunc(validate)
	}
	s, err := p.Run()
	return strings.TrimSpace(s), quit(err)
}

// Confirm implements Prompter.
func (TermPrompter) Confirm(label string) (bool, error) {
	p := promptui.Prompt{Label: label, IsConfirm: true, Default: "y"}
	_, err := p.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, quit(err)
	}
	return true, nil
}

// notEmpty rejects blank input.
func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}

// emailCount accepts a blank line or an integer from 1 to 5.
func emailCount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 5 {
		return fmt.Errorf("enter a number from 1 to 5")
	}
	return nil
}
