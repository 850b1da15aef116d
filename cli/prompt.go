package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/amp-labs/amp-dependent/dependent"
	"github.com/amp-labs/amp-dependent/errors"
	"github.com/manifoldco/promptui"
)

// Prompter asks the user questions. Terminal implements it on top of promptui.
type Prompter interface {
	// Prompt reads one line of input, refusing to submit until validate accepts it.
	// A nil validate accepts anything.
	Prompt(label string, validate func(string) error) (string, error)
	// Select picks one of choices.
	Select(label string, choices ...string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(label string) (bool, error)
}

var _ Prompter = Terminal{}

// Terminal is where prompts read from and draw to. The zero value uses the
// process's standard input and output.
type Terminal struct {
	In  io.ReadCloser
	Out io.WriteCloser
}

func (t Terminal) stdin() io.ReadCloser {
	if t.In == nil {
		return os.Stdin
	}

	return t.In
}

func (t Terminal) stdout() io.WriteCloser {
	if t.Out == nil {
		return os.Stdout
	}

	return t.Out
}

// Confirm asks a yes/no question. Answering no (or aborting) is not an error.
func (t Terminal) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     t.stdin(),
		Stdout:    t.stdout(),
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// Prompt reads a line of input. Invalid input is shown as such and cannot be
// submitted; reaching the end of input first returns promptui.ErrEOF.
func (t Terminal) Prompt(label string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
		Stdin:    t.stdin(),
		Stdout:   t.stdout(),
	}

	return prompt.Run()
}

// acceptedBy adapts a factory to promptui's live validation: the prompt refuses
// to submit until the factory would accept the input.
func acceptedBy[K, C, Out any](factory dependent.Factory[K, C, string, Out]) promptui.ValidateFunc {
	return func(input string) error {
		if factory.TryCreate(input).Empty() {
			return fmt.Errorf("%w: not a valid %s", errors.ErrValidationRejected, factory.Kind())
		}

		return nil
	}
}

// PromptValidated keeps asking until the input is accepted by factory and
// returns the wrapper built from it.
func PromptValidated[K, C, Out any](
	p Prompter, label string, factory dependent.Factory[K, C, string, Out],
) (dependent.Type[K, Out], error) {
	txt, err := p.Prompt(label, acceptedBy(factory))
	if err != nil {
		return dependent.Type[K, Out]{}, err
	}

	return factory.New(txt)
}
