package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForProjectDir prompts the user for the project directory with examples.
	PromptForProjectDir(defaultProjectDir string) (string, error)

	// PromptForStagingDir prompts the user for the staging directory with examples.
	PromptForStagingDir(defaultStagingDir string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptReviewFiles presents the unused file list for interactive review and
	// returns the subset the user confirmed for deletion.
	PromptReviewFiles(paths []string) ([]string, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompt instance.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// PromptForProjectDir prompts the user for the project directory with examples.
func (p *realPrompt) PromptForProjectDir(defaultProjectDir string) (string, error) {
	if defaultProjectDir == "" {
		defaultProjectDir = "."
	}
	fmt.Printf("Choose the project directory to scan "+
		"(ex: ~/Games/MyProject, ./staging/MyProject): "+
		"[default: %s]: ", defaultProjectDir)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(input)

	// Use default if input is empty
	if input == "" {
		return defaultProjectDir, nil
	}

	return input, nil
}

// PromptForStagingDir prompts the user for the staging directory with examples.
func (p *realPrompt) PromptForStagingDir(defaultStagingDir string) (string, error) {
	if defaultStagingDir == "" {
		defaultStagingDir = "~/Games/staging"
	}
	fmt.Printf("Choose the location of the staging directory "+
		"(ex: ~/Games/staging, ./staging): "+
		"[default: %s]: ", defaultStagingDir)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(input)

	// Use default if input is empty
	if input == "" {
		return defaultStagingDir, nil
	}

	return input, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	// Check for yes/no responses
	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptReviewFiles presents the unused file list for interactive review.
func (p *realPrompt) PromptReviewFiles(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, ErrNoFilesToReview
	}

	// Use Bubble Tea for interactive review
	return promptReviewFilesBubbleTea(paths)
}
