// Package prompt provides interactive prompt functionality for the asset sweeper.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrReviewAborted            = errors.New("review aborted")
	ErrNoFilesToReview          = errors.New("no files to review")
)
