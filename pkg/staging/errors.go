package staging

import "errors"

var (
	// ErrSourceNotFound occurs when the staging source is missing or not
	// a directory.
	ErrSourceNotFound = errors.New("staging source not found")
	// ErrDestinationExists occurs when the staging destination already
	// exists.
	ErrDestinationExists = errors.New("staging destination already exists")
	// ErrDestinationInsideSource occurs when the staging destination is
	// located under the source tree.
	ErrDestinationInsideSource = errors.New("staging destination inside source")
)
