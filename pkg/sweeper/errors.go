package sweeper

import "errors"

var (
	// ErrStagingDeclined occurs when the user declines to replace an
	// existing staging copy.
	ErrStagingDeclined = errors.New("staging replacement declined")
)
