package reviews

import "errors"

// Repository errors.
var (
	ErrReviewNotFound = errors.New("review not found")
)
