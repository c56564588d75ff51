package analyze

import "errors"

var (
	// ErrInvalidInput indicates the dataset is nil or one of its required
	// collections is missing or empty.
	ErrInvalidInput = errors.New("invalid input data")
	// ErrInvalidOptions indicates a required calculation strategy is not set.
	ErrInvalidOptions = errors.New("invalid options")
)
