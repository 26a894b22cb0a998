package sequence

import "errors"

var (
	ErrEmptyCatalog = errors.New("stage catalog is empty")
	ErrInvalidCount = errors.New("count must be positive")
)
