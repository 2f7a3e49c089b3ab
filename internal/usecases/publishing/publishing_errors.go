package publishing

import "errors"

var (
	ErrNilReport   = errors.New("builder returned no report")
	ErrWriteReport = errors.New("error writing report")
)
