package crossing

import "errors"

var (
	ErrNoData         = errors.New("no data")
	ErrMalformedInput = errors.New("malformed input")
)
