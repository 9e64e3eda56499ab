package poker

import "errors"

var (
	ErrInvalidCardFormat = errors.New("invalid card format")
	ErrInvalidHandFormat = errors.New("invalid hand format")
)
