package capture

import "errors"

var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrNoActionsParsed = errors.New("no actions could be parsed from input")
)
