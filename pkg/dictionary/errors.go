package dictionary

import "github.com/pkg/errors"

var (
	ErrInvalidKeyType      = errors.New("key must be a string")
	ErrInvalidCallbackType = errors.New("callback must be a function")
	ErrNotObject           = errors.New("document must be an object")
	ErrTrailingData        = errors.New("unexpected data after object")
)
