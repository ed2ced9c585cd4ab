package model

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every local validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
