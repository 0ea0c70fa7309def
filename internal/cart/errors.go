package cart

import "errors"

var ErrOutOfRange = errors.New("invalid choice")
