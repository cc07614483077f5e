package code

import "errors"

var ErrInvalidCode = errors.New("invalid one-time code")
