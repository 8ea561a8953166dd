package repoerrs

import "errors"

var (
	ErrUnknownDriver  = errors.New("unknown session driver")
	ErrMissingSetting = errors.New("missing driver setting")
	ErrCorruptRecord  = errors.New("corrupt session record")
)
