package source

import "errors"

// ErrUnknownPocket indicates that a value provider has no values for the
// requested pocket.
var ErrUnknownPocket = errors.New("no values for pocket")
