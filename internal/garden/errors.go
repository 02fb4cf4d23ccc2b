package garden

import "errors"

// ErrInvalidParams indicates tuning values that would stall or break growth.
var ErrInvalidParams = errors.New("garden: invalid params")
