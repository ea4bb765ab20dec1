package extend

import "errors"

// ErrConfigInvalid is returned when a Config option combination is
// rejected at construction time rather than during growth.
var ErrConfigInvalid = errors.New("extend: max_loops must be positive")
