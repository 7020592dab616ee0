package compose

import "errors"

// ErrPrecondition marks records the engine cannot lay out at all:
// no record, an unknown document type, or a required collection left empty.
var ErrPrecondition = errors.New("compose: structural precondition violated")
