package metainfo

import "errors"

// ErrInvalid is wrapped by every structural error that is not a missing
// or mistyped field.
var ErrInvalid = errors.New("invalid metainfo")
