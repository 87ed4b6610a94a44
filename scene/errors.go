package scene

import "errors"

// ErrTypeMismatch indicates that Add received a value that is neither an
// optics.Ray nor an optics.Element (nil included).
var ErrTypeMismatch = errors.New("scene: unsupported item type")
