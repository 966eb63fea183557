package jsontype

import "errors"

// ErrInvalidType is returned by [DeepEqual] when a compared object is not a
// slice, array or string-keyed map. The offending Go type is wrapped
// alongside it.
var ErrInvalidType = errors.New("jsontype: not a JSON type")
