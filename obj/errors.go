package obj

import "errors"

// ErrSerialization is returned by [CloneDeep] when its argument cannot be
// encoded to, or decoded back from, JSON. The underlying encoder error is
// wrapped alongside it.
var ErrSerialization = errors.New("obj: value is not JSON serializable")
