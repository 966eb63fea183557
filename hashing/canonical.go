package hashing

import (
	"fmt"

	"github.com/go-json-experiment/json"

	"github.com/hasbyte1/go-turtledash/jsontype"
)

// Canonical returns the bytes a [Hasher] digests for value: the JSON
// encoding of jsontype.Hashable(value). Map keys are sorted, so the output
// does not depend on map iteration order.
func Canonical(value any) ([]byte, error) {
	b, err := json.Marshal(jsontype.Hashable(value), json.Deterministic(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return b, nil
}
