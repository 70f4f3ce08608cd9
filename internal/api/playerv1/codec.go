package playerv1

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Codec marshals PlayerService messages as JSON. It replaces connect's
// built-in JSON codec, which only accepts protobuf messages.
type Codec struct{}

// Name returns the codec name used in content types.
func (Codec) Name() string {
	return "json"
}

// Marshal encodes v.
func (Codec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %T", v)
	}
	return data, nil
}

// Unmarshal decodes data into v. An empty body leaves v at its zero value.
func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %T", v)
	}
	return nil
}
