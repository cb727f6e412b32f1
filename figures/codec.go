package figures

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Shape is the behavior attached to a decoded record.
type Shape interface {
	Area() float64
}

// ToJSON serializes a record with the standard JSON encoding.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to serialize record: %w", err)
	}
	return string(data), nil
}

// FromJSON deserializes text into a fresh record of type T. The type
// parameter plays the role of the behavior descriptor: the decoded record
// comes back with T's method set attached.
func FromJSON[T any](data []byte) (*T, error) {
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("unable to deserialize record: %w", err)
	}
	return v, nil
}

// ErrUnknownKind is returned by DecodeShape for a kind no factory was
// registered for.
var ErrUnknownKind = errors.New("unknown shape kind")

var kinds = map[string]func() Shape{}

// RegisterKind associates a kind label with a factory producing an empty
// record to decode into. Registration is expected at init time; the registry
// is not synchronized.
func RegisterKind(name string, factory func() Shape) {
	kinds[name] = factory
}

// DecodeShape decodes a tagged record of the form {"kind": "...", ...} into
// the concrete type registered for its kind. Unlike FromJSON the data, not
// the caller, picks the behavior.
func DecodeShape(data []byte) (Shape, error) {
	var tag struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("unable to read record kind: %w", err)
	}
	factory, ok := kinds[tag.Kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", tag.Kind, ErrUnknownKind)
	}
	s := factory()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("unable to deserialize %q record: %w", tag.Kind, err)
	}
	return s, nil
}

func init() {
	RegisterKind("rectangle", func() Shape { return new(Rectangle) })
}
