package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// OptionalString is a YAML-decodable string field that is logically optional:
// an absent key, an explicit null, or an empty string all decode to no-value
// rather than an error. Asset definitions use it for fields like descriptions
// where "not written yet" is routine.
type OptionalString struct {
	value string
	some  bool
}

// SomeString returns a present OptionalString. An empty value still yields
// no-value, matching the decode behavior.
func SomeString(v string) OptionalString {
	return OptionalString{value: v, some: v != ""}
}

// IsSome reports whether a non-empty value is present.
func (o OptionalString) IsSome() bool {
	return o.some
}

// Value returns the string and whether it is present.
func (o OptionalString) Value() (string, bool) {
	return o.value, o.some
}

// Or returns the value when present, otherwise fallback.
func (o OptionalString) Or(fallback string) string {
	if o.some {
		return o.value
	}
	return fallback
}

// UnmarshalYAML decodes a scalar string, treating null and "" as no-value.
func (o *OptionalString) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*o = OptionalString{}
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("optional string must be a scalar: %w", err)
	}
	*o = SomeString(s)
	return nil
}

// MarshalYAML encodes the value, or nil when absent.
func (o OptionalString) MarshalYAML() (interface{}, error) {
	if !o.some {
		return nil, nil
	}
	return o.value, nil
}
