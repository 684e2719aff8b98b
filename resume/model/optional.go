package model

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes "not provided" from a provided value. On the wire an
// unset Optional is dropped by the omitzero tag option; on update it means
// "leave the stored value unchanged".
type Optional[T any] struct {
	value T
	set   bool
}

// Some wraps a provided value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Unset returns the empty Optional.
func Unset[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was provided.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// Or returns the value when provided and def otherwise.
func (o Optional[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// IsSet reports whether a value was provided.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsZero lets encoding/json omit unset values via omitzero.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// MarshalJSON encodes the wrapped value, or null when unset.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON marks the Optional as provided. An explicit null is treated
// as not provided.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
