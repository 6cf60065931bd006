package services

import "encoding/json"

// Optional distinguishes an absent JSON field from an explicit null.
// Set is true whenever the key was present; Value is nil for null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (field *Optional[T]) UnmarshalJSON(raw []byte) error {
	field.Set = true
	if string(raw) == "null" {
		field.Value = nil
		return nil
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return err
	}
	field.Value = &value
	return nil
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: &value}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (field Optional[T]) ValueOr(fallback T) T {
	if !field.Set || field.Value == nil {
		return fallback
	}
	return *field.Value
}
