package document

import (
	"encoding/json"
	"strconv"
)

// Descriptor is one semi-structured key-value section of a run log.
// Accessors return nil for absent keys, explicit JSON nulls, and values
// of an unusable type, so every downstream lookup degrades to "missing"
// instead of erroring.
type Descriptor map[string]any

// Has reports whether the key exists at all, including with a null value.
func (d Descriptor) Has(key string) bool {
	_, ok := d[key]
	return ok
}

func (d Descriptor) value(key string) (any, bool) {
	v, ok := d[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns the scalar at key rendered as text. Numbers keep their
// source form, so species ids survive whether logged as "16" or 16.
func (d Descriptor) String(key string) *string {
	v, ok := d.value(key)
	if !ok {
		return nil
	}
	s, ok := scalarString(v)
	if !ok {
		return nil
	}
	return &s
}

// Int returns the integer at key, truncating fractional values.
func (d Descriptor) Int(key string) *int64 {
	v, ok := d.value(key)
	if !ok {
		return nil
	}
	return scalarInt(v)
}

// Bool returns the boolean at key.
func (d Descriptor) Bool(key string) *bool {
	v, ok := d.value(key)
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	return &b
}

// ScalarList returns the sequence at key with per-position nullability
// preserved: a null entry stays nil without shifting later positions.
func (d Descriptor) ScalarList(key string) []*string {
	items, ok := d.list(key)
	if !ok {
		return nil
	}
	out := make([]*string, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		if s, ok := scalarString(item); ok {
			out[i] = &s
		}
	}
	return out
}

// IntList returns the integer sequence at key, nulls preserved in place.
func (d Descriptor) IntList(key string) []*int64 {
	items, ok := d.list(key)
	if !ok {
		return nil
	}
	out := make([]*int64, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		out[i] = scalarInt(item)
	}
	return out
}

func (d Descriptor) list(key string) ([]any, bool) {
	v, ok := d.value(key)
	if !ok {
		return nil, false
	}
	items, ok := v.([]any)
	return items, ok
}

func scalarString(v any) (string, bool) {
	switch typed := v.(type) {
	case string:
		return typed, true
	case json.Number:
		return typed.String(), true
	case bool:
		return strconv.FormatBool(typed), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	default:
		return "", false
	}
}

func scalarInt(v any) *int64 {
	switch typed := v.(type) {
	case json.Number:
		if n, err := typed.Int64(); err == nil {
			return &n
		}
		if f, err := typed.Float64(); err == nil {
			n := int64(f)
			return &n
		}
	case float64:
		n := int64(typed)
		return &n
	}
	return nil
}
