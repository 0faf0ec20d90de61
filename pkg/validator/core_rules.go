package validator

import "reflect"

// Required rejects nil and nil pointers.
func Required(value any) (any, error) {
	if isMissing(value) {
		return nil, fail(MsgRequired, value)
	}
	return value, nil
}

// String accepts only string values.
func String(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fail(MsgNotString, value)
	}
	return s, nil
}

// Object accepts maps with string keys. A map[string]any is returned as is;
// other string-keyed maps are copied into a map[string]any. Slices and arrays
// are rejected.
func Object(value any) (map[string]any, error) {
	if m, ok := value.(map[string]any); ok {
		return m, nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fail(MsgNotObject, value)
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, nil
}
