package dictionary

import "github.com/spf13/cast"

// Typed getters return defaultValue when key is absent or its value cannot be
// converted.

func GetString[T any](m Map[T], key string, defaultValue string) string {
	v, ok := m.Get(key)
	if !ok {
		return defaultValue
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return defaultValue
	}

	return s
}

func GetInt[T any](m Map[T], key string, defaultValue int) int {
	v, ok := m.Get(key)
	if !ok {
		return defaultValue
	}

	i, err := cast.ToIntE(v)
	if err != nil {
		return defaultValue
	}

	return i
}

func GetInt64[T any](m Map[T], key string, defaultValue int64) int64 {
	v, ok := m.Get(key)
	if !ok {
		return defaultValue
	}

	i, err := cast.ToInt64E(v)
	if err != nil {
		return defaultValue
	}

	return i
}

func GetFloat64[T any](m Map[T], key string, defaultValue float64) float64 {
	v, ok := m.Get(key)
	if !ok {
		return defaultValue
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return defaultValue
	}

	return f
}

func GetBool[T any](m Map[T], key string, defaultValue bool) bool {
	v, ok := m.Get(key)
	if !ok {
		return defaultValue
	}

	b, err := cast.ToBoolE(v)
	if err != nil {
		return defaultValue
	}

	return b
}
