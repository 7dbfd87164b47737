package dictionary

import (
	"reflect"

	"github.com/pkg/errors"
)

// The methods in this file take keys of any type, for callers holding keys
// that came out of decoded documents or reflection. Each fails with
// ErrInvalidKeyType before touching the dictionary if the key is not a
// string.

func keyOf(key any) (string, error) {
	if s, ok := key.(string); ok {
		return s, nil
	}

	if key != nil {
		if v := reflect.ValueOf(key); v.Kind() == reflect.String {
			return v.String(), nil
		}
	}

	return "", errors.Wrapf(ErrInvalidKeyType, "got %T", key)
}

func (d *Dictionary[T]) SetAny(key any, value T) (T, error) {
	k, err := keyOf(key)
	if err != nil {
		var zero T
		return zero, err
	}

	return d.Set(k, value), nil
}

func (d *Dictionary[T]) GetAny(key any, defaultValue T) (T, error) {
	k, err := keyOf(key)
	if err != nil {
		return defaultValue, err
	}

	return d.GetOr(k, defaultValue), nil
}

func (d *Dictionary[T]) HasAny(key any) (bool, error) {
	k, err := keyOf(key)
	if err != nil {
		return false, err
	}

	return d.Has(k), nil
}

func (d *Dictionary[T]) DeleteAny(key any) (bool, error) {
	k, err := keyOf(key)
	if err != nil {
		return false, err
	}

	return d.Delete(k), nil
}
