package dictionary_test

import (
	"testing"

	"github.com/UTD-JLA/strdict/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func TestLooseKeys(t *testing.T) {
	d := dictionary.NewFromPairs[any](dictionary.P[any]("a", 1))

	invalid := []any{nil, 1, 1.5, true, []byte("a"), struct{}{}, map[string]int{}}

	for _, key := range invalid {
		_, err := d.SetAny(key, 2)
		assert.ErrorIs(t, err, dictionary.ErrInvalidKeyType, "%T", key)

		v, err := d.GetAny(key, "default")
		assert.ErrorIs(t, err, dictionary.ErrInvalidKeyType, "%T", key)
		assert.Equal(t, "default", v)

		_, err = d.HasAny(key)
		assert.ErrorIs(t, err, dictionary.ErrInvalidKeyType, "%T", key)

		_, err = d.DeleteAny(key)
		assert.ErrorIs(t, err, dictionary.ErrInvalidKeyType, "%T", key)
	}

	assert.Equal(t, 1, d.Len())
	assert.Equal(t, []string{"a"}, d.Keys())

	v, err := d.SetAny("b", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = d.SetAny(label("c"), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.True(t, d.Has("c"))

	has, err := d.HasAny("b")
	require.NoError(t, err)
	assert.True(t, has)

	v, err = d.GetAny("missing", "default")
	require.NoError(t, err)
	assert.Equal(t, "default", v)

	deleted, err := d.DeleteAny("b")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = d.DeleteAny("b")
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.Equal(t, 2, d.Len())
}
