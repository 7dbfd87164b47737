package dictionary_test

import (
	"testing"

	"github.com/UTD-JLA/strdict/pkg/dictionary"
	"github.com/stretchr/testify/assert"
)

func TestTypedGetters(t *testing.T) {
	d := dictionary.NewFromPairs[any](
		dictionary.P[any]("name", "strdict"),
		dictionary.P[any]("port", "6379"),
		dictionary.P[any]("ratio", 0.5),
		dictionary.P[any]("enabled", "true"),
		dictionary.P[any]("count", float64(3)),
		dictionary.P[any]("list", []string{"a"}),
	)

	assert.Equal(t, "strdict", dictionary.GetString[any](d, "name", ""))
	assert.Equal(t, "fallback", dictionary.GetString[any](d, "missing", "fallback"))
	assert.Equal(t, "fallback", dictionary.GetString[any](d, "list", "fallback"))

	assert.Equal(t, 6379, dictionary.GetInt[any](d, "port", 0))
	assert.Equal(t, 3, dictionary.GetInt[any](d, "count", 0))
	assert.Equal(t, -1, dictionary.GetInt[any](d, "name", -1))

	assert.Equal(t, int64(6379), dictionary.GetInt64[any](d, "port", 0))
	assert.Equal(t, 0.5, dictionary.GetFloat64[any](d, "ratio", 0))
	assert.Equal(t, 2.5, dictionary.GetFloat64[any](d, "missing", 2.5))

	assert.True(t, dictionary.GetBool[any](d, "enabled", false))
	assert.True(t, dictionary.GetBool[any](d, "missing", true))
	assert.False(t, dictionary.GetBool[any](d, "list", false))
}
