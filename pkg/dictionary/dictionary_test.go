package dictionary_test

import (
	"math/rand"
	"testing"

	"github.com/UTD-JLA/strdict/pkg/dictionary"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentinel struct{}

func TestDictionary(t *testing.T) {
	t.Run("Set then get", func(t *testing.T) {
		d := dictionary.New[any]()

		assert.Equal(t, 1, d.Set("foo", 1))
		assert.True(t, d.Has("foo"))
		assert.Equal(t, 1, d.GetOr("foo", sentinel{}))

		v, ok := d.Get("foo")
		assert.True(t, ok)
		assert.Equal(t, 1, v)
	})

	t.Run("Missing key", func(t *testing.T) {
		d := dictionary.New[any]()

		assert.False(t, d.Has("foo"))
		assert.Equal(t, sentinel{}, d.GetOr("foo", sentinel{}))

		v, ok := d.Get("foo")
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("Nil value is present", func(t *testing.T) {
		d := dictionary.New[any]()
		d.Set("foo", nil)

		assert.True(t, d.Has("foo"))
		assert.Nil(t, d.GetOr("foo", sentinel{}))
		assert.Equal(t, 1, d.Len())
		assert.True(t, d.Delete("foo"))
	})

	t.Run("Delete twice", func(t *testing.T) {
		d := dictionary.NewFromPairs(dictionary.P("foo", 1), dictionary.P("bar", 2))

		assert.True(t, d.Delete("foo"))
		assert.Equal(t, 1, d.Len())
		assert.False(t, d.Delete("foo"))
		assert.Equal(t, 1, d.Len())
		assert.False(t, d.Has("foo"))
	})

	t.Run("Overwrite", func(t *testing.T) {
		d := dictionary.New[string]()

		d.Set("foo", "a")
		d.Set("bar", "b")
		d.Set("foo", "c")

		assert.Equal(t, 2, d.Len())
		assert.Equal(t, "c", d.GetOr("foo", ""))

		if diff := cmp.Diff([]string{"foo", "bar"}, d.Keys()); diff != "" {
			t.Errorf("overwrite moved key (-want +got):\n%s", diff)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		d := dictionary.NewFromPairs(dictionary.P("foo", 1), dictionary.P("bar", 2))

		d.Clear()

		assert.Equal(t, 0, d.Len())
		assert.False(t, d.Has("foo"))
		assert.False(t, d.Has("bar"))
		assert.Empty(t, d.Keys())

		d.Set("baz", 3)
		assert.Equal(t, 1, d.Len())
	})

	t.Run("Zero value", func(t *testing.T) {
		var d dictionary.Dictionary[int]

		assert.False(t, d.Has("foo"))
		assert.Empty(t, d.Keys())
		d.Set("foo", 1)
		assert.Equal(t, 1, d.GetOr("foo", 0))
		assert.Equal(t, 1, d.Len())
	})

	t.Run("Modifying a copy panics", func(t *testing.T) {
		d := dictionary.NewFromPairs(dictionary.P("a", 1))
		c := *d

		assert.Panics(t, func() { c.Set("b", 2) })
		assert.Panics(t, func() { c.Delete("a") })
		assert.Panics(t, func() { c.Clear() })

		assert.Equal(t, 1, d.Len())
		assert.False(t, d.Has("b"))
		assert.Equal(t, []string{"a"}, d.Keys())
		assert.Equal(t, []int{1}, d.Values())
	})

	t.Run("Copying an unused zero value is allowed", func(t *testing.T) {
		var d dictionary.Dictionary[int]
		c := d

		c.Set("a", 1)
		d.Set("b", 2)

		assert.Equal(t, []string{"a"}, c.Keys())
		assert.Equal(t, []string{"b"}, d.Keys())
	})
}

func TestReservedNames(t *testing.T) {
	names := []string{
		"constructor",
		"hasOwnProperty",
		"toString",
		"valueOf",
		"__proto__",
		"__defineGetter__",
		"~",
		"~constructor",
		"",
	}

	d := dictionary.New[any]()

	for _, name := range names {
		assert.False(t, d.Has(name), name)
		assert.Equal(t, sentinel{}, d.GetOr(name, sentinel{}), name)
	}

	for i, name := range names {
		d.Set(name, i)
	}

	assert.Equal(t, len(names), d.Len())

	for i, name := range names {
		assert.Equal(t, i, d.GetOr(name, nil), name)
	}

	if diff := cmp.Diff(names, d.Keys()); diff != "" {
		t.Errorf("keys differ (-want +got):\n%s", diff)
	}

	for _, name := range names {
		assert.True(t, d.Delete(name), name)
	}

	assert.Equal(t, 0, d.Len())
}

func TestConstructors(t *testing.T) {
	t.Run("From map", func(t *testing.T) {
		d := dictionary.NewFrom(map[string]any{"b": 2, "a": 1})

		assert.True(t, d.Has("a"))
		assert.Equal(t, 1, d.GetOr("a", nil))
		assert.True(t, d.Has("b"))
		assert.Equal(t, 2, d.GetOr("b", nil))
		assert.Equal(t, 2, d.Len())
		assert.Equal(t, []string{"a", "b"}, d.Keys())
	})

	t.Run("From nil map", func(t *testing.T) {
		d := dictionary.NewFrom[int](nil)

		assert.Equal(t, 0, d.Len())
	})

	t.Run("From pairs keeps argument order", func(t *testing.T) {
		d := dictionary.NewFromPairs(
			dictionary.P("z", 1),
			dictionary.P("y", 2),
			dictionary.P("z", 3),
		)

		assert.Equal(t, 2, d.Len())
		assert.Equal(t, []string{"z", "y"}, d.Keys())
		assert.Equal(t, []int{3, 2}, d.Values())
	})

	t.Run("From another map", func(t *testing.T) {
		src := dictionary.NewFromPairs(dictionary.P("x", 1), dictionary.P("y", 2))
		d := dictionary.NewFromMap[int](src)

		src.Set("w", 0)

		assert.Equal(t, []string{"x", "y"}, d.Keys())
		assert.Equal(t, 2, d.Len())
	})

	t.Run("From nil source", func(t *testing.T) {
		var src *dictionary.Dictionary[int]

		assert.Equal(t, 0, dictionary.NewFromMap[int](nil).Len())
		assert.Equal(t, 0, dictionary.NewFromMap[int](src).Len())
	})
}

func TestMerge(t *testing.T) {
	d := dictionary.NewFromPairs(dictionary.P("a", 1), dictionary.P("b", 2))
	other := dictionary.NewFromPairs(dictionary.P("b", 20), dictionary.P("c", 30))

	d.Merge(other)

	assert.Equal(t, []string{"a", "b", "c"}, d.Keys())
	assert.Equal(t, []int{1, 20, 30}, d.Values())

	d.Merge(d)
	assert.Equal(t, 3, d.Len())
}

func TestForEach(t *testing.T) {
	t.Run("Visits every entry in order", func(t *testing.T) {
		d := dictionary.NewFromPairs[any](dictionary.P[any]("x", 1), dictionary.P[any]("y", 2))

		var visited []dictionary.Entry[any]

		err := d.ForEach(func(value any, key string, m dictionary.Map[any]) {
			assert.Same(t, d, m)
			visited = append(visited, dictionary.Entry[any]{Key: key, Value: value})
		})

		require.NoError(t, err)
		assert.Len(t, visited, d.Len())
		assert.Equal(t, []dictionary.Entry[any]{{Key: "x", Value: 1}, {Key: "y", Value: 2}}, visited)
	})

	t.Run("Nil callback", func(t *testing.T) {
		d := dictionary.NewFromPairs(dictionary.P("x", 1))

		err := d.ForEach(nil)

		assert.ErrorIs(t, err, dictionary.ErrInvalidCallbackType)
	})

	t.Run("Reinserted key moves to end", func(t *testing.T) {
		d := dictionary.NewFromPairs(dictionary.P("a", 1), dictionary.P("b", 2), dictionary.P("c", 3))

		d.Delete("a")
		d.Set("a", 4)

		assert.Equal(t, []string{"b", "c", "a"}, d.Keys())
	})

	t.Run("Mutation during traversal", func(t *testing.T) {
		d := dictionary.NewFromPairs(
			dictionary.P("a", 1),
			dictionary.P("b", 2),
			dictionary.P("c", 3),
			dictionary.P("d", 4),
		)

		var keys []string

		err := d.ForEach(func(value int, key string, m dictionary.Map[int]) {
			keys = append(keys, key)

			if key == "a" {
				m.Delete("b")
				m.Set("c", 30)
				m.Set("e", 5)
			}
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c", "d"}, keys)
		assert.Equal(t, 4, d.Len())
		assert.Equal(t, []string{"a", "c", "d", "e"}, d.Keys())
	})

	t.Run("Clear during traversal", func(t *testing.T) {
		d := dictionary.NewFromPairs(dictionary.P("a", 1), dictionary.P("b", 2))

		calls := 0

		err := d.ForEach(func(value int, key string, m dictionary.Map[int]) {
			calls++
			m.Clear()
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 0, d.Len())
	})
}

func TestEntries(t *testing.T) {
	d := dictionary.NewFromPairs(dictionary.P("a", 1), dictionary.P("b", 2), dictionary.P("c", 3))
	it := d.Entries()

	first, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, dictionary.Entry[int]{Key: "a", Value: 1}, first)

	d.Delete("b")

	second, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, dictionary.Entry[int]{Key: "c", Value: 3}, second)

	_, err = it.Next()
	assert.ErrorIs(t, err, dictionary.ErrFinished)
}

// Drives random operation sequences against a plain map and checks that Len
// always matches the number of present keys.
func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	keys := []string{"a", "b", "c", "constructor", "toString", "__proto__", "", "d"}

	for run := 0; run < 50; run++ {
		d := dictionary.New[int]()
		model := make(map[string]int)

		for step := 0; step < 200; step++ {
			key := keys[r.Intn(len(keys))]

			switch op := r.Intn(10); {
			case op < 6:
				d.Set(key, step)
				model[key] = step
			case op < 9:
				_, had := model[key]
				assert.Equal(t, had, d.Delete(key))
				delete(model, key)
			default:
				d.Clear()
				model = make(map[string]int)
			}

			require.Equal(t, len(model), d.Len(), "run %d step %d", run, step)

			for _, k := range keys {
				want, had := model[k]
				got, ok := d.Get(k)
				require.Equal(t, had, ok, "run %d step %d key %q", run, step, k)
				require.Equal(t, want, got)
			}
		}
	}
}
