package dictionary

// Callback is invoked by ForEach once per entry. The map passed as the third
// argument is the one being traversed.
type Callback[T any] func(value T, key string, m Map[T])

type Map[T any] interface {
	Get(key string) (T, bool)
	GetOr(key string, defaultValue T) T
	Set(key string, value T) T
	Has(key string) bool
	Delete(key string) bool
	Clear()
	ForEach(callback Callback[T]) error
	Keys() []string
	Values() []T
	Entries() Iterator[Entry[T]]
	Len() int
}

type Entry[T any] struct {
	Key   string
	Value T
}

// Pair is an initializer entry, see NewFromPairs.
type Pair[T any] Entry[T]

func P[T any](key string, value T) Pair[T] {
	return Pair[T]{Key: key, Value: value}
}
