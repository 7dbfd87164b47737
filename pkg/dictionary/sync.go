package dictionary

import "sync"

type SyncDictionary[T any] struct {
	inner *Dictionary[T]
	mutex sync.RWMutex
}

func NewSync[T any]() *SyncDictionary[T] {
	return &SyncDictionary[T]{
		inner: New[T](),
	}
}

// Does not copy the dictionary, so the caller must not use d directly
// afterwards.
func NewSyncFrom[T any](d *Dictionary[T]) *SyncDictionary[T] {
	if d == nil {
		d = New[T]()
	}

	return &SyncDictionary[T]{
		inner: d,
	}
}

func (m *SyncDictionary[T]) Get(key string) (T, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.inner.Get(key)
}

func (m *SyncDictionary[T]) GetOr(key string, defaultValue T) T {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.inner.GetOr(key, defaultValue)
}

func (m *SyncDictionary[T]) Set(key string, value T) T {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.inner.Set(key, value)
}

func (m *SyncDictionary[T]) Has(key string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.inner.Has(key)
}

func (m *SyncDictionary[T]) Delete(key string) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.inner.Delete(key)
}

func (m *SyncDictionary[T]) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.inner.Clear()
}

// ForEach copies the entries under the read lock and runs callback after
// releasing it, so callback may modify m.
func (m *SyncDictionary[T]) ForEach(callback Callback[T]) error {
	if callback == nil {
		return ErrInvalidCallbackType
	}

	for _, ent := range m.copyEntries() {
		callback(ent.Value, ent.Key, m)
	}

	return nil
}

func (m *SyncDictionary[T]) Keys() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.inner.Keys()
}

func (m *SyncDictionary[T]) Values() []T {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.inner.Values()
}

func (m *SyncDictionary[T]) Entries() Iterator[Entry[T]] {
	return &sliceIterator[T]{entries: m.copyEntries()}
}

func (m *SyncDictionary[T]) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.inner.Len()
}

func (m *SyncDictionary[T]) copyEntries() []Entry[T] {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	entries := make([]Entry[T], 0, m.inner.Len())
	it := m.inner.Entries()

	for {
		ent, err := it.Next()
		if err != nil {
			break
		}

		entries = append(entries, ent)
	}

	return entries
}
