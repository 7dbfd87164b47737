// Package dictionary provides a string-keyed container that remembers the
// order in which keys were first set.
//
// Any string is a valid key. Names such as "constructor", "toString" or
// "__proto__" have no special meaning and are stored like every other key.
package dictionary

import (
	"container/list"
	"sort"
)

// Dictionary is not safe for concurrent use; see SyncDictionary. The zero
// value is an empty dictionary ready to use.
//
// A Dictionary must not be copied after first use; pass *Dictionary instead.
// Modifying a copy panics.
type Dictionary[T any] struct {
	noCopy noCopy
	addr   *Dictionary[T]

	entries map[string]*list.Element
	order   list.List
	count   int
}

// noCopy lets go vet's copylocks check report copies of a Dictionary.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type entry[T any] struct {
	key   string
	value T
}

func New[T any]() *Dictionary[T] {
	d := &Dictionary[T]{
		entries: make(map[string]*list.Element),
	}
	d.addr = d

	return d
}

// NewFrom applies every entry of init in ascending key order, since map
// iteration order is unspecified. A nil map yields an empty dictionary.
func NewFrom[T any](init map[string]T) *Dictionary[T] {
	d := New[T]()

	keys := make([]string, 0, len(init))
	for key := range init {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		d.Set(key, init[key])
	}

	return d
}

// NewFromPairs applies pairs in order. A repeated key keeps its first
// position and its last value.
func NewFromPairs[T any](pairs ...Pair[T]) *Dictionary[T] {
	d := New[T]()

	for _, p := range pairs {
		d.Set(p.Key, p.Value)
	}

	return d
}

// NewFromMap copies src in its enumeration order.
func NewFromMap[T any](src Map[T]) *Dictionary[T] {
	d := New[T]()
	d.Merge(src)
	return d
}

func (d *Dictionary[T]) Get(key string) (value T, ok bool) {
	e, ok := d.entries[key]
	if !ok {
		return
	}

	return e.Value.(*entry[T]).value, true
}

func (d *Dictionary[T]) GetOr(key string, defaultValue T) T {
	if value, ok := d.Get(key); ok {
		return value
	}

	return defaultValue
}

// Set stores value under key and returns it. Overwriting an existing key
// keeps its position.
func (d *Dictionary[T]) Set(key string, value T) T {
	d.copyCheck()

	if e, ok := d.entries[key]; ok {
		e.Value.(*entry[T]).value = value
		return value
	}

	if d.entries == nil {
		d.entries = make(map[string]*list.Element)
	}

	d.entries[key] = d.order.PushBack(&entry[T]{key: key, value: value})
	d.count++

	return value
}

func (d *Dictionary[T]) Has(key string) bool {
	_, ok := d.entries[key]
	return ok
}

func (d *Dictionary[T]) Delete(key string) bool {
	d.copyCheck()

	e, ok := d.entries[key]
	if !ok {
		return false
	}

	d.order.Remove(e)
	delete(d.entries, key)
	d.count--

	return true
}

func (d *Dictionary[T]) Clear() {
	d.copyCheck()

	d.entries = make(map[string]*list.Element)
	d.order.Init()
	d.count = 0
}

func (d *Dictionary[T]) Len() int {
	return d.count
}

// ForEach calls callback for every entry in insertion order.
//
// The traversal covers the entries present when it starts. Entries removed
// before their turn are skipped, entries added during the traversal are not
// visited, and an entry overwritten before its turn is visited with its new
// value.
func (d *Dictionary[T]) ForEach(callback Callback[T]) error {
	if callback == nil {
		return ErrInvalidCallbackType
	}

	for _, e := range d.snapshot() {
		if !d.live(e) {
			continue
		}

		ent := e.Value.(*entry[T])
		callback(ent.value, ent.key, d)
	}

	return nil
}

func (d *Dictionary[T]) Keys() []string {
	keys := make([]string, 0, d.count)

	for e := d.order.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(*entry[T]).key)
	}

	return keys
}

func (d *Dictionary[T]) Values() []T {
	values := make([]T, 0, d.count)

	for e := d.order.Front(); e != nil; e = e.Next() {
		values = append(values, e.Value.(*entry[T]).value)
	}

	return values
}

// Merge sets every entry of src, in src's order. A nil src is ignored.
func (d *Dictionary[T]) Merge(src Map[T]) {
	if src == nil {
		return
	}

	if s, ok := src.(*Dictionary[T]); ok && (s == nil || s == d) {
		return
	}

	it := src.Entries()

	for {
		ent, err := it.Next()
		if err != nil {
			return
		}

		d.Set(ent.Key, ent.Value)
	}
}

// copyCheck panics if d was copied after first use.
func (d *Dictionary[T]) copyCheck() {
	if d.addr == nil {
		d.addr = d
	} else if d.addr != d {
		panic("dictionary: illegal use of copied Dictionary")
	}
}

func (d *Dictionary[T]) snapshot() []*list.Element {
	elems := make([]*list.Element, 0, d.count)

	for e := d.order.Front(); e != nil; e = e.Next() {
		elems = append(elems, e)
	}

	return elems
}

// live reports whether e still holds the current entry for its key.
func (d *Dictionary[T]) live(e *list.Element) bool {
	cur, ok := d.entries[e.Value.(*entry[T]).key]
	return ok && cur == e
}
