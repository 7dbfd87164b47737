package dictionary

import (
	"container/list"
	"io"
)

var ErrFinished = io.EOF

type Iterator[T any] interface {
	Next() (T, error)
}

type entryIterator[T any] struct {
	d     *Dictionary[T]
	elems []*list.Element
	pos   int
}

// Entries returns an iterator over the entries present now, in insertion
// order. It follows the same rules as ForEach for entries changed while
// iterating.
func (d *Dictionary[T]) Entries() Iterator[Entry[T]] {
	return &entryIterator[T]{
		d:     d,
		elems: d.snapshot(),
	}
}

func (it *entryIterator[T]) Next() (ent Entry[T], err error) {
	for it.pos < len(it.elems) {
		e := it.elems[it.pos]
		it.pos++

		if !it.d.live(e) {
			continue
		}

		cur := e.Value.(*entry[T])
		return Entry[T]{Key: cur.key, Value: cur.value}, nil
	}

	err = ErrFinished
	return
}

type sliceIterator[T any] struct {
	entries []Entry[T]
	pos     int
}

func (it *sliceIterator[T]) Next() (ent Entry[T], err error) {
	if it.pos >= len(it.entries) {
		err = ErrFinished
		return
	}

	ent = it.entries[it.pos]
	it.pos++

	return
}
