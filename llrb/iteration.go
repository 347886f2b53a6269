package llrb

import "iter"
import "sync/atomic"

import "github.com/bnclabs/ordtree/api"

type iterator[K, V any] struct {
	llrb   *LLRB[K, V]
	cur    cursor[K, V]
	closed bool
}

// Next implement api.IndexIterator interface.
func (iter *iterator[K, V]) Next() api.Node[K, V] {
	if iter.closed {
		panic("cannot iterate over a closed iterator")
	}
	return llndornil(iter.cur.next())
}

// Close implement api.IndexIterator interface. Iterator is returned
// back to the pool and must not be used after Close.
func (iter *iterator[K, V]) Close() {
	if iter.closed {
		panic("iterator already closed")
	}
	llrb := iter.llrb
	iter.closed = true
	iter.cur.reset()
	atomic.AddInt64(&llrb.n_activeiter, -1)
	llrb.putiterator(iter)
	// reader lock is held for the lifetime of the iterator.
	llrb.rw.RUnlock()
}

// Iterate implement api.IndexReader interface. Entries are pulled in
// ascending order between lowkey and highkey, incl carry the same
// meaning as that of Range. Tree shall not be updated until the
// iterator is closed.
func (llrb *LLRB[K, V]) Iterate(
	lowkey, highkey K, incl string) (api.IndexIterator[K, V], error) {

	skip, err := llrb.fixrangeargs(lowkey, highkey, incl)
	if err != nil {
		return nil, err
	}

	llrb.rw.RLock()
	if llrb.dead {
		llrb.rw.RUnlock()
		llrb.assertalive("Iterate")
	}

	iter := llrb.getiterator()
	if !skip {
		lkincl, hkincl := api.Inclusion(incl)
		iter.cur.first(llrb.root, &lowkey, lkincl).till(highkey, hkincl)
	}

	atomic.AddInt64(&llrb.n_ranges, 1)
	atomic.AddInt64(&llrb.n_activeiter, 1)
	return iter, nil
}

// All return a range-over-func sequence of every entry in ascending
// order. Tree shall not be updated from within the loop.
func (llrb *LLRB[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		llrb.rw.RLock()
		defer llrb.rw.RUnlock()

		atomic.AddInt64(&llrb.n_ranges, 1)
		cur := (&cursor[K, V]{}).init(llrb).first(llrb.root, nil, true)
		for nd := cur.next(); nd != nil; nd = cur.next() {
			if !yield(nd.key, nd.value) {
				return
			}
		}
	}
}

// Ascend return a range-over-func sequence of entries between low and
// high, both inclusive, in ascending order. Sequence is empty if either
// of the bounds is nil.
func (llrb *LLRB[K, V]) Ascend(low, high K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if llrb.isnilkey(low) || llrb.isnilkey(high) {
			return
		}

		llrb.rw.RLock()
		defer llrb.rw.RUnlock()

		atomic.AddInt64(&llrb.n_ranges, 1)
		cur := (&cursor[K, V]{}).init(llrb)
		cur.first(llrb.root, &low, true).till(high, true)
		for nd := cur.next(); nd != nil; nd = cur.next() {
			if !yield(nd.key, nd.value) {
				return
			}
		}
	}
}

func (llrb *LLRB[K, V]) getiterator() (iter *iterator[K, V]) {
	select {
	case iter = <-llrb.iterpool:
	default:
		iter = &iterator[K, V]{}
	}
	iter.llrb, iter.closed = llrb, false
	iter.cur.init(llrb)
	return iter
}

func (llrb *LLRB[K, V]) putiterator(iter *iterator[K, V]) {
	select {
	case llrb.iterpool <- iter:
	default: // Let iter be collected by GC
	}
}
