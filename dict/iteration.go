package dict

import "sync/atomic"

import "github.com/bnclabs/ordtree/api"

type iterator[K, V any] struct {
	nodes      []*dictnode[K, V]
	index      int
	closed     bool
	activeiter *int64
}

// Iterate implement api.IndexReader interface. Iterator work on the
// sorted view of keys at the time of this call.
func (d *Dict[K, V]) Iterate(
	lk, hk K, incl string) (api.IndexIterator[K, V], error) {

	if d.isnilkey(lk) || d.isnilkey(hk) {
		return nil, api.ErrorNilKey
	} else if err := api.Validincl(incl); err != nil {
		return nil, err
	}

	start, end := d.span(lk, hk, incl)
	nodes := make([]*dictnode[K, V], end-start)
	copy(nodes, d.sortkeys[start:end])
	iter := &iterator[K, V]{nodes: nodes, activeiter: &d.activeiter}
	atomic.AddInt64(&d.activeiter, 1)
	return iter, nil
}

// Next implement api.IndexIterator interface.
func (iter *iterator[K, V]) Next() api.Node[K, V] {
	if iter.closed {
		panic("cannot iterate over a closed iterator")
	} else if iter.index >= len(iter.nodes) {
		return nil
	}
	nd := iter.nodes[iter.index]
	iter.index++
	return nd
}

// Close implement api.IndexIterator interface.
func (iter *iterator[K, V]) Close() {
	iter.closed, iter.nodes = true, nil
	atomic.AddInt64(iter.activeiter, -1)
}
