package llrb

import "fmt"
import "sync/atomic"

import "github.com/bnclabs/ordtree/api"

//---- api.IndexReader interface.

// Get implement api.IndexReader interface. Return the value associated
// with key, ok is false if key is absent or nil.
func (llrb *LLRB[K, V]) Get(key K) (value V, ok bool) {
	atomic.AddInt64(&llrb.n_lookups, 1)
	if llrb.isnilkey(key) {
		return value, false
	}

	llrb.rw.RLock()
	defer llrb.rw.RUnlock()

	if nd := llrb.getkey(llrb.root, key); nd != nil {
		return nd.value, true
	}
	return value, false
}

// Has implement api.IndexReader interface. Nil key is an invalid
// argument.
func (llrb *LLRB[K, V]) Has(key K) (bool, error) {
	atomic.AddInt64(&llrb.n_lookups, 1)
	if llrb.isnilkey(key) {
		return false, api.ErrorNilKey
	}

	llrb.rw.RLock()
	defer llrb.rw.RUnlock()
	return llrb.getkey(llrb.root, key) != nil, nil
}

// Min implement api.IndexReader interface, return the smallest key.
func (llrb *LLRB[K, V]) Min() (key K, err error) {
	atomic.AddInt64(&llrb.n_lookups, 1)

	llrb.rw.RLock()
	defer llrb.rw.RUnlock()

	nd := llrb.root
	if nd == nil {
		return key, fmt.Errorf("Min(): %w", api.ErrorEmptyIndex)
	}
	for nd.left != nil {
		nd = nd.left
	}
	return nd.key, nil
}

// Max implement api.IndexReader interface, return the largest key.
func (llrb *LLRB[K, V]) Max() (key K, err error) {
	atomic.AddInt64(&llrb.n_lookups, 1)

	llrb.rw.RLock()
	defer llrb.rw.RUnlock()

	nd := llrb.root
	if nd == nil {
		return key, fmt.Errorf("Max(): %w", api.ErrorEmptyIndex)
	}
	for nd.right != nil {
		nd = nd.right
	}
	return nd.key, nil
}

// Floor implement api.IndexReader interface, return the largest key
// less than or equal to key.
func (llrb *LLRB[K, V]) Floor(key K) (floor K, ok bool) {
	atomic.AddInt64(&llrb.n_lookups, 1)
	if llrb.isnilkey(key) {
		return floor, false
	}

	llrb.rw.RLock()
	defer llrb.rw.RUnlock()

	if nd := llrb.floor(llrb.root, key); nd != nil {
		return nd.key, true
	}
	return floor, false
}

// Ceiling implement api.IndexReader interface, return the smallest key
// greater than or equal to key.
func (llrb *LLRB[K, V]) Ceiling(key K) (ceiling K, ok bool) {
	atomic.AddInt64(&llrb.n_lookups, 1)
	if llrb.isnilkey(key) {
		return ceiling, false
	}

	llrb.rw.RLock()
	defer llrb.rw.RUnlock()

	if nd := llrb.ceiling(llrb.root, key); nd != nil {
		return nd.key, true
	}
	return ceiling, false
}

// Select implement api.IndexReader interface, return the key of given
// rank, where rank 0 is the smallest key.
func (llrb *LLRB[K, V]) Select(index int64) (key K, err error) {
	atomic.AddInt64(&llrb.n_selects, 1)

	llrb.rw.RLock()
	defer llrb.rw.RUnlock()

	if n := size(llrb.root); index < 0 || index >= n {
		fmsg := "Select(%v) over %v entries: %w"
		return key, fmt.Errorf(fmsg, index, n, api.ErrorIndexRange)
	}
	return selectnode(llrb.root, index).key, nil
}

// Rank implement api.IndexReader interface, return the number of keys
// strictly less than key. Key need not be present in the tree.
func (llrb *LLRB[K, V]) Rank(key K) (int64, error) {
	atomic.AddInt64(&llrb.n_ranks, 1)
	if llrb.isnilkey(key) {
		return 0, api.ErrorNilKey
	}

	llrb.rw.RLock()
	defer llrb.rw.RUnlock()
	return llrb.rank(llrb.root, key), nil
}

// Keys implement api.IndexReader interface, return all keys in
// ascending order.
func (llrb *LLRB[K, V]) Keys() []K {
	atomic.AddInt64(&llrb.n_ranges, 1)

	llrb.rw.RLock()
	defer llrb.rw.RUnlock()

	keys := make([]K, 0, size(llrb.root))
	llrb.rangehele(llrb.root, nil, nil, func(nd api.Node[K, V]) bool {
		keys = append(keys, nd.Key())
		return true
	})
	return keys
}

// KeyRange implement api.IndexReader interface, return keys between
// low and high, both inclusive, in ascending order. When low is greater
// than high the result is empty.
func (llrb *LLRB[K, V]) KeyRange(low, high K) ([]K, error) {
	atomic.AddInt64(&llrb.n_ranges, 1)
	if llrb.isnilkey(low) || llrb.isnilkey(high) {
		return nil, api.ErrorNilKey
	}

	llrb.rw.RLock()
	defer llrb.rw.RUnlock()

	if llrb.compare(low, high) > 0 {
		return []K{}, nil
	}
	return llrb.keyrange(llrb.root, low, high, []K{}), nil
}

// Range implement api.IndexReader interface. Walk keys from lowkey to
// highkey, incl can be "both", "low", "high", "none", callback returning
// false will stop the walk.
func (llrb *LLRB[K, V]) Range(
	lowkey, highkey K, incl string, reverse bool,
	callb api.NodeCallb[K, V]) error {

	atomic.AddInt64(&llrb.n_ranges, 1)
	if skip, err := llrb.fixrangeargs(lowkey, highkey, incl); err != nil {
		return err
	} else if skip {
		return nil
	}

	llrb.rw.RLock()
	defer llrb.rw.RUnlock()
	llrb.dorange(llrb.root, &lowkey, &highkey, incl, reverse, callb)
	return nil
}

// Scan implement api.IndexReader interface. Walk the full tree, in
// ascending order or descending order if reverse is true.
func (llrb *LLRB[K, V]) Scan(reverse bool, callb api.NodeCallb[K, V]) {
	atomic.AddInt64(&llrb.n_ranges, 1)

	llrb.rw.RLock()
	defer llrb.rw.RUnlock()
	llrb.dorange(llrb.root, nil, nil, api.InclBoth, reverse, callb)
}

//---- local functions

func (llrb *LLRB[K, V]) getkey(nd *Llrbnode[K, V], key K) *Llrbnode[K, V] {
	for nd != nil {
		if cmp := llrb.compare(key, nd.key); cmp < 0 {
			nd = nd.left
		} else if cmp > 0 {
			nd = nd.right
		} else {
			return nd
		}
	}
	return nil
}

func (llrb *LLRB[K, V]) floor(nd *Llrbnode[K, V], key K) *Llrbnode[K, V] {
	if nd == nil {
		return nil
	}
	cmp := llrb.compare(key, nd.key)
	if cmp == 0 {
		return nd
	} else if cmp < 0 {
		return llrb.floor(nd.left, key)
	}
	if fnd := llrb.floor(nd.right, key); fnd != nil {
		return fnd
	}
	return nd
}

func (llrb *LLRB[K, V]) ceiling(nd *Llrbnode[K, V], key K) *Llrbnode[K, V] {
	if nd == nil {
		return nil
	}
	cmp := llrb.compare(key, nd.key)
	if cmp == 0 {
		return nd
	} else if cmp > 0 {
		return llrb.ceiling(nd.right, key)
	}
	if cnd := llrb.ceiling(nd.left, key); cnd != nil {
		return cnd
	}
	return nd
}

// REQUIRE: 0 <= index < size(nd)
func selectnode[K, V any](nd *Llrbnode[K, V], index int64) *Llrbnode[K, V] {
	for {
		lsize := size(nd.left)
		if index < lsize {
			nd = nd.left
		} else if index > lsize {
			nd, index = nd.right, index-lsize-1
		} else {
			return nd
		}
	}
}

func (llrb *LLRB[K, V]) rank(nd *Llrbnode[K, V], key K) int64 {
	var rank int64
	for nd != nil {
		if cmp := llrb.compare(key, nd.key); cmp < 0 {
			nd = nd.left
		} else if cmp > 0 {
			rank += size(nd.left) + 1
			nd = nd.right
		} else {
			return rank + size(nd.left)
		}
	}
	return rank
}

// keyrange prune subtrees that cannot hold keys within [low, high].
func (llrb *LLRB[K, V]) keyrange(
	nd *Llrbnode[K, V], low, high K, keys []K) []K {

	if nd == nil {
		return keys
	}
	cmplow, cmphigh := llrb.compare(low, nd.key), llrb.compare(high, nd.key)
	if cmplow < 0 {
		keys = llrb.keyrange(nd.left, low, high, keys)
	}
	if cmplow <= 0 && cmphigh >= 0 {
		keys = append(keys, nd.key)
	}
	if cmphigh > 0 {
		keys = llrb.keyrange(nd.right, low, high, keys)
	}
	return keys
}
