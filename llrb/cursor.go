package llrb

// cursor maintain an explicit stack of ancestors whose key is yet to be
// visited, the stack top is the next node in sort order.
type cursor[K, V any] struct {
	llrb   *LLRB[K, V]
	stack  []*Llrbnode[K, V]
	hk     K
	bound  bool // hk is valid.
	hkincl bool
}

func (cur *cursor[K, V]) init(llrb *LLRB[K, V]) *cursor[K, V] {
	cur.llrb, cur.stack, cur.bound = llrb, cur.stack[:0], false
	return cur
}

// first position the cursor on the smallest key that is not below lk,
// excluding lk itself unless lkincl. A nil lk starts from the minimum.
func (cur *cursor[K, V]) first(
	root *Llrbnode[K, V], lk *K, lkincl bool) *cursor[K, V] {

	for nd := root; nd != nil; {
		if lk != nil {
			cmp := cur.llrb.compare(nd.key, *lk)
			if cmp < 0 || (cmp == 0 && !lkincl) {
				nd = nd.right
				continue
			}
		}
		cur.stack = append(cur.stack, nd)
		nd = nd.left
	}
	return cur
}

// till stop the cursor after hk, hk itself is visited only if hkincl.
func (cur *cursor[K, V]) till(hk K, hkincl bool) *cursor[K, V] {
	cur.hk, cur.bound, cur.hkincl = hk, true, hkincl
	return cur
}

// next return the node under the cursor and advance it, return nil once
// the cursor is exhausted.
func (cur *cursor[K, V]) next() *Llrbnode[K, V] {
	if len(cur.stack) == 0 {
		return nil
	}
	nd := cur.popout()
	if cur.bound {
		cmp := cur.llrb.compare(nd.key, cur.hk)
		if cmp > 0 || (cmp == 0 && !cur.hkincl) {
			cur.stack = cur.stack[:0]
			return nil
		}
	}
	cur.leftmost(nd.right)
	return nd
}

func (cur *cursor[K, V]) popout() *Llrbnode[K, V] {
	n := len(cur.stack) - 1
	nd := cur.stack[n]
	cur.stack[n] = nil
	cur.stack = cur.stack[:n]
	return nd
}

func (cur *cursor[K, V]) leftmost(nd *Llrbnode[K, V]) {
	for ; nd != nil; nd = nd.left {
		cur.stack = append(cur.stack, nd)
	}
}

func (cur *cursor[K, V]) reset() {
	for i := range cur.stack {
		cur.stack[i] = nil
	}
	cur.stack, cur.bound = cur.stack[:0], false
	var zerokey K
	cur.hk = zerokey
}
