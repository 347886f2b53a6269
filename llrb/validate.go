package llrb

import "errors"
import "fmt"

import "github.com/bnclabs/ordtree/lib"

// LLRB rule, from sedgewick's paper.
var redafterred = errors.New("consecutive red spotted")

// LLRB rule, red links lean left.
var redrightlink = errors.New("right leaning red link spotted")

// LLRB rule, from sedgewick's paper.
func unbalancedblacks(lblacks, rblacks int64) error {
	return fmt.Errorf("unbalancedblacks {%v,%v}", lblacks, rblacks)
}

func (llrb *LLRB[K, V]) validate(root *Llrbnode[K, V]) {
	if isred(root) {
		panic(fmt.Errorf("validate(): root %v is red", root.key))
	}

	h := lib.NewhistogramInt64(1, 256, 1)
	_, count := llrb.validatetree(root, nil, nil, false, 0 /*blck*/, 1 /*dep*/, h)
	if n := llrb.Count(); count != n {
		fmsg := "validate(): count:%v != actual:%v"
		panic(fmt.Errorf(fmsg, n, count))
	}

	// `h_height`.max should not exceed certain limit
	if h.Samples() > 0 {
		entries := llrb.Count()
		if limit := maxheight(entries, llrb.heightfactor); float64(h.Max()) > limit {
			fmsg := "validate(): max height %v exceeds %.2f for %v entries"
			panic(fmt.Errorf(fmsg, h.Max(), limit, entries))
		}
	}

	llrb.validatestats()
	llrb.debugf("validated %v entries, max height %v\n", count, h.Max())
}

// lk and hk are the exclusive bounds inherited from ancestors.
func (llrb *LLRB[K, V]) validatetree(
	nd *Llrbnode[K, V], lk, hk *K, fromred bool, blacks, depth int64,
	h *lib.HistogramInt64) (nblacks, count int64) {

	if nd == nil {
		return blacks, 0
	}

	h.Add(depth)
	if fromred && isred(nd) {
		panic(redafterred)
	} else if isred(nd.right) {
		panic(redrightlink)
	}
	if !isred(nd) {
		blacks++
	}

	if lk != nil && llrb.compare(nd.key, *lk) <= 0 {
		fmsg := "validate(): sort order, node %v is <= ancestor %v"
		panic(fmt.Errorf(fmsg, nd.key, *lk))
	} else if hk != nil && llrb.compare(nd.key, *hk) >= 0 {
		fmsg := "validate(): sort order, node %v is >= ancestor %v"
		panic(fmt.Errorf(fmsg, nd.key, *hk))
	}

	key := nd.key
	lblacks, lcount := llrb.validatetree(
		nd.left, lk, &key, isred(nd), blacks, depth+1, h)
	rblacks, rcount := llrb.validatetree(
		nd.right, &key, hk, isred(nd), blacks, depth+1, h)

	if lblacks != rblacks {
		panic(unbalancedblacks(lblacks, rblacks))
	}

	count = lcount + rcount + 1
	if x := nd.getsize(); x != count {
		fmsg := "validate(): node %v size:%v != actual:%v"
		panic(fmt.Errorf(fmsg, nd.key, x, count))
	}
	return lblacks, count
}
