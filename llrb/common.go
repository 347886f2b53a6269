package llrb

import "fmt"

import "github.com/bnclabs/ordtree/api"
import "github.com/bnclabs/ordtree/lib"

// Range helpers take bounds by reference, nil bound is unbounded on
// that side. Returning false will stop the walk.

// low <= (keys) <= high
func (llrb *LLRB[K, V]) rangehele(
	nd *Llrbnode[K, V], lk, hk *K, callb api.NodeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if hk != nil && llrb.compare(nd.key, *hk) > 0 {
		return llrb.rangehele(nd.left, lk, hk, callb)
	}
	if lk != nil && llrb.compare(nd.key, *lk) < 0 {
		return llrb.rangehele(nd.right, lk, hk, callb)
	}
	if !llrb.rangehele(nd.left, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd) {
		return false
	}
	return llrb.rangehele(nd.right, lk, hk, callb)
}

// low <= (keys) < hk
func (llrb *LLRB[K, V]) rangehelt(
	nd *Llrbnode[K, V], lk, hk *K, callb api.NodeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if hk != nil && llrb.compare(nd.key, *hk) >= 0 {
		return llrb.rangehelt(nd.left, lk, hk, callb)
	}
	if lk != nil && llrb.compare(nd.key, *lk) < 0 {
		return llrb.rangehelt(nd.right, lk, hk, callb)
	}
	if !llrb.rangehelt(nd.left, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd) {
		return false
	}
	return llrb.rangehelt(nd.right, lk, hk, callb)
}

// low < (keys) <= hk
func (llrb *LLRB[K, V]) rangehtle(
	nd *Llrbnode[K, V], lk, hk *K, callb api.NodeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if hk != nil && llrb.compare(nd.key, *hk) > 0 {
		return llrb.rangehtle(nd.left, lk, hk, callb)
	}
	if lk != nil && llrb.compare(nd.key, *lk) <= 0 {
		return llrb.rangehtle(nd.right, lk, hk, callb)
	}
	if !llrb.rangehtle(nd.left, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd) {
		return false
	}
	return llrb.rangehtle(nd.right, lk, hk, callb)
}

// low < (keys) < hk
func (llrb *LLRB[K, V]) rangehtlt(
	nd *Llrbnode[K, V], lk, hk *K, callb api.NodeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if hk != nil && llrb.compare(nd.key, *hk) >= 0 {
		return llrb.rangehtlt(nd.left, lk, hk, callb)
	}
	if lk != nil && llrb.compare(nd.key, *lk) <= 0 {
		return llrb.rangehtlt(nd.right, lk, hk, callb)
	}
	if !llrb.rangehtlt(nd.left, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd) {
		return false
	}
	return llrb.rangehtlt(nd.right, lk, hk, callb)
}

// high >= (keys) >= low
func (llrb *LLRB[K, V]) rvrslehe(
	nd *Llrbnode[K, V], lk, hk *K, callb api.NodeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if lk != nil && llrb.compare(nd.key, *lk) < 0 {
		return llrb.rvrslehe(nd.right, lk, hk, callb)
	}
	if hk != nil && llrb.compare(nd.key, *hk) > 0 {
		return llrb.rvrslehe(nd.left, lk, hk, callb)
	}
	if !llrb.rvrslehe(nd.right, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd) {
		return false
	}
	return llrb.rvrslehe(nd.left, lk, hk, callb)
}

// high >= (keys) > low
func (llrb *LLRB[K, V]) rvrsleht(
	nd *Llrbnode[K, V], lk, hk *K, callb api.NodeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if lk != nil && llrb.compare(nd.key, *lk) <= 0 {
		return llrb.rvrsleht(nd.right, lk, hk, callb)
	}
	if hk != nil && llrb.compare(nd.key, *hk) > 0 {
		return llrb.rvrsleht(nd.left, lk, hk, callb)
	}
	if !llrb.rvrsleht(nd.right, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd) {
		return false
	}
	return llrb.rvrsleht(nd.left, lk, hk, callb)
}

// high > (keys) >= low
func (llrb *LLRB[K, V]) rvrslthe(
	nd *Llrbnode[K, V], lk, hk *K, callb api.NodeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if lk != nil && llrb.compare(nd.key, *lk) < 0 {
		return llrb.rvrslthe(nd.right, lk, hk, callb)
	}
	if hk != nil && llrb.compare(nd.key, *hk) >= 0 {
		return llrb.rvrslthe(nd.left, lk, hk, callb)
	}
	if !llrb.rvrslthe(nd.right, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd) {
		return false
	}
	return llrb.rvrslthe(nd.left, lk, hk, callb)
}

// high > (keys) > low
func (llrb *LLRB[K, V]) rvrsltht(
	nd *Llrbnode[K, V], lk, hk *K, callb api.NodeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if lk != nil && llrb.compare(nd.key, *lk) <= 0 {
		return llrb.rvrsltht(nd.right, lk, hk, callb)
	}
	if hk != nil && llrb.compare(nd.key, *hk) >= 0 {
		return llrb.rvrsltht(nd.left, lk, hk, callb)
	}
	if !llrb.rvrsltht(nd.right, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd) {
		return false
	}
	return llrb.rvrsltht(nd.left, lk, hk, callb)
}

func (llrb *LLRB[K, V]) dorange(
	nd *Llrbnode[K, V], lk, hk *K, incl string, reverse bool,
	callb api.NodeCallb[K, V]) {

	switch incl {
	case api.InclBoth:
		if reverse {
			llrb.rvrslehe(nd, lk, hk, callb)
		} else {
			llrb.rangehele(nd, lk, hk, callb)
		}
	case api.InclLow:
		if reverse {
			llrb.rvrslthe(nd, lk, hk, callb)
		} else {
			llrb.rangehelt(nd, lk, hk, callb)
		}
	case api.InclHigh:
		if reverse {
			llrb.rvrsleht(nd, lk, hk, callb)
		} else {
			llrb.rangehtle(nd, lk, hk, callb)
		}
	case api.InclNone:
		if reverse {
			llrb.rvrsltht(nd, lk, hk, callb)
		} else {
			llrb.rangehtlt(nd, lk, hk, callb)
		}
	}
}

// fixrangeargs validate range arguments, skip is true when the range
// is empty for certain.
func (llrb *LLRB[K, V]) fixrangeargs(
	lk, hk K, incl string) (skip bool, err error) {

	if llrb.isnilkey(lk) || llrb.isnilkey(hk) {
		return true, api.ErrorNilKey
	} else if err := api.Validincl(incl); err != nil {
		return true, err
	}
	cmp := llrb.compare(lk, hk)
	if cmp > 0 {
		return true, nil
	} else if cmp == 0 && incl != api.InclBoth {
		return true, nil
	}
	return false, nil
}

func (llrb *LLRB[K, V]) heightStats(
	nd *Llrbnode[K, V], depth int64, h *lib.HistogramInt64) {

	if nd == nil {
		return
	}
	h.Add(depth)
	llrb.heightStats(nd.left, depth+1, h)
	llrb.heightStats(nd.right, depth+1, h)
}

func (llrb *LLRB[K, V]) countblacks(nd *Llrbnode[K, V], count int) int {
	if nd != nil {
		if !isred(nd) {
			count++
		}
		x := llrb.countblacks(nd.left, count)
		y := llrb.countblacks(nd.right, count)
		if x != y {
			fmsg := "countblacks(): no. of blacks {left,right} : {%v,%v}"
			panic(fmt.Errorf(fmsg, x, y))
		}
		return x
	}
	return count
}
