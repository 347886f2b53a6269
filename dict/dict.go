// Package dict implement a dictionary of key,value pairs based on golang
// map. Primarily meant as reference for testing more useful ordered
// containers, every ordered query sort the keys afresh.
package dict

import "fmt"
import "io"
import "sort"
import "sync/atomic"

import "github.com/bnclabs/ordtree/api"
import "github.com/bnclabs/golog"
import "golang.org/x/exp/constraints"

// Dict is a reference data structure, for validation purpose.
type Dict[K, V any] struct {
	activeiter int64 // 64-bit aligned
	n_updates  int64

	id       string
	dict     map[any]*dictnode[K, V]
	compare  api.Compare[K]
	keyof    func(K) any
	nillable bool
	sortkeys []*dictnode[K, V]
	dirty    bool // sortkeys is stale.
	dead     uint32
}

// NewDict create a new golang map for indexing key,value. Keys are
// ordered by compare, keyof shall return a comparable value that is
// unique for every distinct key.
func NewDict[K, V any](
	id string, compare api.Compare[K], keyof func(K) any) *Dict[K, V] {

	var zerokey K
	return &Dict[K, V]{
		id:       id,
		dict:     make(map[any]*dictnode[K, V]),
		compare:  compare,
		keyof:    keyof,
		nillable: api.Isnil(zerokey),
		sortkeys: make([]*dictnode[K, V], 0, 1024),
	}
}

// NewOrdered create a new Dict for keys with natural ordering.
func NewOrdered[K constraints.Ordered, V any](id string) *Dict[K, V] {
	keyof := func(key K) any { return key }
	return NewDict[K, V](id, api.Ordcmp[K], keyof)
}

// NewBytes create a new Dict for byte-slice keys.
func NewBytes[V any](id string) *Dict[[]byte, V] {
	keyof := func(key []byte) any { return string(key) }
	return NewDict[[]byte, V](id, api.Bytescmp, keyof)
}

//---- api.IndexMeta{} interface.

// ID implement api.IndexMeta interface.
func (d *Dict[K, V]) ID() string {
	return d.id
}

// Count implement api.IndexMeta interface.
func (d *Dict[K, V]) Count() int64 {
	return int64(len(d.dict))
}

// Isactive implement api.IndexMeta interface.
func (d *Dict[K, V]) Isactive() bool {
	return atomic.LoadUint32(&d.dead) == 0
}

// Stats implement api.IndexMeta interface.
func (d *Dict[K, V]) Stats() map[string]interface{} {
	return map[string]interface{}{
		"n_count":      d.Count(),
		"n_updates":    d.n_updates,
		"n_activeiter": atomic.LoadInt64(&d.activeiter),
	}
}

// Fullstats implement api.IndexMeta interface.
func (d *Dict[K, V]) Fullstats() map[string]interface{} {
	return d.Stats()
}

// Log implement api.IndexMeta interface.
func (d *Dict[K, V]) Log(humanize bool) {
	log.Infof("dict [%v] stats %v\n", d.id, d.Stats())
}

// Validate implement api.IndexMeta interface, keys shall be in strict
// ascending order.
func (d *Dict[K, V]) Validate() {
	sortkeys := d.sorted()
	for i := 1; i < len(sortkeys); i++ {
		prev, next := sortkeys[i-1].key, sortkeys[i].key
		if d.compare(prev, next) >= 0 {
			panic(fmt.Errorf("dict.Validate(): %v not less than %v", prev, next))
		}
	}
}

// Dotdump implement api.IndexMeta interface. Dict is a flat list of
// sorted keys.
func (d *Dict[K, V]) Dotdump(w io.Writer) {
	fmt.Fprintf(w, "digraph dict {\n")
	sortkeys := d.sorted()
	for i := 1; i < len(sortkeys); i++ {
		prev, next := sortkeys[i-1].key, sortkeys[i].key
		fmt.Fprintf(w, "  %q -> %q;\n", fmt.Sprint(prev), fmt.Sprint(next))
	}
	fmt.Fprintf(w, "}")
}

// Clone a new dict with identical content.
func (d *Dict[K, V]) Clone(id string) *Dict[K, V] {
	newd := NewDict[K, V](id, d.compare, d.keyof)
	for hk, nd := range d.dict {
		newd.dict[hk] = nd.clone()
	}
	newd.dirty = true
	return newd
}

// Destroy implement api.Index interface.
func (d *Dict[K, V]) Destroy() error {
	if atomic.LoadInt64(&d.activeiter) > 0 {
		return api.ErrorActiveIterators
	}

	atomic.StoreUint32(&d.dead, 1)
	d.dict, d.sortkeys = make(map[any]*dictnode[K, V]), nil
	return nil
}

//---- api.IndexReader{} interface.

// Get implement api.IndexReader interface.
func (d *Dict[K, V]) Get(key K) (value V, ok bool) {
	if d.isnilkey(key) {
		return value, false
	}
	if nd, ok := d.dict[d.keyof(key)]; ok {
		return nd.value, true
	}
	return value, false
}

// Has implement api.IndexReader interface.
func (d *Dict[K, V]) Has(key K) (bool, error) {
	if d.isnilkey(key) {
		return false, api.ErrorNilKey
	}
	_, ok := d.dict[d.keyof(key)]
	return ok, nil
}

// Min implement api.IndexReader interface.
func (d *Dict[K, V]) Min() (key K, err error) {
	sortkeys := d.sorted()
	if len(sortkeys) == 0 {
		return key, fmt.Errorf("Min(): %w", api.ErrorEmptyIndex)
	}
	return sortkeys[0].key, nil
}

// Max implement api.IndexReader interface.
func (d *Dict[K, V]) Max() (key K, err error) {
	sortkeys := d.sorted()
	if len(sortkeys) == 0 {
		return key, fmt.Errorf("Max(): %w", api.ErrorEmptyIndex)
	}
	return sortkeys[len(sortkeys)-1].key, nil
}

// Floor implement api.IndexReader interface.
func (d *Dict[K, V]) Floor(key K) (floor K, ok bool) {
	if d.isnilkey(key) {
		return floor, false
	}
	sortkeys := d.sorted()
	// first index greater than key
	i := sort.Search(len(sortkeys), func(i int) bool {
		return d.compare(sortkeys[i].key, key) > 0
	})
	if i == 0 {
		return floor, false
	}
	return sortkeys[i-1].key, true
}

// Ceiling implement api.IndexReader interface.
func (d *Dict[K, V]) Ceiling(key K) (ceiling K, ok bool) {
	if d.isnilkey(key) {
		return ceiling, false
	}
	sortkeys := d.sorted()
	if i := d.lowerbound(sortkeys, key); i < len(sortkeys) {
		return sortkeys[i].key, true
	}
	return ceiling, false
}

// Select implement api.IndexReader interface.
func (d *Dict[K, V]) Select(index int64) (key K, err error) {
	sortkeys := d.sorted()
	if index < 0 || index >= int64(len(sortkeys)) {
		fmsg := "Select(%v) over %v entries: %w"
		return key, fmt.Errorf(fmsg, index, len(sortkeys), api.ErrorIndexRange)
	}
	return sortkeys[index].key, nil
}

// Rank implement api.IndexReader interface.
func (d *Dict[K, V]) Rank(key K) (int64, error) {
	if d.isnilkey(key) {
		return 0, api.ErrorNilKey
	}
	return int64(d.lowerbound(d.sorted(), key)), nil
}

// Keys implement api.IndexReader interface.
func (d *Dict[K, V]) Keys() []K {
	sortkeys := d.sorted()
	keys := make([]K, 0, len(sortkeys))
	for _, nd := range sortkeys {
		keys = append(keys, nd.key)
	}
	return keys
}

// KeyRange implement api.IndexReader interface.
func (d *Dict[K, V]) KeyRange(low, high K) ([]K, error) {
	if d.isnilkey(low) || d.isnilkey(high) {
		return nil, api.ErrorNilKey
	}
	keys := []K{}
	d.rangeforward(low, high, api.InclBoth, func(nd api.Node[K, V]) bool {
		keys = append(keys, nd.Key())
		return true
	})
	return keys, nil
}

// Range implement api.IndexReader interface.
func (d *Dict[K, V]) Range(
	lk, hk K, incl string, reverse bool, callb api.NodeCallb[K, V]) error {

	if d.isnilkey(lk) || d.isnilkey(hk) {
		return api.ErrorNilKey
	} else if err := api.Validincl(incl); err != nil {
		return err
	}
	if reverse {
		d.rangebackward(lk, hk, incl, callb)
		return nil
	}
	d.rangeforward(lk, hk, incl, callb)
	return nil
}

// Scan implement api.IndexReader interface.
func (d *Dict[K, V]) Scan(reverse bool, callb api.NodeCallb[K, V]) {
	sortkeys := d.sorted()
	if reverse {
		for i := len(sortkeys) - 1; i >= 0; i-- {
			if !callb(sortkeys[i]) {
				return
			}
		}
		return
	}
	for _, nd := range sortkeys {
		if !callb(nd) {
			return
		}
	}
}

//---- api.IndexWriter{} interface.

// Put implement api.IndexWriter interface.
func (d *Dict[K, V]) Put(key K, value V) error {
	if d.isnilkey(key) {
		return api.ErrorNilKey
	}
	hashk := d.keyof(key)
	if nd, ok := d.dict[hashk]; ok {
		nd.value = value
		d.n_updates++
		return nil
	}
	d.dict[hashk] = newdictnode(key, value)
	d.dirty = true
	return nil
}

//---- local functions

func (d *Dict[K, V]) isnilkey(key K) bool {
	return d.nillable && api.Isnil(key)
}

func (d *Dict[K, V]) sorted() []*dictnode[K, V] {
	if !d.dirty {
		return d.sortkeys
	}
	d.sortkeys = d.sortkeys[:0]
	for _, nd := range d.dict {
		d.sortkeys = append(d.sortkeys, nd)
	}
	sort.Slice(d.sortkeys, func(i, j int) bool {
		return d.compare(d.sortkeys[i].key, d.sortkeys[j].key) < 0
	})
	d.dirty = false
	return d.sortkeys
}

// lowerbound return the first index whose key is not less than key.
func (d *Dict[K, V]) lowerbound(sortkeys []*dictnode[K, V], key K) int {
	return sort.Search(len(sortkeys), func(i int) bool {
		return d.compare(sortkeys[i].key, key) >= 0
	})
}

// span return [start, end) of sorted keys that fall within the range.
func (d *Dict[K, V]) span(lk, hk K, incl string) (start, end int) {
	sortkeys := d.sorted()
	lkincl, hkincl := api.Inclusion(incl)
	start = sort.Search(len(sortkeys), func(i int) bool {
		cmp := d.compare(sortkeys[i].key, lk)
		return cmp > 0 || (cmp == 0 && lkincl)
	})
	end = sort.Search(len(sortkeys), func(i int) bool {
		cmp := d.compare(sortkeys[i].key, hk)
		return cmp > 0 || (cmp == 0 && !hkincl)
	})
	if end < start {
		end = start
	}
	return start, end
}

func (d *Dict[K, V]) rangeforward(
	lk, hk K, incl string, callb api.NodeCallb[K, V]) {

	start, end := d.span(lk, hk, incl)
	for _, nd := range d.sortkeys[start:end] {
		if !callb(nd) {
			return
		}
	}
}

func (d *Dict[K, V]) rangebackward(
	lk, hk K, incl string, callb api.NodeCallb[K, V]) {

	start, end := d.span(lk, hk, incl)
	for i := end - 1; i >= start; i-- {
		if !callb(d.sortkeys[i]) {
			return
		}
	}
}
