package llrb

import "fmt"
import "io"
import "strings"
import "sync"
import "sync/atomic"
import "time"
import "unsafe"

import "github.com/bnclabs/ordtree/api"
import "github.com/bnclabs/ordtree/lib"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"
import "golang.org/x/exp/constraints"

// LLRB manage a single instance of in-memory ordered symbol table using
// left-leaning-red-black tree. Readers can run concurrently, writers are
// serialized with respect to readers and other writers.
type LLRB[K, V any] struct { // tree container
	// all are 64-bit aligned
	llrbstats
	h_upsertdepth *lib.HistogramInt64

	// can be unaligned fields

	name      string
	root      *Llrbnode[K, V]
	compare   api.Compare[K]
	nillable  bool      // whether K admits a nil value.
	keycopy   func(K) K // nil, if keys are stored as is.
	nodesize  int64
	borntime  time.Time
	dead      bool
	rw        sync.RWMutex
	iterpool  chan *iterator[K, V]
	logprefix string

	// settings
	iterpoolsize int64   // iterpool.size
	memcapacity  int64   // memcapacity
	maxcount     int64   // derived from memcapacity, ZERO is unbounded.
	heightfactor float64 // validate.heightfactor
	setts        s.Settings
}

type llrbstats struct { // all fields are 64-bit aligned
	n_count       int64
	n_inserts     int64
	n_updates     int64
	n_lookups     int64
	n_ranges      int64
	n_selects     int64
	n_ranks       int64
	n_activeiter  int64
	n_clones      int64
	n_oomrejects  int64
	n_rotatelefts int64
	n_rotrights   int64
	n_flips       int64
}

// NewLLRB a new instance of in-memory ordered symbol table, keys are
// ordered using compare.
func NewLLRB[K, V any](
	name string, compare api.Compare[K], setts s.Settings) *LLRB[K, V] {

	if compare == nil {
		panicerr("NewLLRB(%q): compare function is nil", name)
	}

	var zerokey K
	llrb := &LLRB[K, V]{name: name, compare: compare, borntime: time.Now()}
	llrb.logprefix = fmt.Sprintf("LLRB [%s]", name)
	llrb.nillable = api.Isnil(zerokey)
	llrb.nodesize = int64(unsafe.Sizeof(Llrbnode[K, V]{}))

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	llrb.readsettings(setts)
	llrb.iterpool = make(chan *iterator[K, V], llrb.iterpoolsize)
	llrb.setts = setts

	// statistics
	llrb.h_upsertdepth = lib.NewhistogramInt64(1, 128, 1)

	fmsg := "started with memcapacity %v (%v nodes of %v)\n"
	capacity, maxcount := "unlimited", "unlimited"
	if llrb.maxcount > 0 {
		capacity = humanize.Bytes(uint64(llrb.memcapacity))
		maxcount = humanize.Comma(llrb.maxcount)
	}
	llrb.infof(fmsg, capacity, maxcount, humanize.Bytes(uint64(llrb.nodesize)))
	return llrb
}

// NewOrdered a new instance of LLRB for keys that support natural
// ordering, like integers, floats and strings.
func NewOrdered[K constraints.Ordered, V any](
	name string, setts s.Settings) *LLRB[K, V] {

	return NewLLRB[K, V](name, api.Ordcmp[K], setts)
}

// NewBytes a new instance of LLRB for byte-slice keys, ordered
// lexicographically. A nil slice is treated as nil key. Keys are copied
// on insert, callers can reuse their buffers after Put.
func NewBytes[V any](name string, setts s.Settings) *LLRB[[]byte, V] {
	llrb := NewLLRB[[]byte, V](name, api.Bytescmp, setts)
	llrb.keycopy = func(key []byte) []byte {
		newkey := make([]byte, len(key))
		copy(newkey, key)
		return newkey
	}
	return llrb
}

func (llrb *LLRB[K, V]) isnilkey(key K) bool {
	return llrb.nillable && api.Isnil(key)
}

// Dotdump to convert whole tree into dot script that can be visualized
// using graphviz.
func (llrb *LLRB[K, V]) Dotdump(buffer io.Writer) {
	lines := []string{
		"digraph llrb {",
		"  node[shape=record];\n",
		"}",
	}

	llrb.rw.RLock()
	defer llrb.rw.RUnlock()

	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	llrb.root.dotdump(buffer)
	buffer.Write([]byte(lines[len(lines)-1]))
}

// ---- api.IndexMeta{} interface

// ID implement api.IndexMeta interface.
func (llrb *LLRB[K, V]) ID() string {
	return llrb.name
}

// Count implement api.IndexMeta interface, number of distinct keys
// in the tree.
func (llrb *LLRB[K, V]) Count() int64 {
	return atomic.LoadInt64(&llrb.n_count)
}

// Isactive implement api.IndexMeta interface.
func (llrb *LLRB[K, V]) Isactive() bool {
	return llrb.dead == false
}

// Stats implement api.IndexMeta interface.
func (llrb *LLRB[K, V]) Stats() map[string]interface{} {
	llrb.rw.RLock()
	defer llrb.rw.RUnlock()
	return llrb.stats()
}

// Fullstats implement api.IndexMeta interface. Walk the entire tree
// to gather the height histogram and black height.
func (llrb *LLRB[K, V]) Fullstats() map[string]interface{} {
	llrb.rw.RLock()
	defer llrb.rw.RUnlock()
	return llrb.fullstats()
}

// Validate implement api.IndexMeta interface. Will walk the full tree
// to confirm the sort order, the red-black properties and the subtree
// sizes, panics on failure.
func (llrb *LLRB[K, V]) Validate() {
	llrb.rw.RLock()
	defer llrb.rw.RUnlock()
	llrb.validate(llrb.root)
}

// Log implement api.IndexMeta interface.
func (llrb *LLRB[K, V]) Log(humanize bool) {
	llrb.rw.RLock()
	defer llrb.rw.RUnlock()
	llrb.log(humanize)
}

// ---- api.Index interface

// Clone a new instance of LLRB with identical content, the clone
// shares no node with this tree.
func (llrb *LLRB[K, V]) Clone(name string) (*LLRB[K, V], error) {
	if n_activeiter := atomic.LoadInt64(&llrb.n_activeiter); n_activeiter > 0 {
		llrb.errorf("Clone(): unexpected active-iterators %v\n", n_activeiter)
		return nil, api.ErrorActiveIterators
	}

	llrb.rw.Lock()
	defer llrb.rw.Unlock()

	llrb.assertalive("Clone")

	newllrb := NewLLRB[K, V](name, llrb.compare, llrb.setts)
	newllrb.keycopy = llrb.keycopy
	newllrb.root = clonetree(llrb.root)
	newllrb.n_count, newllrb.n_inserts = llrb.n_count, llrb.n_count
	newllrb.h_upsertdepth = llrb.h_upsertdepth.Clone()
	llrb.n_clones++
	llrb.verbosef("cloned %v entries into %q\n", llrb.n_count, name)
	return newllrb, nil
}

// Destroy implement api.Index interface. Tree cannot be used after
// this call.
func (llrb *LLRB[K, V]) Destroy() error {
	if n_activeiter := atomic.LoadInt64(&llrb.n_activeiter); n_activeiter > 0 {
		llrb.warnf("Destroy(): n_activeiter: %v\n", n_activeiter)
		return api.ErrorActiveIterators
	}

	llrb.rw.Lock()
	defer llrb.rw.Unlock()

	if llrb.dead == false {
		llrb.root, llrb.setts = nil, nil
		atomic.StoreInt64(&llrb.n_count, 0)
		llrb.dead = true
		llrb.infof("destroyed\n")
		return nil
	}
	panic("Destroy(): already dead tree")
}

func (llrb *LLRB[K, V]) assertalive(op string) {
	if llrb.dead {
		panicerr("%v(): tree %q is destroyed", op, llrb.name)
	}
}

//---- api.IndexWriter interface

// Put implement api.IndexWriter interface. Associate value with key,
// overwriting the previous value if key is already present. A nil key
// is rejected with api.ErrorNilKey and the tree is left untouched.
func (llrb *LLRB[K, V]) Put(key K, value V) error {
	if llrb.isnilkey(key) {
		return api.ErrorNilKey
	}

	llrb.rw.Lock()
	defer llrb.rw.Unlock()

	llrb.assertalive("Put")

	if llrb.maxcount > 0 && llrb.n_count >= llrb.maxcount {
		if nd := llrb.getkey(llrb.root, key); nd == nil {
			llrb.n_oomrejects++
			fmsg := "Put(): exceeding capacity of %v entries\n"
			llrb.warnf(fmsg, humanize.Comma(llrb.maxcount))
			return api.ErrorOutofMemory
		}
	}

	root, updated := llrb.upsert(llrb.root, 1 /*depth*/, key, value)
	llrb.root = root.setblack()
	llrb.upsertcounts(updated)
	return nil
}

// returns root, and whether key was already present.
func (llrb *LLRB[K, V]) upsert(
	nd *Llrbnode[K, V], depth int64,
	key K, value V) (*Llrbnode[K, V], bool) {

	var updated bool

	if nd == nil {
		llrb.h_upsertdepth.Add(depth)
		if llrb.keycopy != nil {
			key = llrb.keycopy(key)
		}
		return newnode(key, value), false
	}

	if cmp := llrb.compare(key, nd.key); cmp < 0 {
		nd.left, updated = llrb.upsert(nd.left, depth+1, key, value)
	} else if cmp > 0 {
		nd.right, updated = llrb.upsert(nd.right, depth+1, key, value)
	} else {
		nd.value, updated = value, true
		llrb.h_upsertdepth.Add(depth)
	}

	return llrb.walkuprot23(nd), updated
}

// restore left-leaning-red-black properties on the way up, checks are
// applied in the same order for every node.
func (llrb *LLRB[K, V]) walkuprot23(nd *Llrbnode[K, V]) *Llrbnode[K, V] {
	if isred(nd.right) && !isred(nd.left) {
		nd = rotateleft(nd)
		llrb.n_rotatelefts++
	}
	if isred(nd.left) && isred(nd.left.left) {
		nd = rotateright(nd)
		llrb.n_rotrights++
	}
	if isred(nd.left) && isred(nd.right) {
		flip(nd)
		llrb.n_flips++
	}
	return nd.resize()
}

func (llrb *LLRB[K, V]) upsertcounts(updated bool) {
	if updated {
		llrb.n_updates++
		return
	}
	atomic.AddInt64(&llrb.n_count, 1)
	llrb.n_inserts++
}

func clonetree[K, V any](nd *Llrbnode[K, V]) *Llrbnode[K, V] {
	if nd == nil {
		return nil
	}
	newnd := &Llrbnode[K, V]{
		sizeflags: nd.sizeflags, key: nd.key, value: nd.value,
	}
	newnd.left = clonetree(nd.left)
	newnd.right = clonetree(nd.right)
	return newnd
}
