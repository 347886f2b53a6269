package llrb

import "fmt"
import "io"
import "strings"

import "github.com/bnclabs/ordtree/api"

const (
	ndBlack uint64 = 0x1
)

const flagbits = 4
const flagmask = (uint64(1) << flagbits) - 1

// Llrbnode defines a node in LLRB tree. A node is created red, with a
// size of 1, and is never freed while the tree is alive.
type Llrbnode[K, V any] struct {
	left      *Llrbnode[K, V]
	right     *Llrbnode[K, V]
	sizeflags uint64 // size[64:4] flags[4:0]
	key       K
	value     V
}

func newnode[K, V any](key K, value V) *Llrbnode[K, V] {
	nd := &Llrbnode[K, V]{key: key, value: value}
	return nd.setsize(1).setred()
}

// Key implement api.Node interface.
func (nd *Llrbnode[K, V]) Key() K {
	return nd.key
}

// Value implement api.Node interface.
func (nd *Llrbnode[K, V]) Value() V {
	return nd.value
}

//---- size and color

func (nd *Llrbnode[K, V]) getsize() int64 {
	return int64(nd.sizeflags >> flagbits)
}

func (nd *Llrbnode[K, V]) setsize(size int64) *Llrbnode[K, V] {
	nd.sizeflags = (nd.sizeflags & flagmask) | (uint64(size) << flagbits)
	return nd
}

// resize re-derive subtree size from children.
func (nd *Llrbnode[K, V]) resize() *Llrbnode[K, V] {
	return nd.setsize(size(nd.left) + size(nd.right) + 1)
}

func (nd *Llrbnode[K, V]) isblack() bool {
	return (nd.sizeflags & ndBlack) == ndBlack
}

func (nd *Llrbnode[K, V]) setblack() *Llrbnode[K, V] {
	nd.sizeflags |= ndBlack
	return nd
}

func (nd *Llrbnode[K, V]) setred() *Llrbnode[K, V] {
	nd.sizeflags &= ^ndBlack
	return nd
}

// setcolor copy the link color of other into nd.
func (nd *Llrbnode[K, V]) setcolor(other *Llrbnode[K, V]) *Llrbnode[K, V] {
	if other.isblack() {
		return nd.setblack()
	}
	return nd.setred()
}

//---- tree operations

func isred[K, V any](nd *Llrbnode[K, V]) bool {
	if nd == nil {
		return false
	}
	return !nd.isblack()
}

func isblack[K, V any](nd *Llrbnode[K, V]) bool {
	return !isred(nd)
}

func size[K, V any](nd *Llrbnode[K, V]) int64 {
	if nd == nil {
		return 0
	}
	return nd.getsize()
}

func llndornil[K, V any](nd *Llrbnode[K, V]) api.Node[K, V] {
	if nd == nil {
		return nil
	}
	return nd
}

// rotateleft promote nd.right in place of nd. REQUIRE: nd and nd.right
// present, else nd is returned as is.
func rotateleft[K, V any](nd *Llrbnode[K, V]) *Llrbnode[K, V] {
	if nd == nil || nd.right == nil {
		return nd
	}
	y := nd.right
	nd.right = y.left
	y.left = nd
	y.setcolor(nd).setsize(nd.getsize())
	nd.setred().resize()
	return y
}

// rotateright promote nd.left in place of nd. REQUIRE: nd and nd.left
// present, else nd is returned as is.
func rotateright[K, V any](nd *Llrbnode[K, V]) *Llrbnode[K, V] {
	if nd == nil || nd.left == nil {
		return nd
	}
	x := nd.left
	nd.left = x.right
	x.right = nd
	x.setcolor(nd).setsize(nd.getsize())
	nd.setred().resize()
	return x
}

// flip split a temporary 4-node. REQUIRE: Left and Right children must
// be present, else it is a no-op.
func flip[K, V any](nd *Llrbnode[K, V]) bool {
	if nd == nil || nd.left == nil || nd.right == nil {
		return false
	}
	nd.setred()
	nd.left.setblack()
	nd.right.setblack()
	return true
}

//---- maintenance methods.

func (nd *Llrbnode[K, V]) color() string {
	if isred(nd) {
		return "red"
	}
	return "black"
}

func (nd *Llrbnode[K, V]) repr() string {
	return fmt.Sprintf("%v %v size:%v", nd.key, nd.color(), nd.getsize())
}

func (nd *Llrbnode[K, V]) pprint(w io.Writer, prefix string) {
	if nd == nil {
		fmt.Fprintf(w, "%v\n", nil)
		return
	}
	fmt.Fprintf(w, "%v%v\n", prefix, nd.repr())
	prefix += "  "
	fmt.Fprintf(w, "%vleft: ", prefix)
	nd.left.pprint(w, prefix)
	fmt.Fprintf(w, "%vright: ", prefix)
	nd.right.pprint(w, prefix)
}

func (nd *Llrbnode[K, V]) dotdump(buffer io.Writer) {
	if nd == nil {
		return
	}

	key := fmt.Sprintf("%q", fmt.Sprintf("%v", nd.key))
	lines := []string{
		fmt.Sprintf("  %v [label=\"{%v|size:%v}\"];\n",
			key, strings.Trim(key, `"`), nd.getsize()),
	}
	fmsg := "  %v -> %v [color=%v];\n"
	if nd.left != nil {
		lkey := fmt.Sprintf("%q", fmt.Sprintf("%v", nd.left.key))
		lines = append(lines, fmt.Sprintf(fmsg, key, lkey, nd.left.color()))
	}
	if nd.right != nil {
		rkey := fmt.Sprintf("%q", fmt.Sprintf("%v", nd.right.key))
		lines = append(lines, fmt.Sprintf(fmsg, key, rkey, nd.right.color()))
	}
	buffer.Write([]byte(strings.Join(lines, "")))
	nd.left.dotdump(buffer)
	nd.right.dotdump(buffer)
}
