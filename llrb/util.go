package llrb

import "fmt"
import "math"

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

// maxheight of the tree, counted in nodes from root to the deepest node.
// A left-leaning-red-black tree with n entries cannot go deeper than
// 2*log2(n+1), factor can give more breathing space.
func maxheight(entries int64, factor float64) float64 {
	return factor * math.Log2(float64(entries)+1)
}
