package llrb

import "bytes"
import "strings"
import "testing"

import "github.com/stretchr/testify/require"

func TestNodeSizeFlags(t *testing.T) {
	nd := newnode("key", 10)
	if x := nd.getsize(); x != 1 {
		t.Errorf("unexpected %v", x)
	} else if nd.isblack() {
		t.Errorf("expected red node")
	} else if nd.Key() != "key" || nd.Value() != 10 {
		t.Errorf("unexpected %v %v", nd.Key(), nd.Value())
	}

	nd.setblack().setsize(1 << 40)
	if x := nd.getsize(); x != 1<<40 {
		t.Errorf("unexpected %v", x)
	} else if !nd.isblack() {
		t.Errorf("expected black node")
	}
	nd.setred()
	if x := nd.getsize(); x != 1<<40 {
		t.Errorf("unexpected %v", x)
	} else if isblack(nd) {
		t.Errorf("expected red node")
	}

	var nilnd *Llrbnode[string, int]
	require.False(t, isred(nilnd))
	require.True(t, isblack(nilnd))
	require.Equal(t, int64(0), size(nilnd))
	require.Nil(t, llndornil(nilnd))
	require.NotNil(t, llndornil(nd))
}

func TestNodeRotateLeft(t *testing.T) {
	nd := newnode(2, 2).setblack()
	require.Equal(t, nd, rotateleft(nd)) // no right child

	nd.left = newnode(1, 1).setblack()
	nd.right = newnode(4, 4)
	nd.right.left = newnode(3, 3).setblack()
	nd.right.right = newnode(5, 5).setblack()
	nd.right.resize()
	nd.resize()

	root := rotateleft(nd)
	require.Equal(t, 4, root.key)
	require.True(t, root.isblack())
	require.Equal(t, int64(5), root.getsize())
	require.Equal(t, 2, root.left.key)
	require.True(t, isred(root.left))
	require.Equal(t, int64(3), root.left.getsize())
	require.Equal(t, 3, root.left.right.key)
	require.Equal(t, 5, root.right.key)
}

func TestNodeRotateRight(t *testing.T) {
	nd := newnode(4, 4)
	require.Equal(t, nd, rotateright(nd)) // no left child

	nd.left = newnode(2, 2)
	nd.left.left = newnode(1, 1)
	nd.left.right = newnode(3, 3).setblack()
	nd.left.resize()
	nd.resize()

	root := rotateright(nd)
	require.Equal(t, 2, root.key)
	require.True(t, isred(root)) // takes the color of old root
	require.Equal(t, int64(4), root.getsize())
	require.Equal(t, 4, root.right.key)
	require.True(t, isred(root.right))
	require.Equal(t, int64(2), root.right.getsize())
	require.Equal(t, 3, root.right.left.key)
	require.Equal(t, 1, root.left.key)

	var nilnd *Llrbnode[int, int]
	require.Nil(t, rotateright(nilnd))
	require.Nil(t, rotateleft(nilnd))
}

func TestNodeFlip(t *testing.T) {
	nd := newnode(2, 2).setblack()
	nd.left = newnode(1, 1)
	require.False(t, flip(nd)) // no right child
	require.True(t, nd.isblack())
	require.True(t, isred(nd.left))

	nd.right = newnode(3, 3)
	require.True(t, flip(nd))
	require.True(t, isred(nd))
	require.True(t, nd.left.isblack())
	require.True(t, nd.right.isblack())
}

func TestNodePprint(t *testing.T) {
	llrb := makeSEARCH(t)
	defer llrb.Destroy()

	buf := bytes.NewBuffer(nil)
	llrb.root.pprint(buf, "")
	out := buf.String()
	if !strings.HasPrefix(out, llrb.root.repr()) {
		t.Errorf("unexpected %v", out)
	}
	for _, key := range []string{"S", "E", "A", "R", "C", "H"} {
		require.Contains(t, out, key+" ")
	}
	require.Contains(t, llrb.root.repr(), "black size:6")
}
