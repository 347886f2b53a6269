package dict

import "bytes"
import "errors"
import "reflect"
import "strings"
import "testing"

import "github.com/bnclabs/ordtree/api"
import "github.com/bnclabs/golog"
import "github.com/stretchr/testify/require"

var _ api.Index[string, int] = &Dict[string, int]{}

func init() {
	setts := map[string]interface{}{
		"log.level":      "ignore",
		"log.colorfatal": "red",
		"log.colorerror": "hired",
		"log.colorwarn":  "yellow",
	}
	log.SetLogger(nil, setts)
}

func TestDict(t *testing.T) {
	d := NewOrdered[string, int]("dict")
	if d.Count() != 0 {
		t.Fatalf("expected an empty dict")
	} else if d.ID() != "dict" {
		t.Errorf("unexpected %v", d.ID())
	} else if !d.Isactive() {
		t.Errorf("expected active dict")
	}
	if _, err := d.Min(); !errors.Is(err, api.ErrorEmptyIndex) {
		t.Errorf("unexpected %v", err)
	} else if _, err := d.Max(); !errors.Is(err, api.ErrorEmptyIndex) {
		t.Errorf("unexpected %v", err)
	}

	for i, key := range []string{"S", "E", "A", "R", "C", "H"} {
		require.NoError(t, d.Put(key, i))
	}
	d.Validate()
	require.Equal(t, int64(6), d.Count())

	if x, err := d.Min(); err != nil || x != "A" {
		t.Errorf("unexpected %v %v", x, err)
	} else if x, err := d.Max(); err != nil || x != "S" {
		t.Errorf("unexpected %v %v", x, err)
	} else if x, err := d.Select(0); err != nil || x != "A" {
		t.Errorf("unexpected %v %v", x, err)
	} else if x, err := d.Rank("H"); err != nil || x != 3 {
		t.Errorf("unexpected %v %v", x, err)
	}
	if x, ok := d.Floor("F"); !ok || x != "E" {
		t.Errorf("unexpected %v", x)
	} else if x, ok := d.Ceiling("F"); !ok || x != "H" {
		t.Errorf("unexpected %v", x)
	} else if x, ok := d.Floor("0"); ok {
		t.Errorf("unexpected %v", x)
	} else if x, ok := d.Ceiling("Z"); ok {
		t.Errorf("unexpected %v", x)
	}
	_, err := d.Select(6)
	require.ErrorIs(t, err, api.ErrorIndexRange)

	keys, err := d.KeyRange("B", "R")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "E", "H", "R"}, keys)
	keys, err = d.KeyRange("R", "B")
	require.NoError(t, err)
	require.Equal(t, []string{}, keys)
	require.Equal(t, []string{"A", "C", "E", "H", "R", "S"}, d.Keys())

	// update
	require.NoError(t, d.Put("A", 100))
	value, ok := d.Get("A")
	require.True(t, ok)
	require.Equal(t, 100, value)
	require.Equal(t, int64(6), d.Count())
	require.Equal(t, int64(1), d.Stats()["n_updates"])
	ok, err = d.Has("B")
	require.NoError(t, err)
	require.False(t, ok)

	d.Log(true)
	require.NoError(t, d.Destroy())
	require.False(t, d.Isactive())
	require.Equal(t, int64(0), d.Count())
}

func TestDictRange(t *testing.T) {
	d := NewOrdered[int, int]("range")
	for i := 9; i >= 0; i-- {
		require.NoError(t, d.Put(i, i*10))
	}

	collect := func(lk, hk int, incl string, reverse bool) []int {
		keys := []int{}
		err := d.Range(lk, hk, incl, reverse, func(nd api.Node[int, int]) bool {
			keys = append(keys, nd.Key())
			return true
		})
		require.NoError(t, err)
		return keys
	}
	require.Equal(t, []int{2, 3, 4, 5}, collect(2, 5, "both", false))
	require.Equal(t, []int{2, 3, 4}, collect(2, 5, "low", false))
	require.Equal(t, []int{3, 4, 5}, collect(2, 5, "high", false))
	require.Equal(t, []int{3, 4}, collect(2, 5, "none", false))
	require.Equal(t, []int{5, 4, 3, 2}, collect(2, 5, "both", true))
	require.Equal(t, []int{4, 3}, collect(2, 5, "none", true))
	require.Equal(t, []int{}, collect(5, 5, "none", false))
	require.Equal(t, []int{}, collect(5, 2, "both", true))

	keys := []int{}
	d.Scan(true, func(nd api.Node[int, int]) bool {
		keys = append(keys, nd.Key())
		return len(keys) < 3
	})
	require.Equal(t, []int{9, 8, 7}, keys)

	require.ErrorIs(t, d.Range(0, 9, "left", false, nil), api.ErrorInvalidIncl)

	iter, err := d.Iterate(3, 6, "high")
	require.NoError(t, err)
	require.ErrorIs(t, d.Destroy(), api.ErrorActiveIterators)
	keys = keys[:0]
	for nd := iter.Next(); nd != nil; nd = iter.Next() {
		keys = append(keys, nd.Key())
	}
	iter.Close()
	require.Equal(t, []int{4, 5, 6}, keys)
	require.Panics(t, func() { iter.Next() })
	require.NoError(t, d.Destroy())
}

func TestDictNilKey(t *testing.T) {
	d := NewBytes[int]("bytes")
	require.ErrorIs(t, d.Put(nil, 1), api.ErrorNilKey)
	require.NoError(t, d.Put([]byte("b"), 2))
	require.NoError(t, d.Put([]byte("a"), 1))
	require.Equal(t, int64(2), d.Count())

	if _, ok := d.Get(nil); ok {
		t.Errorf("unexpected nil key")
	}
	_, err := d.Has(nil)
	require.ErrorIs(t, err, api.ErrorNilKey)
	_, err = d.Rank(nil)
	require.ErrorIs(t, err, api.ErrorNilKey)
	_, err = d.KeyRange([]byte("a"), nil)
	require.ErrorIs(t, err, api.ErrorNilKey)
	_, err = d.Iterate(nil, []byte("z"), "both")
	require.ErrorIs(t, err, api.ErrorNilKey)

	if x, err := d.Min(); err != nil || !bytes.Equal(x, []byte("a")) {
		t.Errorf("unexpected %s %v", x, err)
	}
}

func TestDictClone(t *testing.T) {
	d := NewOrdered[int, string]("dict")
	for i := 0; i < 10; i++ {
		require.NoError(t, d.Put(i, "v"))
	}
	newd := d.Clone("clone")
	require.NoError(t, d.Put(100, "v"))
	require.NoError(t, d.Put(0, "w"))

	require.Equal(t, int64(10), newd.Count())
	if value, _ := newd.Get(0); value != "v" {
		t.Errorf("unexpected %v", value)
	}
	if !reflect.DeepEqual(newd.Keys(), seq(0, 10)) {
		t.Errorf("unexpected %v", newd.Keys())
	}
	newd.Validate()

	buf := bytes.NewBuffer(nil)
	newd.Dotdump(buf)
	require.True(t, strings.HasPrefix(buf.String(), "digraph dict {"))
	require.Equal(t, 9, strings.Count(buf.String(), "->"))
}

func seq(from, till int) []int {
	keys := make([]int, 0, till-from)
	for i := from; i < till; i++ {
		keys = append(keys, i)
	}
	return keys
}
