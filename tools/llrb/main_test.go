package main

import "math/rand"
import "os"
import "path/filepath"
import "strings"
import "testing"

import "github.com/bnclabs/ordtree/api"
import "github.com/bnclabs/ordtree/llrb"
import "github.com/bnclabs/golog"
import "github.com/stretchr/testify/require"

func init() {
	setts := map[string]interface{}{
		"log.level":      "ignore",
		"log.colorfatal": "red",
		"log.colorerror": "hired",
		"log.colorwarn":  "yellow",
	}
	log.SetLogger(nil, setts)
}

func TestCheckllrb(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		n, err := checkllrb(llrb.Defaultsettings(), seed, 5000, 500, 500)
		require.NoError(t, err, "seed %v", seed)
		require.Equal(t, 5000, n)
	}
}

func TestCheckllrbPutError(t *testing.T) {
	setts := llrb.Defaultsettings()
	setts["memcapacity"] = int64(1024) // a handful of nodes.
	n, err := checkllrb(setts, 1, 5000, 500, 500)
	require.ErrorIs(t, err, api.ErrorOutofMemory)
	require.Contains(t, err.Error(), "llrb Put(")
	require.True(t, n < 5000)
}

func TestParseLoadopts(t *testing.T) {
	require.NoError(t, parseLoadopts([]string{"-klen", "4,10", "-n", "10", "-ncpu", "1"}))
	require.Equal(t, [2]int{4, 10}, loadopts.klen)
	require.Equal(t, 10, loadopts.n)

	require.Error(t, parseLoadopts([]string{"-klen", "10,4"}))
	require.Error(t, parseLoadopts([]string{"-klen", "a,b"}))
}

func TestInsertItems(t *testing.T) {
	require.NoError(t, parseLoadopts([]string{"-klen", "4,8", "-ncpu", "1"}))
	setts := llrb.Defaultsettings()
	setts["memcapacity"] = int64(0)
	tree := llrb.NewBytes[[]byte]("insert", setts)
	defer tree.Destroy()

	rejects := insertItems(tree, rand.New(rand.NewSource(1)), 100)
	require.Equal(t, int64(0), rejects)
	require.True(t, tree.Count() > 0 && tree.Count() <= 100)
	tree.Validate()
}

func TestDoLoad(t *testing.T) {
	dotfile := filepath.Join(t.TempDir(), "load.dot")
	args := []string{
		"-par", "2", "-n", "100", "-memcapacity", "0", "-seed", "10",
		"-dotfile", dotfile,
	}
	require.NoError(t, doLoad(args))
	require.Equal(t, 2, loadopts.par)

	data, err := os.ReadFile(dotfile)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "digraph llrb {"))
}
