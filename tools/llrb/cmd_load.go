package main

import "bytes"
import "flag"
import "fmt"
import "math/rand"
import "os"
import "runtime"
import "runtime/pprof"
import "strconv"
import "strings"
import "sync"
import "time"

import "github.com/bnclabs/ordtree/llrb"
import s "github.com/bnclabs/gosettings"
import hm "github.com/dustin/go-humanize"
import "github.com/bnclabs/golog"

var loadopts struct {
	klen     [2]int // min-klen, max-klen
	n        int
	ncpu     int
	par      int
	seed     int64
	capacity int64
	settings string
	mprof    string
	pprof    string
	dotfile  string
}

func parseLoadopts(args []string) error {
	f := flag.NewFlagSet("load", flag.ContinueOnError)

	var klen string

	f.StringVar(&klen, "klen", "",
		"minklen,maxklen - generate keys between [minklen,maxklen)")
	f.IntVar(&loadopts.n, "n", 1000,
		"number of items to generate and insert per generator")
	f.IntVar(&loadopts.ncpu, "ncpu", runtime.NumCPU(),
		"set number cores to use.")
	f.IntVar(&loadopts.par, "par", 4,
		"number of load generators")
	f.Int64Var(&loadopts.seed, "seed", time.Now().UnixNano(),
		"seed value for generating keys")
	f.Int64Var(&loadopts.capacity, "memcapacity", -1,
		"memory capacity for tree nodes, -1 to use settings")
	f.StringVar(&loadopts.settings, "settings", "",
		"yaml file to load llrb settings")
	f.StringVar(&loadopts.mprof, "mprof", "",
		"dump mem-profile to file")
	f.StringVar(&loadopts.pprof, "pprof", "",
		"dump cpu-profile to file")
	f.StringVar(&loadopts.dotfile, "dotfile", "",
		"dump dot file output of the LLRB tree")
	if err := f.Parse(args); err != nil {
		return err
	}

	loadopts.klen = [2]int{8, 32}
	if klen != "" {
		for i, x := range strings.SplitN(klen, ",", 2) {
			ln, err := strconv.Atoi(x)
			if err != nil {
				return fmt.Errorf("invalid klen %q: %w", klen, err)
			}
			loadopts.klen[i] = ln
		}
	}
	if loadopts.klen[0] <= 0 || loadopts.klen[1] <= loadopts.klen[0] {
		return fmt.Errorf("invalid klen %v", loadopts.klen)
	}
	setCPU(loadopts.ncpu)
	return nil
}

func loadsettings() (s.Settings, error) {
	setts := llrb.Defaultsettings()
	if loadopts.settings != "" {
		var err error
		if setts, err = llrb.Loadsettings(loadopts.settings); err != nil {
			return nil, err
		}
	}
	if loadopts.capacity >= 0 {
		setts["memcapacity"] = loadopts.capacity
	}
	return setts, nil
}

func doLoad(args []string) error {
	if err := parseLoadopts(args); err != nil {
		return err
	}
	setts, err := loadsettings()
	if err != nil {
		return err
	}

	if loadopts.pprof != "" {
		fd, err := os.Create(loadopts.pprof)
		if err != nil {
			return fmt.Errorf("unable to create %q: %w", loadopts.pprof, err)
		}
		defer fd.Close()

		pprof.StartCPUProfile(fd)
		defer pprof.StopCPUProfile()
	}

	tree := llrb.NewBytes[[]byte]("load", setts)
	defer tree.Destroy()

	now := time.Now()
	var wg sync.WaitGroup
	var mu sync.Mutex
	var rejects int64
	for i := 0; i < loadopts.par; i++ {
		wg.Add(1)
		rnd := rand.New(rand.NewSource(loadopts.seed + int64(i)))
		go func() {
			defer wg.Done()
			n := insertItems(tree, rnd, loadopts.n)
			mu.Lock()
			rejects += n
			mu.Unlock()
		}()
	}
	wg.Wait()

	elapsed := time.Since(now)
	fmsg := "took %v to insert %v items, %v rejected\n"
	fmt.Printf(fmsg, elapsed, hm.Comma(tree.Count()), hm.Comma(rejects))
	tree.Log(true)
	tree.Validate()

	if takeMEMProfile(loadopts.mprof) {
		fmt.Printf("dumped mem-profile to %v\n", loadopts.mprof)
	}
	if len(loadopts.dotfile) > 0 {
		buffer := bytes.NewBuffer(nil)
		tree.Dotdump(buffer)
		if err := os.WriteFile(loadopts.dotfile, buffer.Bytes(), 0666); err != nil {
			return err
		}
	}
	return nil
}

// insertItems return the number of inserts rejected for want of memory.
func insertItems(tree *llrb.LLRB[[]byte, []byte], rnd *rand.Rand, n int) int64 {
	var rejects int64
	for i := 0; i < n; i++ {
		key, value := makekeyval(rnd)
		if err := tree.Put(key, value); err != nil {
			log.Warnf("Put(%s): %v\n", key, err)
			rejects++
		}
	}
	return rejects
}

func makekeyval(rnd *rand.Rand) (key, value []byte) {
	min, max := loadopts.klen[0], loadopts.klen[1]
	key = make([]byte, rnd.Intn(max-min)+min)
	for i := range key {
		key[i] = byte(97 + rnd.Intn(26))
	}
	value = []byte(hm.Comma(int64(len(key))))
	return key, value
}
