package main

import "flag"
import "fmt"
import "math/rand"
import "time"

import "github.com/bnclabs/ordtree/dict"
import "github.com/bnclabs/ordtree/llrb"
import s "github.com/bnclabs/gosettings"
import "github.com/bnclabs/golog"

var checkopts struct {
	repeat   int
	seed     int64
	keyspace int
	vtick    int
	capacity int64
}

func parseCheckopts(args []string) error {
	f := flag.NewFlagSet("check", flag.ContinueOnError)

	f.IntVar(&checkopts.repeat, "repeat", 10000,
		"number of operations to generate")
	f.Int64Var(&checkopts.seed, "seed", time.Now().UnixNano(),
		"seed value for generating inputs")
	f.IntVar(&checkopts.keyspace, "keyspace", 1000,
		"keys are picked from [0,keyspace)")
	f.IntVar(&checkopts.vtick, "vtick", 1000,
		"validate after every vtick operations")
	f.Int64Var(&checkopts.capacity, "memcapacity", 0,
		"memory capacity for tree nodes, 0 is unlimited")
	if err := f.Parse(args); err != nil {
		return err
	}
	if checkopts.keyspace <= 0 || checkopts.vtick <= 0 {
		return fmt.Errorf("keyspace and vtick must be positive")
	}
	if checkopts.capacity < 0 {
		return fmt.Errorf("memcapacity cannot be negative")
	}
	return nil
}

func doCheck(args []string) error {
	if err := parseCheckopts(args); err != nil {
		return err
	}
	log.Infof("check seed %v\n", checkopts.seed)
	setts := llrb.Defaultsettings()
	setts["memcapacity"] = checkopts.capacity
	n, err := checkllrb(setts,
		checkopts.seed, checkopts.repeat, checkopts.keyspace, checkopts.vtick)
	if err != nil {
		return fmt.Errorf("seed %v: %w", checkopts.seed, err)
	}
	fmt.Printf("verified %v operations\n", n)
	return nil
}

// checkllrb apply a random mix of operations on llrb and the reference
// dict, return on first mismatch.
func checkllrb(
	setts s.Settings, seed int64, repeat, keyspace, vtick int) (int, error) {

	rnd := rand.New(rand.NewSource(seed))
	tree := llrb.NewOrdered[int, int]("check", setts)
	defer tree.Destroy()
	d := dict.NewOrdered[int, int]("check")

	for i := 0; i < repeat; i++ {
		key := rnd.Intn(keyspace)
		switch op := rnd.Intn(8); op {
		case 0, 1, 2:
			if err := tree.Put(key, i); err != nil {
				return i, fmt.Errorf("llrb Put(%v): %w", key, err)
			} else if err := d.Put(key, i); err != nil {
				return i, fmt.Errorf("dict Put(%v): %w", key, err)
			}
		case 3:
			v1, ok1 := tree.Get(key)
			v2, ok2 := d.Get(key)
			if v1 != v2 || ok1 != ok2 {
				return i, fmt.Errorf("Get(%v): {%v,%v} != {%v,%v}", key, v1, ok1, v2, ok2)
			}
		case 4:
			f1, ok1 := tree.Floor(key)
			f2, ok2 := d.Floor(key)
			c1, cok1 := tree.Ceiling(key)
			c2, cok2 := d.Ceiling(key)
			if f1 != f2 || ok1 != ok2 || c1 != c2 || cok1 != cok2 {
				return i, fmt.Errorf("Floor/Ceiling(%v) mismatch", key)
			}
		case 5:
			r1, _ := tree.Rank(key)
			r2, _ := d.Rank(key)
			if r1 != r2 {
				return i, fmt.Errorf("Rank(%v): %v != %v", key, r1, r2)
			}
		case 6:
			index := rnd.Int63n(tree.Count() + 1)
			s1, err1 := tree.Select(index)
			s2, err2 := d.Select(index)
			if s1 != s2 || (err1 == nil) != (err2 == nil) {
				return i, fmt.Errorf("Select(%v): %v != %v", index, s1, s2)
			}
		case 7:
			high := key + rnd.Intn(keyspace/10+1)
			k1, _ := tree.KeyRange(key, high)
			k2, _ := d.KeyRange(key, high)
			if fmt.Sprint(k1) != fmt.Sprint(k2) {
				return i, fmt.Errorf("KeyRange(%v,%v): %v != %v", key, high, k1, k2)
			}
		}
		if (i+1)%vtick == 0 {
			if err := validate(tree); err != nil {
				return i, err
			}
		}
	}
	return repeat, validate(tree)
}

func validate(tree *llrb.LLRB[int, int]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	tree.Validate()
	return nil
}
