package llrb

import "encoding/json"
import "fmt"
import "sync/atomic"

import "github.com/bnclabs/ordtree/lib"
import gohumanize "github.com/dustin/go-humanize"

func (llrb *LLRB[K, V]) stats() map[string]interface{} {
	stats := llrb.stattree(map[string]interface{}{})
	stats["memory"] = llrb.n_count * llrb.nodesize
	stats["memcapacity"] = llrb.memcapacity
	stats["h_upsertdepth"] = llrb.h_upsertdepth.Fullstats()
	return stats
}

func (llrb *LLRB[K, V]) fullstats() map[string]interface{} {
	stats := llrb.stats()
	h_height := lib.NewhistogramInt64(1, 256, 1)
	llrb.heightStats(llrb.root, 1 /*depth*/, h_height)
	stats["h_height"] = h_height.Fullstats()
	stats["n_blacks"] = llrb.countblacks(llrb.root, 0)

	if x := h_height.Samples(); x != llrb.Count() {
		fmsg := "expected h_height.samples:%v to be same as llrb.Count():%v"
		panic(fmt.Errorf(fmsg, x, llrb.Count()))
	}
	return stats
}

// tree statistics, lookup counters are updated by concurrent readers.
func (llrb *LLRB[K, V]) stattree(stats map[string]interface{}) map[string]interface{} {
	stats["n_count"] = atomic.LoadInt64(&llrb.n_count)
	stats["n_inserts"] = llrb.n_inserts
	stats["n_updates"] = llrb.n_updates
	stats["n_lookups"] = atomic.LoadInt64(&llrb.n_lookups)
	stats["n_ranges"] = atomic.LoadInt64(&llrb.n_ranges)
	stats["n_selects"] = atomic.LoadInt64(&llrb.n_selects)
	stats["n_ranks"] = atomic.LoadInt64(&llrb.n_ranks)
	stats["n_activeiter"] = atomic.LoadInt64(&llrb.n_activeiter)
	stats["n_clones"] = llrb.n_clones
	stats["n_oomrejects"] = llrb.n_oomrejects
	stats["n_rotatelefts"] = llrb.n_rotatelefts
	stats["n_rotrights"] = llrb.n_rotrights
	stats["n_flips"] = llrb.n_flips
	return stats
}

func (llrb *LLRB[K, V]) validatestats() {
	// n_count should match n_inserts, there are no deletes.
	n_count, n_inserts := atomic.LoadInt64(&llrb.n_count), llrb.n_inserts
	if n_count != n_inserts {
		fmsg := "validatestats(): n_count:%v != n_inserts:%v"
		panic(fmt.Errorf(fmsg, n_count, n_inserts))
	}
	if llrb.maxcount > 0 && n_count > llrb.maxcount {
		fmsg := "validatestats(): n_count:%v exceeds capacity %v"
		panic(fmt.Errorf(fmsg, n_count, llrb.maxcount))
	}
	if n := atomic.LoadInt64(&llrb.n_activeiter); n < 0 {
		panic(fmt.Errorf("validatestats(): n_activeiter:%v is negative", n))
	}
	// every node is an upsert, insert or update.
	samples := llrb.h_upsertdepth.Samples()
	if x := n_inserts + llrb.n_updates; samples < x {
		fmsg := "validatestats(): h_upsertdepth.samples:%v < upserts:%v"
		panic(fmt.Errorf(fmsg, samples, x))
	}
}

func (llrb *LLRB[K, V]) log(humanize bool) {
	stats := llrb.fullstats()

	if humanize {
		mem := gohumanize.Bytes(uint64(stats["memory"].(int64)))
		capacity := "unlimited"
		if llrb.memcapacity > 0 {
			capacity = gohumanize.Bytes(uint64(llrb.memcapacity))
		}
		count := gohumanize.Comma(stats["n_count"].(int64))
		fmsg := "%v entries, %v of %v consumed by nodes\n"
		llrb.infof(fmsg, count, mem, capacity)

		h_height := stats["h_height"].(map[string]interface{})
		fmsg = "height max:%v mean:%v, blacks:%v\n"
		llrb.infof(fmsg, h_height["max"], h_height["mean"], stats["n_blacks"])
	}

	// log statistics
	text, err := json.Marshal(stats)
	if err != nil {
		panic(fmt.Errorf("log(): %v", err))
	}
	llrb.infof("stats %v\n", string(text))
}
