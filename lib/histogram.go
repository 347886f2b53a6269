package lib

import "fmt"
import "math"
import "sort"
import "strconv"
import "strings"

// HistogramInt64 statistical histogram over int64 samples. Samples are
// counted into fixed width buckets between [from, till), samples outside
// that range go into an underflow or overflow bucket.
type HistogramInt64 struct {
	AverageInt64

	from    int64
	till    int64
	width   int64
	buckets []int64 // underflow, [from, till) in width steps, overflow
}

// NewhistogramInt64 return a new histogram object, from and till are
// rounded down to a multiple of width.
func NewhistogramInt64(from, till, width int64) *HistogramInt64 {
	if width <= 0 {
		panic(fmt.Errorf("NewhistogramInt64(): invalid width %v", width))
	}
	from, till = (from/width)*width, (till/width)*width
	if till < from {
		from, till = till, from
	}
	h := &HistogramInt64{from: from, till: till, width: width}
	h.buckets = make([]int64, ((till-from)/width)+2)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.AverageInt64.Add(sample)
	h.buckets[h.bucketof(sample)]++
}

func (h *HistogramInt64) bucketof(sample int64) int {
	switch {
	case sample < h.from:
		return 0
	case sample >= h.till:
		return len(h.buckets) - 1
	}
	return int((sample-h.from)/h.width) + 1
}

// upper return the exclusive upper bound for bounded bucket i.
func (h *HistogramInt64) upper(i int) int64 {
	return h.from + (int64(i) * h.width)
}

// Percentile return the exclusive upper bound of the bucket holding the
// p-th percentile sample. Samples falling into the overflow bucket
// report the maximum sample seen.
func (h *HistogramInt64) Percentile(p float64) int64 {
	if h.Samples() == 0 {
		return 0
	}
	p = math.Max(0, math.Min(p, 100))
	target := int64(math.Ceil(float64(h.Samples()) * p / 100))
	if target == 0 {
		target = 1
	}
	cumm := int64(0)
	for i, count := range h.buckets {
		if cumm += count; cumm >= target {
			if i == len(h.buckets)-1 {
				return h.Max()
			}
			return h.upper(i)
		}
	}
	return h.Max()
}

// Clone copies the entire instance.
func (h *HistogramInt64) Clone() *HistogramInt64 {
	newh := *h
	newh.buckets = make([]int64, len(h.buckets))
	copy(newh.buckets, h.buckets)
	return &newh
}

// Stats return cumulative counts of the histogram. Each key is the
// exclusive upper bound of a bucket and its value is the number of
// samples below that bound. Key "+" count all samples.
func (h *HistogramInt64) Stats() map[string]int64 {
	m := map[string]int64{"+": h.Samples()}
	last := -1
	for i, count := range h.buckets {
		if count > 0 {
			last = i
		}
	}
	if last == len(h.buckets)-1 {
		last--
	}
	cumm := int64(0)
	for i := 0; i <= last; i++ {
		cumm += h.buckets[i]
		m[strconv.FormatInt(h.upper(i), 10)] = cumm
	}
	return m
}

// Fullstats include the sample statistics along with histogram.
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	stats := h.AverageInt64.Stats()
	hmap := make(map[string]interface{})
	for k, v := range h.Stats() {
		hmap[k] = v
	}
	stats["histogram"] = hmap
	return stats
}

// Logstring return Fullstats as loggable string, keys are sorted.
func (h *HistogramInt64) Logstring() string {
	stats := h.AverageInt64.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ss := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		ss = append(ss, fmt.Sprintf(`"%v": %v`, key, stats[key]))
	}

	histogram, bounds := h.Stats(), []int64{}
	for k := range histogram {
		if k == "+" {
			continue
		}
		n, _ := strconv.ParseInt(k, 10, 64)
		bounds = append(bounds, n)
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })
	hs := make([]string, 0, len(bounds)+1)
	for _, n := range bounds {
		k := strconv.FormatInt(n, 10)
		hs = append(hs, fmt.Sprintf(`"%v": %v`, k, histogram[k]))
	}
	hs = append(hs, fmt.Sprintf(`"+": %v`, histogram["+"]))
	ss = append(ss, `"histogram": {`+strings.Join(hs, ",")+"}")
	return "{" + strings.Join(ss, ",") + "}"
}
