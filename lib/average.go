package lib

import "math"

// AverageInt64 compute statistical mean, variance and deviation for a
// stream of int64 samples. Zero value is ready to use.
type AverageInt64 struct {
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
}

// Add a sample.
func (av *AverageInt64) Add(sample int64) {
	if av.n == 0 || sample < av.minval {
		av.minval = sample
	}
	if av.n == 0 || sample > av.maxval {
		av.maxval = sample
	}
	av.n++
	av.sum += sample
	f := float64(sample)
	av.sumsq += f * f
}

// Min return minimum value from sample.
func (av *AverageInt64) Min() int64 {
	return av.minval
}

// Max return maximum value from sample.
func (av *AverageInt64) Max() int64 {
	return av.maxval
}

// Samples return total number of samples added so far.
func (av *AverageInt64) Samples() int64 {
	return av.n
}

// Sum return the sum of all sample values.
func (av *AverageInt64) Sum() int64 {
	return av.sum
}

// Mean return the average value of all samples, truncated.
func (av *AverageInt64) Mean() int64 {
	if av.n == 0 {
		return 0
	}
	return int64(float64(av.sum) / float64(av.n))
}

// Variance return the squared deviation of samples from their mean.
func (av *AverageInt64) Variance() float64 {
	if av.n == 0 {
		return 0
	}
	nf, meanf := float64(av.n), float64(av.sum)/float64(av.n)
	if variance := (av.sumsq / nf) - (meanf * meanf); variance > 0 {
		return variance
	}
	return 0 // rounding errors can go negative.
}

// SD return by how much the samples differ from the mean value of
// sample set.
func (av *AverageInt64) SD() float64 {
	return math.Sqrt(av.Variance())
}

// Stats return a map of statistics.
func (av *AverageInt64) Stats() map[string]interface{} {
	return map[string]interface{}{
		"samples":     av.Samples(),
		"min":         av.Min(),
		"max":         av.Max(),
		"mean":        av.Mean(),
		"variance":    av.Variance(),
		"stddeviance": av.SD(),
	}
}
