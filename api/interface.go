// Package api define types and interfaces common to all ordered
// containers implemented by this package.
package api

import "io"

// Compare function for keys, return -1 if a sorts before b, 0 if they
// are equal and 1 if a sorts after b.
type Compare[K any] func(a, b K) int

// NodeCallb callback from Range and Scan API. Return false to stop
// iteration. Don't keep any reference to nd beyond the callback.
type NodeCallb[K, V any] func(nd Node[K, V]) bool

// Node interface methods to access a read-only view of an entry.
type Node[K, V any] interface {
	// Key return entry key.
	Key() (key K)

	// Value return entry value.
	Value() (value V)
}

// IndexMeta interface to gather meta information on an index.
type IndexMeta interface {
	// ID return index id. Typically, it is human readable and unique.
	ID() string

	// Count return the number of entries indexed.
	Count() int64

	// Isactive return whether index is active or destroyed.
	Isactive() bool

	// Stats return a set of index statistics.
	Stats() map[string]interface{}

	// Fullstats return an involved set of index statistics, calling this
	// function will lead to a full tree walk.
	Fullstats() map[string]interface{}

	// Log current statistics, if humanize is true log some or all of the
	// stats in human readable format.
	Log(humanize bool)

	// Validate check whether index is in sane state, panic otherwise.
	Validate()

	// Dotdump write the index as graphviz dot script.
	Dotdump(w io.Writer)
}

// IndexReader interface for fetching one or more entries from index.
type IndexReader[K, V any] interface {
	// Get value for key, ok is false if key is not present.
	Get(key K) (value V, ok bool)

	// Has checks whether key is present in the index. Nil key is an
	// invalid argument.
	Has(key K) (bool, error)

	// Min return the key that sort before every other key in the index.
	Min() (K, error)

	// Max return the key that sort after every other key in the index.
	Max() (K, error)

	// Floor return the largest key less than or equal to key.
	Floor(key K) (K, bool)

	// Ceiling return the smallest key greater than or equal to key.
	Ceiling(key K) (K, bool)

	// Select return the key at 0-based position index in sort order.
	Select(index int64) (K, error)

	// Rank return the number of keys strictly less than key.
	Rank(key K) (int64, error)

	// Keys return all keys in ascending order.
	Keys() []K

	// KeyRange return keys, in ascending order, between low and high,
	// both inclusive.
	KeyRange(low, high K) ([]K, error)

	// Range iterate over entries between lowkey and highkey
	// incl,
	//	"none" - ignore lowkey and highkey while iterating
	//	"low"  - include lowkey but ignore highkey
	//	"high" - ignore lowkey but include highkey
	//	"both" - include both lowkey and highkey
	Range(lowkey, highkey K, incl string, reverse bool, callb NodeCallb[K, V]) error

	// Scan iterate over all entries in the index.
	Scan(reverse bool, callb NodeCallb[K, V])

	// Iterate over entries between lowkey and highkey in ascending order,
	// incl carry the same meaning as that of Range.
	Iterate(lowkey, highkey K, incl string) (IndexIterator[K, V], error)
}

// IndexIterator interface to pull entries from index over a range of low
// key and high key.
type IndexIterator[K, V any] interface {
	// Next node if present, else nil.
	Next() Node[K, V]

	// Close iterator, to release resources.
	Close()
}

// IndexWriter interface methods for updating index.
type IndexWriter[K, V any] interface {
	// Put a key,value pair. If key is already present its value is
	// replaced.
	Put(key K, value V) error
}

// Index interface for managing key,value pairs.
type Index[K, V any] interface {
	IndexMeta
	IndexReader[K, V]
	IndexWriter[K, V]

	// Destroy to delete an index and clean up its resources.
	Destroy() error
}
