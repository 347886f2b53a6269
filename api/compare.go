package api

import "bytes"
import "reflect"

import "golang.org/x/exp/constraints"

// Bytescmp compare byte-slice keys in lexicographic order.
func Bytescmp(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Ordcmp compare keys using the native ordering of K.
func Ordcmp[K constraints.Ordered](a, b K) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Isnil return true if key is a nil pointer, slice, map, channel,
// function or interface. Keys of other kinds are never nil.
func Isnil[K any](key K) bool {
	v := reflect.ValueOf(&key).Elem()
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Inclusion return whether low bound and high bound are included for
// incl, panics on invalid incl. Use Validincl to check user input.
func Inclusion(incl string) (low, high bool) {
	switch incl {
	case InclBoth:
		return true, true
	case InclLow:
		return true, false
	case InclHigh:
		return false, true
	case InclNone:
		return false, false
	}
	panic("Inclusion(): invalid incl " + incl)
}

// Validincl return ErrorInvalidIncl if incl is not one of the accepted
// inclusion values.
func Validincl(incl string) error {
	switch incl {
	case InclBoth, InclLow, InclHigh, InclNone:
		return nil
	}
	return ErrorInvalidIncl
}
