package api

import "errors"
import "fmt"

// ErrorInvalidArgument operation cannot succeed because caller supplied
// an argument that violates the API contract.
var ErrorInvalidArgument = errors.New("invalidArgument")

// ErrorNilKey operation cannot succeed because key is nil.
var ErrorNilKey = fmt.Errorf("%w: nilKey", ErrorInvalidArgument)

// ErrorIndexRange operation cannot succeed because the ranked index is
// outside [0, Count()).
var ErrorIndexRange = fmt.Errorf("%w: indexOutofRange", ErrorInvalidArgument)

// ErrorInvalidIncl operation cannot succeed because range inclusion is
// not one of "both", "low", "high", "none".
var ErrorInvalidIncl = fmt.Errorf("%w: invalidIncl", ErrorInvalidArgument)

// ErrorEmptyIndex operation cannot succeed because there are no entries
// in the index.
var ErrorEmptyIndex = errors.New("emptyIndex")

// ErrorOutofMemory operation cannot succeed because index has reached
// its configured memory capacity.
var ErrorOutofMemory = errors.New("outofMemory")

// ErrorActiveIterators operation cannot succeed because there are active
// iterators on the index.
var ErrorActiveIterators = errors.New("activeIterators")

// Inclusion values accepted by Range and Iterate APIs.
const (
	InclBoth = "both"
	InclLow  = "low"
	InclHigh = "high"
	InclNone = "none"
)
