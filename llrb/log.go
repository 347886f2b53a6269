package llrb

import "sync/atomic"

import "github.com/bnclabs/golog"

var logok = int64(0)

// LogComponents enable logging. By default logging is disabled, if
// applications want log information for llrb components call this
// function with "self" or "all" or "llrb" as argument.
func LogComponents(components ...string) {
	for _, comp := range components {
		switch comp {
		case "llrb", "self", "all":
			atomic.StoreInt64(&logok, 1)
		}
	}
}

func logenabled() bool {
	return atomic.LoadInt64(&logok) > 0
}

func prefixed(prefix string, v []interface{}) []interface{} {
	return append([]interface{}{prefix}, v...)
}

// all logs from a tree instance are prefixed with its logprefix.

func (llrb *LLRB[K, V]) debugf(format string, v ...interface{}) {
	if logenabled() {
		log.Debugf("%v "+format, prefixed(llrb.logprefix, v)...)
	}
}

func (llrb *LLRB[K, V]) verbosef(format string, v ...interface{}) {
	if logenabled() {
		log.Verbosef("%v "+format, prefixed(llrb.logprefix, v)...)
	}
}

func (llrb *LLRB[K, V]) infof(format string, v ...interface{}) {
	if logenabled() {
		log.Infof("%v "+format, prefixed(llrb.logprefix, v)...)
	}
}

func (llrb *LLRB[K, V]) warnf(format string, v ...interface{}) {
	if logenabled() {
		log.Warnf("%v "+format, prefixed(llrb.logprefix, v)...)
	}
}

func (llrb *LLRB[K, V]) errorf(format string, v ...interface{}) {
	if logenabled() {
		log.Errorf("%v "+format, prefixed(llrb.logprefix, v)...)
	}
}
