package llrb

import "fmt"
import "os"

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"
import "gopkg.in/yaml.v3"

// Defaultsettings for llrb instance.
//
// "iterpool.size" (int64, default: 100)
//
//	Maximum number of iterators kept in the pool for reuse. Each
//	Iterate call will acquire an instance of iterator, Close will
//	return it to the pool.
//
// "memcapacity" (int64, default: 0)
//
//	Memory, in bytes, that can be consumed by tree nodes. Once
//	the limit is reached, inserting a new key fails with
//	api.ErrorOutofMemory. ZERO means no limit. Only the node
//	footprint is accounted, not memory referred to by keys and
//	values.
//
// "memcapacity.freeram" (bool, default: false)
//
//	When memcapacity is ZERO, limit the tree to free RAM as seen
//	at the time of construction.
//
// "validate.heightfactor" (float64, default: 2.0)
//
//	Validate will panic if the depth of any node exceeds
//	heightfactor * log2(count+1).
func Defaultsettings() s.Settings {
	return s.Settings{
		"iterpool.size":         int64(100),
		"memcapacity":           int64(0),
		"memcapacity.freeram":   false,
		"validate.heightfactor": float64(2.0),
	}
}

// Loadsettings read settings from a yaml file and mix them over
// Defaultsettings. Nested mappings are flattened into dotted keys, so
// that `validate: {heightfactor: 3}` is same as `validate.heightfactor: 3`.
func Loadsettings(filename string) (s.Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("Loadsettings(%q): %w", filename, err)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("Loadsettings(%q): %w", filename, err)
	}
	defaults := Defaultsettings()
	setts := flattensettings("", doc, make(s.Settings))
	// yaml decodes `3` as int, settings defaulting to float stay float.
	for key, value := range setts {
		if _, ok := defaults[key].(float64); ok {
			if val, ok := value.(int64); ok {
				setts[key] = float64(val)
			}
		}
	}
	return make(s.Settings).Mixin(defaults, setts), nil
}

func flattensettings(
	prefix string, doc map[string]interface{}, setts s.Settings) s.Settings {

	for key, value := range doc {
		switch val := value.(type) {
		case map[string]interface{}:
			flattensettings(prefix+key+".", val, setts)
		case int:
			setts[prefix+key] = int64(val)
		case uint64:
			setts[prefix+key] = int64(val)
		case float32:
			setts[prefix+key] = float64(val)
		default:
			setts[prefix+key] = value
		}
	}
	return setts
}

func (llrb *LLRB[K, V]) readsettings(setts s.Settings) {
	llrb.iterpoolsize = setts.Int64("iterpool.size")
	llrb.memcapacity = setts.Int64("memcapacity")
	llrb.heightfactor = setts.Float64("validate.heightfactor")
	if llrb.memcapacity == 0 && setts.Bool("memcapacity.freeram") {
		_, _, free := getsysmem()
		llrb.memcapacity = int64(free)
	}

	if llrb.iterpoolsize < 0 {
		panicerr("iterpool.size cannot be negative: %v", llrb.iterpoolsize)
	} else if llrb.memcapacity < 0 {
		panicerr("memcapacity cannot be negative: %v", llrb.memcapacity)
	} else if llrb.heightfactor < 1 {
		panicerr("validate.heightfactor less than 1: %v", llrb.heightfactor)
	}

	llrb.maxcount = 0
	if llrb.memcapacity > 0 {
		llrb.maxcount = llrb.memcapacity / llrb.nodesize
		if llrb.maxcount == 0 {
			panicerr("memcapacity %v too small for a node", llrb.memcapacity)
		}
	}
}

// getsysmem return ZERO free memory if system stats are unavailable,
// which leaves the tree without a capacity limit.
func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	if err := mem.Get(); err != nil {
		return 0, 0, 0
	}
	return mem.Total, mem.Used, mem.Free
}
