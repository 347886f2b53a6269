package dict

type dictnode[K, V any] struct {
	key   K
	value V
}

func newdictnode[K, V any](key K, value V) *dictnode[K, V] {
	return &dictnode[K, V]{key: key, value: value}
}

// Key implement api.Node interface.
func (dn *dictnode[K, V]) Key() K {
	return dn.key
}

// Value implement api.Node interface.
func (dn *dictnode[K, V]) Value() V {
	return dn.value
}

func (dn *dictnode[K, V]) clone() *dictnode[K, V] {
	newdn := *dn
	return &newdn
}
