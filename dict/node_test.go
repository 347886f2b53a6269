package dict

import "testing"

func TestNode(t *testing.T) {
	nd := newdictnode("key1", 10)
	if nd.Key() != "key1" {
		t.Errorf("expected %q, got %q", "key1", nd.Key())
	} else if nd.Value() != 10 {
		t.Errorf("expected %v, got %v", 10, nd.Value())
	}
}

func TestNodeClone(t *testing.T) {
	nd := newdictnode("key1", 10)
	newnd := nd.clone()
	newnd.value = 20
	if nd.Value() != 10 {
		t.Errorf("expected %v, got %v", 10, nd.Value())
	} else if newnd.Key() != "key1" || newnd.Value() != 20 {
		t.Errorf("unexpected %v %v", newnd.Key(), newnd.Value())
	}
}
