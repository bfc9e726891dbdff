package tsimtree

import (
	"fmt"
	"testing"
)

func TestValidateEmptyTree(t *testing.T) {
	tr := New()
	if err := tr.Validate(); err != nil {
		t.Fatalf("Validate on an empty tree: %v", err)
	}
}

func TestValidateAfterMixedInserts(t *testing.T) {
	tr := New()
	for i := 0; i < 64; i++ {
		tr.Put([]byte(fmt.Sprintf("item-%03d", i)), []byte{byte(i)})
	}
	if err := tr.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateCatchesOutOfOrderSegments(t *testing.T) {
	n := &node{count: 2}
	n.segments[0].write([]byte{0x05})
	n.children[0] = child{kind: childValue, value: []byte("a")}
	n.segments[1].write([]byte{0x01}) // out of order: should be > segment 0
	n.children[1] = child{kind: childValue, value: []byte("b")}

	err := validateNode(n, "root")
	if err == nil {
		t.Fatal("expected an invariant violation for out-of-order segments")
	}
	if _, ok := err.(*InvariantViolation); !ok {
		t.Fatalf("expected *InvariantViolation, got %T", err)
	}
}

func TestValidateCatchesOccupancyMismatch(t *testing.T) {
	n := &node{count: 1}
	n.segments[0].write([]byte{0x01})
	// children[0] left as childEmpty even though count says it is occupied.

	err := validateNode(n, "root")
	if err == nil {
		t.Fatal("expected an invariant violation for an occupancy mismatch")
	}
	if _, ok := err.(*InvariantViolation); !ok {
		t.Fatalf("expected *InvariantViolation, got %T", err)
	}
}
