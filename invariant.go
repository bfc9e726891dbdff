package tsimtree

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// InvariantViolation describes which node, and which of the spec's node
// invariants, failed during a Validate walk.
type InvariantViolation struct {
	Path   string
	Reason string
}

func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("tsimtree: invariant violated at %s: %s", v.Path, v.Reason)
}

// Validate walks every node reachable from the tree's root and checks the
// per-node invariants that must hold after every completed Put:
// count <= fanOut, segments strictly ascending over [0, count), children
// present over [0, count) and absent over [count, fanOut), and every
// stored segment's length within bounds. It does not check that the
// segments along a root-to-leaf path spell an inserted key. It acquires a
// read hold on the
// tree's gate for the duration of the walk.
func (t *Tree) Validate() error {
	t.checkPoisoned()
	t.mu.RLock()
	defer t.mu.RUnlock()
	defer t.poison()

	return validateNode(&t.root, "root")
}

// validateNode checks a single node's invariants and recurses into its
// subtree children. occupied tracks, as a bitset over [0, fanOut), which
// slots the node believes are occupied (index < count); expected is the
// same shape built from walking children directly, and the two are
// compared so a mismatch reports exactly which slots disagree rather than
// only "this node is wrong".
func validateNode(n *node, path string) error {
	if n.count > fanOut {
		return &InvariantViolation{Path: path, Reason: fmt.Sprintf("count %d exceeds fanOut %d", n.count, fanOut)}
	}

	occupied := bitset.New(fanOut)
	for i := 0; i < int(n.count); i++ {
		occupied.Set(uint(i))
	}

	expected := bitset.New(fanOut)
	for i := 0; i < fanOut; i++ {
		if n.children[i].kind != childEmpty {
			expected.Set(uint(i))
		}
	}

	if diff := occupied.SymmetricDifference(expected); diff.Count() != 0 {
		return &InvariantViolation{
			Path:   path,
			Reason: fmt.Sprintf("occupancy mismatch: count says %v, children say %v", occupied, expected),
		}
	}

	var prev []byte
	for i := 0; i < int(n.count); i++ {
		frag, err := n.segments[i].read()
		if err != nil {
			return err
		}
		if len(frag) > maxFragmentLen {
			return &InvariantViolation{Path: path, Reason: fmt.Sprintf("segment %d length %d exceeds %d", i, len(frag), maxFragmentLen)}
		}
		if i > 0 && bytesCompare(prev, frag) >= 0 {
			return &InvariantViolation{Path: path, Reason: fmt.Sprintf("segment %d is not strictly greater than segment %d", i, i-1)}
		}
		prev = frag

		c := &n.children[i]
		switch c.kind {
		case childSubtree:
			if err := validateNode(c.subtree, fmt.Sprintf("%s/%d", path, i)); err != nil {
				return err
			}
		case childValue:
			// nothing further to check for a terminal.
		default:
			return &InvariantViolation{Path: path, Reason: fmt.Sprintf("slot %d is occupied but untagged", i)}
		}
	}

	for i := int(n.count); i < fanOut; i++ {
		if n.children[i].kind != childEmpty {
			return &InvariantViolation{Path: path, Reason: fmt.Sprintf("slot %d is beyond count but occupied", i)}
		}
	}

	return nil
}

func bytesCompare(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
