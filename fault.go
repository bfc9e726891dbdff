package tsimtree

import "fmt"

// InvalidSegmentError means a segment slot's length byte exceeds
// maxFragmentLen. It indicates memory corruption or a bug in this package,
// and is always raised via panic since Put/Get return no error.
type InvalidSegmentError struct {
	Length byte
}

func (e *InvalidSegmentError) Error() string {
	return fmt.Sprintf("tsimtree: invalid segment length %d (max %d)", e.Length, maxFragmentLen)
}

// StructuralFaultError means an internal precondition was violated, e.g.
// inserting into a full node without going through pushdown, or resolving
// to a child slot that has no child. It indicates a bug in this package's
// own descent/insertion logic, not caller misuse of Put/Get.
type StructuralFaultError struct {
	Reason string
}

func (e *StructuralFaultError) Error() string {
	return "tsimtree: structural fault: " + e.Reason
}

// poisonedError is raised when a Put, Get or Validate is attempted on a
// tree whose gate was poisoned by a prior panic while Put, Get or Validate
// held it.
type poisonedError struct{}

func (*poisonedError) Error() string {
	return "tsimtree: tree is poisoned by a prior panic while its gate was held and is no longer usable"
}

// ErrPoisoned is returned (via panic) by Put/Get once the tree's gate has
// been poisoned.
var ErrPoisoned error = &poisonedError{}
