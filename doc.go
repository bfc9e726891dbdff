// Package tsimtree implements an in-memory ordered key-value map keyed by
// arbitrary byte strings, backed by a cache-conscious radix tree (the TSIM
// tree). Nodes are fixed-fanout, prefix-compressed, and bounded in
// stored-segment length so that descent touches a predictable, small amount
// of memory per level.
//
// The tree is single-writer/multi-reader: any number of Get calls may run
// concurrently, but Put calls are serialized against everything else. There
// is no persistence, no serialization, no iteration, and no deletion; the
// public surface is exactly Put and Get.
package tsimtree
