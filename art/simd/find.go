// Package simd provides the byte-search primitives used by Node16 to
// locate a key byte (or its sorted insertion point) among a node's
// children.
//
// The teacher package backs these with AVX2 assembly on amd64 and a scalar
// fallback elsewhere. This module keeps only the scalar form: without the
// ability to build or run the code, hand-verifying hand-written assembly
// correctness is not possible, so every architecture gets the portable
// fallback. See DESIGN.md.
package simd

// FindKeyIndex returns the index of key within keys[:n] (which must be
// sorted ascending), or -1 if key is not present.
func FindKeyIndex(keys *[16]byte, n int, key byte) int {
	for i := 0; i < n; i++ {
		if keys[i] == key {
			return i
		}

		if keys[i] > key {
			break
		}
	}

	return -1
}

// FindInsertPosition returns the index at which key should be inserted into
// keys[:n] (sorted ascending) to keep it sorted.
func FindInsertPosition(keys *[16]byte, n int, key byte) int {
	for i := 0; i < n; i++ {
		if key <= keys[i] {
			return i
		}
	}

	return n
}
