package diag

// SliceBytes estimates the byte footprint of a slice backing array,
// including unused capacity, given its element size in bytes. Every
// package's SizeOf method composes its structures from this and
// StringBytes rather than reimplementing the arithmetic.
func SliceBytes[T any](s []T, elemSize int) int {
	return cap(s) * elemSize
}

// StringBytes estimates the byte footprint of a Go string: its UTF-8
// byte length plus the two-word header.
func StringBytes(s string) int {
	return len(s) + 16
}

// PointerOverhead is the estimated per-reference overhead (a pointer
// word) added by a map or slice of pointers/interfaces, used when a
// component's storage holds boxed values rather than inline structs.
const PointerOverhead = 8
