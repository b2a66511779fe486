package container

// node is a single link of a chain. A sentinel node holds the zero value of T
// and is never part of the logical sequence.
type node[T any] struct {
	value T
	next  *node[T]
}
