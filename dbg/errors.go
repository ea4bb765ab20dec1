package dbg

import "errors"

// Sentinel errors for the dbg package.
var (
	// ErrEmptyVertexID indicates a vertex ID argument was the empty string.
	ErrEmptyVertexID = errors.New("dbg: vertex id is empty")

	// ErrVertexNotFound indicates an operation referenced an unregistered vertex.
	ErrVertexNotFound = errors.New("dbg: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an unregistered edge.
	ErrEdgeNotFound = errors.New("dbg: edge not found")

	// ErrGraphInconsistent indicates a conjugate involution was violated: a
	// vertex or edge was asked to carry two different conjugates. Fatal.
	ErrGraphInconsistent = errors.New("dbg: conjugate involution violated")
)
