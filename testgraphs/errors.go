package testgraphs

import "errors"

// ErrTooFewVertices indicates a size parameter fell below a constructor's
// minimum (a chain needs at least 2 vertices, a cycle at least 2, each
// scaffolding chain at least 1 edge).
var ErrTooFewVertices = errors.New("testgraphs: parameter too small")
