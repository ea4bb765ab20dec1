// Package dbg wraps core.Graph with the one extra structure a de Bruijn
// assembly graph needs on top of a generic multigraph: a conjugate
// (reverse-complement) involution over both vertices and edges.
//
// A vertex v and its conjugate vc = conjugate(v) satisfy conjugate(vc) == v.
// An edge e from u to v has conjugate(e) running from conjugate(v) to
// conjugate(u); conjugate(conjugate(e)) == e. Palindromic k-mers make v == vc
// legal; the involution still holds.
//
// Edge length (the number of bases the edge contributes) rides on core's
// existing Weight field — an assembly graph is already a weighted multigraph
// in core's terms, so no parallel length map is needed.
package dbg
