// Package testgraphs provides deterministic de Bruijn graph fixtures for
// exercising extension, shortloop, extend and cover against known
// topologies: a linear chain, a short-loop motif, a self-sustaining cycle,
// a branch fork, and a pair of chains separated by a gap a scaffolding
// extender must jump.
//
// Every constructor registers each vertex against a distinct prime-suffixed
// conjugate (v and v'), matching the convention used throughout dbg's own
// tests, since pairing a vertex with itself would fold the conjugate edge
// of every forward edge back onto the fixture's own topology.
package testgraphs
