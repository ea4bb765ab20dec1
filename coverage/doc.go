// Package coverage maintains the edge → covering-paths multiset that the
// extension core relies on to decide whether a seed still needs growing.
//
// Map implements bpath.Listener: once subscribed to a Path it keeps itself
// in sync with every PushBack/PushFront/PopBack/PopFront that path makes.
// Removing a path from a slot it was never registered in is logged as a
// warning and otherwise ignored — the map self-heals rather than aborting,
// matching the rest of this module's best-effort failure model for
// non-fatal inconsistencies.
package coverage
