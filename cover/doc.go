// Package cover implements CoveringDriver: the top-level fixed-point loop
// that takes a set of seed paths, grows both orientations of each with a
// configured PathExtender, deduplicates subpaths subsumed by longer
// covering paths, and filters the result by minimum length.
//
// Diagnostics that the original design logged at warning level are
// returned as data (see Driver.Run's Report) rather than written through a
// logging framework; callers decide whether and how to surface them.
package cover
