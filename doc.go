// Package contigo is a path-extension core for de Bruijn assembly graphs.
//
// 🚀 What is contigo?
//
//	A thread-safe toolkit that grows seed paths in a de Bruijn graph into
//	maximal contigs and scaffolds:
//
//	  • dbg        — the assembly graph: vertices/edges plus conjugate
//	                  (reverse-complement) involution
//	  • bpath      — growable paths with front/back listener events
//	  • coverage   — edge → covering-paths map, self-healing on removal
//	  • loopdetect — short-loop motifs and repeated-cycle detection on a path's suffix
//	  • extension  — pluggable ExtensionChooser policies (simple, weighted)
//	  • shortloop  — short-loop resolution (simple and weighted)
//	  • extend     — PathExtender variants, including scaffolding jumps
//	  • cover      — the outer fixed-point driver that covers a graph
//
// Under the hood, everything keeps the same separate-RWMutex-per-concern
// discipline, sentinel errors wrapped with fmt.Errorf, and functional-option
// configuration that the rest of this module's packages use.
//
//	go get github.com/katalvlaran/contigo
package contigo
