// Package shortloop resolves the short-loop motif a PathExtender hits when
// its head edge ends at a vertex with exactly two outgoing edges: one
// closing back to the head's start (the loop edge) and one leaving (the
// exit edge). Simple always traverses the loop once; Weighted searches a
// bounded number of extra traversals using an extension.Chooser's
// CountWeight scoring.
package shortloop
