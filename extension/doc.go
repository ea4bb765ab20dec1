// Package extension provides the ExtensionChooser policies that decide which
// outgoing edge(s) a PathExtender should follow next.
//
// The contract is deliberately narrow: Filter(path, candidates) returns a
// subset of candidates — never an invented edge — and CountWeight exposes
// the same scoring for loop resolution to reuse. Simple is the
// identity/pass-through policy (every candidate survives, weight is a flat
// constant); Weighted scores candidates from externally-supplied paired-read
// evidence and, when a Library is attached, refines that score by aligning
// the path's recent edge-length/gap profile against the library's expected
// insert-size curve with Dynamic Time Warping.
//
// Building the paired-read evidence itself — k-mer counting, read mapping,
// insert-size estimation from raw reads — is upstream of this package; what
// arrives here is already a WeightFunc or a pre-summarized Library.
package extension
