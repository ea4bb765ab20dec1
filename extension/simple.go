package extension

import (
	"github.com/katalvlaran/contigo/bpath"
	"github.com/katalvlaran/contigo/dbg"
)

// Simple is the identity chooser: every candidate survives unchanged and
// every edge carries the same flat weight. It is the policy scenario S1
// exercises — with a single outgoing edge, any chooser (Simple included)
// returns it.
type Simple struct{}

// NewSimple returns a Simple chooser.
func NewSimple() *Simple { return &Simple{} }

// Filter returns a defensive copy of candidates, unmodified.
func (s *Simple) Filter(_ *bpath.Path, candidates []Candidate) []Candidate {
	return append([]Candidate(nil), candidates...)
}

// CountWeight always returns 1.0: Simple carries no paired-read evidence to
// differentiate edges.
func (s *Simple) CountWeight(_ *bpath.Path, _ dbg.EdgeID) float64 {
	return 1.0
}
