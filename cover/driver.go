package cover

import (
	"fmt"

	"github.com/katalvlaran/contigo/bpath"
)

// Run executes the covering procedure of §4.5 over seeds, returning a
// paired result container (one entry per seed, forward and conjugate
// aligned by index) and a diagnostic Report. Cleared paths are preserved
// in the result as empty paths; callers must skip them rather than treat
// them as missing.
func (d *Driver) Run(seeds []SeedPair) ([]SeedPair, Report) {
	var results []SeedPair
	var used []SeedPair
	var diagnostics []string

	for iter := 0; iter < len(seeds) && !d.allCovered(seeds); iter++ {
		// Snapshot which seeds are uncovered at the start of this pass: all
		// of them grow within the same pass regardless of coverage overlap
		// discovered mid-pass, so dedup (not premature skipping) is what
		// resolves redundancy between seeds that turn out to cover the same
		// edges.
		var pending []SeedPair
		for _, seed := range seeds {
			if !d.isCovered(seed.Forward) {
				pending = append(pending, seed)
			}
		}
		if len(pending) == 0 {
			break
		}

		for _, seed := range pending {
			fwd := d.cloneInto(seed.Forward)
			conj := d.cloneInto(seed.Conjugate)
			fwd.SetConjugate(conj)
			conj.SetConjugate(fwd)

			pair := SeedPair{Forward: fwd, Conjugate: conj}
			results = append(results, pair)
			used = append(used, pair)

			d.growPair(fwd, conj)
		}
		diagnostics = append(diagnostics, d.removeSubpaths(used)...)
	}

	diagnostics = append(diagnostics, d.covMap.Warnings()...)
	d.applyLengthFilter(results)

	report := Report{Diagnostics: diagnostics}
	if sr, ok := d.extender.(sizesReporter); ok {
		report.ScaffoldSizes = sr.Sizes()
	}

	return results, report
}

// growPair alternately grows fwd and its conjugate until a pass advances
// neither clone's back-edge counter, matching "repeat while check_previous
// reports the other clone's back has advanced" (§9(a)): each clone's
// CheckPrevious is consulted against its own count from the previous pass,
// so a pass that grows only one side still loops once more for the other
// to re-attempt against the freshly extended state.
func (d *Driver) growPair(fwd, conj *bpath.Path) {
	lastFwd := fwd.BackEdgeCount()
	lastConj := conj.BackEdgeCount()
	for {
		d.extender.Grow(fwd)
		d.extender.Grow(conj)

		fwdAdvanced, fwdNow := fwd.CheckPrevious(lastFwd)
		conjAdvanced, conjNow := conj.CheckPrevious(lastConj)
		lastFwd, lastConj = fwdNow, conjNow

		if !fwdAdvanced && !conjAdvanced {
			return
		}
	}
}

// cloneInto builds a fresh path subscribed to the driver's coverage map,
// replaying seed's existing edges into it so the map is consistent from
// the moment the clone exists.
func (d *Driver) cloneInto(seed *bpath.Path) *bpath.Path {
	clone := bpath.New(d.arena.NewID(), true, d.covMap)
	for _, eg := range seed.Edges() {
		clone.PushBack(eg.Edge, eg.Gap)
	}

	return clone
}

// isCovered reports whether every edge of path already has coverage ≥ 1
// in the driver's map (vacuously true for an empty path).
func (d *Driver) isCovered(path *bpath.Path) bool {
	for _, eg := range path.Edges() {
		if d.covMap.Coverage(eg.Edge) == 0 {
			return false
		}
	}

	return true
}

func (d *Driver) allCovered(seeds []SeedPair) bool {
	for _, s := range seeds {
		if !d.isCovered(s.Forward) {
			return false
		}
	}

	return true
}

// removeSubpaths implements §4.6: a used seed fully subsumed by some other
// covering path (neither itself nor its conjugate) carries no additional
// information and is cleared.
func (d *Driver) removeSubpaths(used []SeedPair) []string {
	var diagnostics []string
	for _, pair := range used {
		seed := pair.Forward
		if d.covMap.PathUniqueCoverage(seed) <= 1 {
			continue
		}

		covering := map[bpath.PathID]*bpath.Path{}
		for _, eg := range seed.Edges() {
			for _, p := range d.covMap.CoveringPaths(eg.Edge) {
				covering[p.ID()] = p
			}
		}

		otherFound := false
		for id, p := range covering {
			if id == seed.ID() || id == pair.Conjugate.ID() {
				continue
			}
			otherFound = true
			if !p.ContainsSubpath(seed) {
				diagnostics = append(diagnostics, fmt.Sprintf(
					"cover: path %d covers seed %d's edges without containing it as a subpath", p.ID(), seed.ID()))
			}
		}

		if otherFound {
			seed.Clear()
		}
	}

	return diagnostics
}

// applyLengthFilter clears (not removes) every result pair shorter than
// minLen, preserving the result container's shape.
func (d *Driver) applyLengthFilter(results []SeedPair) {
	if d.minLen <= 0 {
		return
	}
	for _, pair := range results {
		if pair.Forward.Len() < d.minLen {
			pair.Forward.Clear()
			pair.Conjugate.Clear()
		}
	}
}
