// Package bpath implements growable assembly paths: an ordered sequence of
// (EdgeId, gap) pairs that emits front/back mutation events to listeners
// registered at construction time.
//
// A Path is not safe for concurrent use — per the single-threaded cooperative
// model a single extension run assumes, paths, the coverage map, and the
// loop detector are all sequential-access structures. Arena hands out unique
// PathIDs and is the only piece of this package touched from more than one
// goroutine (seed setup may construct several paths concurrently before the
// single-threaded growth phase begins).
package bpath
