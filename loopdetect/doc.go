// Package loopdetect classifies cycling behavior in a growing Path: whether
// its current head participates in a short (2-edge) loop-and-exit motif, and
// whether its trailing edges repeat a simple cycle too many times.
//
// The repeat check compares period-sized windows walked back from the
// path's tail position by position; it does no rotation-invariant
// canonicalization.
package loopdetect
