// Package extend implements PathExtender: the component that grows a
// single Path forward one edge at a time, consulting an extension.Chooser
// for candidates, a loopdetect.Detector for short-loop and cycling
// detection, and a shortloop.Resolver for short-loop traversal.
//
// SimplePathExtender implements the core growth loop. ScaffoldingPathExtender
// layers sink-jumping on top of it for when normal growth runs dry at a
// graph sink; ScaffoldingOnlyPathExtender performs only the sink jump and
// never the normal edge-by-edge growth.
package extend
