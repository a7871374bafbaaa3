// Package events models event posters: declarative rules that fire a named
// simulation action when a watched value crosses a threshold.
//
// A Poster holds display bounds and an ordered list of Thresholds; each
// Threshold holds an ordered list of Events. The order of Events is part of
// the contract, since a simulation engine consumes them one at a time in
// declared order each time the threshold is crossed. Decode and Encode keep
// it intact.
package events
