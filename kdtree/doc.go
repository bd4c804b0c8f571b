/*
Package kdtree implements the core of a multi-dimensional associative
container: the node substrate shared by both tree variants, the frozen and
relaxed k-d trees themselves, and the three query iterator families
(mapping, region, neighbor) that walk them.

This package does not know about points, boxes or sets/maps — those are
user-facing shapes built on top of it (see the parent package). It only
knows about keys ordered per axis by a Comparator, a Rank giving the
number of axes, and, for neighbor queries, a Metric.

# Status

  - node substrate: header sentinel, min/max, increment/decrement,
    preorder traversal, swap — duplicated once per link mode (frozen,
    relaxed), matching the two independent link representations of the
    library this package continues.
  - frozen tree: insert, erase, bulk median rebuild, preorder copy.
  - relaxed tree: insert/erase with weight maintenance and scapegoat-style
    subtree rebuild when the alpha-balance condition is violated.
  - mapping, region and neighbor iterators, shared by both tree variants
    through the unexported link interface and treeAccess struct.
*/
package kdtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
