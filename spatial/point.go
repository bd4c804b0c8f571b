package spatial

import "github.com/aninggo/spatial/kdtree"

// Point is a coordinate tuple of rank len(Point). Containers built over
// Point[C] treat it as a plain value; two points are equal, for the
// purposes of Find and Erase, iff every coordinate matches.
type Point[C kdtree.Real] []C

// Dim reports the point's rank.
func (p Point[C]) Dim() int { return len(p) }

// Coord returns the coordinate on the given axis. It is the accessor
// every prebuilt comparator and metric in this package is built from.
func Coord[C kdtree.Real](p Point[C], axis int) C { return p[axis] }

// pointComparator returns the OrderedComparator every point container
// uses.
func pointComparator[C kdtree.Real]() kdtree.OrderedComparator[Point[C], C] {
	return kdtree.OrderedComparator[Point[C], C]{Coord: Coord[C]}
}

// clonePoint copies p so a container never aliases caller-owned slices.
func clonePoint[C kdtree.Real](p Point[C]) Point[C] {
	cp := make(Point[C], len(p))
	copy(cp, p)
	return cp
}
