package spatial

import "github.com/aninggo/spatial/kdtree"

// Box is an axis-aligned box: the closed interval [Low[i], High[i]] on
// every axis i. Both slices must have the same length; that length is
// the box's rank.
type Box[C kdtree.Real] struct {
	Low, High Point[C]
}

// Dim reports the box's rank (the length of Low, which must equal the
// length of High).
func (b Box[C]) Dim() int { return len(b.Low) }

// toPoint projects a box of rank k onto a Point[C] of rank 2k, per the
// layout invariant: axis 2i holds the low bound on box axis i, axis
// 2i+1 holds the high bound. Box containers store and compare these
// encoded points, never the Box value itself, so the shared kdtree
// engine never needs to know about boxes.
func (b Box[C]) toPoint() Point[C] {
	k := b.Dim()
	p := make(Point[C], 2*k)
	for i := 0; i < k; i++ {
		p[2*i] = b.Low[i]
		p[2*i+1] = b.High[i]
	}
	return p
}

// boxFromPoint reverses toPoint.
func boxFromPoint[C kdtree.Real](p Point[C]) Box[C] {
	k := len(p) / 2
	b := Box[C]{Low: make(Point[C], k), High: make(Point[C], k)}
	for i := 0; i < k; i++ {
		b.Low[i] = p[2*i]
		b.High[i] = p[2*i+1]
	}
	return b
}

// EncodeBox exposes the box-to-point projection for callers that need to
// build a Neighbors target or a Mapping bound over a BoxSet/BoxMap
// directly, without going through a region predicate.
func EncodeBox[C kdtree.Real](b Box[C]) Point[C] { return b.toPoint() }

// DecodeBox reverses EncodeBox.
func DecodeBox[C kdtree.Real](p Point[C]) Box[C] { return boxFromPoint(p) }

// boxComparator returns the comparator every box container uses, over the
// 2k-dimension encoded representation.
func boxComparator[C kdtree.Real]() kdtree.OrderedComparator[Point[C], C] {
	return pointComparator[C]()
}
