package spatial

import (
	"iter"

	"github.com/aninggo/spatial/kdtree"
)

// BoxSet stores unique axis-aligned boxes of a fixed rank k, internally
// as 2k-dimension points per the layout invariant in box.go. Region
// queries built with OverlapBounds/EnclosedBounds are the natural way to
// search it; Mapping and Neighbors operate on the encoded representation,
// see EncodeBox/DecodeBox.
type BoxSet[C kdtree.Real] struct {
	c *container[Point[C], Box[C], C]
	k int
}

func boxKeyOf[C kdtree.Real](b Box[C]) Point[C] { return EncodeBox(b) }

// NewBoxSet builds an empty frozen BoxSet of the given box rank k (so the
// underlying engine has rank 2k).
func NewBoxSet[C kdtree.Real](k int) (*BoxSet[C], error) {
	if k <= 0 {
		return nil, ErrInvalidRank
	}
	eng := newFrozenEngine[Point[C], Box[C], C](kdtree.StaticRank(2*k), boxComparator[C](), boxKeyOf[C])
	return &BoxSet[C]{c: &container[Point[C], Box[C], C]{eng: eng, keyOf: boxKeyOf[C]}, k: k}, nil
}

// NewRelaxedBoxSet builds an empty self-balancing BoxSet.
func NewRelaxedBoxSet[C kdtree.Real](k int, alpha float64) (*BoxSet[C], error) {
	if k <= 0 {
		return nil, ErrInvalidRank
	}
	eng, err := newRelaxedEngine[Point[C], Box[C], C](kdtree.StaticRank(2*k), boxComparator[C](), boxKeyOf[C], alpha)
	if err != nil {
		return nil, err
	}
	return &BoxSet[C]{c: &container[Point[C], Box[C], C]{eng: eng, keyOf: boxKeyOf[C]}, k: k}, nil
}

func (s *BoxSet[C]) Len() int    { return s.c.Len() }
func (s *BoxSet[C]) Empty() bool { return s.c.Empty() }

// Dim reports the box rank k, not the 2k-dimension encoded rank.
func (s *BoxSet[C]) Dim() int { return s.k }

func (s *BoxSet[C]) checkRank(b Box[C]) error {
	if b.Dim() != s.k || len(b.High) != s.k {
		return ErrRankMismatch
	}
	return nil
}

// Insert adds b, replacing any existing box with the same bounds.
func (s *BoxSet[C]) Insert(b Box[C]) error {
	if err := s.checkRank(b); err != nil {
		return err
	}
	s.c.upsert(Box[C]{Low: clonePoint(b.Low), High: clonePoint(b.High)})
	return nil
}

// Find reports whether b is a member of the set.
func (s *BoxSet[C]) Find(b Box[C]) bool {
	_, ok := s.c.find(EncodeBox(b))
	return ok
}

// Erase removes b, reporting whether it was present.
func (s *BoxSet[C]) Erase(b Box[C]) bool { return s.c.erase(EncodeBox(b)) }

func (s *BoxSet[C]) Check() error { return s.c.check() }

// Region returns an iterator over the boxes matched by pred, typically
// built with OverlapBounds or EnclosedBounds.
func (s *BoxSet[C]) Region(pred kdtree.RegionPredicate[Point[C]]) *kdtree.RegionIterator[Point[C], Box[C]] {
	return s.c.region(pred)
}

// Mapping returns an iterator over the set in ascending order of the
// given encoded axis (2i is box axis i's low bound, 2i+1 its high bound).
func (s *BoxSet[C]) Mapping(encodedAxis int) *kdtree.MappingIterator[Point[C], Box[C]] {
	return s.c.mapping(encodedAxis)
}

// Neighbors returns an iterator over the set in ascending order of
// distance to target (an encoded box, see EncodeBox) under metric.
func (s *BoxSet[C]) Neighbors(metric kdtree.Metric[Point[C], C], target Point[C]) *kdtree.NeighborIterator[Point[C], Box[C], C] {
	return s.c.neighbors(metric, target)
}

func (s *BoxSet[C]) All() iter.Seq[Box[C]] {
	return func(yield func(Box[C]) bool) { s.c.all(yield) }
}

func (s *BoxSet[C]) Copy(balancing bool) *BoxSet[C] {
	return &BoxSet[C]{c: s.c.copy(balancing), k: s.k}
}
