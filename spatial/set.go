package spatial

import (
	"iter"

	"github.com/aninggo/spatial/kdtree"
)

// PointSet stores unique points of a fixed rank, ordered per axis and
// queryable by mapping order, orthogonal region, and metric distance to a
// target. Two variants exist behind one constructor pair, per SPEC_FULL.md
// section 6.E: NewPointSet builds a frozen tree, NewRelaxedPointSet a
// self-balancing one.
type PointSet[C kdtree.Real] struct {
	c *container[Point[C], Point[C], C]
}

func pointKeyOf[C kdtree.Real](p Point[C]) Point[C] { return p }

// NewPointSet builds an empty frozen PointSet of the given rank.
func NewPointSet[C kdtree.Real](rank int) (*PointSet[C], error) {
	if rank <= 0 {
		return nil, ErrInvalidRank
	}
	eng := newFrozenEngine[Point[C], Point[C], C](kdtree.StaticRank(rank), pointComparator[C](), pointKeyOf[C])
	return &PointSet[C]{c: &container[Point[C], Point[C], C]{eng: eng, keyOf: pointKeyOf[C]}}, nil
}

// NewRelaxedPointSet builds an empty self-balancing PointSet of the given
// rank and balancing factor (see kdtree.DefaultBalance).
func NewRelaxedPointSet[C kdtree.Real](rank int, alpha float64) (*PointSet[C], error) {
	if rank <= 0 {
		return nil, ErrInvalidRank
	}
	eng, err := newRelaxedEngine[Point[C], Point[C], C](kdtree.StaticRank(rank), pointComparator[C](), pointKeyOf[C], alpha)
	if err != nil {
		return nil, err
	}
	return &PointSet[C]{c: &container[Point[C], Point[C], C]{eng: eng, keyOf: pointKeyOf[C]}}, nil
}

func (s *PointSet[C]) checkRank(p Point[C]) error {
	if len(p) != s.c.Dim() {
		return ErrRankMismatch
	}
	return nil
}

// Len reports the number of stored points.
func (s *PointSet[C]) Len() int { return s.c.Len() }

// Empty reports whether the set holds no points.
func (s *PointSet[C]) Empty() bool { return s.c.Empty() }

// Dim reports the set's fixed rank.
func (s *PointSet[C]) Dim() int { return s.c.Dim() }

// Insert adds p, replacing any existing point with the same coordinates.
func (s *PointSet[C]) Insert(p Point[C]) error {
	if err := s.checkRank(p); err != nil {
		return err
	}
	s.c.upsert(clonePoint(p))
	return nil
}

// Find reports whether p is a member of the set.
func (s *PointSet[C]) Find(p Point[C]) bool {
	_, ok := s.c.find(p)
	return ok
}

// Erase removes p, reporting whether it was present.
func (s *PointSet[C]) Erase(p Point[C]) bool { return s.c.erase(p) }

// Check validates every node substrate and ordering invariant; it is
// meant for tests, not production hot paths.
func (s *PointSet[C]) Check() error { return s.c.check() }

// Mapping returns an iterator over the set in ascending order of the
// given axis.
func (s *PointSet[C]) Mapping(axis int) *kdtree.MappingIterator[Point[C], Point[C]] {
	return s.c.mapping(axis)
}

// Region returns an iterator over the points matched by pred.
func (s *PointSet[C]) Region(pred kdtree.RegionPredicate[Point[C]]) *kdtree.RegionIterator[Point[C], Point[C]] {
	return s.c.region(pred)
}

// Neighbors returns an iterator over the set in ascending order of
// distance to target under metric.
func (s *PointSet[C]) Neighbors(metric kdtree.Metric[Point[C], C], target Point[C]) *kdtree.NeighborIterator[Point[C], Point[C], C] {
	return s.c.neighbors(metric, target)
}

// All returns a range-over-func iterator visiting every stored point.
func (s *PointSet[C]) All() iter.Seq[Point[C]] {
	return func(yield func(Point[C]) bool) { s.c.all(yield) }
}

// Copy returns an independent copy of the set. When balancing is true the
// copy is rebuilt by median partition (for both frozen and relaxed sets)
// rather than cloned in its current shape.
func (s *PointSet[C]) Copy(balancing bool) *PointSet[C] {
	return &PointSet[C]{c: s.c.copy(balancing)}
}
