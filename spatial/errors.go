package spatial

import "github.com/aninggo/spatial/kdtree"

// Re-exported so callers never need to import the core package just to
// compare errors with errors.Is.
const (
	ErrInvalidRank      = kdtree.ErrInvalidRank
	ErrNegativeDistance = kdtree.ErrNegativeDistance
	ErrAllocation       = kdtree.ErrAllocation
	ErrEmptyTree        = kdtree.ErrEmptyTree
	ErrCorruptTree      = kdtree.ErrCorruptTree
	ErrInvalidBalance   = kdtree.ErrInvalidBalance
)

// ErrRankMismatch is returned when a Point or Box's coordinate count does
// not match the rank a container was constructed with. The core package
// has no notion of "the wrong number of coordinates"; that check belongs
// here, at the boundary where user data is projected into a fixed-rank
// key.
const ErrRankMismatch = spatialError("spatial: coordinate count does not match container rank")

type spatialError string

func (e spatialError) Error() string { return string(e) }
