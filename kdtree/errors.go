package kdtree

// Error is the error type surfaced by this package. It is a defined string
// type, following the pattern of a simple const-declared error value, so
// package-level errors stay comparable with errors.Is without allocating.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidRank signals that a runtime-rank tree was constructed or
	// assigned a non-positive dimension.
	ErrInvalidRank Error = "kdtree: invalid rank"

	// ErrNegativeDistance signals that a neighbor iterator's LowerBound or
	// UpperBound was given a bound below zero.
	ErrNegativeDistance Error = "kdtree: negative distance bound"

	// ErrAllocation is defined for API completeness. No operation in this
	// package returns it: nodes are plain Go allocations and there is no
	// node pool.
	ErrAllocation Error = "kdtree: allocation failure"

	// ErrEmptyTree is defined for API completeness. No operation in this
	// package returns it: operations on an empty tree yield a past-the-end
	// iterator, and Rebuild on an empty tree leaves it empty.
	ErrEmptyTree Error = "kdtree: tree is empty"

	// ErrCorruptTree is returned by Check when a node substrate or
	// per-axis ordering invariant does not hold.
	ErrCorruptTree Error = "kdtree: invariant violation"

	// ErrInvalidBalance signals that a relaxed tree was constructed with a
	// balancing factor outside (0.5, 1).
	ErrInvalidBalance Error = "kdtree: balancing factor out of range"

	// ErrNotifierClosed is returned by Rebuilds when the tree's rebuild
	// broadcaster has already been closed (via Close) and cannot accept
	// new subscribers.
	ErrNotifierClosed Error = "kdtree: rebuild notifier closed"
)
