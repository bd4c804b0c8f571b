package kdtree

// Real constrains the coordinate and distance types usable with the
// prebuilt comparators and metrics. None of the retrieved example
// repositories vendor a numeric-only constraint package, so this narrow
// interface is written directly instead of imported; see DESIGN.md.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// FloatReal further restricts Real to the floating-point kinds, required
// wherever a metric needs a true square root (the Euclidian metric).
type FloatReal interface {
	~float32 | ~float64
}
