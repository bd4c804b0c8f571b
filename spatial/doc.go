/*
Package spatial provides the user-facing multi-dimensional associative
containers built on top of github.com/aninggo/spatial/kdtree: point and
box sets, maps and multimaps, each available in a frozen (explicitly
rebuilt) and relaxed (self-balancing) variant.

The core package knows nothing about points or boxes; it only orders
generic keys per axis through a Comparator. This package supplies that
missing piece — Point[C] and Box[C] key types, the accessor functions
that turn them into per-axis Real coordinates, and the bounds generators
and metrics built from those accessors — and wires them into the six
container families described in the project's design document.

Boxes are stored internally as 2k-dimension points (axis 2i holds the low
bound, axis 2i+1 the high bound), so a BoxSet reuses the exact same
kdtree.FrozenTree / kdtree.RelaxedTree engine a PointSet does.
*/
package spatial

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the same global core-tracer the kdtree package uses.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
