package kdtree

import (
	"context"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func testContext() (context.Context, context.CancelFunc) {
	return context.WithCancel(context.Background())
}

// setup wires the package tracer to the current test, in the style every
// test in this module uses; call it first thing in each test function.
func setup(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

type point2 struct {
	x, y int
}

func point2Coord(p point2, axis int) int {
	if axis == 0 {
		return p.x
	}
	return p.y
}

func point2Comparator() OrderedComparator[point2, int] {
	return OrderedComparator[point2, int]{Coord: point2Coord}
}

func identity[V any](v V) V { return v }
