package spatial

import "github.com/aninggo/spatial/kdtree"

// PointEuclidianSquare returns the squared-Euclidian metric over Point[C]
// keys, built from the same Coord accessor every point container's
// comparator uses.
func PointEuclidianSquare[C kdtree.Real]() kdtree.Metric[Point[C], C] {
	return kdtree.EuclidianSquare[Point[C], C](Coord[C])
}

// PointEuclidian returns the true Euclidian metric over Point[C] keys.
// Only available for floating point coordinates, since it takes a square
// root.
func PointEuclidian[C kdtree.FloatReal]() kdtree.Metric[Point[C], C] {
	return kdtree.Euclidian[Point[C], C](Coord[C])
}

// PointManhattan returns the sum-of-absolute-differences metric over
// Point[C] keys.
func PointManhattan[C kdtree.Real]() kdtree.Metric[Point[C], C] {
	return kdtree.Manhattan[Point[C], C](Coord[C])
}

// PointChebyshev returns the maximum-absolute-difference metric over
// Point[C] keys.
func PointChebyshev[C kdtree.Real]() kdtree.Metric[Point[C], C] {
	return kdtree.Chebyshev[Point[C], C](Coord[C])
}
