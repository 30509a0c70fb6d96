package geom

// Rotate maps an original-space point to rotated space: (x−y, x+y).
// Manhattan distance in original space equals Chebyshev distance in the
// rotated basis, so diamonds become squares.
func Rotate(p Point) Point {
	return Point{X: p.X - p.Y, Y: p.X + p.Y}
}

// Unrotate is the inverse of Rotate. The result is only a lattice point
// when SameParity(r) holds; otherwise the halving truncates.
func Unrotate(r Point) Point {
	return Point{X: (r.X + r.Y) / 2, Y: (r.Y - r.X) / 2}
}

// SameParity reports whether u and v of a rotated point are both even or
// both odd, i.e. whether the point is the image of an original lattice point.
func SameParity(r Point) bool {
	return (r.X-r.Y)%2 == 0
}
