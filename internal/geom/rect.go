package geom

// Rect is an axis-aligned rectangle in rotated space with an inclusive
// lower corner and an exclusive upper corner.
type Rect struct {
	Lower Point
	Upper Point
}

// RectFor returns the rotated square covering the closed Manhattan diamond
// of the given radius around center.
func RectFor(center Point, radius int64) Rect {
	c := Rotate(center)
	return Rect{
		Lower: Point{X: c.X - radius, Y: c.Y - radius},
		Upper: Point{X: c.X + radius + 1, Y: c.Y + radius + 1},
	}
}

// Contains reports whether the rotated point r lies inside the rectangle.
func (rc Rect) Contains(r Point) bool {
	return r.X >= rc.Lower.X && r.X < rc.Upper.X &&
		r.Y >= rc.Lower.Y && r.Y < rc.Upper.Y
}
