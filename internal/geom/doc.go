// Package geom owns the integer lattice geometry shared by the sensor
// coverage queries.
//
// Responsibilities: points and Manhattan distance, the 45° rotation
// (u, v) = (x−y, x+y) under which Manhattan diamonds become axis-aligned
// squares, rotated rectangles and original-space bounds.
// Key types: Point, Rect, Bounds.
//
// All arithmetic is exact int64; there is no floating point in this package.
package geom
