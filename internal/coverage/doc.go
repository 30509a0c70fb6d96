// Package coverage answers the two sensor-field queries.
//
// Row coverage counts the integer positions on one horizontal line that
// fall inside some sensor's exclusion diamond and are not known beacons.
// It merges per-sensor cross-sections with the interval package.
//
// Gap finding locates the single lattice point of a bounded region that no
// sensor covers. Diamonds are rotated into axis-aligned squares, the square
// edges form a sweep grid, and only unit cells of that grid can hold an
// isolated uncovered point. The work is proportional to the sensor count,
// not the region's area.
//
// Both queries only read the sensor slice they are given and may run
// concurrently.
package coverage
