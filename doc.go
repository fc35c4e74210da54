// Package tbox implements temporal-numeric bounding boxes: two-dimensional
// intervals combining a numeric value range and a time range, each bound
// independently open or closed. It couples the box type with its relation
// algebra, contiguity-checked set operations, expansion, and deterministic
// tiling into origin-aligned grids of half-open sub-boxes.
//
// Typical usage looks like:
//   - Construct a TBox from a literal, a value/time pair, or a temporal
//     value's envelope
//   - Apply relation predicates (Overlaps, Contains, Adjacent, ...) or set
//     operations (Union, Intersection, Expand) against other boxes
//   - Tile a box into a Grid for partitioning or indexing
//   - Round-trip boxes through the textual literal or the binary encoding
//
// All box operations are pure computations over immutable values, so boxes
// may be shared freely across goroutines. The optional Store (Redis) and
// BoltIndex (bbolt) persist and index encoded boxes for services that need
// durability.
package tbox
