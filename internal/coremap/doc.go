// Package coremap provides typed overlays on a core footprint.
//
//   - Map[T]      one optional value per radial cell (size x size)
//   - ListMap[T]  an ordered list of optional values per radial cell,
//     typically one entry per axial layer
//   - Axial[T]    one value per axial layer, independent of the footprint
//
// T is one of float64, int, string or bool. Overlays are built from raw
// nested values as produced by a YAML or JSON decoder, and every leaf is
// checked against T at construction, so a mistyped value fails when the file
// is loaded rather than deep inside a later computation. Absent cells are a
// distinct Cell state and never a zero value.
//
// Overlays do not hold a *core.Core. Accessors take the core explicitly and
// reject points outside its footprint; AssertMapSize cross-checks the grid
// dimensions and is never run implicitly.
package coremap
