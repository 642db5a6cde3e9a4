// Package komodo writes and reads the card-based text files of the KOMODO
// nodal diffusion solver.
//
// A solver input is a sequence of cards (%MODE, %CASE, %XSEC, %GEOM, %ITER,
// %OUTP, %VTK), each a fixed-order block of whitespace separated values with
// '!' comments. Builder assembles one from a core geometry and one material
// map per axial layer; ReadInput parses it back.
//
// The solver's 3D power output holds one block per axial layer, introduced
// by a "z = <n>" line, followed by a two line offset and one row per core
// row. Each row carries an 8 character label and the values of the occupied
// cells only. ParsePowerMap expands those rows back onto the full grid.
//
// The cross-section library (WriteLibrary, ReadLibrary) and the process
// Runner complete the round trip to the external executable.
package komodo
