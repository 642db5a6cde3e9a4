// Package main is a stand-in for the KOMODO solver used during development
// and tests.
//
// Usage
//
//	fakekomodo <input.inp>
//
// It reads the card input, recovers the core footprint from the first
// layer's material map and writes a synthetic 3D power distribution to
// <input.inp>_3d_power.out: a chopped cosine in the axial direction times a
// cosine of the distance from the core centre, normalised to a core average
// of 1. On success it prints the solver's normal exit marker to stdout; on
// failure it writes the error to stderr and exits with status 1, which is
// how the real solver reports problems to the runner.
package main
