// Package cycle runs one void iteration of a core cycle calculation: it
// writes the solver input for a case, runs the solver, and reads back the
// 3D power distribution.
//
// Inputs are written to <coreDir>/<case>/komodo_<case>_<step>_<iteration>.inp
// with every occupied cell of every layer set to material 1.
package cycle
