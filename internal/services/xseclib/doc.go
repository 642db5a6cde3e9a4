// Package xseclib assembles the solver cross-section library from persisted
// depletion runs.
//
// Runs are loaded from every input_data.yaml below a results directory,
// ordered by void fraction and then power, and written as one material per
// exposure step to <outDir>/komodo_XSEC.txt.
package xseclib
