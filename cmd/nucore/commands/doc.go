// Package commands defines the nucore CLI and wires dependencies for subcommands.
//
// Commands
//
//   - config show|save   Print or persist the resolved configuration
//   - core show          Validate a core footprint and print its membership map
//   - map check          Validate a typed core map against a core
//   - komodo build       Write the solver input of one void iteration
//   - komodo run         Build, run the solver and print the layer power sums
//   - komodo parse       Parse an existing 3D power output
//   - komodo diff        Line diff of two solver inputs
//   - xsec build|show    Assemble or inspect the cross-section library
//   - lattice pyramid|ba Print generated assembly lattice maps
//
// # Implementation
//
// The root command resolves the configuration (flags, NUCORE_* environment,
// nucore.yaml) and builds the dependency graph (stores, solver runner,
// services) before any subcommand runs, so handlers share one app context.
package commands
