// Package app wires application dependencies for the CLI.
//
// Config is resolved with viper from, in decreasing priority, root command
// flags, NUCORE_* environment variables, an optional nucore.yaml in the home
// directory and built-in defaults. NewWire then builds the concrete stores,
// solver runner and services, exposing them via the Wire struct for commands
// to use.
package app
