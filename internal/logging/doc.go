// Package logging builds the process logger: zap underneath, exposed as a
// logr.Logger so callers log with key/value pairs and verbosity levels.
package logging
