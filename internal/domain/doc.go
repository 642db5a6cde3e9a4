// Package domain defines the data models and interfaces shared across nucore.
// It contains plain types (geometry, depletion results, solver runs) and
// contracts (interfaces) only.
package domain
