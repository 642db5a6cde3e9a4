package domain

import (
	interfaces "nucore/internal/domain/interfaces"
	types "nucore/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	CoreGeometry     = types.CoreGeometry
	GroupConstants   = types.GroupConstants
	CrossSectionSet  = types.CrossSectionSet
	DepletionRun     = types.DepletionRun
	Case             = types.Case
	IterationControl = types.IterationControl
	RawOutput        = types.RawOutput
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DocumentStore      = interfaces.DocumentStore
	DepletionRunStore  = interfaces.DepletionRunStore
	SolverRunner       = interfaces.SolverRunner
	PowerMapParser     = interfaces.PowerMapParser
	CycleService       = interfaces.CycleService
	XSecLibraryService = interfaces.XSecLibraryService
)

// DefaultIterationControl is re-exported from the types subpackage.
var DefaultIterationControl = types.DefaultIterationControl
