package core

import "errors"

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation error")

// Rule names the invariant or contract a ValidationError reports.
type Rule string

const (
	RuleName         Rule = "name"
	RuleSizeType     Rule = "size-type"
	RuleRowsType     Rule = "rows-type"
	RuleRowsElemType Rule = "rows-element-type"
	RuleSizePositive Rule = "size-positive"
	RuleMaxRow       Rule = "max-row"
	RuleRowCount     Rule = "row-count"
	RuleParity       Rule = "parity"
	RuleRowPositive  Rule = "row-positive"
	RuleSymmetric    Rule = "symmetric"
	RuleMonotonic    Rule = "monotonic"
	RulePointRange   Rule = "point-range"
	RulePointOutside Rule = "point-outside"
	RuleIndexK       Rule = "index-k"
	RuleShape        Rule = "shape"
	RuleElementType  Rule = "element-type"
	RuleMapSize      Rule = "map-size"
	RuleFillLength   Rule = "fill-length"
	RuleGeometry     Rule = "geometry"
)

// ValidationError reports a violated invariant. Error returns Msg verbatim so
// callers and tests can match the exact text.
type ValidationError struct {
	Rule Rule
	Msg  string
}

func (e *ValidationError) Error() string { return e.Msg }

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid returns a *ValidationError for rule with the given message.
func Invalid(rule Rule, msg string) *ValidationError {
	return &ValidationError{Rule: rule, Msg: msg}
}

// RuleOf returns the Rule of err if it wraps a *ValidationError.
func RuleOf(err error) (Rule, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Rule, true
	}
	return "", false
}
