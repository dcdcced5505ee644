package attendance

import "errors"

// Rule identifies the invariant a rejected draft violates. A rejected draft
// always names exactly one primary rule.
type Rule string

const (
	RuleInvalidLeaveProject     Rule = "InvalidLeaveProject"
	RuleNonZeroHoursOnAbsence   Rule = "NonZeroHoursOnAbsence"
	RuleHoursOutOfRange         Rule = "HoursOutOfRange"
	RuleMissingProjectReference Rule = "MissingProjectReference"
	RuleDuplicatePaidLeave      Rule = "DuplicatePaidLeave"
)

// RuleError is a validation failure raised before any persistence call.
type RuleError struct {
	Rule    Rule
	Field   string
	Message string
}

func (e *RuleError) Error() string {
	return string(e.Rule) + ": " + e.Message
}

func ruleErr(rule Rule, field, message string) *RuleError {
	return &RuleError{Rule: rule, Field: field, Message: message}
}

// Attendance domain errors
var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidScope   = errors.New("scope must be one of: all, normal, project")
)
