package attendance

// MaxWorkingHours caps the working hours a single present record may carry.
const MaxWorkingHours = 24

// Normalize forces the dependent fields of a draft into a consistent shape:
// hour fields are meaningful only while present, and a project reference is
// meaningful only for project-typed records. An explicitly project-typed
// paid-leave draft is left untouched so Check can reject it; dropping the
// operator's project choice silently would hide a contradictory submission.
func Normalize(d Draft) Draft {
	if d.Presence != PresencePresent {
		d.WorkingHours = 0
		d.OvertimeHours = 0
	}
	if d.Type == TypeNormal {
		d.ProjectID = nil
	}
	return d
}

// Check reports the first invariant violated by d as a *RuleError, or nil.
// sameDay holds the worker's other records on the draft's date; a record
// whose ID matches d.ID (an update of itself) is ignored.
//
// Check does not normalize; callers that want dependent-field resets applied
// first should go through Validate.
func Check(d Draft, sameDay []Record) error {
	if d.Presence == PresencePaidLeave {
		if d.Type == TypeProject || d.ProjectID != nil {
			return ruleErr(RuleInvalidLeaveProject, "project_id",
				"paid leave cannot be recorded against a project")
		}
		if d.WorkingHours != 0 || d.OvertimeHours != 0 {
			return ruleErr(RuleNonZeroHoursOnAbsence, "working_hours",
				"paid leave cannot carry working or overtime hours")
		}
	}

	if d.Presence == PresenceAbsent && (d.WorkingHours != 0 || d.OvertimeHours != 0) {
		return ruleErr(RuleNonZeroHoursOnAbsence, "working_hours",
			"an absent record cannot carry working or overtime hours")
	}

	if d.Presence == PresencePresent {
		if d.WorkingHours < 0 || d.WorkingHours > MaxWorkingHours {
			return ruleErr(RuleHoursOutOfRange, "working_hours",
				"working hours must be between 0 and 24")
		}
		if d.OvertimeHours < 0 {
			return ruleErr(RuleHoursOutOfRange, "overtime_hours",
				"overtime hours must not be negative")
		}
	}

	if d.Type == TypeProject && (d.ProjectID == nil || *d.ProjectID == "") {
		return ruleErr(RuleMissingProjectReference, "project_id",
			"a project record requires a project reference")
	}

	if d.Presence == PresencePaidLeave {
		for _, r := range sameDay {
			if d.ID != nil && r.ID == *d.ID {
				continue
			}
			if r.Presence == PresencePaidLeave && r.SameDayAs(d.Date) {
				return ruleErr(RuleDuplicatePaidLeave, "presence",
					"a paid-leave record already exists for this date")
			}
		}
	}

	return nil
}

// Validate normalizes d and checks it against the record invariants.
// It returns the normalized draft on success; validating an already
// normalized, valid draft returns it unchanged. Pure: neither d nor sameDay
// is mutated.
func Validate(d Draft, sameDay []Record) (Draft, error) {
	d = Normalize(d)
	if err := Check(d, sameDay); err != nil {
		return Draft{}, err
	}
	return d, nil
}
