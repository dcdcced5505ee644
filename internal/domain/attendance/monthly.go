package attendance

// Scope is the partition filter applied when aggregating monthly totals.
type Scope string

const (
	ScopeAll     Scope = "all"
	ScopeNormal  Scope = "normal"
	ScopeProject Scope = "project"
)

// ParseScope maps a query-string value to a Scope; empty defaults to all.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case "":
		return ScopeAll, nil
	case ScopeAll, ScopeNormal, ScopeProject:
		return Scope(s), nil
	}
	return "", ErrInvalidScope
}

// ScopeTotals are the per-partition monthly totals payroll consumes.
// PresentDays counts distinct dates with at least one present record in the
// partition; a date with two present records still counts once. Hour fields
// are additive sums across records, since partial-day records stack.
type ScopeTotals struct {
	PresentDays   int
	WorkingHours  float64
	OvertimeHours float64
}

// MonthlySummary is the derived per-type aggregation of one worker's month.
// Recomputed on every fetch; it has no lifecycle of its own. PaidLeaveDays
// is a pass-through count for callers that report leave; paid-leave records
// contribute to no hour sum and to no PresentDays count.
type MonthlySummary struct {
	Overall       ScopeTotals
	Normal        ScopeTotals
	Project       ScopeTotals
	PaidLeaveDays int
}

// ForScope picks the totals of one partition out of the summary.
func (m MonthlySummary) ForScope(scope Scope) ScopeTotals {
	switch scope {
	case ScopeNormal:
		return m.Normal
	case ScopeProject:
		return m.Project
	default:
		return m.Overall
	}
}

// Summarize aggregates one worker's records for one calendar month. An empty
// input yields zero-valued totals, never an error.
func Summarize(records []Record) MonthlySummary {
	var summary MonthlySummary

	overallDays := make(map[string]struct{})
	normalDays := make(map[string]struct{})
	projectDays := make(map[string]struct{})
	leaveDays := make(map[string]struct{})

	for _, r := range records {
		key := DateKey(r.Date)

		if r.Presence == PresencePaidLeave {
			leaveDays[key] = struct{}{}
			continue
		}

		if r.Presence == PresencePresent {
			overallDays[key] = struct{}{}
		}

		switch r.Type {
		case TypeProject:
			if r.Presence == PresencePresent {
				projectDays[key] = struct{}{}
			}
			summary.Project.WorkingHours += r.WorkingHours
			summary.Project.OvertimeHours += r.OvertimeHours
		default:
			if r.Presence == PresencePresent {
				normalDays[key] = struct{}{}
			}
			summary.Normal.WorkingHours += r.WorkingHours
			summary.Normal.OvertimeHours += r.OvertimeHours
		}
	}

	summary.Overall.WorkingHours = summary.Normal.WorkingHours + summary.Project.WorkingHours
	summary.Overall.OvertimeHours = summary.Normal.OvertimeHours + summary.Project.OvertimeHours
	summary.Overall.PresentDays = len(overallDays)
	summary.Normal.PresentDays = len(normalDays)
	summary.Project.PresentDays = len(projectDays)
	summary.PaidLeaveDays = len(leaveDays)

	return summary
}

// FilterByScope returns the records belonging to one partition. Paid-leave
// records carry the normal type and therefore travel with the normal
// partition, matching how they are stored.
func FilterByScope(records []Record, scope Scope) []Record {
	if scope == ScopeAll || scope == "" {
		return records
	}
	want := TypeNormal
	if scope == ScopeProject {
		want = TypeProject
	}
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Type == want {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
