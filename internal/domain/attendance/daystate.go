package attendance

import "time"

// Badge is the single visual state a day collapses to when a worker holds
// several records on it.
type Badge string

const (
	BadgeEmpty     Badge = "empty"
	BadgePresent   Badge = "present"
	BadgeAbsent    Badge = "absent"
	BadgeMixed     Badge = "mixed"
	BadgePaidLeave Badge = "paid_leave"
)

// DayState is the derived state of one worker's calendar day. It is computed
// from the day's record set on every fetch and never persisted.
type DayState struct {
	Date         time.Time
	HasPaidLeave bool
	HasPresent   bool
	HasAbsent    bool
	RecordCount  int
	Badge        Badge
}

func (s DayState) IsEmpty() bool {
	return s.RecordCount == 0
}

// ResolveDay collapses the records of one (worker, date) pair into a single
// DayState. Paid leave is its own category, not a flavor of absence, so a
// paid-leave record never sets HasAbsent. Badge precedence, highest first:
// paid leave, mixed, present, absent, empty.
//
// ResolveDay is total over any record set and order-independent; the input
// slice is not mutated.
func ResolveDay(day time.Time, records []Record) DayState {
	state := DayState{
		Date:        day,
		RecordCount: len(records),
	}

	for _, r := range records {
		switch r.Presence {
		case PresencePaidLeave:
			state.HasPaidLeave = true
		case PresencePresent:
			state.HasPresent = true
		case PresenceAbsent:
			state.HasAbsent = true
		}
	}

	switch {
	case state.HasPaidLeave:
		state.Badge = BadgePaidLeave
	case state.HasPresent && state.HasAbsent:
		state.Badge = BadgeMixed
	case state.HasPresent:
		state.Badge = BadgePresent
	case state.HasAbsent:
		state.Badge = BadgeAbsent
	default:
		state.Badge = BadgeEmpty
	}

	return state
}

// GroupByDate buckets a month's records per calendar day, keyed by the
// YYYY-MM-DD date key.
func GroupByDate(records []Record) map[string][]Record {
	grouped := make(map[string][]Record)
	for _, r := range records {
		key := DateKey(r.Date)
		grouped[key] = append(grouped[key], r)
	}
	return grouped
}
