package attendance

import "time"

// DefaultWorkingHours is applied when a day is flipped to present and no
// hours were carried over from a previous state.
const DefaultWorkingHours = 8

// EditState is the presence/type selection of one record while it is being
// edited. All transitions are pure: they return the successor state and
// leave the receiver untouched, so a caller can keep the previous state for
// undo or comparison.
//
// The transition table is the authoritative business rule for how dependent
// fields reset, independent of whatever form surfaces it.
type EditState struct {
	Presence      Presence
	Type          RecordType
	ProjectID     *string
	WorkingHours  float64
	OvertimeHours float64
}

// NewEditState is the state a blank marking form starts from.
func NewEditState() EditState {
	return EditState{
		Presence:     PresencePresent,
		Type:         TypeNormal,
		WorkingHours: DefaultWorkingHours,
	}
}

// EditStateOf rebuilds the edit state from an existing record.
func EditStateOf(r Record) EditState {
	return EditState{
		Presence:      r.Presence,
		Type:          r.Type,
		ProjectID:     r.ProjectID,
		WorkingHours:  r.WorkingHours,
		OvertimeHours: r.OvertimeHours,
	}
}

// WithPresence moves the state along the presence axis.
//
//   - to present: hours default to defaultHours when currently zero; the
//     type/project selection is untouched.
//   - to absent: both hour fields reset; the type/project selection is
//     untouched and stays selectable.
//   - to paid leave: both hour fields reset, the type axis collapses to
//     normal and any project selection is cleared.
func (s EditState) WithPresence(p Presence, defaultHours float64) EditState {
	switch p {
	case PresencePresent:
		s.Presence = p
		if s.WorkingHours == 0 {
			s.WorkingHours = defaultHours
		}
	case PresenceAbsent:
		s.Presence = p
		s.WorkingHours = 0
		s.OvertimeHours = 0
	case PresencePaidLeave:
		s.Presence = p
		s.WorkingHours = 0
		s.OvertimeHours = 0
		s.Type = TypeNormal
		s.ProjectID = nil
	}
	return s
}

// WithType moves the state along the type axis. Reverting project to normal
// clears the previously selected project. While on paid leave the type axis
// is collapsed and the transition is a no-op.
func (s EditState) WithType(t RecordType) EditState {
	if s.Presence == PresencePaidLeave || !t.Valid() {
		return s
	}
	if t == TypeNormal {
		s.ProjectID = nil
	}
	s.Type = t
	return s
}

// WithProject selects the project for a project-typed state. Selecting a
// project in any other state is a no-op; the type must be switched first.
func (s EditState) WithProject(projectID string) EditState {
	if s.Type != TypeProject || projectID == "" {
		return s
	}
	id := projectID
	s.ProjectID = &id
	return s
}

// WithHours sets the hour fields of a present state. Hours on non-present
// states are meaningless and the transition is a no-op.
func (s EditState) WithHours(working, overtime float64) EditState {
	if s.Presence != PresencePresent {
		return s
	}
	s.WorkingHours = working
	s.OvertimeHours = overtime
	return s
}

// Draft produces the submission draft for this state. The draft still goes
// through Validate before any persistence call; in particular a project-typed
// state submitted without a project selection is rejected there.
func (s EditState) Draft(recordID *string, userID string, day time.Time) Draft {
	return Draft{
		ID:            recordID,
		UserID:        userID,
		Date:          day,
		Presence:      s.Presence,
		Type:          s.Type,
		ProjectID:     s.ProjectID,
		WorkingHours:  s.WorkingHours,
		OvertimeHours: s.OvertimeHours,
	}
}
