package attendance

import (
	"time"
)

// Presence is the presence axis of an attendance record.
type Presence string

const (
	PresencePresent   Presence = "present"
	PresenceAbsent    Presence = "absent"
	PresencePaidLeave Presence = "paid_leave"
)

func (p Presence) Valid() bool {
	switch p {
	case PresencePresent, PresenceAbsent, PresencePaidLeave:
		return true
	}
	return false
}

// RecordType is the type axis: general office duty or a client project.
type RecordType string

const (
	TypeNormal  RecordType = "normal"
	TypeProject RecordType = "project"
)

func (t RecordType) Valid() bool {
	return t == TypeNormal || t == TypeProject
}

// Record is one persisted attendance entry. A worker may hold several
// records on the same date (e.g. one normal and one project entry), but at
// most one paid-leave record per date.
type Record struct {
	ID            string
	UserID        string
	Date          time.Time // calendar day, time component is always midnight UTC
	Presence      Presence
	Type          RecordType
	ProjectID     *string
	WorkingHours  float64
	OvertimeHours float64
	MarkedBy      string
	MarkedAt      time.Time

	// Joined for list views
	UserName    *string
	ProjectName *string
}

// SameDayAs reports whether the record falls on the given calendar day.
func (r Record) SameDayAs(day time.Time) bool {
	ry, rm, rd := r.Date.Date()
	y, m, d := day.Date()
	return ry == y && rm == m && rd == d
}

// Draft is an attendance record as submitted by an operator, before
// normalization and validation. ID is set for updates, nil for creates.
type Draft struct {
	ID            *string
	UserID        string
	Date          time.Time
	Presence      Presence
	Type          RecordType
	ProjectID     *string
	WorkingHours  float64
	OvertimeHours float64
}

// DateKey formats a day as its canonical YYYY-MM-DD key.
func DateKey(day time.Time) string {
	return day.Format("2006-01-02")
}
