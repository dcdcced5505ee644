package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditState_StartsPresentNormal(t *testing.T) {
	t.Parallel()

	s := NewEditState()

	assert.Equal(t, PresencePresent, s.Presence)
	assert.Equal(t, TypeNormal, s.Type)
	assert.Equal(t, float64(DefaultWorkingHours), s.WorkingHours)
	assert.Nil(t, s.ProjectID)
}

func TestWithPresence_PaidLeaveCollapsesTypeAxis(t *testing.T) {
	t.Parallel()

	s := NewEditState().
		WithType(TypeProject).
		WithProject("proj-7").
		WithHours(6, 2)

	got := s.WithPresence(PresencePaidLeave, DefaultWorkingHours)

	assert.Equal(t, PresencePaidLeave, got.Presence)
	assert.Equal(t, TypeNormal, got.Type)
	assert.Nil(t, got.ProjectID)
	assert.Zero(t, got.WorkingHours)
	assert.Zero(t, got.OvertimeHours)
}

func TestWithPresence_AbsentKeepsTypeSelection(t *testing.T) {
	t.Parallel()

	s := NewEditState().
		WithType(TypeProject).
		WithProject("proj-7").
		WithPresence(PresenceAbsent, DefaultWorkingHours)

	assert.Equal(t, PresenceAbsent, s.Presence)
	assert.Equal(t, TypeProject, s.Type)
	require.NotNil(t, s.ProjectID)
	assert.Equal(t, "proj-7", *s.ProjectID)
	assert.Zero(t, s.WorkingHours)
}

func TestWithPresence_BackToPresentRestoresDefaultHours(t *testing.T) {
	t.Parallel()

	s := NewEditState().
		WithPresence(PresenceAbsent, DefaultWorkingHours).
		WithPresence(PresencePresent, DefaultWorkingHours)

	assert.Equal(t, float64(DefaultWorkingHours), s.WorkingHours)
}

func TestWithPresence_PresentKeepsCarriedHours(t *testing.T) {
	t.Parallel()

	s := EditState{Presence: PresencePresent, Type: TypeNormal, WorkingHours: 6}.
		WithPresence(PresencePresent, DefaultWorkingHours)

	assert.Equal(t, float64(6), s.WorkingHours)
}

func TestWithType_NormalClearsProject(t *testing.T) {
	t.Parallel()

	s := NewEditState().
		WithType(TypeProject).
		WithProject("proj-7").
		WithType(TypeNormal)

	assert.Equal(t, TypeNormal, s.Type)
	assert.Nil(t, s.ProjectID)
}

func TestWithType_NoOpOnPaidLeave(t *testing.T) {
	t.Parallel()

	s := NewEditState().WithPresence(PresencePaidLeave, DefaultWorkingHours)
	got := s.WithType(TypeProject)

	assert.Equal(t, s, got)
}

func TestWithProject_NoOpUnlessProjectTyped(t *testing.T) {
	t.Parallel()

	s := NewEditState().WithProject("proj-7")
	assert.Nil(t, s.ProjectID)

	s = NewEditState().WithType(TypeProject).WithProject("")
	assert.Nil(t, s.ProjectID)
}

func TestWithHours_NoOpUnlessPresent(t *testing.T) {
	t.Parallel()

	s := NewEditState().
		WithPresence(PresenceAbsent, DefaultWorkingHours).
		WithHours(8, 2)

	assert.Zero(t, s.WorkingHours)
	assert.Zero(t, s.OvertimeHours)
}

func TestTransitions_AreValueSemantics(t *testing.T) {
	t.Parallel()

	before := NewEditState().WithType(TypeProject).WithProject("proj-7")
	_ = before.WithPresence(PresencePaidLeave, DefaultWorkingHours)

	// the receiver is untouched after a transition
	assert.Equal(t, TypeProject, before.Type)
	require.NotNil(t, before.ProjectID)
	assert.Equal(t, "proj-7", *before.ProjectID)
}

func TestEditStateDraft_RoundTripsThroughRecord(t *testing.T) {
	t.Parallel()

	s := NewEditState().
		WithType(TypeProject).
		WithProject("proj-7").
		WithHours(7.5, 1)

	d := s.Draft(nil, "worker-1", day("2024-05-13"))

	got, err := Validate(d, nil)
	require.NoError(t, err)

	rec := Record{
		ID:            "rec-1",
		UserID:        got.UserID,
		Date:          got.Date,
		Presence:      got.Presence,
		Type:          got.Type,
		ProjectID:     got.ProjectID,
		WorkingHours:  got.WorkingHours,
		OvertimeHours: got.OvertimeHours,
	}
	assert.Equal(t, s, EditStateOf(rec))
}
