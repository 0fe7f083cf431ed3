package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/domain/activity"
	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/ferie"
	"github.com/gravadigital/eventi-api/internal/domain/partecipation"
	"github.com/gravadigital/eventi-api/internal/domain/teambuilding"
	"github.com/gravadigital/eventi-api/internal/domain/user"
)

func TestCreateEventDefaultsToFerie(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)

	e, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:     "Summer holidays",
		StartDate: futureDate(5),
		EndDate:   futureDate(10),
	}, editor)

	require.NoError(t, err)
	assert.Equal(t, event.TypeFerie, e.EventType)
	assert.Equal(t, editor.ID, e.CreatedByID)
}

func TestCreateEventRejectsUnknownType(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)

	_, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:     "Bad",
		StartDate: futureDate(1),
		EndDate:   futureDate(2),
		EventType: "PICNIC",
	}, editor)

	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateEventDateValidation(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)

	_, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:     "Backwards",
		StartDate: futureDate(10),
		EndDate:   futureDate(5),
	}, editor)
	assert.True(t, apperrors.IsValidation(err), "start after end must fail")

	_, err = s.eventService.CreateEvent(CreateEventRequest{
		Title:     "In the past",
		StartDate: futureDate(-1),
		EndDate:   futureDate(5),
	}, editor)
	assert.True(t, apperrors.IsValidation(err), "past start must fail")

	// start == end is a valid single-day event
	_, err = s.eventService.CreateEvent(CreateEventRequest{
		Title:     "One day",
		StartDate: futureDate(3),
		EndDate:   futureDate(3),
	}, editor)
	assert.NoError(t, err)
}

func TestCreateGenericoEventFansOutPartecipations(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)
	u1 := s.addUser("u1@example.com", user.RoleUser)
	u2 := s.addUser("u2@example.com", user.RoleUser)
	u3 := s.addUser("u3@example.com", user.RoleUser)

	e, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:          "All hands",
		StartDate:      futureDate(5),
		EndDate:        futureDate(5),
		EventType:      "GENERICO",
		InvitedUserIDs: []uuid.UUID{u1.ID, u2.ID, u3.ID},
	}, editor)
	require.NoError(t, err)

	ps, err := s.partecipations.GetByEventID(e.ID)
	require.NoError(t, err)
	require.Len(t, ps, 3)
	for _, p := range ps {
		assert.Equal(t, partecipation.StatusPending, p.Status)
	}
}

func TestCreateEventUnknownInvitedUser(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)

	_, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:          "Ghost invite",
		StartDate:      futureDate(1),
		EndDate:        futureDate(2),
		EventType:      "GENERICO",
		InvitedUserIDs: []uuid.UUID{uuid.New()},
	}, editor)

	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateEventInviteDiffOnlyCreatesForNewUsers(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)
	u1 := s.addUser("u1@example.com", user.RoleUser)
	u2 := s.addUser("u2@example.com", user.RoleUser)
	u3 := s.addUser("u3@example.com", user.RoleUser)
	u4 := s.addUser("u4@example.com", user.RoleUser)

	e, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:          "All hands",
		StartDate:      futureDate(5),
		EndDate:        futureDate(5),
		EventType:      "GENERICO",
		InvitedUserIDs: []uuid.UUID{u1.ID, u2.ID, u3.ID},
	}, editor)
	require.NoError(t, err)

	before, _ := s.partecipations.GetByEventID(e.ID)
	require.Len(t, before, 3)

	newInvites := []uuid.UUID{u1.ID, u2.ID, u4.ID}
	_, err = s.eventService.UpdateEvent(e.ID, UpdateEventRequest{InvitedUserIDs: &newInvites})
	require.NoError(t, err)

	after, _ := s.partecipations.GetByEventID(e.ID)
	require.Len(t, after, 4, "removal of u3 must not delete their partecipation")

	byUser := map[uuid.UUID]*partecipation.Partecipation{}
	for _, p := range after {
		byUser[p.UserID] = p
	}
	assert.Contains(t, byUser, u3.ID, "existing partecipation survives invite removal")
	assert.Contains(t, byUser, u4.ID, "newly invited user gets a partecipation")
	assert.Equal(t, partecipation.StatusPending, byUser[u4.ID].Status)
}

func TestUpdateEventConfirmedFields(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)

	e, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:     "Offsite",
		StartDate: futureDate(5),
		EndDate:   futureDate(15),
		EventType: "TEAM_BUILDING",
	}, editor)
	require.NoError(t, err)

	a := &activity.Activity{Name: "Kayak", EventID: e.ID, CreatedByID: editor.ID}
	require.NoError(t, s.activities.Create(a))

	// all-or-nothing
	confirmedStart := futureDate(6)
	_, err = s.eventService.UpdateEvent(e.ID, UpdateEventRequest{
		ConfirmedStartDate: &confirmedStart,
	})
	assert.True(t, apperrors.IsValidation(err), "partial confirmed fields must fail")

	// out of range
	confirmedEnd := futureDate(20)
	_, err = s.eventService.UpdateEvent(e.ID, UpdateEventRequest{
		ConfirmedStartDate:  &confirmedStart,
		ConfirmedEndDate:    &confirmedEnd,
		ConfirmedActivityID: &a.ID,
	})
	assert.True(t, apperrors.IsValidation(err), "confirmed dates outside event range must fail")

	// activity from another event
	other := &activity.Activity{Name: "Elsewhere", EventID: uuid.New(), CreatedByID: editor.ID}
	require.NoError(t, s.activities.Create(other))

	confirmedEnd = futureDate(8)
	_, err = s.eventService.UpdateEvent(e.ID, UpdateEventRequest{
		ConfirmedStartDate:  &confirmedStart,
		ConfirmedEndDate:    &confirmedEnd,
		ConfirmedActivityID: &other.ID,
	})
	assert.True(t, apperrors.IsValidation(err), "foreign activity must fail")

	// valid
	updated, err := s.eventService.UpdateEvent(e.ID, UpdateEventRequest{
		ConfirmedStartDate:  &confirmedStart,
		ConfirmedEndDate:    &confirmedEnd,
		ConfirmedActivityID: &a.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, a.ID, *updated.ConfirmedActivityID)
}

func TestUpdateEventConfirmedFieldsRejectedForNonTeamBuilding(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)

	e, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:     "Holidays",
		StartDate: futureDate(5),
		EndDate:   futureDate(15),
		EventType: "FERIE",
	}, editor)
	require.NoError(t, err)

	confirmedStart := futureDate(6)
	confirmedEnd := futureDate(8)
	activityID := uuid.New()
	_, err = s.eventService.UpdateEvent(e.ID, UpdateEventRequest{
		ConfirmedStartDate:  &confirmedStart,
		ConfirmedEndDate:    &confirmedEnd,
		ConfirmedActivityID: &activityID,
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestDeleteEventCascadesByType(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)
	u1 := s.addUser("u1@example.com", user.RoleUser)

	// GENERICO: partecipations removed
	generico, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:          "All hands",
		StartDate:      futureDate(5),
		EndDate:        futureDate(5),
		EventType:      "GENERICO",
		InvitedUserIDs: []uuid.UUID{u1.ID},
	}, editor)
	require.NoError(t, err)

	require.NoError(t, s.eventService.DeleteEvent(generico.ID))
	ps, _ := s.partecipations.GetByEventID(generico.ID)
	assert.Empty(t, ps)
	gone, _ := s.events.GetByID(generico.ID)
	assert.Nil(t, gone)

	// FERIE: vacation requests removed
	ferieEvent, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:     "Holidays",
		StartDate: futureDate(5),
		EndDate:   futureDate(15),
		EventType: "FERIE",
	}, editor)
	require.NoError(t, err)
	require.NoError(t, s.ferie.Create(&ferie.Ferie{
		Title: "My break", StartDate: futureDate(6), EndDate: futureDate(7),
		EventID: ferieEvent.ID, CreatedByID: u1.ID,
	}))

	require.NoError(t, s.eventService.DeleteEvent(ferieEvent.ID))
	fs, _ := s.ferie.GetAll()
	assert.Empty(t, fs)

	// TEAM_BUILDING: sign-ups and activities removed
	tb, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:     "Offsite",
		StartDate: futureDate(5),
		EndDate:   futureDate(15),
		EventType: "TEAM_BUILDING",
	}, editor)
	require.NoError(t, err)

	a := &activity.Activity{Name: "Kayak", EventID: tb.ID, CreatedByID: editor.ID}
	require.NoError(t, s.activities.Create(a))
	require.NoError(t, s.teamBuilding.Create(&teambuilding.Partecipation{
		EventID: tb.ID, UserID: u1.ID,
		ChosenActivityIDs: teambuilding.ActivityIDStrings([]uuid.UUID{a.ID}),
		StartDate:         futureDate(6), EndDate: futureDate(7),
	}))

	require.NoError(t, s.eventService.DeleteEvent(tb.ID))
	as, _ := s.activities.GetByEventID(tb.ID)
	assert.Empty(t, as)
	signups, _ := s.teamBuilding.GetByEventID(tb.ID)
	assert.Empty(t, signups)
}

func TestGetUserEvents(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)
	u1 := s.addUser("u1@example.com", user.RoleUser)

	invited, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:          "Invited",
		StartDate:      futureDate(1),
		EndDate:        futureDate(2),
		EventType:      "GENERICO",
		InvitedUserIDs: []uuid.UUID{u1.ID},
	}, editor)
	require.NoError(t, err)

	_, err = s.eventService.CreateEvent(CreateEventRequest{
		Title:     "Not invited",
		StartDate: futureDate(1),
		EndDate:   futureDate(2),
	}, editor)
	require.NoError(t, err)

	mine, err := s.eventService.GetUserEvents(u1.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, invited.ID, mine[0].ID)

	theirs, err := s.eventService.GetUserEvents(editor.ID)
	require.NoError(t, err)
	assert.Len(t, theirs, 2, "creator sees their own events")
}

func TestDeleteEventNotFound(t *testing.T) {
	s := newTestStack()
	err := s.eventService.DeleteEvent(uuid.New())
	assert.True(t, apperrors.IsNotFound(err))
}
