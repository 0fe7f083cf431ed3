package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/domain/partecipation"
	"github.com/gravadigital/eventi-api/internal/domain/user"
)

func TestCreatePartecipationsIsIdempotent(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)
	u1 := s.addUser("u1@example.com", user.RoleUser)
	u2 := s.addUser("u2@example.com", user.RoleUser)

	e, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:     "All hands",
		StartDate: futureDate(5),
		EndDate:   futureDate(5),
		EventType: "GENERICO",
	}, editor)
	require.NoError(t, err)

	created, err := s.partecipationService.CreatePartecipations(e.ID, []uuid.UUID{u1.ID, u2.ID, u1.ID})
	require.NoError(t, err)
	assert.Len(t, created, 2, "duplicate ids in the request collapse to one row")

	again, err := s.partecipationService.CreatePartecipations(e.ID, []uuid.UUID{u1.ID, u2.ID})
	require.NoError(t, err)
	assert.Empty(t, again, "repeated call creates nothing and does not fail")

	all, _ := s.partecipations.GetByEventID(e.ID)
	assert.Len(t, all, 2)
}

func TestCreatePartecipationsListsMissingUsers(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)
	u1 := s.addUser("u1@example.com", user.RoleUser)
	ghost := uuid.New()

	e, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:     "All hands",
		StartDate: futureDate(5),
		EndDate:   futureDate(5),
		EventType: "GENERICO",
	}, editor)
	require.NoError(t, err)

	_, err = s.partecipationService.CreatePartecipations(e.ID, []uuid.UUID{u1.ID, ghost})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.True(t, strings.Contains(err.Error(), ghost.String()), "missing id is listed in the error")
}

func TestCreatePartecipationsUnknownEvent(t *testing.T) {
	s := newTestStack()
	u1 := s.addUser("u1@example.com", user.RoleUser)

	_, err := s.partecipationService.CreatePartecipations(uuid.New(), []uuid.UUID{u1.ID})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdatePartecipationStatusAuthorization(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)
	owner := s.addUser("owner@example.com", user.RoleUser)
	stranger := s.addUser("stranger@example.com", user.RoleUser)

	e, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:          "All hands",
		StartDate:      futureDate(5),
		EndDate:        futureDate(5),
		EventType:      "GENERICO",
		InvitedUserIDs: []uuid.UUID{owner.ID},
	}, editor)
	require.NoError(t, err)

	ps, _ := s.partecipations.GetByEventID(e.ID)
	require.Len(t, ps, 1)
	p := ps[0]

	_, err = s.partecipationService.UpdateStatus(p.ID, "ACCEPTED", stranger)
	assert.True(t, apperrors.IsPermission(err), "a stranger cannot change someone else's status")

	updated, err := s.partecipationService.UpdateStatus(p.ID, "ACCEPTED", owner)
	require.NoError(t, err)
	assert.Equal(t, partecipation.StatusAccepted, updated.Status)

	updated, err = s.partecipationService.UpdateStatus(p.ID, "REJECTED", editor)
	require.NoError(t, err)
	assert.Equal(t, partecipation.StatusRejected, updated.Status, "privileged users may override")

	_, err = s.partecipationService.UpdateStatus(p.ID, "MAYBE", owner)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDeletePartecipation(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)
	u1 := s.addUser("u1@example.com", user.RoleUser)

	e, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:          "All hands",
		StartDate:      futureDate(5),
		EndDate:        futureDate(5),
		EventType:      "GENERICO",
		InvitedUserIDs: []uuid.UUID{u1.ID},
	}, editor)
	require.NoError(t, err)

	ps, _ := s.partecipations.GetByEventID(e.ID)
	require.Len(t, ps, 1)

	require.NoError(t, s.partecipationService.Delete(ps[0].ID))
	assert.True(t, apperrors.IsNotFound(s.partecipationService.Delete(ps[0].ID)))
}
