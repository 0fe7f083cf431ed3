package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/ferie"
	"github.com/gravadigital/eventi-api/internal/domain/user"
)

// ferieFixture creates a FERIE event starting in 10 days with one
// invited user
func ferieFixture(t *testing.T) (*testStack, *event.Event, *user.User) {
	t.Helper()

	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)
	invited := s.addUser("invited@example.com", user.RoleUser)

	e, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:          "Holidays",
		StartDate:      futureDate(10),
		EndDate:        futureDate(20),
		EventType:      "FERIE",
		InvitedUserIDs: []uuid.UUID{invited.ID},
	}, editor)
	require.NoError(t, err)

	return s, e, invited
}

func TestCreateFerieAutoApproves(t *testing.T) {
	s, e, invited := ferieFixture(t)

	f, err := s.ferieService.CreateFerie(CreateFerieRequest{
		Title:     "Beach week",
		StartDate: futureDate(11),
		EndDate:   futureDate(15),
		EventID:   &e.ID,
	}, invited)

	require.NoError(t, err)
	assert.Equal(t, ferie.StatusApproved, f.Status, "requests are approved immediately")
	assert.Equal(t, invited.ID, f.CreatedByID)
}

func TestCreateFerieRequiresEventID(t *testing.T) {
	s, _, invited := ferieFixture(t)

	_, err := s.ferieService.CreateFerie(CreateFerieRequest{
		Title:     "No event",
		StartDate: futureDate(11),
		EndDate:   futureDate(15),
	}, invited)

	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateFerieRejectsUninvitedUser(t *testing.T) {
	s, e, _ := ferieFixture(t)
	outsider := s.addUser("outsider@example.com", user.RoleUser)

	_, err := s.ferieService.CreateFerie(CreateFerieRequest{
		Title:     "Not mine",
		StartDate: futureDate(11),
		EndDate:   futureDate(15),
		EventID:   &e.ID,
	}, outsider)

	assert.True(t, apperrors.IsPermission(err))
}

func TestCreateFerieRejectsStartedEvent(t *testing.T) {
	s, e, invited := ferieFixture(t)

	// Force the event to have started
	e.StartDate = futureDate(0)
	require.NoError(t, s.events.Save(e))

	_, err := s.ferieService.CreateFerie(CreateFerieRequest{
		Title:     "Too late",
		StartDate: futureDate(11),
		EndDate:   futureDate(15),
		EventID:   &e.ID,
	}, invited)

	assert.True(t, apperrors.IsPermission(err))
}

func TestCreateFerieRejectsNonFerieEvent(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)
	invited := s.addUser("invited@example.com", user.RoleUser)

	e, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:          "Offsite",
		StartDate:      futureDate(10),
		EndDate:        futureDate(20),
		EventType:      "TEAM_BUILDING",
		InvitedUserIDs: []uuid.UUID{invited.ID},
	}, editor)
	require.NoError(t, err)

	_, err = s.ferieService.CreateFerie(CreateFerieRequest{
		Title:     "Wrong type",
		StartDate: futureDate(11),
		EndDate:   futureDate(15),
		EventID:   &e.ID,
	}, invited)

	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateFerieDateRules(t *testing.T) {
	s, e, invited := ferieFixture(t)

	// outside event range
	_, err := s.ferieService.CreateFerie(CreateFerieRequest{
		Title:     "Too long",
		StartDate: futureDate(11),
		EndDate:   futureDate(25),
		EventID:   &e.ID,
	}, invited)
	assert.True(t, apperrors.IsValidation(err))

	// backwards range
	_, err = s.ferieService.CreateFerie(CreateFerieRequest{
		Title:     "Backwards",
		StartDate: futureDate(15),
		EndDate:   futureDate(11),
		EventID:   &e.ID,
	}, invited)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateFerieRevalidatesDatesOnly(t *testing.T) {
	s, e, invited := ferieFixture(t)

	f, err := s.ferieService.CreateFerie(CreateFerieRequest{
		Title:     "Beach week",
		StartDate: futureDate(11),
		EndDate:   futureDate(15),
		EventID:   &e.ID,
	}, invited)
	require.NoError(t, err)

	badEnd := futureDate(30)
	_, err = s.ferieService.UpdateFerie(f.ID, UpdateFerieRequest{EndDate: &badEnd})
	assert.True(t, apperrors.IsValidation(err))

	goodEnd := futureDate(18)
	updated, err := s.ferieService.UpdateFerie(f.ID, UpdateFerieRequest{EndDate: &goodEnd})
	require.NoError(t, err)
	assert.Equal(t, event.DateOnly(goodEnd), event.DateOnly(updated.EndDate))
}

func TestUpdateFerieStatusAllowsAnyTransition(t *testing.T) {
	s, e, invited := ferieFixture(t)

	f, err := s.ferieService.CreateFerie(CreateFerieRequest{
		Title:     "Beach week",
		StartDate: futureDate(11),
		EndDate:   futureDate(15),
		EventID:   &e.ID,
	}, invited)
	require.NoError(t, err)

	rejected, err := s.ferieService.UpdateStatus(f.ID, "REJECTED")
	require.NoError(t, err)
	assert.Equal(t, ferie.StatusRejected, rejected.Status)

	approved, err := s.ferieService.UpdateStatus(f.ID, "APPROVED")
	require.NoError(t, err)
	assert.Equal(t, ferie.StatusApproved, approved.Status, "rejected requests can be re-approved")
}

func TestGetMyFerie(t *testing.T) {
	s, e, invited := ferieFixture(t)
	other := s.addUser("other@example.com", user.RoleUser)

	_, err := s.ferieService.CreateFerie(CreateFerieRequest{
		Title:     "Mine",
		StartDate: futureDate(11),
		EndDate:   futureDate(12),
		EventID:   &e.ID,
	}, invited)
	require.NoError(t, err)

	mine, err := s.ferieService.GetMyFerie(invited)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	none, err := s.ferieService.GetMyFerie(other)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteFerieNotFound(t *testing.T) {
	s := newTestStack()
	err := s.ferieService.Delete(uuid.New())
	assert.True(t, apperrors.IsNotFound(err))
}
