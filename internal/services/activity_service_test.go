package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/user"
)

func activityFixture(t *testing.T) (*testStack, *event.Event) {
	t.Helper()

	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)

	e, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:     "Offsite",
		StartDate: futureDate(10),
		EndDate:   futureDate(20),
		EventType: "TEAM_BUILDING",
	}, editor)
	require.NoError(t, err)

	return s, e
}

func TestCreateActivityMarksUserSuggestionsAsCustom(t *testing.T) {
	s, e := activityFixture(t)
	plain := s.addUser("plain@example.com", user.RoleUser)
	admin := s.addUser("admin@example.com", user.RoleAdmin)

	suggestion, err := s.activityService.CreateActivity(e.ID, CreateActivityRequest{Name: "Karaoke"}, plain)
	require.NoError(t, err)
	assert.True(t, suggestion.IsCustom, "USER-created activities are custom suggestions")

	curated, err := s.activityService.CreateActivity(e.ID, CreateActivityRequest{Name: "Kayak"}, admin)
	require.NoError(t, err)
	assert.False(t, curated.IsCustom)
}

func TestCreateActivityRejectsNonTeamBuildingEvent(t *testing.T) {
	s := newTestStack()
	editor := s.addUser("editor@example.com", user.RoleEditor)

	e, err := s.eventService.CreateEvent(CreateEventRequest{
		Title:     "Holidays",
		StartDate: futureDate(10),
		EndDate:   futureDate(20),
		EventType: "FERIE",
	}, editor)
	require.NoError(t, err)

	_, err = s.activityService.CreateActivity(e.ID, CreateActivityRequest{Name: "Kayak"}, editor)
	assert.True(t, apperrors.IsValidation(err))
}

func TestActivityMutationIsCreatorOnly(t *testing.T) {
	s, e := activityFixture(t)
	creator := s.addUser("creator@example.com", user.RoleUser)
	admin := s.addUser("admin@example.com", user.RoleAdmin)

	a, err := s.activityService.CreateActivity(e.ID, CreateActivityRequest{Name: "Karaoke"}, creator)
	require.NoError(t, err)

	newName := "Karaoke night"
	_, err = s.activityService.UpdateActivity(a.ID, UpdateActivityRequest{Name: &newName}, admin)
	assert.True(t, apperrors.IsPermission(err), "not even an admin may edit another user's activity")

	updated, err := s.activityService.UpdateActivity(a.ID, UpdateActivityRequest{Name: &newName}, creator)
	require.NoError(t, err)
	assert.Equal(t, "Karaoke night", updated.Name)

	err = s.activityService.DeleteActivity(a.ID, admin)
	assert.True(t, apperrors.IsPermission(err))

	require.NoError(t, s.activityService.DeleteActivity(a.ID, creator))

	as, _ := s.activities.GetByEventID(e.ID)
	assert.Empty(t, as)
}

func TestGetActivitiesByEvent(t *testing.T) {
	s, e := activityFixture(t)
	editor := s.addUser("e2@example.com", user.RoleEditor)

	_, err := s.activityService.CreateActivity(e.ID, CreateActivityRequest{Name: "Kayak"}, editor)
	require.NoError(t, err)
	_, err = s.activityService.CreateActivity(e.ID, CreateActivityRequest{Name: "Hike"}, editor)
	require.NoError(t, err)

	as, err := s.activityService.GetActivitiesByEvent(e.ID)
	require.NoError(t, err)
	assert.Len(t, as, 2)
}
