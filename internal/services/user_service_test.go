package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/domain/user"
)

func TestCreateGroup(t *testing.T) {
	s := newTestStack()
	s.addUser("a@example.com", user.RoleUser)
	s.addUser("b@example.com", user.RoleUser)

	g, err := s.userService.CreateGroup(CreateGroupRequest{
		Name:         "Backend team",
		MemberEmails: []string{"a@example.com", "b@example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Backend team", g.Name)
	assert.Len(t, g.Members, 2)
}

func TestCreateGroupValidation(t *testing.T) {
	s := newTestStack()
	s.addUser("a@example.com", user.RoleUser)

	_, err := s.userService.CreateGroup(CreateGroupRequest{
		Name:         "   ",
		MemberEmails: []string{"a@example.com"},
	})
	assert.True(t, apperrors.IsValidation(err), "blank name must fail")

	_, err = s.userService.CreateGroup(CreateGroupRequest{Name: "Empty"})
	assert.True(t, apperrors.IsValidation(err), "empty member list must fail")

	_, err = s.userService.CreateGroup(CreateGroupRequest{
		Name:         "Blank member",
		MemberEmails: []string{"a@example.com", " "},
	})
	assert.True(t, apperrors.IsValidation(err), "blank email must fail")
}

func TestCreateGroupListsMissingEmails(t *testing.T) {
	s := newTestStack()
	s.addUser("a@example.com", user.RoleUser)

	_, err := s.userService.CreateGroup(CreateGroupRequest{
		Name:         "Mixed",
		MemberEmails: []string{"a@example.com", "ghost@example.com", "phantom@example.com"},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.True(t, strings.Contains(err.Error(), "ghost@example.com"))
	assert.True(t, strings.Contains(err.Error(), "phantom@example.com"))
}

func TestUpdateGroupReplacesMembership(t *testing.T) {
	s := newTestStack()
	s.addUser("a@example.com", user.RoleUser)
	s.addUser("b@example.com", user.RoleUser)
	s.addUser("c@example.com", user.RoleUser)

	g, err := s.userService.CreateGroup(CreateGroupRequest{
		Name:         "Team",
		MemberEmails: []string{"a@example.com", "b@example.com"},
	})
	require.NoError(t, err)

	members := []string{"c@example.com"}
	updated, err := s.userService.UpdateGroup(g.ID, UpdateGroupRequest{MemberEmails: &members})
	require.NoError(t, err)

	require.Len(t, updated.Members, 1, "membership is replaced, not merged")
	assert.Equal(t, "c@example.com", updated.Members[0].Email)
}

func TestDeleteGroup(t *testing.T) {
	s := newTestStack()
	s.addUser("a@example.com", user.RoleUser)

	g, err := s.userService.CreateGroup(CreateGroupRequest{
		Name:         "Doomed",
		MemberEmails: []string{"a@example.com"},
	})
	require.NoError(t, err)

	require.NoError(t, s.userService.DeleteGroup(g.ID))
	assert.True(t, apperrors.IsNotFound(s.userService.DeleteGroup(g.ID)))
}

func TestUpdateUserRole(t *testing.T) {
	s := newTestStack()
	u := s.addUser("a@example.com", user.RoleUser)

	updated, err := s.userService.UpdateUserRole(u.ID, "EDITOR")
	require.NoError(t, err)
	assert.Equal(t, user.RoleEditor, updated.Role)

	_, err = s.userService.UpdateUserRole(u.ID, "SUPERUSER")
	assert.True(t, apperrors.IsValidation(err))

	_, err = s.userService.UpdateUserRole(uuid.New(), "EDITOR")
	assert.True(t, apperrors.IsNotFound(err))
}
