package services

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/domain/group"
	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/logger"
	"github.com/gravadigital/eventi-api/internal/storage/postgres"
)

// UserService manages the user registry and named user groups
type UserService struct {
	userRepo  postgres.UserRepository
	groupRepo postgres.GroupRepository
	log       *log.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo postgres.UserRepository, groupRepo postgres.GroupRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		groupRepo: groupRepo,
		log:       logger.Service("user"),
	}
}

// CreateGroupRequest carries the data to create a user group
type CreateGroupRequest struct {
	Name         string   `json:"name" binding:"required"`
	MemberEmails []string `json:"member_emails"`
}

// UpdateGroupRequest carries the data to update a user group. Membership
// is replaced wholesale, never merged.
type UpdateGroupRequest struct {
	Name         *string   `json:"name"`
	MemberEmails *[]string `json:"member_emails"`
}

// GetAllUsers returns every registered user
func (s *UserService) GetAllUsers() ([]*user.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, apperrors.Internal("failed to load users", err)
	}
	return users, nil
}

// GetUserByID returns a single user
func (s *UserService) GetUserByID(id uuid.UUID) (*user.User, error) {
	u, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal("failed to load user", err)
	}
	if u == nil {
		return nil, apperrors.NotFound("user", id)
	}
	return u, nil
}

// UpdateUserRole overwrites a user's global role
func (s *UserService) UpdateUserRole(id uuid.UUID, role string) (*user.User, error) {
	s.log.Debug("Updating user role", "id", id, "role", role)

	u, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal("failed to load user", err)
	}
	if u == nil {
		return nil, apperrors.NotFound("user", id)
	}

	newRole, ok := user.RoleFromString(role)
	if !ok {
		return nil, apperrors.Validation("unknown role %q", role)
	}

	u.Role = newRole
	if err := s.userRepo.Update(u); err != nil {
		return nil, apperrors.Internal("failed to update user", err)
	}

	s.log.Info("User role updated", "id", u.ID, "role", u.Role)
	return u, nil
}

// CreateGroup creates a named group from a list of member emails. Every
// email must resolve to an existing user; missing ones are listed in the
// error.
func (s *UserService) CreateGroup(req CreateGroupRequest) (*group.UserGroup, error) {
	s.log.Debug("Creating group", "name", req.Name, "members", len(req.MemberEmails))

	members, err := s.resolveMembers(req.Name, req.MemberEmails)
	if err != nil {
		return nil, err
	}

	g := &group.UserGroup{
		Name:    req.Name,
		Members: members,
	}

	if err := s.groupRepo.Create(g); err != nil {
		return nil, apperrors.Internal("failed to create group", err)
	}

	s.log.Info("Group created", "id", g.ID, "name", g.Name, "members", len(g.Members))
	return g, nil
}

// UpdateGroup renames a group and/or replaces its membership
func (s *UserService) UpdateGroup(id uuid.UUID, req UpdateGroupRequest) (*group.UserGroup, error) {
	s.log.Debug("Updating group", "id", id)

	g, err := s.groupRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal("failed to load group", err)
	}
	if g == nil {
		return nil, apperrors.NotFound("group", id)
	}

	if req.Name != nil {
		g.Name = *req.Name
	}

	if req.MemberEmails != nil {
		members, err := s.resolveMembers(g.Name, *req.MemberEmails)
		if err != nil {
			return nil, err
		}
		if err := s.groupRepo.ReplaceMembers(g, members); err != nil {
			return nil, apperrors.Internal("failed to replace group members", err)
		}
	}

	if err := s.groupRepo.Update(g); err != nil {
		return nil, apperrors.Internal("failed to update group", err)
	}

	s.log.Info("Group updated", "id", g.ID, "name", g.Name)
	return g, nil
}

// DeleteGroup detaches all members and removes the group
func (s *UserService) DeleteGroup(id uuid.UUID) error {
	s.log.Debug("Deleting group", "id", id)

	g, err := s.groupRepo.GetByID(id)
	if err != nil {
		return apperrors.Internal("failed to load group", err)
	}
	if g == nil {
		return apperrors.NotFound("group", id)
	}

	if err := s.groupRepo.Delete(g); err != nil {
		return apperrors.Internal("failed to delete group", err)
	}

	s.log.Info("Group deleted", "id", id)
	return nil
}

// GetAllGroups returns every group with its members
func (s *UserService) GetAllGroups() ([]*group.UserGroup, error) {
	groups, err := s.groupRepo.GetAll()
	if err != nil {
		return nil, apperrors.Internal("failed to load groups", err)
	}
	return groups, nil
}

// GetGroupByID returns a single group with its members
func (s *UserService) GetGroupByID(id uuid.UUID) (*group.UserGroup, error) {
	g, err := s.groupRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal("failed to load group", err)
	}
	if g == nil {
		return nil, apperrors.NotFound("group", id)
	}
	return g, nil
}

// resolveMembers validates the group name and member emails and resolves
// the emails to users
func (s *UserService) resolveMembers(name string, emails []string) ([]user.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("group name must not be blank")
	}
	if len(emails) == 0 {
		return nil, apperrors.Validation("group must have at least one member")
	}
	for _, email := range emails {
		if strings.TrimSpace(email) == "" {
			return nil, apperrors.Validation("member emails must not be blank")
		}
	}

	found, err := s.userRepo.GetByEmails(emails)
	if err != nil {
		return nil, apperrors.Internal("failed to resolve group members", err)
	}

	byEmail := make(map[string]*user.User, len(found))
	for _, u := range found {
		byEmail[strings.ToLower(u.Email)] = u
	}

	members := make([]user.User, 0, len(emails))
	missing := []string{}
	seen := make(map[string]bool, len(emails))
	for _, email := range emails {
		key := strings.ToLower(strings.TrimSpace(email))
		if seen[key] {
			continue
		}
		seen[key] = true

		u, ok := byEmail[key]
		if !ok {
			missing = append(missing, email)
			continue
		}
		members = append(members, *u)
	}

	if len(missing) > 0 {
		return nil, apperrors.NotFoundMessage("users not found: " + strings.Join(missing, ", "))
	}

	return members, nil
}
