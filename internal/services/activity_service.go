package services

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/domain/activity"
	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/logger"
	"github.com/gravadigital/eventi-api/internal/storage/postgres"
)

// ActivityService manages the activity catalog of TEAM_BUILDING events
type ActivityService struct {
	activityRepo postgres.ActivityRepository
	eventRepo    postgres.EventRepository
	log          *log.Logger
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo postgres.ActivityRepository, eventRepo postgres.EventRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		eventRepo:    eventRepo,
		log:          logger.Service("activity"),
	}
}

// CreateActivityRequest carries the data to create an activity
type CreateActivityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateActivityRequest carries the data to update an activity
type UpdateActivityRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateActivity adds an activity to a TEAM_BUILDING event. Activities
// created by plain users are marked as custom suggestions.
func (s *ActivityService) CreateActivity(eventID uuid.UUID, req CreateActivityRequest, creator *user.User) (*activity.Activity, error) {
	s.log.Debug("Creating activity", "event_id", eventID, "name", req.Name, "creator", creator.Email)

	e, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, apperrors.Internal("failed to load event", err)
	}
	if e == nil {
		return nil, apperrors.NotFound("event", eventID)
	}

	if e.EventType != event.TypeTeamBuilding {
		return nil, apperrors.Validation("activities are only allowed on TEAM_BUILDING events")
	}

	a := &activity.Activity{
		Name:        req.Name,
		Description: req.Description,
		IsCustom:    creator.Role == user.RoleUser,
		EventID:     e.ID,
		CreatedByID: creator.ID,
	}

	if err := s.activityRepo.Create(a); err != nil {
		return nil, apperrors.Internal("failed to create activity", err)
	}

	s.log.Info("Activity created", "id", a.ID, "event_id", e.ID, "custom", a.IsCustom)
	return a, nil
}

// UpdateActivity changes an activity's name or description. Only the
// creator may do so; there is no role override.
func (s *ActivityService) UpdateActivity(id uuid.UUID, req UpdateActivityRequest, actingUser *user.User) (*activity.Activity, error) {
	s.log.Debug("Updating activity", "id", id, "acting_user", actingUser.Email)

	a, err := s.activityRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal("failed to load activity", err)
	}
	if a == nil {
		return nil, apperrors.NotFound("activity", id)
	}

	if !a.IsCreator(actingUser.ID) {
		return nil, apperrors.Permission("only the activity creator may modify it")
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Description != nil {
		a.Description = *req.Description
	}

	if err := s.activityRepo.Save(a); err != nil {
		return nil, apperrors.Internal("failed to save activity", err)
	}

	s.log.Info("Activity updated", "id", a.ID)
	return a, nil
}

// DeleteActivity removes an activity. Creator-only, like UpdateActivity.
func (s *ActivityService) DeleteActivity(id uuid.UUID, actingUser *user.User) error {
	s.log.Debug("Deleting activity", "id", id, "acting_user", actingUser.Email)

	a, err := s.activityRepo.GetByID(id)
	if err != nil {
		return apperrors.Internal("failed to load activity", err)
	}
	if a == nil {
		return apperrors.NotFound("activity", id)
	}

	if !a.IsCreator(actingUser.ID) {
		return apperrors.Permission("only the activity creator may delete it")
	}

	if err := s.activityRepo.Delete(a); err != nil {
		return apperrors.Internal("failed to delete activity", err)
	}

	s.log.Info("Activity deleted", "id", id)
	return nil
}

// GetByID returns a single activity
func (s *ActivityService) GetByID(id uuid.UUID) (*activity.Activity, error) {
	a, err := s.activityRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal("failed to load activity", err)
	}
	if a == nil {
		return nil, apperrors.NotFound("activity", id)
	}
	return a, nil
}

// GetActivitiesByEvent returns all activities of an event
func (s *ActivityService) GetActivitiesByEvent(eventID uuid.UUID) ([]*activity.Activity, error) {
	e, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, apperrors.Internal("failed to load event", err)
	}
	if e == nil {
		return nil, apperrors.NotFound("event", eventID)
	}

	as, err := s.activityRepo.GetByEventID(eventID)
	if err != nil {
		return nil, apperrors.Internal("failed to load activities", err)
	}
	return as, nil
}
