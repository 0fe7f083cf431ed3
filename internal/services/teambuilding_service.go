package services

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/teambuilding"
	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/logger"
	"github.com/gravadigital/eventi-api/internal/storage/postgres"
)

// TeamBuildingService manages activity sign-ups for TEAM_BUILDING events
type TeamBuildingService struct {
	teamBuildingRepo postgres.TeamBuildingRepository
	eventRepo        postgres.EventRepository
	activityRepo     postgres.ActivityRepository
	log              *log.Logger
}

// NewTeamBuildingService creates a new team-building service
func NewTeamBuildingService(
	teamBuildingRepo postgres.TeamBuildingRepository,
	eventRepo postgres.EventRepository,
	activityRepo postgres.ActivityRepository,
) *TeamBuildingService {
	return &TeamBuildingService{
		teamBuildingRepo: teamBuildingRepo,
		eventRepo:        eventRepo,
		activityRepo:     activityRepo,
		log:              logger.Service("teambuilding"),
	}
}

// CreatePartecipationRequest carries the data for a sign-up
type CreatePartecipationRequest struct {
	ActivityIDs []uuid.UUID `json:"activity_ids"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
}

// CreatePartecipation signs the acting user up for activities of a
// TEAM_BUILDING event. Once chosen, the activity set is immutable:
// resubmitting the identical set is accepted (and appends a new row),
// any different set is rejected.
func (s *TeamBuildingService) CreatePartecipation(eventID uuid.UUID, req CreatePartecipationRequest, actingUser *user.User) (*teambuilding.Partecipation, error) {
	s.log.Debug("Creating team-building partecipation",
		"event_id", eventID, "user", actingUser.Email, "activities", len(req.ActivityIDs))

	e, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, apperrors.Internal("failed to load event", err)
	}
	if e == nil {
		return nil, apperrors.NotFound("event", eventID)
	}

	if e.EventType != event.TypeTeamBuilding {
		return nil, apperrors.Validation("sign-ups are only allowed on TEAM_BUILDING events")
	}

	existing, err := s.teamBuildingRepo.GetByEventAndUser(eventID, actingUser.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to load existing sign-ups", err)
	}
	if len(existing) > 0 && !existing[0].SameActivitySet(req.ActivityIDs) {
		return nil, apperrors.Validation("you may only keep your previously chosen activities")
	}

	if len(req.ActivityIDs) == 0 {
		return nil, apperrors.Validation("at least one activity must be chosen")
	}

	for _, activityID := range req.ActivityIDs {
		a, err := s.activityRepo.GetByID(activityID)
		if err != nil {
			return nil, apperrors.Internal("failed to load activity", err)
		}
		if a == nil {
			return nil, apperrors.NotFound("activity", activityID)
		}
		if a.EventID != e.ID {
			return nil, apperrors.Validation("activity %s does not belong to this event", activityID)
		}
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, apperrors.Validation("start and end dates are required")
	}
	if event.DateOnly(req.StartDate).After(event.DateOnly(req.EndDate)) {
		return nil, apperrors.Validation("start date must not be after end date")
	}
	if !e.WithinRange(req.StartDate, req.EndDate) {
		return nil, apperrors.Validation("sign-up dates must lie within the event date range")
	}

	p := &teambuilding.Partecipation{
		EventID:           e.ID,
		UserID:            actingUser.ID,
		ChosenActivityIDs: teambuilding.ActivityIDStrings(req.ActivityIDs),
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
	}

	if err := s.teamBuildingRepo.Create(p); err != nil {
		return nil, apperrors.Internal("failed to create sign-up", err)
	}

	s.log.Info("Team-building partecipation created", "id", p.ID, "event_id", e.ID, "user", actingUser.Email)
	return p, nil
}

// GetPartecipationsForEvent returns all sign-ups of an event
func (s *TeamBuildingService) GetPartecipationsForEvent(eventID uuid.UUID) ([]*teambuilding.Partecipation, error) {
	e, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, apperrors.Internal("failed to load event", err)
	}
	if e == nil {
		return nil, apperrors.NotFound("event", eventID)
	}

	ps, err := s.teamBuildingRepo.GetByEventID(eventID)
	if err != nil {
		return nil, apperrors.Internal("failed to load sign-ups", err)
	}
	return ps, nil
}

// GetActivityPopularity tallies how many distinct users chose each
// activity of an event. A user appearing in multiple rows for the same
// activity counts once.
func (s *TeamBuildingService) GetActivityPopularity(eventID uuid.UUID) (map[uuid.UUID]int, error) {
	ps, err := s.GetPartecipationsForEvent(eventID)
	if err != nil {
		return nil, err
	}

	type pair struct {
		userID     uuid.UUID
		activityID uuid.UUID
	}

	seen := make(map[pair]bool)
	counts := make(map[uuid.UUID]int)
	for _, p := range ps {
		for _, activityID := range p.ChosenActivityUUIDs() {
			key := pair{userID: p.UserID, activityID: activityID}
			if seen[key] {
				continue
			}
			seen[key] = true
			counts[activityID]++
		}
	}

	return counts, nil
}

// DeletePartecipation removes every sign-up row the acting user holds on
// the event
func (s *TeamBuildingService) DeletePartecipation(eventID uuid.UUID, actingUser *user.User) error {
	s.log.Debug("Deleting team-building partecipation", "event_id", eventID, "user", actingUser.Email)

	e, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return apperrors.Internal("failed to load event", err)
	}
	if e == nil {
		return apperrors.NotFound("event", eventID)
	}

	ps, err := s.teamBuildingRepo.GetByEventAndUser(eventID, actingUser.ID)
	if err != nil {
		return apperrors.Internal("failed to load sign-ups", err)
	}
	if len(ps) == 0 {
		return apperrors.NotFoundMessage("no sign-up found for this user on this event")
	}

	if err := s.teamBuildingRepo.DeleteAll(ps); err != nil {
		return apperrors.Internal("failed to delete sign-ups", err)
	}

	s.log.Info("Team-building partecipations deleted", "event_id", eventID, "user", actingUser.Email, "rows", len(ps))
	return nil
}
