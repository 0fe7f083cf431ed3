package services

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/logger"
	"github.com/gravadigital/eventi-api/internal/storage/postgres"
)

// EventService owns the event lifecycle: it is the only component that
// creates or deletes events, and it fans out child-record creation and
// cleanup to the type-specific repositories.
type EventService struct {
	eventRepo         postgres.EventRepository
	userRepo          postgres.UserRepository
	partecipationSvc  *PartecipationService
	partecipationRepo postgres.PartecipationRepository
	ferieRepo         postgres.FerieRepository
	activityRepo      postgres.ActivityRepository
	teamBuildingRepo  postgres.TeamBuildingRepository
	log               *log.Logger
}

// NewEventService creates a new event service
func NewEventService(
	eventRepo postgres.EventRepository,
	userRepo postgres.UserRepository,
	partecipationSvc *PartecipationService,
	partecipationRepo postgres.PartecipationRepository,
	ferieRepo postgres.FerieRepository,
	activityRepo postgres.ActivityRepository,
	teamBuildingRepo postgres.TeamBuildingRepository,
) *EventService {
	return &EventService{
		eventRepo:         eventRepo,
		userRepo:          userRepo,
		partecipationSvc:  partecipationSvc,
		partecipationRepo: partecipationRepo,
		ferieRepo:         ferieRepo,
		activityRepo:      activityRepo,
		teamBuildingRepo:  teamBuildingRepo,
		log:               logger.Service("event"),
	}
}

// CreateEventRequest carries the data to create an event
type CreateEventRequest struct {
	Title          string      `json:"title" binding:"required"`
	StartDate      time.Time   `json:"start_date"`
	EndDate        time.Time   `json:"end_date"`
	EventType      string      `json:"event_type"`
	InvitedUserIDs []uuid.UUID `json:"invited_user_ids"`
}

// UpdateEventRequest carries the data to update an event. Nil fields are
// left untouched.
type UpdateEventRequest struct {
	Title          *string      `json:"title"`
	StartDate      *time.Time   `json:"start_date"`
	EndDate        *time.Time   `json:"end_date"`
	InvitedUserIDs *[]uuid.UUID `json:"invited_user_ids"`

	ConfirmedStartDate  *time.Time `json:"confirmed_start_date"`
	ConfirmedEndDate    *time.Time `json:"confirmed_end_date"`
	ConfirmedActivityID *uuid.UUID `json:"confirmed_activity_id"`
}

func (r *UpdateEventRequest) hasConfirmedFields() bool {
	return r.ConfirmedStartDate != nil || r.ConfirmedEndDate != nil || r.ConfirmedActivityID != nil
}

// CreateEvent creates a new event. The event type defaults to FERIE when
// unspecified; for GENERICO events a pending partecipation is created for
// every invited user.
func (s *EventService) CreateEvent(req CreateEventRequest, creator *user.User) (*event.Event, error) {
	s.log.Debug("Creating event", "title", req.Title, "type", req.EventType, "creator", creator.Email)

	eventType := event.TypeFerie
	if req.EventType != "" {
		parsed, ok := event.TypeFromString(req.EventType)
		if !ok {
			return nil, apperrors.Validation("unknown event type %q", req.EventType)
		}
		eventType = parsed
	}

	e := &event.Event{
		Title:       req.Title,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		EventType:   eventType,
		CreatedByID: creator.ID,
	}

	if err := e.ValidateDates(); err != nil {
		return nil, err
	}

	invited, err := s.resolveInvitedUsers(req.InvitedUserIDs)
	if err != nil {
		return nil, err
	}
	e.InvitedUsers = invited

	if err := s.eventRepo.Create(e); err != nil {
		return nil, apperrors.Internal("failed to create event", err)
	}

	if eventType == event.TypeGenerico && len(invited) > 0 {
		if _, err := s.partecipationSvc.CreatePartecipations(e.ID, e.InvitedUserIDs()); err != nil {
			return nil, err
		}
	}

	s.log.Info("Event created", "id", e.ID, "type", e.EventType, "invited", len(invited))
	return e, nil
}

// UpdateEvent applies title, dates, confirmed fields and invite-list
// changes to an existing event. Only newly invited users of a GENERICO
// event get a partecipation; removals never delete existing records.
func (s *EventService) UpdateEvent(id uuid.UUID, req UpdateEventRequest) (*event.Event, error) {
	s.log.Debug("Updating event", "id", id)

	e, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal("failed to load event", err)
	}
	if e == nil {
		return nil, apperrors.NotFound("event", id)
	}

	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.StartDate != nil {
		e.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		e.EndDate = *req.EndDate
	}

	if err := e.ValidateDates(); err != nil {
		return nil, err
	}

	if req.hasConfirmedFields() {
		if err := s.applyConfirmedFields(e, req); err != nil {
			return nil, err
		}
	}

	var newlyInvited []uuid.UUID
	if req.InvitedUserIDs != nil {
		previous := make(map[uuid.UUID]bool, len(e.InvitedUsers))
		for _, invited := range e.InvitedUsers {
			previous[invited.ID] = true
		}

		invited, err := s.resolveInvitedUsers(*req.InvitedUserIDs)
		if err != nil {
			return nil, err
		}

		for _, u := range invited {
			if !previous[u.ID] {
				newlyInvited = append(newlyInvited, u.ID)
			}
		}

		if err := s.eventRepo.ReplaceInvitedUsers(e, invited); err != nil {
			return nil, apperrors.Internal("failed to replace invited users", err)
		}
	}

	if err := s.eventRepo.Save(e); err != nil {
		return nil, apperrors.Internal("failed to save event", err)
	}

	if e.EventType == event.TypeGenerico && len(newlyInvited) > 0 {
		if _, err := s.partecipationSvc.CreatePartecipations(e.ID, newlyInvited); err != nil {
			return nil, err
		}
	}

	s.log.Info("Event updated", "id", e.ID, "newly_invited", len(newlyInvited))
	return e, nil
}

// DeleteEvent removes an event and all of its type-specific children
func (s *EventService) DeleteEvent(id uuid.UUID) error {
	s.log.Debug("Deleting event", "id", id)

	e, err := s.eventRepo.GetByID(id)
	if err != nil {
		return apperrors.Internal("failed to load event", err)
	}
	if e == nil {
		return apperrors.NotFound("event", id)
	}

	switch e.EventType {
	case event.TypeGenerico:
		if err := s.partecipationRepo.DeleteAllByEvent(e.ID); err != nil {
			return apperrors.Internal("failed to delete event partecipations", err)
		}
	case event.TypeFerie:
		if err := s.ferieRepo.DeleteAllByEvent(e.ID); err != nil {
			return apperrors.Internal("failed to delete event ferie", err)
		}
	case event.TypeTeamBuilding:
		if err := s.teamBuildingRepo.DeleteAllByEvent(e.ID); err != nil {
			return apperrors.Internal("failed to delete team-building partecipations", err)
		}
		if err := s.activityRepo.DeleteAllByEvent(e.ID); err != nil {
			return apperrors.Internal("failed to delete event activities", err)
		}
	default:
		return apperrors.Internal("event has invalid type", apperrors.Validation("unknown event type %q", e.EventType))
	}

	if err := s.eventRepo.Delete(e); err != nil {
		return apperrors.Internal("failed to delete event", err)
	}

	s.log.Info("Event deleted", "id", e.ID, "type", e.EventType)
	return nil
}

// GetEventByID returns a single event
func (s *EventService) GetEventByID(id uuid.UUID) (*event.Event, error) {
	e, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal("failed to load event", err)
	}
	if e == nil {
		return nil, apperrors.NotFound("event", id)
	}
	return e, nil
}

// GetAllEvents returns every event
func (s *EventService) GetAllEvents() ([]*event.Event, error) {
	events, err := s.eventRepo.GetAll()
	if err != nil {
		return nil, apperrors.Internal("failed to load events", err)
	}
	return events, nil
}

// GetUserEvents returns the events a user is invited to or created
func (s *EventService) GetUserEvents(userID uuid.UUID) ([]*event.Event, error) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load user", err)
	}
	if u == nil {
		return nil, apperrors.NotFound("user", userID)
	}

	events, err := s.eventRepo.GetAll()
	if err != nil {
		return nil, apperrors.Internal("failed to load events", err)
	}

	mine := []*event.Event{}
	for _, e := range events {
		if e.CreatedByID == userID || e.IsInvited(userID) {
			mine = append(mine, e)
		}
	}

	return mine, nil
}

// applyConfirmedFields validates and applies the TEAM_BUILDING confirmed
// fields: all-or-nothing, inside the event range and the activity must
// belong to the event.
func (s *EventService) applyConfirmedFields(e *event.Event, req UpdateEventRequest) error {
	if e.EventType != event.TypeTeamBuilding {
		return apperrors.Validation("confirmed fields are only allowed on TEAM_BUILDING events")
	}

	if req.ConfirmedStartDate == nil || req.ConfirmedEndDate == nil || req.ConfirmedActivityID == nil {
		return apperrors.Validation("confirmed start date, end date and activity must be provided together")
	}

	if !e.WithinRange(*req.ConfirmedStartDate, *req.ConfirmedEndDate) {
		return apperrors.Validation("confirmed dates must lie within the event date range")
	}
	if event.DateOnly(*req.ConfirmedStartDate).After(event.DateOnly(*req.ConfirmedEndDate)) {
		return apperrors.Validation("confirmed start date must not be after confirmed end date")
	}

	a, err := s.activityRepo.GetByID(*req.ConfirmedActivityID)
	if err != nil {
		return apperrors.Internal("failed to load activity", err)
	}
	if a == nil {
		return apperrors.NotFound("activity", *req.ConfirmedActivityID)
	}
	if a.EventID != e.ID {
		return apperrors.Validation("confirmed activity does not belong to this event")
	}

	e.ConfirmedStartDate = req.ConfirmedStartDate
	e.ConfirmedEndDate = req.ConfirmedEndDate
	e.ConfirmedActivityID = req.ConfirmedActivityID
	return nil
}

// resolveInvitedUsers loads every invited user, failing when any id is
// unknown
func (s *EventService) resolveInvitedUsers(ids []uuid.UUID) ([]user.User, error) {
	if len(ids) == 0 {
		return []user.User{}, nil
	}

	found, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, apperrors.Internal("failed to resolve invited users", err)
	}

	byID := make(map[uuid.UUID]*user.User, len(found))
	for _, u := range found {
		byID[u.ID] = u
	}

	users := make([]user.User, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		u, ok := byID[id]
		if !ok {
			return nil, apperrors.NotFound("user", id)
		}
		users = append(users, *u)
	}

	return users, nil
}
