package services

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/ferie"
	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/logger"
	"github.com/gravadigital/eventi-api/internal/storage/postgres"
)

// FerieService manages vacation requests tied to FERIE events
type FerieService struct {
	ferieRepo postgres.FerieRepository
	eventRepo postgres.EventRepository
	log       *log.Logger
}

// NewFerieService creates a new ferie service
func NewFerieService(ferieRepo postgres.FerieRepository, eventRepo postgres.EventRepository) *FerieService {
	return &FerieService{
		ferieRepo: ferieRepo,
		eventRepo: eventRepo,
		log:       logger.Service("ferie"),
	}
}

// CreateFerieRequest carries the data to create a vacation request
type CreateFerieRequest struct {
	Title     string     `json:"title"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	EventID   *uuid.UUID `json:"event_id"`
}

// UpdateFerieRequest carries the data to amend a vacation request
type UpdateFerieRequest struct {
	Title     *string    `json:"title"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// CreateFerie creates a vacation request for the acting user. The user
// must be invited to the FERIE event and the event must not have started
// yet; requests are approved immediately.
func (s *FerieService) CreateFerie(req CreateFerieRequest, actingUser *user.User) (*ferie.Ferie, error) {
	s.log.Debug("Creating ferie", "title", req.Title, "user", actingUser.Email)

	if req.EventID == nil {
		return nil, apperrors.Validation("event id is required")
	}

	e, err := s.eventRepo.GetByID(*req.EventID)
	if err != nil {
		return nil, apperrors.Internal("failed to load event", err)
	}
	if e == nil {
		return nil, apperrors.NotFound("event", *req.EventID)
	}

	if !s.canRequestFerie(e, actingUser) {
		return nil, apperrors.Permission("user is not eligible to request vacation on this event")
	}

	if e.EventType != event.TypeFerie {
		return nil, apperrors.Validation("vacation requests are only allowed on FERIE events")
	}

	if err := validateFerieDates(e, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	f := &ferie.Ferie{
		Title:       req.Title,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      ferie.StatusApproved,
		EventID:     e.ID,
		CreatedByID: actingUser.ID,
	}

	if err := s.ferieRepo.Create(f); err != nil {
		return nil, apperrors.Internal("failed to create ferie", err)
	}

	s.log.Info("Ferie created", "id", f.ID, "event_id", e.ID, "status", f.Status)
	return f, nil
}

// UpdateFerie amends an existing request, re-validating the date range
// against the parent event. Eligibility is not re-checked here.
func (s *FerieService) UpdateFerie(id uuid.UUID, req UpdateFerieRequest) (*ferie.Ferie, error) {
	s.log.Debug("Updating ferie", "id", id)

	f, err := s.ferieRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal("failed to load ferie", err)
	}
	if f == nil {
		return nil, apperrors.NotFound("ferie", id)
	}

	e, err := s.eventRepo.GetByID(f.EventID)
	if err != nil {
		return nil, apperrors.Internal("failed to load event", err)
	}
	if e == nil {
		return nil, apperrors.NotFound("event", f.EventID)
	}

	if req.Title != nil {
		f.Title = *req.Title
	}
	if req.StartDate != nil {
		f.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		f.EndDate = *req.EndDate
	}

	if err := validateFerieDates(e, f.StartDate, f.EndDate); err != nil {
		return nil, err
	}

	if err := s.ferieRepo.Save(f); err != nil {
		return nil, apperrors.Internal("failed to save ferie", err)
	}

	s.log.Info("Ferie updated", "id", f.ID)
	return f, nil
}

// UpdateStatus overwrites a request's status. Any transition is allowed;
// the role gate lives at the transport layer.
func (s *FerieService) UpdateStatus(id uuid.UUID, status string) (*ferie.Ferie, error) {
	s.log.Debug("Updating ferie status", "id", id, "status", status)

	f, err := s.ferieRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal("failed to load ferie", err)
	}
	if f == nil {
		return nil, apperrors.NotFound("ferie", id)
	}

	newStatus, ok := ferie.StatusFromString(status)
	if !ok {
		return nil, apperrors.Validation("unknown ferie status %q", status)
	}

	f.Status = newStatus
	if err := s.ferieRepo.Save(f); err != nil {
		return nil, apperrors.Internal("failed to save ferie", err)
	}

	s.log.Info("Ferie status updated", "id", f.ID, "status", f.Status)
	return f, nil
}

// GetByID returns a single vacation request
func (s *FerieService) GetByID(id uuid.UUID) (*ferie.Ferie, error) {
	f, err := s.ferieRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal("failed to load ferie", err)
	}
	if f == nil {
		return nil, apperrors.NotFound("ferie", id)
	}
	return f, nil
}

// GetMyFerie returns the acting user's vacation requests
func (s *FerieService) GetMyFerie(actingUser *user.User) ([]*ferie.Ferie, error) {
	fs, err := s.ferieRepo.GetByCreator(actingUser.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to load ferie", err)
	}
	return fs, nil
}

// GetAllFerie returns every vacation request
func (s *FerieService) GetAllFerie() ([]*ferie.Ferie, error) {
	fs, err := s.ferieRepo.GetAll()
	if err != nil {
		return nil, apperrors.Internal("failed to load ferie", err)
	}
	return fs, nil
}

// Delete removes a vacation request
func (s *FerieService) Delete(id uuid.UUID) error {
	f, err := s.ferieRepo.GetByID(id)
	if err != nil {
		return apperrors.Internal("failed to load ferie", err)
	}
	if f == nil {
		return apperrors.NotFound("ferie", id)
	}

	if err := s.ferieRepo.Delete(f); err != nil {
		return apperrors.Internal("failed to delete ferie", err)
	}

	s.log.Info("Ferie deleted", "id", id)
	return nil
}

// canRequestFerie is the single eligibility predicate: the user must be
// invited and the event must not have started yet.
func (s *FerieService) canRequestFerie(e *event.Event, u *user.User) bool {
	return e.IsInvited(u.ID) && !e.HasStarted()
}

// validateFerieDates checks the requested range: required, start not
// after end, neither in the past, both inside the event range.
func validateFerieDates(e *event.Event, start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return apperrors.Validation("start and end dates are required")
	}

	s := event.DateOnly(start)
	n := event.DateOnly(end)

	if s.After(n) {
		return apperrors.Validation("start date must not be after end date")
	}
	if s.Before(event.Today()) || n.Before(event.Today()) {
		return apperrors.Validation("vacation dates cannot be in the past")
	}
	if !e.WithinRange(start, end) {
		return apperrors.Validation("vacation dates must lie within the event date range")
	}

	return nil
}
