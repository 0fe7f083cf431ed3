package services

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/domain/partecipation"
	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/logger"
	"github.com/gravadigital/eventi-api/internal/storage/postgres"
)

// PartecipationService manages attendance records for GENERICO events
type PartecipationService struct {
	partecipationRepo postgres.PartecipationRepository
	eventRepo         postgres.EventRepository
	userRepo          postgres.UserRepository
	log               *log.Logger
}

// NewPartecipationService creates a new partecipation service
func NewPartecipationService(
	partecipationRepo postgres.PartecipationRepository,
	eventRepo postgres.EventRepository,
	userRepo postgres.UserRepository,
) *PartecipationService {
	return &PartecipationService{
		partecipationRepo: partecipationRepo,
		eventRepo:         eventRepo,
		userRepo:          userRepo,
		log:               logger.Service("partecipation"),
	}
}

// CreatePartecipations bulk-creates PENDING partecipations for the given
// users on an event. Users that already hold a partecipation are skipped,
// so repeated calls are idempotent.
func (s *PartecipationService) CreatePartecipations(eventID uuid.UUID, userIDs []uuid.UUID) ([]*partecipation.Partecipation, error) {
	s.log.Debug("Creating partecipations", "event_id", eventID, "requested", len(userIDs))

	e, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, apperrors.Internal("failed to load event", err)
	}
	if e == nil {
		return nil, apperrors.NotFound("event", eventID)
	}

	unique := dedupeIDs(userIDs)

	found, err := s.userRepo.GetByIDs(unique)
	if err != nil {
		return nil, apperrors.Internal("failed to resolve users", err)
	}
	if len(found) != len(unique) {
		return nil, apperrors.NotFoundMessage("users not found: " + missingIDs(unique, found))
	}

	existing, err := s.partecipationRepo.ExistingUserIDs(eventID, unique)
	if err != nil {
		return nil, apperrors.Internal("failed to check existing partecipations", err)
	}

	existingSet := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		existingSet[id] = true
	}

	created := []*partecipation.Partecipation{}
	for _, id := range unique {
		if existingSet[id] {
			continue
		}
		created = append(created, partecipation.New(eventID, id))
	}

	if err := s.partecipationRepo.CreateAll(created); err != nil {
		return nil, apperrors.Internal("failed to create partecipations", err)
	}

	s.log.Info("Partecipations created", "event_id", eventID, "created", len(created), "skipped", len(unique)-len(created))
	return created, nil
}

// UpdateStatus changes a partecipation's status. Only the owning user or
// a privileged user may do so.
func (s *PartecipationService) UpdateStatus(id uuid.UUID, status string, actingUser *user.User) (*partecipation.Partecipation, error) {
	s.log.Debug("Updating partecipation status", "id", id, "status", status, "acting_user", actingUser.Email)

	p, err := s.partecipationRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal("failed to load partecipation", err)
	}
	if p == nil {
		return nil, apperrors.NotFound("partecipation", id)
	}

	if p.UserID != actingUser.ID && !actingUser.Role.IsPrivileged() {
		return nil, apperrors.Permission("only the partecipation owner or a privileged user may change its status")
	}

	newStatus, ok := partecipation.StatusFromString(status)
	if !ok {
		return nil, apperrors.Validation("unknown partecipation status %q", status)
	}

	p.Status = newStatus
	if err := s.partecipationRepo.Save(p); err != nil {
		return nil, apperrors.Internal("failed to save partecipation", err)
	}

	s.log.Info("Partecipation status updated", "id", p.ID, "status", p.Status)
	return p, nil
}

// GetByID returns a single partecipation
func (s *PartecipationService) GetByID(id uuid.UUID) (*partecipation.Partecipation, error) {
	p, err := s.partecipationRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal("failed to load partecipation", err)
	}
	if p == nil {
		return nil, apperrors.NotFound("partecipation", id)
	}
	return p, nil
}

// GetAll returns every partecipation
func (s *PartecipationService) GetAll() ([]*partecipation.Partecipation, error) {
	ps, err := s.partecipationRepo.GetAll()
	if err != nil {
		return nil, apperrors.Internal("failed to load partecipations", err)
	}
	return ps, nil
}

// GetByEvent returns all partecipations of an event
func (s *PartecipationService) GetByEvent(eventID uuid.UUID) ([]*partecipation.Partecipation, error) {
	ps, err := s.partecipationRepo.GetByEventID(eventID)
	if err != nil {
		return nil, apperrors.Internal("failed to load partecipations", err)
	}
	return ps, nil
}

// GetByUser returns all partecipations of a user
func (s *PartecipationService) GetByUser(userID uuid.UUID) ([]*partecipation.Partecipation, error) {
	ps, err := s.partecipationRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load partecipations", err)
	}
	return ps, nil
}

// Delete removes a partecipation
func (s *PartecipationService) Delete(id uuid.UUID) error {
	p, err := s.partecipationRepo.GetByID(id)
	if err != nil {
		return apperrors.Internal("failed to load partecipation", err)
	}
	if p == nil {
		return apperrors.NotFound("partecipation", id)
	}

	if err := s.partecipationRepo.Delete(p); err != nil {
		return apperrors.Internal("failed to delete partecipation", err)
	}

	s.log.Info("Partecipation deleted", "id", id)
	return nil
}

// dedupeIDs removes duplicate ids preserving order
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}

// missingIDs lists the requested ids that are absent from the resolved users
func missingIDs(requested []uuid.UUID, found []*user.User) string {
	foundSet := make(map[uuid.UUID]bool, len(found))
	for _, u := range found {
		foundSet[u.ID] = true
	}

	missing := []string{}
	for _, id := range requested {
		if !foundSet[id] {
			missing = append(missing, id.String())
		}
	}
	return strings.Join(missing, ", ")
}
