package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/domain/partecipation"
	"github.com/gravadigital/eventi-api/internal/logger"
)

// PostgresPartecipationRepository implements PartecipationRepository using GORM
type PostgresPartecipationRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresPartecipationRepository creates a new PostgreSQL partecipation repository
func NewPostgresPartecipationRepository(db *gorm.DB) *PostgresPartecipationRepository {
	return &PostgresPartecipationRepository{
		db:  db,
		log: logger.Repository("partecipation"),
	}
}

func (r *PostgresPartecipationRepository) CreateAll(ps []*partecipation.Partecipation) error {
	r.log.Debug("Creating partecipations", "count", len(ps))

	if len(ps) == 0 {
		return nil
	}

	if err := r.db.Create(&ps).Error; err != nil {
		r.log.Error("Failed to create partecipations", "count", len(ps), "error", err)
		return fmt.Errorf("failed to create partecipations: %w", err)
	}

	r.log.Info("Partecipations created successfully", "count", len(ps))
	return nil
}

func (r *PostgresPartecipationRepository) GetByID(id uuid.UUID) (*partecipation.Partecipation, error) {
	r.log.Debug("Retrieving partecipation by ID", "partecipation_id", id)

	var p partecipation.Partecipation
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("Partecipation not found", "id", id)
			return nil, nil
		}
		r.log.Error("Failed to get partecipation by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get partecipation by ID: %w", err)
	}

	return &p, nil
}

func (r *PostgresPartecipationRepository) GetAll() ([]*partecipation.Partecipation, error) {
	r.log.Debug("Retrieving all partecipations")

	var ps []*partecipation.Partecipation
	if err := r.db.Order("created_at ASC").Find(&ps).Error; err != nil {
		r.log.Error("Failed to get all partecipations", "error", err)
		return nil, fmt.Errorf("failed to get all partecipations: %w", err)
	}

	return ps, nil
}

func (r *PostgresPartecipationRepository) GetByEventID(eventID uuid.UUID) ([]*partecipation.Partecipation, error) {
	r.log.Debug("Retrieving partecipations by event", "event_id", eventID)

	var ps []*partecipation.Partecipation
	if err := r.db.Where("event_id = ?", eventID).Find(&ps).Error; err != nil {
		r.log.Error("Failed to get partecipations by event", "event_id", eventID, "error", err)
		return nil, fmt.Errorf("failed to get partecipations by event: %w", err)
	}

	return ps, nil
}

func (r *PostgresPartecipationRepository) GetByUserID(userID uuid.UUID) ([]*partecipation.Partecipation, error) {
	r.log.Debug("Retrieving partecipations by user", "user_id", userID)

	var ps []*partecipation.Partecipation
	if err := r.db.Where("user_id = ?", userID).Find(&ps).Error; err != nil {
		r.log.Error("Failed to get partecipations by user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get partecipations by user: %w", err)
	}

	return ps, nil
}

// ExistingUserIDs returns the subset of userIDs that already hold a
// partecipation for the event.
func (r *PostgresPartecipationRepository) ExistingUserIDs(eventID uuid.UUID, userIDs []uuid.UUID) ([]uuid.UUID, error) {
	r.log.Debug("Checking existing partecipations", "event_id", eventID, "candidates", len(userIDs))

	if len(userIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	var existing []uuid.UUID
	err := r.db.Model(&partecipation.Partecipation{}).
		Where("event_id = ? AND user_id IN ?", eventID, userIDs).
		Pluck("user_id", &existing).Error
	if err != nil {
		r.log.Error("Failed to check existing partecipations", "event_id", eventID, "error", err)
		return nil, fmt.Errorf("failed to check existing partecipations: %w", err)
	}

	return existing, nil
}

func (r *PostgresPartecipationRepository) Save(p *partecipation.Partecipation) error {
	r.log.Debug("Saving partecipation", "id", p.ID, "status", p.Status)

	if err := r.db.Omit("Event", "User").Save(p).Error; err != nil {
		r.log.Error("Failed to save partecipation", "id", p.ID, "error", err)
		return fmt.Errorf("failed to save partecipation: %w", err)
	}

	r.log.Info("Partecipation saved successfully", "id", p.ID, "status", p.Status)
	return nil
}

func (r *PostgresPartecipationRepository) Delete(p *partecipation.Partecipation) error {
	r.log.Debug("Deleting partecipation", "id", p.ID)

	if err := r.db.Delete(p).Error; err != nil {
		r.log.Error("Failed to delete partecipation", "id", p.ID, "error", err)
		return fmt.Errorf("failed to delete partecipation: %w", err)
	}

	r.log.Info("Partecipation deleted successfully", "id", p.ID)
	return nil
}

func (r *PostgresPartecipationRepository) DeleteAllByEvent(eventID uuid.UUID) error {
	r.log.Debug("Deleting partecipations by event", "event_id", eventID)

	if err := r.db.Where("event_id = ?", eventID).Delete(&partecipation.Partecipation{}).Error; err != nil {
		r.log.Error("Failed to delete partecipations by event", "event_id", eventID, "error", err)
		return fmt.Errorf("failed to delete partecipations by event: %w", err)
	}

	return nil
}
