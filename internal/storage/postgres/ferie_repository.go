package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/domain/ferie"
	"github.com/gravadigital/eventi-api/internal/logger"
)

// PostgresFerieRepository implements FerieRepository using GORM
type PostgresFerieRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresFerieRepository creates a new PostgreSQL ferie repository
func NewPostgresFerieRepository(db *gorm.DB) *PostgresFerieRepository {
	return &PostgresFerieRepository{
		db:  db,
		log: logger.Repository("ferie"),
	}
}

func (r *PostgresFerieRepository) Create(f *ferie.Ferie) error {
	r.log.Debug("Creating ferie", "title", f.Title, "event_id", f.EventID)

	if err := r.db.Create(f).Error; err != nil {
		r.log.Error("Failed to create ferie", "title", f.Title, "error", err)
		return fmt.Errorf("failed to create ferie: %w", err)
	}

	r.log.Info("Ferie created successfully", "id", f.ID, "status", f.Status)
	return nil
}

func (r *PostgresFerieRepository) GetByID(id uuid.UUID) (*ferie.Ferie, error) {
	r.log.Debug("Retrieving ferie by ID", "ferie_id", id)

	var f ferie.Ferie
	if err := r.db.Preload("CreatedBy").First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("Ferie not found", "id", id)
			return nil, nil
		}
		r.log.Error("Failed to get ferie by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get ferie by ID: %w", err)
	}

	return &f, nil
}

func (r *PostgresFerieRepository) GetAll() ([]*ferie.Ferie, error) {
	r.log.Debug("Retrieving all ferie")

	var fs []*ferie.Ferie
	if err := r.db.Preload("CreatedBy").Order("start_date ASC").Find(&fs).Error; err != nil {
		r.log.Error("Failed to get all ferie", "error", err)
		return nil, fmt.Errorf("failed to get all ferie: %w", err)
	}

	r.log.Debug("Ferie retrieved successfully", "count", len(fs))
	return fs, nil
}

func (r *PostgresFerieRepository) GetByCreator(userID uuid.UUID) ([]*ferie.Ferie, error) {
	r.log.Debug("Retrieving ferie by creator", "user_id", userID)

	var fs []*ferie.Ferie
	err := r.db.Where("created_by_id = ?", userID).Order("start_date ASC").Find(&fs).Error
	if err != nil {
		r.log.Error("Failed to get ferie by creator", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get ferie by creator: %w", err)
	}

	return fs, nil
}

func (r *PostgresFerieRepository) Save(f *ferie.Ferie) error {
	r.log.Debug("Saving ferie", "id", f.ID, "status", f.Status)

	if err := r.db.Omit("Event", "CreatedBy").Save(f).Error; err != nil {
		r.log.Error("Failed to save ferie", "id", f.ID, "error", err)
		return fmt.Errorf("failed to save ferie: %w", err)
	}

	r.log.Info("Ferie saved successfully", "id", f.ID, "status", f.Status)
	return nil
}

func (r *PostgresFerieRepository) Delete(f *ferie.Ferie) error {
	r.log.Debug("Deleting ferie", "id", f.ID)

	if err := r.db.Delete(f).Error; err != nil {
		r.log.Error("Failed to delete ferie", "id", f.ID, "error", err)
		return fmt.Errorf("failed to delete ferie: %w", err)
	}

	r.log.Info("Ferie deleted successfully", "id", f.ID)
	return nil
}

func (r *PostgresFerieRepository) DeleteAllByEvent(eventID uuid.UUID) error {
	r.log.Debug("Deleting ferie by event", "event_id", eventID)

	if err := r.db.Where("event_id = ?", eventID).Delete(&ferie.Ferie{}).Error; err != nil {
		r.log.Error("Failed to delete ferie by event", "event_id", eventID, "error", err)
		return fmt.Errorf("failed to delete ferie by event: %w", err)
	}

	return nil
}
