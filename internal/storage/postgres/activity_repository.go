package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/domain/activity"
	"github.com/gravadigital/eventi-api/internal/logger"
)

// PostgresActivityRepository implements ActivityRepository using GORM
type PostgresActivityRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresActivityRepository creates a new PostgreSQL activity repository
func NewPostgresActivityRepository(db *gorm.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{
		db:  db,
		log: logger.Repository("activity"),
	}
}

func (r *PostgresActivityRepository) Create(a *activity.Activity) error {
	r.log.Debug("Creating activity", "name", a.Name, "event_id", a.EventID, "custom", a.IsCustom)

	if err := r.db.Create(a).Error; err != nil {
		r.log.Error("Failed to create activity", "name", a.Name, "error", err)
		return fmt.Errorf("failed to create activity: %w", err)
	}

	r.log.Info("Activity created successfully", "id", a.ID, "name", a.Name)
	return nil
}

func (r *PostgresActivityRepository) GetByID(id uuid.UUID) (*activity.Activity, error) {
	r.log.Debug("Retrieving activity by ID", "activity_id", id)

	var a activity.Activity
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("Activity not found", "id", id)
			return nil, nil
		}
		r.log.Error("Failed to get activity by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get activity by ID: %w", err)
	}

	return &a, nil
}

func (r *PostgresActivityRepository) GetByEventID(eventID uuid.UUID) ([]*activity.Activity, error) {
	r.log.Debug("Retrieving activities by event", "event_id", eventID)

	var as []*activity.Activity
	err := r.db.Where("event_id = ?", eventID).Order("created_at ASC").Find(&as).Error
	if err != nil {
		r.log.Error("Failed to get activities by event", "event_id", eventID, "error", err)
		return nil, fmt.Errorf("failed to get activities by event: %w", err)
	}

	return as, nil
}

func (r *PostgresActivityRepository) Save(a *activity.Activity) error {
	r.log.Debug("Saving activity", "id", a.ID, "name", a.Name)

	if err := r.db.Omit("Event", "CreatedBy").Save(a).Error; err != nil {
		r.log.Error("Failed to save activity", "id", a.ID, "error", err)
		return fmt.Errorf("failed to save activity: %w", err)
	}

	r.log.Info("Activity saved successfully", "id", a.ID)
	return nil
}

func (r *PostgresActivityRepository) Delete(a *activity.Activity) error {
	r.log.Debug("Deleting activity", "id", a.ID, "name", a.Name)

	if err := r.db.Delete(a).Error; err != nil {
		r.log.Error("Failed to delete activity", "id", a.ID, "error", err)
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	r.log.Info("Activity deleted successfully", "id", a.ID)
	return nil
}

func (r *PostgresActivityRepository) DeleteAllByEvent(eventID uuid.UUID) error {
	r.log.Debug("Deleting activities by event", "event_id", eventID)

	if err := r.db.Where("event_id = ?", eventID).Delete(&activity.Activity{}).Error; err != nil {
		r.log.Error("Failed to delete activities by event", "event_id", eventID, "error", err)
		return fmt.Errorf("failed to delete activities by event: %w", err)
	}

	return nil
}
