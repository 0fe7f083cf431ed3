package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/logger"
)

// PostgresEventRepository implements EventRepository using GORM
type PostgresEventRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresEventRepository creates a new PostgreSQL event repository
func NewPostgresEventRepository(db *gorm.DB) *PostgresEventRepository {
	return &PostgresEventRepository{
		db:  db,
		log: logger.Repository("event"),
	}
}

func (r *PostgresEventRepository) Create(e *event.Event) error {
	r.log.Debug("Creating event", "title", e.Title, "type", e.EventType)

	if err := r.db.Create(e).Error; err != nil {
		r.log.Error("Failed to create event", "title", e.Title, "error", err)
		return fmt.Errorf("failed to create event: %w", err)
	}

	r.log.Info("Event created successfully", "id", e.ID, "title", e.Title, "type", e.EventType)
	return nil
}

func (r *PostgresEventRepository) GetByID(id uuid.UUID) (*event.Event, error) {
	r.log.Debug("Retrieving event by ID", "event_id", id)

	var e event.Event
	err := r.db.Preload("InvitedUsers").Preload("CreatedBy").First(&e, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("Event not found", "id", id)
			return nil, nil
		}
		r.log.Error("Failed to get event by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get event by ID: %w", err)
	}

	return &e, nil
}

func (r *PostgresEventRepository) GetAll() ([]*event.Event, error) {
	r.log.Debug("Retrieving all events")

	var events []*event.Event
	err := r.db.Preload("InvitedUsers").Preload("CreatedBy").
		Order("start_date ASC").Find(&events).Error
	if err != nil {
		r.log.Error("Failed to get all events", "error", err)
		return nil, fmt.Errorf("failed to get all events: %w", err)
	}

	r.log.Debug("Events retrieved successfully", "count", len(events))
	return events, nil
}

func (r *PostgresEventRepository) GetByCreator(userID uuid.UUID) ([]*event.Event, error) {
	r.log.Debug("Retrieving events by creator", "user_id", userID)

	var events []*event.Event
	err := r.db.Preload("InvitedUsers").
		Where("created_by_id = ?", userID).
		Order("start_date ASC").Find(&events).Error
	if err != nil {
		r.log.Error("Failed to get events by creator", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get events by creator: %w", err)
	}

	return events, nil
}

func (r *PostgresEventRepository) Save(e *event.Event) error {
	r.log.Debug("Saving event", "id", e.ID, "title", e.Title)

	if err := r.db.Omit("InvitedUsers", "CreatedBy").Save(e).Error; err != nil {
		r.log.Error("Failed to save event", "id", e.ID, "error", err)
		return fmt.Errorf("failed to save event: %w", err)
	}

	r.log.Info("Event saved successfully", "id", e.ID)
	return nil
}

// ReplaceInvitedUsers swaps the full invite list of an event for the given users.
func (r *PostgresEventRepository) ReplaceInvitedUsers(e *event.Event, users []user.User) error {
	r.log.Debug("Replacing invited users", "event_id", e.ID, "invited", len(users))

	if err := r.db.Model(e).Association("InvitedUsers").Replace(users); err != nil {
		r.log.Error("Failed to replace invited users", "event_id", e.ID, "error", err)
		return fmt.Errorf("failed to replace invited users: %w", err)
	}

	e.InvitedUsers = users
	return nil
}

func (r *PostgresEventRepository) Delete(e *event.Event) error {
	r.log.Debug("Deleting event", "id", e.ID, "title", e.Title)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(e).Association("InvitedUsers").Clear(); err != nil {
			r.log.Error("Failed to clear invited users", "event_id", e.ID, "error", err)
			return fmt.Errorf("failed to clear invited users: %w", err)
		}

		if err := tx.Delete(e).Error; err != nil {
			r.log.Error("Failed to delete event", "id", e.ID, "error", err)
			return fmt.Errorf("failed to delete event: %w", err)
		}

		r.log.Info("Event deleted successfully", "id", e.ID)
		return nil
	})
}
