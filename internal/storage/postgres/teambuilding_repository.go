package postgres

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/domain/teambuilding"
	"github.com/gravadigital/eventi-api/internal/logger"
)

// PostgresTeamBuildingRepository implements TeamBuildingRepository using GORM
type PostgresTeamBuildingRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresTeamBuildingRepository creates a new PostgreSQL team-building repository
func NewPostgresTeamBuildingRepository(db *gorm.DB) *PostgresTeamBuildingRepository {
	return &PostgresTeamBuildingRepository{
		db:  db,
		log: logger.Repository("teambuilding"),
	}
}

func (r *PostgresTeamBuildingRepository) Create(p *teambuilding.Partecipation) error {
	r.log.Debug("Creating team-building partecipation",
		"event_id", p.EventID, "user_id", p.UserID, "activities", len(p.ChosenActivityIDs))

	if err := r.db.Create(p).Error; err != nil {
		r.log.Error("Failed to create team-building partecipation",
			"event_id", p.EventID, "user_id", p.UserID, "error", err)
		return fmt.Errorf("failed to create team-building partecipation: %w", err)
	}

	r.log.Info("Team-building partecipation created successfully", "id", p.ID)
	return nil
}

func (r *PostgresTeamBuildingRepository) GetByEventID(eventID uuid.UUID) ([]*teambuilding.Partecipation, error) {
	r.log.Debug("Retrieving team-building partecipations by event", "event_id", eventID)

	var ps []*teambuilding.Partecipation
	err := r.db.Preload("User").Where("event_id = ?", eventID).
		Order("created_at ASC").Find(&ps).Error
	if err != nil {
		r.log.Error("Failed to get team-building partecipations by event",
			"event_id", eventID, "error", err)
		return nil, fmt.Errorf("failed to get team-building partecipations by event: %w", err)
	}

	return ps, nil
}

func (r *PostgresTeamBuildingRepository) GetByEventAndUser(eventID, userID uuid.UUID) ([]*teambuilding.Partecipation, error) {
	r.log.Debug("Retrieving team-building partecipations by event and user",
		"event_id", eventID, "user_id", userID)

	var ps []*teambuilding.Partecipation
	err := r.db.Where("event_id = ? AND user_id = ?", eventID, userID).
		Order("created_at ASC").Find(&ps).Error
	if err != nil {
		r.log.Error("Failed to get team-building partecipations by event and user",
			"event_id", eventID, "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get team-building partecipations by event and user: %w", err)
	}

	return ps, nil
}

func (r *PostgresTeamBuildingRepository) DeleteAll(ps []*teambuilding.Partecipation) error {
	r.log.Debug("Deleting team-building partecipations", "count", len(ps))

	if len(ps) == 0 {
		return nil
	}

	if err := r.db.Delete(&ps).Error; err != nil {
		r.log.Error("Failed to delete team-building partecipations", "count", len(ps), "error", err)
		return fmt.Errorf("failed to delete team-building partecipations: %w", err)
	}

	return nil
}

func (r *PostgresTeamBuildingRepository) DeleteAllByEvent(eventID uuid.UUID) error {
	r.log.Debug("Deleting team-building partecipations by event", "event_id", eventID)

	err := r.db.Where("event_id = ?", eventID).Delete(&teambuilding.Partecipation{}).Error
	if err != nil {
		r.log.Error("Failed to delete team-building partecipations by event",
			"event_id", eventID, "error", err)
		return fmt.Errorf("failed to delete team-building partecipations by event: %w", err)
	}

	return nil
}
