package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/domain/group"
	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/logger"
)

// PostgresGroupRepository implements GroupRepository using GORM
type PostgresGroupRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresGroupRepository creates a new PostgreSQL group repository
func NewPostgresGroupRepository(db *gorm.DB) *PostgresGroupRepository {
	return &PostgresGroupRepository{
		db:  db,
		log: logger.Repository("group"),
	}
}

func (r *PostgresGroupRepository) Create(g *group.UserGroup) error {
	r.log.Debug("Creating group", "name", g.Name, "members", len(g.Members))

	if err := r.db.Create(g).Error; err != nil {
		r.log.Error("Failed to create group", "name", g.Name, "error", err)
		return fmt.Errorf("failed to create group: %w", err)
	}

	r.log.Info("Group created successfully", "id", g.ID, "name", g.Name)
	return nil
}

func (r *PostgresGroupRepository) GetByID(id uuid.UUID) (*group.UserGroup, error) {
	r.log.Debug("Retrieving group by ID", "group_id", id)

	var g group.UserGroup
	if err := r.db.Preload("Members").First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("Group not found", "id", id)
			return nil, nil
		}
		r.log.Error("Failed to get group by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get group by ID: %w", err)
	}

	return &g, nil
}

func (r *PostgresGroupRepository) GetAll() ([]*group.UserGroup, error) {
	r.log.Debug("Retrieving all groups")

	var groups []*group.UserGroup
	if err := r.db.Preload("Members").Order("created_at ASC").Find(&groups).Error; err != nil {
		r.log.Error("Failed to get all groups", "error", err)
		return nil, fmt.Errorf("failed to get all groups: %w", err)
	}

	r.log.Debug("Groups retrieved successfully", "count", len(groups))
	return groups, nil
}

// ReplaceMembers swaps the full membership of a group for the given users.
func (r *PostgresGroupRepository) ReplaceMembers(g *group.UserGroup, members []user.User) error {
	r.log.Debug("Replacing group members", "group_id", g.ID, "members", len(members))

	if err := r.db.Model(g).Association("Members").Replace(members); err != nil {
		r.log.Error("Failed to replace group members", "group_id", g.ID, "error", err)
		return fmt.Errorf("failed to replace group members: %w", err)
	}

	g.Members = members
	return nil
}

func (r *PostgresGroupRepository) Update(g *group.UserGroup) error {
	r.log.Debug("Updating group", "id", g.ID, "name", g.Name)

	if err := r.db.Omit("Members").Save(g).Error; err != nil {
		r.log.Error("Failed to update group", "id", g.ID, "error", err)
		return fmt.Errorf("failed to update group: %w", err)
	}

	r.log.Info("Group updated successfully", "id", g.ID)
	return nil
}

func (r *PostgresGroupRepository) Delete(g *group.UserGroup) error {
	r.log.Debug("Deleting group", "id", g.ID, "name", g.Name)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(g).Association("Members").Clear(); err != nil {
			r.log.Error("Failed to detach group members", "group_id", g.ID, "error", err)
			return fmt.Errorf("failed to detach group members: %w", err)
		}

		if err := tx.Delete(g).Error; err != nil {
			r.log.Error("Failed to delete group", "id", g.ID, "error", err)
			return fmt.Errorf("failed to delete group: %w", err)
		}

		r.log.Info("Group deleted successfully", "id", g.ID)
		return nil
	})
}
