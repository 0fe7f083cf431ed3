package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/logger"
)

// PostgresUserRepository implements UserRepository using GORM
type PostgresUserRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db:  db,
		log: logger.Repository("user"),
	}
}

func (r *PostgresUserRepository) Create(u *user.User) error {
	r.log.Debug("Creating user", "email", u.Email, "name", u.Name)

	if err := u.Validate(); err != nil {
		r.log.Error("User validation failed", "error", err)
		return fmt.Errorf("user validation failed: %w", err)
	}

	if err := r.db.Create(u).Error; err != nil {
		r.log.Error("Failed to create user", "error", err, "email", u.Email)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("User created successfully", "id", u.ID, "email", u.Email)
	return nil
}

func (r *PostgresUserRepository) GetByID(id uuid.UUID) (*user.User, error) {
	r.log.Debug("Retrieving user by ID", "user_id", id)

	var u user.User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("User not found", "id", id)
			return nil, nil
		}
		r.log.Error("Failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &u, nil
}

func (r *PostgresUserRepository) GetByEmail(email string) (*user.User, error) {
	r.log.Debug("Retrieving user by email", "email", email)

	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("User not found", "email", email)
			return nil, nil
		}
		r.log.Error("Failed to get user by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}

func (r *PostgresUserRepository) GetByIDs(ids []uuid.UUID) ([]*user.User, error) {
	r.log.Debug("Retrieving users by IDs", "count", len(ids))

	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var users []*user.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		r.log.Error("Failed to get users by IDs", "error", err)
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}

	return users, nil
}

func (r *PostgresUserRepository) GetByEmails(emails []string) ([]*user.User, error) {
	r.log.Debug("Retrieving users by emails", "count", len(emails))

	if len(emails) == 0 {
		return []*user.User{}, nil
	}

	var users []*user.User
	if err := r.db.Where("email IN ?", emails).Find(&users).Error; err != nil {
		r.log.Error("Failed to get users by emails", "error", err)
		return nil, fmt.Errorf("failed to get users by emails: %w", err)
	}

	return users, nil
}

func (r *PostgresUserRepository) GetAll() ([]*user.User, error) {
	r.log.Debug("Retrieving all users")

	var users []*user.User
	if err := r.db.Order("created_at ASC").Find(&users).Error; err != nil {
		r.log.Error("Failed to get all users", "error", err)
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}

	r.log.Debug("Users retrieved successfully", "count", len(users))
	return users, nil
}

func (r *PostgresUserRepository) Update(u *user.User) error {
	r.log.Debug("Updating user", "id", u.ID, "email", u.Email)

	if err := u.Validate(); err != nil {
		r.log.Error("User validation failed", "error", err)
		return fmt.Errorf("user validation failed: %w", err)
	}

	if err := r.db.Save(u).Error; err != nil {
		r.log.Error("Failed to update user", "id", u.ID, "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}

	r.log.Info("User updated successfully", "id", u.ID)
	return nil
}
