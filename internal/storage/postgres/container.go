package postgres

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/config"
	"github.com/gravadigital/eventi-api/internal/logger"
)

// Container bundles all repositories behind a single database connection
type Container struct {
	db                *gorm.DB
	log               *log.Logger
	userRepo          UserRepository
	groupRepo         GroupRepository
	eventRepo         EventRepository
	partecipationRepo PartecipationRepository
	ferieRepo         FerieRepository
	activityRepo      ActivityRepository
	teamBuildingRepo  TeamBuildingRepository
}

// NewContainer creates a new repository container with all repositories initialized
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.Repository("postgres_container")
	log.Info("Initializing PostgreSQL repository container...")

	db, err := Connect(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		log.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	container := NewContainerWithDB(db)

	if err := container.Health(); err != nil {
		log.Error("Container health check failed", "error", err)
		return nil, fmt.Errorf("container health check failed: %w", err)
	}

	log.Info("PostgreSQL repository container initialized successfully")
	return container, nil
}

// NewContainerWithDB creates a container with an existing database connection
func NewContainerWithDB(db *gorm.DB) *Container {
	return &Container{
		db:                db,
		log:               logger.Repository("postgres_container"),
		userRepo:          NewPostgresUserRepository(db),
		groupRepo:         NewPostgresGroupRepository(db),
		eventRepo:         NewPostgresEventRepository(db),
		partecipationRepo: NewPostgresPartecipationRepository(db),
		ferieRepo:         NewPostgresFerieRepository(db),
		activityRepo:      NewPostgresActivityRepository(db),
		teamBuildingRepo:  NewPostgresTeamBuildingRepository(db),
	}
}

// Users returns the user repository
func (c *Container) Users() UserRepository {
	return c.userRepo
}

// Groups returns the user group repository
func (c *Container) Groups() GroupRepository {
	return c.groupRepo
}

// Events returns the event repository
func (c *Container) Events() EventRepository {
	return c.eventRepo
}

// Partecipations returns the partecipation repository
func (c *Container) Partecipations() PartecipationRepository {
	return c.partecipationRepo
}

// Ferie returns the vacation request repository
func (c *Container) Ferie() FerieRepository {
	return c.ferieRepo
}

// Activities returns the activity repository
func (c *Container) Activities() ActivityRepository {
	return c.activityRepo
}

// TeamBuilding returns the team-building partecipation repository
func (c *Container) TeamBuilding() TeamBuildingRepository {
	return c.teamBuildingRepo
}

// Health performs a health check on the database connection
func (c *Container) Health() error {
	c.log.Debug("Performing container health check...")

	if err := HealthCheck(c.db); err != nil {
		c.log.Error("Database health check failed", "error", err)
		return fmt.Errorf("database health check failed: %w", err)
	}

	return nil
}

// Close releases the underlying database connection
func (c *Container) Close() error {
	c.log.Info("Closing repository container...")
	return Close()
}
