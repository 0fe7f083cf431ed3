package migrations

import "gorm.io/gorm"

// migration001Up creates extensions and custom types
func migration001Up(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return err
	}

	if err := db.Exec(`
        CREATE TYPE event_type AS ENUM (
            'GENERICO',
            'FERIE',
            'TEAM_BUILDING'
        )
    `).Error; err != nil {
		return err
	}

	if err := db.Exec(`
        CREATE TYPE user_role AS ENUM (
            'ADMIN',
            'EDITOR',
            'USER'
        )
    `).Error; err != nil {
		return err
	}

	if err := db.Exec(`
        CREATE TYPE partecipation_status AS ENUM (
            'PENDING',
            'ACCEPTED',
            'REJECTED'
        )
    `).Error; err != nil {
		return err
	}

	if err := db.Exec(`
        CREATE TYPE ferie_status AS ENUM (
            'APPROVED',
            'REJECTED'
        )
    `).Error; err != nil {
		return err
	}

	return nil
}

// migration001Down drops custom types
func migration001Down(db *gorm.DB) error {
	if err := db.Exec("DROP TYPE IF EXISTS ferie_status CASCADE").Error; err != nil {
		return err
	}

	if err := db.Exec("DROP TYPE IF EXISTS partecipation_status CASCADE").Error; err != nil {
		return err
	}

	if err := db.Exec("DROP TYPE IF EXISTS user_role CASCADE").Error; err != nil {
		return err
	}

	if err := db.Exec("DROP TYPE IF EXISTS event_type CASCADE").Error; err != nil {
		return err
	}

	// NOTE: We don't drop the UUID extension as it might be used by other applications
	return nil
}
