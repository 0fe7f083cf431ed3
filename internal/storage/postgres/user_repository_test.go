package postgres

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func userColumns() []string {
	return []string{"id", "email", "name", "role", "created_at", "updated_at"}
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUserRepository(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM "users" WHERE email = \$1`).
		WithArgs("mario@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(id.String(), "mario@example.com", "Mario", "USER", now, now))

	u, err := repo.GetByEmail("mario@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "mario@example.com", u.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUserRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE email = \$1`).
		WithArgs("ghost@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	u, err := repo.GetByEmail("ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, u, "a missing record is not an error")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUserRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "users" WHERE id = \$1`).
		WithArgs(id.String(), 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	u, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, u)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUserRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM "users" ORDER BY created_at ASC`).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(uuid.New().String(), "a@example.com", "A", "USER", now, now).
			AddRow(uuid.New().String(), "b@example.com", "B", "ADMIN", now, now))

	users, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, users, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}
