package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // Required for file source
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS browser_sessions (
	id TEXT PRIMARY KEY,
	token TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT '',
	username TEXT NOT NULL DEFAULT '',
	setting_notify BOOLEAN NOT NULL DEFAULT 1,
	setting_saver BOOLEAN NOT NULL DEFAULT 0,
	updated_at DATETIME NOT NULL
);
`

// SQLStore keeps one row per browser in browser_sessions. It serves both the
// postgres and sqlite drivers; queries are written with ? and rebound per driver.
type SQLStore struct {
	db     *sqlx.DB
	logger *zap.Logger
}

type sessionRow struct {
	Token    string `db:"token"`
	Role     string `db:"role"`
	Username string `db:"username"`
}

type preferencesRow struct {
	Notify bool `db:"setting_notify"`
	Saver  bool `db:"setting_saver"`
}

// NewPostgresStore connects to PostgreSQL and runs the file migrations in migrationsPath.
func NewPostgresStore(dataSourceName, migrationsPath string, logger *zap.Logger) (*SQLStore, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := migratePostgres(db, migrationsPath); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("Successfully connected to the session database", zap.String("driver", "postgres"))
	return &SQLStore{db: db, logger: logger}, nil
}

func migratePostgres(db *sqlx.DB, migrationsPath string) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("couldn't get database instance for migrations: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("couldn't create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("couldn't run session migrations: %w", err)
	}
	return nil
}

// NewSQLiteStore opens (creating if needed) a SQLite database file.
func NewSQLiteStore(path string, logger *zap.Logger) (*SQLStore, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY under load.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create session schema: %w", err)
	}
	logger.Info("Session database initialized", zap.String("driver", "sqlite"), zap.String("path", path))
	return &SQLStore{db: db, logger: logger}, nil
}

func (s *SQLStore) Get(ctx context.Context, browserID string) (models.Session, error) {
	if err := checkID(browserID); err != nil {
		return models.Session{}, err
	}
	var row sessionRow
	query := s.db.Rebind(`SELECT token, role, username FROM browser_sessions WHERE id = ?`)
	if err := s.db.GetContext(ctx, &row, query, browserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, nil
		}
		return models.Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	return models.Session{Token: row.Token, Role: models.Role(row.Role), Username: row.Username}, nil
}

func (s *SQLStore) Set(ctx context.Context, browserID string, sess models.Session) error {
	if err := checkID(browserID); err != nil {
		return err
	}
	query := s.db.Rebind(`
		INSERT INTO browser_sessions (id, token, role, username, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			token = excluded.token,
			role = excluded.role,
			username = excluded.username,
			updated_at = excluded.updated_at
	`)
	_, err := s.db.ExecContext(ctx, query, browserID, sess.Token, string(sess.Role), sess.Username, time.Now().UTC())
	if err != nil {
		s.logger.Error("Failed to write session", zap.Error(err))
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear blanks all three session columns in a single UPDATE.
func (s *SQLStore) Clear(ctx context.Context, browserID string) error {
	if err := checkID(browserID); err != nil {
		return err
	}
	query := s.db.Rebind(`UPDATE browser_sessions SET token = '', role = '', username = '', updated_at = ? WHERE id = ?`)
	if _, err := s.db.ExecContext(ctx, query, time.Now().UTC(), browserID); err != nil {
		s.logger.Error("Failed to clear session", zap.Error(err))
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SQLStore) Preferences(ctx context.Context, browserID string) (models.Preferences, error) {
	if err := checkID(browserID); err != nil {
		return models.DefaultPreferences(), err
	}
	var row preferencesRow
	query := s.db.Rebind(`SELECT setting_notify, setting_saver FROM browser_sessions WHERE id = ?`)
	if err := s.db.GetContext(ctx, &row, query, browserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultPreferences(), nil
		}
		return models.DefaultPreferences(), fmt.Errorf("failed to read preferences: %w", err)
	}
	return models.Preferences{Notify: row.Notify, Saver: row.Saver}, nil
}

func (s *SQLStore) SetPreferences(ctx context.Context, browserID string, p models.Preferences) error {
	if err := checkID(browserID); err != nil {
		return err
	}
	query := s.db.Rebind(`
		INSERT INTO browser_sessions (id, setting_notify, setting_saver, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			setting_notify = excluded.setting_notify,
			setting_saver = excluded.setting_saver,
			updated_at = excluded.updated_at
	`)
	if _, err := s.db.ExecContext(ctx, query, browserID, p.Notify, p.Saver, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
