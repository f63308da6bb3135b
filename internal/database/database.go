package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// DB is the global database connection
var DB *sql.DB

// ErrNotFound is returned when an entity is not found
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a unique constraint is violated, so a
// duplicate key surfaces as a distinguishable error rather than a
// generic storage failure.
var ErrConflict = errors.New("unique constraint violation")

// Config holds database configuration
type Config struct {
	Path string
}

// Open initializes the database connection and runs migrations
func Open(cfg Config) error {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	var err error
	DB, err = sql.Open("sqlite", cfg.Path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// isUniqueViolation reports whether err comes from a violated UNIQUE index
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// migrate runs all database migrations
func migrate() error {
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if err := runMigration(m); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}
	}

	return nil
}

type migration struct {
	name string
	up   string
}

func runMigration(m migration) error {
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", m.name).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Already applied
	}

	if _, err := DB.Exec(m.up); err != nil {
		return err
	}

	_, err = DB.Exec("INSERT INTO migrations (name) VALUES (?)", m.name)
	return err
}

var migrations = []migration{
	{
		name: "001_create_admins",
		up: `
			CREATE TABLE admins (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				email TEXT NOT NULL UNIQUE COLLATE NOCASE,
				name TEXT NOT NULL,
				password_hash TEXT NOT NULL,
				is_admin INTEGER NOT NULL DEFAULT 1,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_admins_email ON admins(email);
		`,
	},
	{
		name: "002_create_contact_requests",
		up: `
			CREATE TABLE contact_requests (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				request_id TEXT NOT NULL UNIQUE,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				phone TEXT,
				message TEXT NOT NULL,
				status_history TEXT NOT NULL DEFAULT '[]',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_contact_requests_created_at ON contact_requests(created_at);
		`,
	},
	{
		name: "003_create_career_applications",
		up: `
			CREATE TABLE career_applications (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				request_id TEXT NOT NULL UNIQUE,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				phone TEXT NOT NULL,
				position_id TEXT NOT NULL,
				message TEXT,
				resume_url TEXT,
				status_history TEXT NOT NULL DEFAULT '[]',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_career_applications_created_at ON career_applications(created_at);
			CREATE INDEX idx_career_applications_position_id ON career_applications(position_id);
		`,
	},
	{
		name: "004_create_service_requests",
		up: `
			CREATE TABLE service_requests (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				request_id TEXT NOT NULL UNIQUE,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				phone TEXT,
				service_id TEXT,
				message TEXT,
				status_history TEXT NOT NULL DEFAULT '[]',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_service_requests_created_at ON service_requests(created_at);
		`,
	},
	{
		name: "005_create_training_requests",
		up: `
			CREATE TABLE training_requests (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				request_id TEXT NOT NULL UNIQUE,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				phone TEXT,
				course_id TEXT NOT NULL,
				message TEXT,
				status_history TEXT NOT NULL DEFAULT '[]',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_training_requests_created_at ON training_requests(created_at);
		`,
	},
	{
		name: "006_create_services",
		up: `
			CREATE TABLE services (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				service_id TEXT NOT NULL UNIQUE,
				title TEXT NOT NULL UNIQUE COLLATE NOCASE,
				overview TEXT NOT NULL,
				key_benefits TEXT NOT NULL DEFAULT '[]',
				approach TEXT NOT NULL,
				image_url TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_services_created_at ON services(created_at);
		`,
	},
	{
		name: "007_create_training_courses",
		up: `
			CREATE TABLE training_courses (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				course_id TEXT NOT NULL UNIQUE,
				title TEXT NOT NULL UNIQUE COLLATE NOCASE,
				description TEXT NOT NULL,
				duration TEXT,
				level TEXT,
				image_url TEXT,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_training_courses_created_at ON training_courses(created_at);
		`,
	},
	{
		name: "008_create_career_postings",
		up: `
			CREATE TABLE career_postings (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				posting_id TEXT NOT NULL UNIQUE,
				title TEXT NOT NULL,
				type TEXT,
				location TEXT,
				description TEXT,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_career_postings_created_at ON career_postings(created_at);
			CREATE INDEX idx_career_postings_type ON career_postings(type);
		`,
	},
}
