package portfolio

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/eringen/portfolio/content"
)

// ErrNoContent is returned when the store holds no document yet.
var ErrNoContent = errors.New("portfolio: no content stored")

// Store wraps a SQLite database holding the single content document.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations. ":memory:" opens a private
// in-memory database.
func NewStore(path string) (*Store, error) {
	memory := path == ":memory:"
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if memory {
		// every connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	} else {
		// WAL lets page renders read while a seed is written.
		if _, err := db.Exec(`
			PRAGMA journal_mode=WAL;
			PRAGMA busy_timeout=5000;
			PRAGMA synchronous=NORMAL;
		`); err != nil {
			db.Close()
			return nil, err
		}
		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(4)
	}
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS hero (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    title TEXT NOT NULL,
    subtitle TEXT NOT NULL,
    avatar_url TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS projects (
    position INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    image TEXT NOT NULL,
    tags TEXT NOT NULL,
    link TEXT NOT NULL,
    long_description TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS skills (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);
`)
	return err
}

// Content implements content.Source. The document is read in one
// transaction so a concurrent save is never observed half applied.
func (s *Store) Content(ctx context.Context) (content.Document, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return content.Document{}, fmt.Errorf("portfolio: begin read: %w", err)
	}
	defer tx.Rollback()

	var doc content.Document
	err = tx.QueryRowContext(ctx, `SELECT title, subtitle, avatar_url FROM hero WHERE id = 1`).
		Scan(&doc.Hero.Title, &doc.Hero.Subtitle, &doc.Hero.AvatarURL)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Document{}, ErrNoContent
	}
	if err != nil {
		return content.Document{}, fmt.Errorf("portfolio: read hero: %w", err)
	}

	doc.Projects, err = readProjects(ctx, tx)
	if err != nil {
		return content.Document{}, err
	}
	doc.Skills, err = readSkills(ctx, tx)
	if err != nil {
		return content.Document{}, err
	}
	return doc, nil
}

func readProjects(ctx context.Context, tx *sql.Tx) ([]content.Project, error) {
	rows, err := tx.QueryContext(ctx, `SELECT title, description, image, tags, link, long_description FROM projects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("portfolio: read projects: %w", err)
	}
	defer rows.Close()

	projects := []content.Project{}
	for rows.Next() {
		var p content.Project
		var tags string
		if err := rows.Scan(&p.Title, &p.Description, &p.Image, &tags, &p.Link, &p.LongDescription); err != nil {
			return nil, fmt.Errorf("portfolio: scan project: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
			return nil, fmt.Errorf("portfolio: decode tags of %q: %w", p.Title, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("portfolio: read projects: %w", err)
	}
	return projects, nil
}

func readSkills(ctx context.Context, tx *sql.Tx) ([]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT name FROM skills ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("portfolio: read skills: %w", err)
	}
	defer rows.Close()

	skills := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("portfolio: scan skill: %w", err)
		}
		skills = append(skills, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("portfolio: read skills: %w", err)
	}
	return skills, nil
}

// SaveContent replaces the stored document wholesale.
func (s *Store) SaveContent(ctx context.Context, doc content.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("portfolio: begin save: %w", err)
	}
	defer tx.Rollback()

	if err := saveContent(ctx, tx, doc); err != nil {
		return err
	}
	return tx.Commit()
}

// Seed stores doc unless a document is already present.
func (s *Store) Seed(ctx context.Context, doc content.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("portfolio: begin seed: %w", err)
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM hero`).Scan(&n); err != nil {
		return fmt.Errorf("portfolio: check seed: %w", err)
	}
	if n > 0 {
		return nil
	}
	if err := saveContent(ctx, tx, doc); err != nil {
		return err
	}
	return tx.Commit()
}

func saveContent(ctx context.Context, tx *sql.Tx, doc content.Document) error {
	for _, table := range []string{"hero", "projects", "skills"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("portfolio: clear %s: %w", table, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO hero (id, title, subtitle, avatar_url, updated_at) VALUES (1, ?, ?, ?, ?)`,
		doc.Hero.Title, doc.Hero.Subtitle, doc.Hero.AvatarURL, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("portfolio: save hero: %w", err)
	}
	for i, p := range doc.Projects {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		b, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("portfolio: encode tags of %q: %w", p.Title, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO projects (position, title, description, image, tags, link, long_description) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, p.Title, p.Description, p.Image, string(b), p.Link, p.LongDescription); err != nil {
			return fmt.Errorf("portfolio: save project %q: %w", p.Title, err)
		}
	}
	for i, name := range doc.Skills {
		if _, err := tx.ExecContext(ctx, `INSERT INTO skills (position, name) VALUES (?, ?)`, i, name); err != nil {
			return fmt.Errorf("portfolio: save skill %q: %w", name, err)
		}
	}
	return nil
}
