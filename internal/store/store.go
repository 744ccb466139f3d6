// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps extracted records in a local SQLite database so a
// seed can be inspected, exported, and compared between runs without a
// PostgreSQL server.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pdiddy/seedsql/pkg/types"
)

// DefaultDBPath is used when StoreConfig.DBPath is empty.
const DefaultDBPath = "seed.db"

// loadTimeFormat is fixed width so that loaded_at sorts as text.
const loadTimeFormat = "2006-01-02T15:04:05.000000000Z"

// Store manages the seed SQLite database.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewStore opens or creates the database at cfg.DBPath and creates the
// schema if it does not exist. A nil logger discards logs.
func NewStore(cfg types.StoreConfig, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, logger: logger.With(zap.String("db", dbPath))}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS services (
			slug TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			subtitle TEXT,
			icon TEXT,
			description TEXT,
			display_order INTEGER NOT NULL,
			features TEXT,
			technologies TEXT,
			process TEXT,
			pain_points TEXT,
			solutions TEXT,
			benefits TEXT,
			faqs TEXT,
			case_study_results TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS case_studies (
			slug TEXT PRIMARY KEY,
			display_order INTEGER NOT NULL,
			title TEXT NOT NULL,
			category TEXT,
			description TEXT,
			challenge TEXT,
			solution TEXT,
			results TEXT,
			technologies TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS loads (
			id TEXT PRIMARY KEY,
			source TEXT,
			loaded_at TEXT NOT NULL,
			services INTEGER NOT NULL,
			case_studies INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_services_order ON services(display_order)`,
		`CREATE INDEX IF NOT EXISTS idx_case_studies_order ON case_studies(display_order)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// LoadInput is one batch of records to load.
type LoadInput struct {
	// RunID identifies the load in the loads table.
	RunID       string
	Source      string
	Services    []types.ServiceRecord
	CaseStudies []types.CaseStudyRecord
}

// LoadSummary holds counts from a load.
type LoadSummary struct {
	RunID       string
	Services    int
	CaseStudies int
}

// Total returns the number of records loaded.
func (s LoadSummary) Total() int {
	return s.Services + s.CaseStudies
}

// Load replaces all services and case studies with in, in one transaction.
// display_order is the 1-based position of each record in its array.
// Duplicate slugs abort the load.
func (s *Store) Load(ctx context.Context, in LoadInput) (LoadSummary, error) {
	if in.RunID == "" {
		return LoadSummary{}, fmt.Errorf("run ID is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LoadSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"services", "case_studies"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return LoadSummary{}, fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := insertServices(ctx, tx, in.Services); err != nil {
		return LoadSummary{}, err
	}
	if err := insertCaseStudies(ctx, tx, in.CaseStudies); err != nil {
		return LoadSummary{}, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO loads (id, source, loaded_at, services, case_studies) VALUES (?, ?, ?, ?, ?)`,
		in.RunID, in.Source, time.Now().UTC().Format(loadTimeFormat),
		len(in.Services), len(in.CaseStudies),
	)
	if err != nil {
		return LoadSummary{}, fmt.Errorf("recording load: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return LoadSummary{}, fmt.Errorf("committing load: %w", err)
	}

	summary := LoadSummary{RunID: in.RunID, Services: len(in.Services), CaseStudies: len(in.CaseStudies)}
	s.logger.Info("loaded records",
		zap.String("run", in.RunID),
		zap.Int("services", summary.Services),
		zap.Int("case_studies", summary.CaseStudies))
	return summary, nil
}

func insertServices(ctx context.Context, tx *sql.Tx, services []types.ServiceRecord) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO services (slug, title, subtitle, icon, description, display_order,
			features, technologies, process, pain_points, solutions, benefits, faqs, case_study_results)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing service insert: %w", err)
	}
	defer stmt.Close()

	for i, sv := range services {
		cols, err := jsonColumns(sv.Features, sv.Technologies, sv.Process, sv.PainPoints,
			sv.Solutions, sv.Benefits, sv.FAQs, sv.CaseStudyResults)
		if err != nil {
			return fmt.Errorf("encoding service %s: %w", sv.Slug, err)
		}
		args := append([]any{sv.Slug, sv.Title, sv.Subtitle, sv.Icon, sv.Description, i + 1}, cols...)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting service %s: %w", sv.Slug, err)
		}
	}
	return nil
}

func insertCaseStudies(ctx context.Context, tx *sql.Tx, caseStudies []types.CaseStudyRecord) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO case_studies (slug, display_order, title, category, description,
			challenge, solution, results, technologies)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing case study insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range caseStudies {
		cols, err := jsonColumns(c.Results, c.Technologies)
		if err != nil {
			return fmt.Errorf("encoding case study %s: %w", c.Slug, err)
		}
		args := append([]any{c.Slug, i + 1, c.Title, c.Category, c.Description, c.Challenge, c.Solution}, cols...)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting case study %s: %w", c.Slug, err)
		}
	}
	return nil
}

// jsonColumns encodes each value as JSON text. Values that encode to null
// are stored as SQL NULL.
func jsonColumns(vals ...any) ([]any, error) {
	out := make([]any, len(vals))
	for i, v := range vals {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		if string(data) == "null" {
			out[i] = nil
			continue
		}
		out[i] = string(data)
	}
	return out, nil
}

// Services returns all services in display order.
func (s *Store) Services(ctx context.Context) ([]types.ServiceRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT slug, title, subtitle, icon, description, features, technologies,
			process, pain_points, solutions, benefits, faqs, case_study_results
		 FROM services ORDER BY display_order`)
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	defer rows.Close()

	var out []types.ServiceRecord
	for rows.Next() {
		var (
			sv                                    types.ServiceRecord
			subtitle, icon, description           sql.NullString
			features, technologies, process       sql.NullString
			painPoints, solutions, benefits, faqs sql.NullString
			results                               sql.NullString
		)
		if err := rows.Scan(&sv.Slug, &sv.Title, &subtitle, &icon, &description,
			&features, &technologies, &process, &painPoints, &solutions, &benefits, &faqs, &results); err != nil {
			return nil, fmt.Errorf("scanning service: %w", err)
		}
		sv.Subtitle, sv.Icon, sv.Description = subtitle.String, icon.String, description.String

		err := decodeColumns(
			column{features, &sv.Features},
			column{technologies, &sv.Technologies},
			column{process, &sv.Process},
			column{painPoints, &sv.PainPoints},
			column{solutions, &sv.Solutions},
			column{benefits, &sv.Benefits},
			column{faqs, &sv.FAQs},
			column{results, &sv.CaseStudyResults},
		)
		if err != nil {
			return nil, fmt.Errorf("decoding service %s: %w", sv.Slug, err)
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

// CaseStudies returns all case studies in display order.
func (s *Store) CaseStudies(ctx context.Context) ([]types.CaseStudyRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT slug, title, category, description, challenge, solution, results, technologies
		 FROM case_studies ORDER BY display_order`)
	if err != nil {
		return nil, fmt.Errorf("querying case studies: %w", err)
	}
	defer rows.Close()

	var out []types.CaseStudyRecord
	for rows.Next() {
		var (
			c                                        types.CaseStudyRecord
			category, description, challenge, solution sql.NullString
			results, technologies                    sql.NullString
		)
		if err := rows.Scan(&c.Slug, &c.Title, &category, &description, &challenge, &solution,
			&results, &technologies); err != nil {
			return nil, fmt.Errorf("scanning case study: %w", err)
		}
		c.Category, c.Description, c.Challenge, c.Solution =
			category.String, description.String, challenge.String, solution.String

		if err := decodeColumns(column{results, &c.Results}, column{technologies, &c.Technologies}); err != nil {
			return nil, fmt.Errorf("decoding case study %s: %w", c.Slug, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// LoadRecord is one row of the load history.
type LoadRecord struct {
	ID          string    `json:"id" yaml:"id"`
	Source      string    `json:"source" yaml:"source"`
	LoadedAt    time.Time `json:"loaded_at" yaml:"loaded_at"`
	Services    int       `json:"services" yaml:"services"`
	CaseStudies int       `json:"case_studies" yaml:"case_studies"`
}

// Loads returns the load history, most recent first.
func (s *Store) Loads(ctx context.Context) ([]LoadRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, loaded_at, services, case_studies FROM loads ORDER BY loaded_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying loads: %w", err)
	}
	defer rows.Close()

	var out []LoadRecord
	for rows.Next() {
		var (
			l        LoadRecord
			source   sql.NullString
			loadedAt string
		)
		if err := rows.Scan(&l.ID, &source, &loadedAt, &l.Services, &l.CaseStudies); err != nil {
			return nil, fmt.Errorf("scanning load: %w", err)
		}
		l.Source = source.String
		if l.LoadedAt, err = time.Parse(loadTimeFormat, loadedAt); err != nil {
			return nil, fmt.Errorf("parsing load time %q: %w", loadedAt, err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type column struct {
	raw sql.NullString
	dst any
}

func decodeColumns(cols ...column) error {
	for _, c := range cols {
		if !c.raw.Valid {
			continue
		}
		if err := json.Unmarshal([]byte(c.raw.String), c.dst); err != nil {
			return err
		}
	}
	return nil
}
