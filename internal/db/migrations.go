package db

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	embeddedmigrations "github.com/terraincognita07/dayledger/migrations"
	"gorm.io/gorm"
)

var migrationFilePattern = regexp.MustCompile(`^(\d+)_[^/]+\.sql$`)

const schemaMigrationsDDL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

type migrationFile struct {
	version string
	order   int
	name    string
	sql     string
}

func applyEmbeddedMigrations(ctx context.Context, database *gorm.DB, logger zerolog.Logger) error {
	return migrateFS(ctx, database, embeddedmigrations.Files, logger)
}

func migrateFS(ctx context.Context, database *gorm.DB, source fs.FS, logger zerolog.Logger) error {
	if err := database.WithContext(ctx).Exec(schemaMigrationsDDL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	files, err := readMigrationFiles(source)
	if err != nil {
		return err
	}
	applied, err := AppliedMigrationVersions(ctx, database)
	if err != nil {
		return err
	}

	for _, file := range files {
		if slices.Contains(applied, file.version) {
			continue
		}
		if err := database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return runMigration(tx, file)
		}); err != nil {
			return err
		}
		logger.Info().Str("migration", file.name).Msg("applied schema migration")
	}
	return nil
}

func AppliedMigrationVersions(ctx context.Context, database *gorm.DB) ([]string, error) {
	versions := make([]string, 0)
	if err := database.WithContext(ctx).
		Raw(`SELECT version FROM schema_migrations ORDER BY version ASC`).
		Scan(&versions).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}
	return versions, nil
}

func readMigrationFiles(source fs.FS) ([]migrationFile, error) {
	names, err := fs.Glob(source, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	files := make([]migrationFile, 0, len(names))
	byOrder := make(map[int]string, len(names))
	for _, name := range names {
		matches := migrationFilePattern.FindStringSubmatch(name)
		if matches == nil {
			continue
		}
		order, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", name, err)
		}
		if previous, duplicate := byOrder[order]; duplicate {
			return nil, fmt.Errorf("migrations %s and %s share version %d", previous, name, order)
		}
		byOrder[order] = name

		body, err := fs.ReadFile(source, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		files = append(files, migrationFile{version: matches[1], order: order, name: name, sql: string(body)})
	}

	slices.SortFunc(files, func(a, b migrationFile) int {
		return cmp.Compare(a.order, b.order)
	})
	return files, nil
}

func runMigration(tx *gorm.DB, file migrationFile) error {
	statements := splitSQLStatements(file.sql)
	if len(statements) == 0 {
		return fmt.Errorf("migration %s: %w", file.name, errEmptyMigration)
	}
	for _, statement := range statements {
		if err := tx.Exec(statement).Error; err != nil {
			return fmt.Errorf("execute migration %s: %w", file.name, err)
		}
	}
	if err := tx.Exec(
		`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
		file.version,
		file.name,
	).Error; err != nil {
		return fmt.Errorf("record migration %s: %w", file.name, err)
	}
	return nil
}

var errEmptyMigration = errors.New("no SQL statements")

func splitSQLStatements(sqlText string) []string {
	statements := make([]string, 0)
	for _, part := range strings.Split(sqlText, ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
