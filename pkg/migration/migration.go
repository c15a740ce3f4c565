package migration

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/muhammadchandra19/marketfeed/pkg/errors"
	"github.com/muhammadchandra19/marketfeed/pkg/logger"
	"github.com/muhammadchandra19/marketfeed/pkg/questdb"
)

// Migration is one `<id>.up.sql` file and its optional `<id>.down.sql` pair.
type Migration struct {
	ID      string
	Name    string
	UpSQL   string
	DownSQL string
}

// Runner applies migrations from a file system to QuestDB and records them
// in the schema_migrations table.
type Runner struct {
	client questdb.QuestDBClient
	fsys   fs.FS
	logger *logger.Logger
}

// NewRunner creates a new migration runner reading *.sql files at the root of fsys.
func NewRunner(client questdb.QuestDBClient, fsys fs.FS, log *logger.Logger) *Runner {
	return &Runner{
		client: client,
		fsys:   fsys,
		logger: log,
	}
}

// EnsureMigrationTable creates the schema_migrations table if it doesn't exist
func (r *Runner) EnsureMigrationTable(ctx context.Context) error {
	createTableSQL := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id STRING,
			name STRING,
			applied_at TIMESTAMP
		) TIMESTAMP(applied_at) PARTITION BY DAY;
	`
	return r.client.Exec(ctx, createTableSQL)
}

// GetAppliedMigrations returns the set of applied migration ids.
func (r *Runner) GetAppliedMigrations(ctx context.Context) (map[string]bool, error) {
	applied := make(map[string]bool)

	rows, err := r.client.Query(ctx, "SELECT id FROM schema_migrations ORDER BY applied_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		applied[id] = true
	}

	return applied, rows.Err()
}

// LoadMigrations loads all migrations sorted by id.
func (r *Runner) LoadMigrations() ([]Migration, error) {
	upFiles, err := fs.Glob(r.fsys, "*.up.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(upFiles)

	migrations := make([]Migration, 0, len(upFiles))
	for _, upFile := range upFiles {
		m, err := r.parseMigrationFiles(upFile)
		if err != nil {
			return nil, fmt.Errorf("failed to parse migration %s: %w", upFile, err)
		}
		migrations = append(migrations, m)
	}

	return migrations, nil
}

func (r *Runner) parseMigrationFiles(upFile string) (Migration, error) {
	upContent, err := fs.ReadFile(r.fsys, upFile)
	if err != nil {
		return Migration{}, err
	}

	id := strings.TrimSuffix(path.Base(upFile), ".up.sql")
	name := id
	if _, rest, ok := strings.Cut(id, "_"); ok {
		name = rest
	}

	var downSQL string
	if downContent, err := fs.ReadFile(r.fsys, strings.TrimSuffix(upFile, ".up.sql")+".down.sql"); err == nil {
		downSQL = strings.TrimSpace(string(downContent))
	}

	return Migration{
		ID:      id,
		Name:    name,
		UpSQL:   strings.TrimSpace(string(upContent)),
		DownSQL: downSQL,
	}, nil
}

// MigrateUp applies pending migrations. steps <= 0 applies all of them.
func (r *Runner) MigrateUp(ctx context.Context, steps int) error {
	if err := r.EnsureMigrationTable(ctx); err != nil {
		return errors.NewTracer("migration_table_error").Wrap(err)
	}

	migrations, err := r.LoadMigrations()
	if err != nil {
		return err
	}

	applied, err := r.GetAppliedMigrations(ctx)
	if err != nil {
		return errors.NewTracer("migration_list_error").Wrap(err)
	}

	var toApply []Migration
	for _, m := range migrations {
		if !applied[m.ID] {
			toApply = append(toApply, m)
		}
	}

	if steps > 0 && len(toApply) > steps {
		toApply = toApply[:steps]
	}

	for _, m := range toApply {
		if m.UpSQL == "" {
			r.logger.Warn("Migration has no UP statement", logger.Field{Key: "migration", Value: m.ID})
			continue
		}

		if err := r.client.Exec(ctx, m.UpSQL); err != nil {
			return errors.NewTracer(fmt.Sprintf("apply migration %s", m.ID)).Wrap(err)
		}

		if err := r.client.Exec(ctx, "INSERT INTO schema_migrations VALUES ($1, $2, now())", m.ID, m.Name); err != nil {
			return errors.NewTracer(fmt.Sprintf("record migration %s", m.ID)).Wrap(err)
		}

		r.logger.Info("Applied migration", logger.Field{Key: "migration", Value: m.ID})
	}

	return nil
}

// MigrateDown reverts the last `steps` applied migrations.
func (r *Runner) MigrateDown(ctx context.Context, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be greater than 0 for down migrations")
	}

	migrations, err := r.LoadMigrations()
	if err != nil {
		return err
	}

	applied, err := r.GetAppliedMigrations(ctx)
	if err != nil {
		return errors.NewTracer("migration_list_error").Wrap(err)
	}

	var toRevert []Migration
	for i := len(migrations) - 1; i >= 0 && len(toRevert) < steps; i-- {
		if applied[migrations[i].ID] {
			toRevert = append(toRevert, migrations[i])
		}
	}

	for _, m := range toRevert {
		if m.DownSQL == "" {
			return fmt.Errorf("no DOWN SQL found for migration %s - cannot revert", m.ID)
		}

		if err := r.client.Exec(ctx, m.DownSQL); err != nil {
			return errors.NewTracer(fmt.Sprintf("revert migration %s", m.ID)).Wrap(err)
		}

		if err := r.client.Exec(ctx, "DELETE FROM schema_migrations WHERE id = $1", m.ID); err != nil {
			return errors.NewTracer(fmt.Sprintf("unrecord migration %s", m.ID)).Wrap(err)
		}

		r.logger.Info("Reverted migration", logger.Field{Key: "migration", Value: m.ID})
	}

	return nil
}
