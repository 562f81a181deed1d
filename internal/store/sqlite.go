package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/angristan/smartroom-tui/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists rooms in a local SQLite file
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
// When the database holds no rooms yet it is seeded with seed.
func OpenSQLite(ctx context.Context, path string, seed []models.Room) (*SQLiteRepository, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	// modernc.org/sqlite registers itself as "sqlite"
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps ":memory:" databases alive and writes ordered.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	repo := &SQLiteRepository{db: db}
	if err := repo.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := repo.seed(ctx, seed); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rooms (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			status TEXT NOT NULL,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS schedules (
			room_id TEXT NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			start_min INTEGER NOT NULL,
			end_min INTEGER NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (room_id, idx)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	return nil
}

func (r *SQLiteRepository) seed(ctx context.Context, rooms []models.Room) (err error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count); err != nil {
		return err
	}
	if count > 0 || len(rooms) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for i, room := range rooms {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO rooms (id, name, status, position) VALUES (?, ?, ?, ?)`,
			room.ID, room.Name, room.Status.String(), i,
		); err != nil {
			return fmt.Errorf("failed to seed room %s: %w", room.ID, err)
		}
		if err = insertSchedules(ctx, tx, room); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load returns every room ordered by position
func (r *SQLiteRepository) Load(ctx context.Context) (rooms []models.Room, err error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, status FROM rooms ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for rows.Next() {
		var room models.Room
		var status string
		if err := rows.Scan(&room.ID, &room.Name, &status); err != nil {
			return nil, err
		}
		room.Status, err = models.ParseStatus(status)
		if err != nil {
			return nil, fmt.Errorf("room %s: %w", room.ID, err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range rooms {
		rooms[i].Schedules, err = r.loadSchedules(ctx, rooms[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return rooms, nil
}

func (r *SQLiteRepository) loadSchedules(ctx context.Context, roomID string) (schedules []models.Schedule, err error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT start_min, end_min, label FROM schedules WHERE room_id = ? ORDER BY idx`, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for rows.Next() {
		var s models.Schedule
		if err := rows.Scan(&s.Start, &s.End, &s.Label); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// Save overwrites an existing room and its schedules
func (r *SQLiteRepository) Save(ctx context.Context, room models.Room) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`UPDATE rooms SET name = ?, status = ? WHERE id = ?`,
		room.Name, room.Status.String(), room.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		err = fmt.Errorf("%w: %s", models.ErrUpsertMiss, room.ID)
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM schedules WHERE room_id = ?`, room.ID); err != nil {
		return err
	}
	if err = insertSchedules(ctx, tx, room); err != nil {
		return err
	}
	return tx.Commit()
}

func insertSchedules(ctx context.Context, tx *sql.Tx, room models.Room) error {
	for i, s := range room.Schedules {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schedules (room_id, idx, start_min, end_min, label) VALUES (?, ?, ?, ?, ?)`,
			room.ID, i, s.Start, s.End, s.Label,
		); err != nil {
			return fmt.Errorf("failed to save schedule for %s: %w", room.ID, err)
		}
	}
	return nil
}

// Close closes the database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

var _ Repository = (*SQLiteRepository)(nil)
