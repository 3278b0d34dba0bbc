// Package record persists snapshot series into SQLite so runs can be
// inspected and charted offline. It sits strictly downstream of the
// simulation: it consumes the returned snapshot slice and nothing else.
package record

import (
	"database/sql"
	"fmt"

	// SQLite driver registration.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"gopkg.in/yaml.v3"

	"github.com/prodline-sim/prodline-sim/sim"
)

// snapshotBatchSize bounds the rows per insert transaction.
const snapshotBatchSize = 1000

// Recorder writes runs and their snapshot series into a SQLite database.
type Recorder struct {
	db   *sql.DB
	path string
}

// DefaultPath returns a fresh, collision-free database filename.
func DefaultPath() string {
	return "prodline_run_" + xid.New().String() + ".sqlite3"
}

// Open creates (or reopens) the database at path and ensures the schema.
func Open(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	r := &Recorder{db: db, path: path}
	if err := r.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Recorder) createTables() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			seed   INTEGER NOT NULL,
			params TEXT    NOT NULL
		);
		CREATE TABLE IF NOT EXISTS snapshots (
			run_id      INTEGER NOT NULL REFERENCES runs(id),
			minute      INTEGER NOT NULL,
			buffer1_len INTEGER NOT NULL,
			buffer2_len INTEGER NOT NULL,
			completed   INTEGER NOT NULL
		);`)
	if err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// BeginRun registers a run and returns its id. The full parameter set is
// stored as YAML alongside the seed so a recorded series can always be
// reproduced.
func (r *Recorder) BeginRun(cfg sim.Config) (int64, error) {
	params, err := yaml.Marshal(cfg)
	if err != nil {
		return 0, fmt.Errorf("encode params: %w", err)
	}

	res, err := r.db.Exec(`INSERT INTO runs (seed, params) VALUES (?, ?)`,
		cfg.Seed, string(params))
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return res.LastInsertId()
}

// WriteSnapshots inserts the series for runID in batched transactions.
func (r *Recorder) WriteSnapshots(runID int64, records []sim.Snapshot) error {
	for start := 0; start < len(records); start += snapshotBatchSize {
		end := min(start+snapshotBatchSize, len(records))
		if err := r.writeBatch(runID, records[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) writeBatch(runID int64, records []sim.Snapshot) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO snapshots
		(run_id, minute, buffer1_len, buffer2_len, completed)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(runID, rec.Minute, rec.Buffer1Len, rec.Buffer2Len, rec.Completed); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert snapshot minute %d: %w", rec.Minute, err)
		}
	}
	return tx.Commit()
}

// ReadSnapshots loads a recorded series back in minute order.
func (r *Recorder) ReadSnapshots(runID int64) ([]sim.Snapshot, error) {
	rows, err := r.db.Query(`SELECT minute, buffer1_len, buffer2_len, completed
		FROM snapshots WHERE run_id = ? ORDER BY minute`, runID)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var records []sim.Snapshot
	for rows.Next() {
		var s sim.Snapshot
		if err := rows.Scan(&s.Minute, &s.Buffer1Len, &s.Buffer2Len, &s.Completed); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		records = append(records, s)
	}
	return records, rows.Err()
}

// Path returns the database file path.
func (r *Recorder) Path() string {
	return r.path
}

// Close releases the database connection.
func (r *Recorder) Close() error {
	return r.db.Close()
}
