// Package store persists benchmark run results in sqlite.
package store

import (
	"database/sql"
	"log"
	"time"

	"github.com/consensys/groth16-agg/common"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// Run is one persisted benchmark result
type Run struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	N         int       `json:"n"`
	NumInputs int       `json:"num_inputs"`
	ProofID   string    `json:"proof_id"`
	Executor  string    `json:"executor"`
	ElapsedMs int64     `json:"elapsed_ms"`
	Verified  bool      `json:"verified"`
}

type Store struct {
	db  *sql.DB
	log *log.Logger
}

func dbGetVersion(db *sql.DB) (int, error) {
	row := db.QueryRow("SELECT version FROM g16agg_version ORDER BY version DESC LIMIT 1")
	if err := row.Err(); err != nil {
		return -1, errors.Wrap(err, "checking database version")
	}

	databaseVersion := -1
	row.Scan(&databaseVersion)

	return databaseVersion, nil
}

func (s *Store) migrate(migrationIndex int, migrateFn func(tx *sql.Tx) error) error {
	version, err := dbGetVersion(s.db)
	if err != nil {
		return err
	}

	// Skip migration if the database is already at the target version.
	if migrationIndex <= version {
		return nil
	}

	s.log.Printf("Running migration: %d\n", migrationIndex)
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := migrateFn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec("insert into g16agg_version (version) values (?)", migrationIndex); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Open opens or creates the results database and brings the schema up to
// date.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{
		db:  db,
		log: common.NewLogger("store"),
	}

	if _, err := db.Exec("create table if not exists g16agg_version (version int)"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "checking database version")
	}

	err = s.migrate(1, func(tx *sql.Tx) error {
		_, err := tx.Exec(`create table runs (
			id integer primary key autoincrement,
			created_at datetime not null,
			n integer not null,
			num_inputs integer not null,
			proof_id text not null,
			executor text not null,
			elapsed_ms integer not null,
			verified boolean not null
		)`)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// InsertRun records a run and returns its id. CreatedAt defaults to now.
func (s *Store) InsertRun(run Run) (int64, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.Exec(
		"insert into runs (created_at, n, num_inputs, proof_id, executor, elapsed_ms, verified) values (?, ?, ?, ?, ?, ?, ?)",
		run.CreatedAt, run.N, run.NumInputs, run.ProofID, run.Executor, run.ElapsedMs, run.Verified,
	)
	if err != nil {
		return 0, errors.Wrap(err, "inserting run")
	}
	return res.LastInsertId()
}

// GetRun returns one run, or sql.ErrNoRows if the id is unknown
func (s *Store) GetRun(id int64) (*Run, error) {
	row := s.db.QueryRow(
		"select id, created_at, n, num_inputs, proof_id, executor, elapsed_ms, verified from runs where id = ?", id,
	)
	var run Run
	err := row.Scan(&run.ID, &run.CreatedAt, &run.N, &run.NumInputs, &run.ProofID, &run.Executor, &run.ElapsedMs, &run.Verified)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListRuns returns the most recent runs, newest first
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(
		"select id, created_at, n, num_inputs, proof_id, executor, elapsed_ms, verified from runs order by id desc limit ?", limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, "listing runs")
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.N, &run.NumInputs, &run.ProofID, &run.Executor, &run.ElapsedMs, &run.Verified); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
