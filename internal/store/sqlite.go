package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err = store.InitSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// InitSchema creates the predictions table if it does not exist. Safe to
// call on every startup; existing rows are never touched.
func (s *SQLiteStore) InitSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS predictions (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        text TEXT NOT NULL,
        sentiment TEXT NOT NULL,
        confidence REAL,
        timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

// AppendPrediction inserts one record. The id and timestamp are assigned by
// the database at insert time and returned to the caller via the id.
func (s *SQLiteStore) AppendPrediction(text, sentiment string, confidence float64) (int64, error) {
	stmt, err := s.db.Prepare("INSERT INTO predictions (text, sentiment, confidence) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare prediction insert: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.Exec(text, sentiment, confidence)
	if err != nil {
		return 0, fmt.Errorf("failed to execute prediction insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

// RecentPredictions returns up to limit records, newest first. The timestamp
// column has one-second resolution, so ties fall back to insert order via id.
func (s *SQLiteStore) RecentPredictions(limit int) ([]PredictionRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := `
        SELECT id, text, sentiment, confidence, timestamp
        FROM predictions
        ORDER BY timestamp DESC, id DESC
        LIMIT ?
    `
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var records []PredictionRecord
	for rows.Next() {
		var rec PredictionRecord
		var confidence sql.NullFloat64
		if err := rows.Scan(&rec.ID, &rec.Text, &rec.Sentiment, &confidence, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan prediction row: %w", err)
		}
		if confidence.Valid {
			rec.Confidence = confidence.Float64
		}
		records = append(records, rec)
	}
	return records, nil
}
