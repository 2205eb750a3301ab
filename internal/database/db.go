package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jgoulah/punchclock/pkg/models"
	_ "modernc.org/sqlite"
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS day_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL UNIQUE,
		start_time TEXT,
		end_time TEXT,
		total_hours REAL NOT NULL,
		project_hours TEXT NOT NULL,
		created_at TEXT NOT NULL,
		published INTEGER DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_day_records_date ON day_records(date);
	CREATE INDEX IF NOT EXISTS idx_day_records_published ON day_records(published);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// InsertDay stores a day record, replacing any previous record for the
// same date (re-running a report refreshes the archive)
func (db *DB) InsertDay(day *models.DayRecord) error {
	query := `
	INSERT INTO day_records (date, start_time, end_time, total_hours, project_hours, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(date) DO UPDATE SET
		start_time = excluded.start_time,
		end_time = excluded.end_time,
		total_hours = excluded.total_hours,
		project_hours = excluded.project_hours,
		created_at = excluded.created_at,
		published = 0
	`

	projectHours, err := json.Marshal(day.ProjectHours)
	if err != nil {
		return fmt.Errorf("encoding project hours: %w", err)
	}

	dateStr := day.Date.Format("2006-01-02")
	var startTimeStr, endTimeStr string
	if !day.StartTime.IsZero() {
		startTimeStr = day.StartTime.Format("2006-01-02 15:04:05")
	}
	if !day.EndTime.IsZero() {
		endTimeStr = day.EndTime.Format("2006-01-02 15:04:05")
	}
	createdAt := time.Now().UTC().Format(time.RFC3339)

	_, err = db.conn.Exec(query, dateStr, startTimeStr, endTimeStr, day.TotalHours, string(projectHours), createdAt)
	if err != nil {
		return fmt.Errorf("inserting day record: %w", err)
	}

	return nil
}

// GetDay retrieves the day record for a specific date
func (db *DB) GetDay(date time.Time) (*models.DayRecord, error) {
	query := `
	SELECT id, date, start_time, end_time, total_hours, project_hours
	FROM day_records
	WHERE date = ?
	`

	row := db.conn.QueryRow(query, date.Format("2006-01-02"))

	day, err := scanDay(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying day record: %w", err)
	}
	return day, nil
}

// ListDays retrieves all stored day records, oldest first
func (db *DB) ListDays() ([]models.DayRecord, error) {
	return db.listDays(`
	SELECT id, date, start_time, end_time, total_hours, project_hours
	FROM day_records
	ORDER BY date ASC
	`)
}

// ListUnpublishedDays retrieves all day records not yet published, oldest first
func (db *DB) ListUnpublishedDays() ([]models.DayRecord, error) {
	return db.listDays(`
	SELECT id, date, start_time, end_time, total_hours, project_hours
	FROM day_records
	WHERE published = 0
	ORDER BY date ASC
	`)
}

func (db *DB) listDays(query string) ([]models.DayRecord, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying day records: %w", err)
	}
	defer rows.Close()

	var results []models.DayRecord
	for rows.Next() {
		day, err := scanDay(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, *day)
	}

	return results, rows.Err()
}

// MarkPublished marks a day record as published
func (db *DB) MarkPublished(id int) error {
	query := `UPDATE day_records SET published = 1 WHERE id = ?`
	_, err := db.conn.Exec(query, id)
	if err != nil {
		return fmt.Errorf("marking record as published: %w", err)
	}
	return nil
}

func scanDay(scan func(dest ...any) error) (*models.DayRecord, error) {
	var day models.DayRecord
	var dateStr, projectHoursStr string
	var startTimeStr, endTimeStr sql.NullString

	if err := scan(&day.ID, &dateStr, &startTimeStr, &endTimeStr, &day.TotalHours, &projectHoursStr); err != nil {
		return nil, err
	}

	var err error
	day.Date, err = time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}

	if startTimeStr.Valid && startTimeStr.String != "" {
		day.StartTime, err = time.Parse("2006-01-02 15:04:05", startTimeStr.String)
		if err != nil {
			return nil, fmt.Errorf("parsing start_time: %w", err)
		}
	}

	if endTimeStr.Valid && endTimeStr.String != "" {
		day.EndTime, err = time.Parse("2006-01-02 15:04:05", endTimeStr.String)
		if err != nil {
			return nil, fmt.Errorf("parsing end_time: %w", err)
		}
	}

	if err := json.Unmarshal([]byte(projectHoursStr), &day.ProjectHours); err != nil {
		return nil, fmt.Errorf("decoding project hours: %w", err)
	}

	return &day, nil
}
