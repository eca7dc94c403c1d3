package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"time"
)

var (
	// ErrDuplicateFileID is returned when a figure with the same file id is already stored.
	ErrDuplicateFileID = errors.New("gallery: file id already in use")

	// ErrNotFound is returned when no figure matches the requested file id.
	ErrNotFound = errors.New("gallery: figure not found")
)

// Entry is one stored figure. Fragment is only populated by Get and Fragments.
type Entry struct {
	ID        int           `json:"id"`
	FileID    string        `json:"file_id"`
	Size      int           `json:"size"`
	CreatedAt time.Time     `json:"created_at"`
	Fragment  template.HTML `json:"-"`
}

// SetupSchema creates the gallery table. It is idempotent and safe to call
// on an already-initialized database.
func SetupSchema(db *sql.DB) error {
	const schemaFigures = `
CREATE TABLE IF NOT EXISTS gallery_figures (
    id         INTEGER  PRIMARY KEY,
    file_id    TEXT     NOT NULL UNIQUE,
    fragment   TEXT     NOT NULL,
    created_at DATETIME NOT NULL
);
`
	if _, err := db.Exec(schemaFigures); err != nil {
		return fmt.Errorf("could not create gallery schema: %w", err)
	}
	return nil
}

// Store is a SQLite-backed collection of rendered figures. It holds
// prepared statements for every query it runs.
type Store struct {
	db            *sql.DB
	stmtInsert    *sql.Stmt
	stmtGet       *sql.Stmt
	stmtList      *sql.Stmt
	stmtFragments *sql.Stmt
	stmtDelete    *sql.Stmt
	stmtCount     *sql.Stmt
	logger        *slog.Logger
}

// NewStore prepares the gallery statements against db. SetupSchema must
// have been called first.
func NewStore(db *sql.DB) (*Store, error) {
	stmtInsert, err := db.Prepare(`INSERT INTO gallery_figures (file_id, fragment, created_at) VALUES (?, ?, ?) ON CONFLICT(file_id) DO NOTHING;`)
	if err != nil {
		return nil, err
	}

	stmtGet, err := db.Prepare(`SELECT id, fragment, created_at FROM gallery_figures WHERE file_id = ?;`)
	if err != nil {
		return nil, err
	}

	stmtList, err := db.Prepare(`SELECT id, file_id, length(fragment), created_at FROM gallery_figures ORDER BY id;`)
	if err != nil {
		return nil, err
	}

	stmtFragments, err := db.Prepare(`SELECT id, file_id, fragment, created_at FROM gallery_figures ORDER BY id;`)
	if err != nil {
		return nil, err
	}

	stmtDelete, err := db.Prepare(`DELETE FROM gallery_figures WHERE file_id = ?;`)
	if err != nil {
		return nil, err
	}

	stmtCount, err := db.Prepare(`SELECT COUNT(*) FROM gallery_figures;`)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:            db,
		stmtInsert:    stmtInsert,
		stmtGet:       stmtGet,
		stmtList:      stmtList,
		stmtFragments: stmtFragments,
		stmtDelete:    stmtDelete,
		stmtCount:     stmtCount,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Close releases the prepared statements. The database itself stays open.
func (s *Store) Close() {
	_ = s.stmtInsert.Close()
	_ = s.stmtGet.Close()
	_ = s.stmtList.Close()
	_ = s.stmtFragments.Close()
	_ = s.stmtDelete.Close()
	_ = s.stmtCount.Close()
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Display stores fragment under fileID, which makes Store usable as an
// animation.Sink. A file id that is already stored yields ErrDuplicateFileID.
func (s *Store) Display(ctx context.Context, fileID string, fragment template.HTML) error {
	res, err := s.stmtInsert.ExecContext(ctx, fileID, string(fragment), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert figure: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check inserted figure: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateFileID, fileID)
	}
	s.logger.Debug("Figure stored", "file_id", fileID, "bytes", len(fragment))
	return nil
}

// Get returns the figure stored under fileID, fragment included.
func (s *Store) Get(ctx context.Context, fileID string) (Entry, error) {
	entry := Entry{FileID: fileID}
	var fragment string
	err := s.stmtGet.QueryRowContext(ctx, fileID).Scan(&entry.ID, &fragment, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, fileID)
		}
		return Entry{}, err
	}
	entry.Fragment = template.HTML(fragment)
	entry.Size = len(fragment)
	return entry, nil
}

// List returns every stored figure in insertion order, without fragments.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.stmtList.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	entries := []Entry{}
	for rows.Next() {
		var entry Entry
		if err = rows.Scan(&entry.ID, &entry.FileID, &entry.Size, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Fragments returns every stored figure in insertion order, fragments included.
func (s *Store) Fragments(ctx context.Context) ([]Entry, error) {
	rows, err := s.stmtFragments.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var fragment string
		if err = rows.Scan(&entry.ID, &entry.FileID, &fragment, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.Fragment = template.HTML(fragment)
		entry.Size = len(fragment)
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes the figure stored under fileID.
func (s *Store) Delete(ctx context.Context, fileID string) error {
	res, err := s.stmtDelete.ExecContext(ctx, fileID)
	if err != nil {
		return fmt.Errorf("failed to delete figure: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, fileID)
	}
	s.logger.Debug("Figure deleted", "file_id", fileID)
	return nil
}

// Count returns the number of stored figures.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.stmtCount.QueryRowContext(ctx).Scan(&n)
	return n, err
}
