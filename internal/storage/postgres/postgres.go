package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/google/uuid"

	"photoStore/internal/config"
	"photoStore/internal/models"

	_ "github.com/lib/pq"
)

// chunkSize is how much blob content goes into a single chunk row, close to
// the 255 KiB default of GridFS-style stores.
const chunkSize = 256 << 10

type Storage struct {
	DB *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS photos (
    id UUID PRIMARY KEY,
    filename TEXT NOT NULL UNIQUE,
    content_type TEXT NOT NULL,
    user_id TEXT,
    business_id TEXT NOT NULL,
    caption TEXT,
    width INT,
    height INT,
    size_type TEXT,
    length BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS photo_chunks (
    photo_id UUID NOT NULL REFERENCES photos (id) ON DELETE CASCADE,
    seq INT NOT NULL,
    data BYTEA NOT NULL,
    PRIMARY KEY (photo_id, seq)
);

CREATE TABLE IF NOT EXISTS thumbnails (
    id UUID PRIMARY KEY,
    photo_id UUID NOT NULL REFERENCES photos (id) ON DELETE CASCADE,
    filename TEXT NOT NULL UNIQUE,
    content_type TEXT NOT NULL,
    length BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS thumbnail_chunks (
    thumbnail_id UUID NOT NULL REFERENCES thumbnails (id) ON DELETE CASCADE,
    seq INT NOT NULL,
    data BYTEA NOT NULL,
    PRIMARY KEY (thumbnail_id, seq)
);`

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

// SavePhoto streams the photo content into chunk rows and commits it together
// with the metadata row in one transaction, so the record only becomes
// visible once the full byte sequence is stored.
func (s *Storage) SavePhoto(ctx context.Context, photo *models.Photo, content io.Reader) (uuid.UUID, error) {
	const op = "storage.postgres.SavePhoto"

	photoID := uuid.New()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	query := `
        INSERT INTO photos (id, filename, content_type, user_id, business_id, caption)
        VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = tx.ExecContext(ctx, query,
		photoID,
		photo.Filename,
		photo.ContentType,
		photo.UserID,
		photo.BusinessID,
		photo.Caption,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	length, err := writeChunks(ctx, tx,
		`INSERT INTO photo_chunks (photo_id, seq, data) VALUES ($1, $2, $3)`,
		photoID, content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err = tx.ExecContext(ctx, `UPDATE photos SET length = $1 WHERE id = $2`, length, photoID); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return photoID, nil
}

// SaveThumbnail works like SavePhoto but is idempotent by filename: a
// re-delivered queue message finds the existing record and keeps it.
func (s *Storage) SaveThumbnail(ctx context.Context, thumb *models.Thumbnail, content io.Reader) (uuid.UUID, error) {
	const op = "storage.postgres.SaveThumbnail"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var existingID uuid.UUID

	err = tx.QueryRowContext(ctx,
		`SELECT id FROM thumbnails WHERE filename = $1`, thumb.Filename,
	).Scan(&existingID)
	if err == nil {
		return existingID, nil
	}
	if err != sql.ErrNoRows {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	thumbID := uuid.New()

	query := `
        INSERT INTO thumbnails (id, photo_id, filename, content_type)
        VALUES ($1, $2, $3, $4)`

	_, err = tx.ExecContext(ctx, query, thumbID, thumb.PhotoID, thumb.Filename, thumb.ContentType)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	length, err := writeChunks(ctx, tx,
		`INSERT INTO thumbnail_chunks (thumbnail_id, seq, data) VALUES ($1, $2, $3)`,
		thumbID, content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err = tx.ExecContext(ctx, `UPDATE thumbnails SET length = $1 WHERE id = $2`, length, thumbID); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return thumbID, nil
}

func writeChunks(ctx context.Context, tx *sql.Tx, insertQuery string, id uuid.UUID, content io.Reader) (int64, error) {
	buf := make([]byte, chunkSize)

	var total int64
	for seq := 0; ; seq++ {
		n, err := io.ReadFull(content, buf)
		if n > 0 {
			if _, execErr := tx.ExecContext(ctx, insertQuery, id, seq, buf[:n]); execErr != nil {
				return 0, execErr
			}
			total += int64(n)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return total, nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (s *Storage) GetPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	const op = "storage.postgres.GetPhoto"

	query := `
        SELECT id, filename, content_type, user_id, business_id, caption, width, height, size_type, length, created_at, updated_at
        FROM photos
        WHERE id = $1`

	photo := &models.Photo{}

	var width, height sql.NullInt64
	var sizeType sql.NullString

	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&photo.ID,
		&photo.Filename,
		&photo.ContentType,
		&photo.UserID,
		&photo.BusinessID,
		&photo.Caption,
		&width,
		&height,
		&sizeType,
		&photo.Length,
		&photo.CreatedAt,
		&photo.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: photo with ID %s not found: %w", op, id, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if width.Valid && height.Valid {
		photo.Size = &models.Dimensions{
			Width:  int(width.Int64),
			Height: int(height.Int64),
			Type:   sizeType.String,
		}
	}

	return photo, nil
}

func (s *Storage) GetThumbnail(ctx context.Context, id uuid.UUID) (*models.Thumbnail, error) {
	const op = "storage.postgres.GetThumbnail"

	query := `
        SELECT id, photo_id, filename, content_type, length, created_at
        FROM thumbnails
        WHERE id = $1`

	thumb := &models.Thumbnail{}

	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&thumb.ID,
		&thumb.PhotoID,
		&thumb.Filename,
		&thumb.ContentType,
		&thumb.Length,
		&thumb.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: thumbnail with ID %s not found: %w", op, id, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return thumb, nil
}

// UpdatePhotoSize writes the decoded dimensions back onto the photo record.
// It reports whether a record matched; repeating the update is harmless.
func (s *Storage) UpdatePhotoSize(ctx context.Context, id uuid.UUID, size models.Dimensions) (bool, error) {
	const op = "storage.postgres.UpdatePhotoSize"

	query := `
        UPDATE photos
        SET width = $1, height = $2, size_type = $3, updated_at = NOW()
        WHERE id = $4`

	result, err := s.DB.ExecContext(ctx, query, size.Width, size.Height, size.Type, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return rowsAffected > 0, nil
}

func (s *Storage) OpenPhotoStream(ctx context.Context, id uuid.UUID) (*DownloadStream, error) {
	const op = "storage.postgres.OpenPhotoStream"

	return s.openStream(ctx, op,
		`SELECT id, filename, content_type, length FROM photos WHERE id = $1`,
		`SELECT data FROM photo_chunks WHERE photo_id = $1 ORDER BY seq`,
		id)
}

func (s *Storage) OpenPhotoStreamByName(ctx context.Context, filename string) (*DownloadStream, error) {
	const op = "storage.postgres.OpenPhotoStreamByName"

	return s.openStream(ctx, op,
		`SELECT id, filename, content_type, length FROM photos WHERE filename = $1`,
		`SELECT data FROM photo_chunks WHERE photo_id = $1 ORDER BY seq`,
		filename)
}

func (s *Storage) OpenThumbnailStreamByName(ctx context.Context, filename string) (*DownloadStream, error) {
	const op = "storage.postgres.OpenThumbnailStreamByName"

	return s.openStream(ctx, op,
		`SELECT id, filename, content_type, length FROM thumbnails WHERE filename = $1`,
		`SELECT data FROM thumbnail_chunks WHERE thumbnail_id = $1 ORDER BY seq`,
		filename)
}

func (s *Storage) openStream(ctx context.Context, op, metaQuery, chunkQuery string, key interface{}) (*DownloadStream, error) {
	stream := &DownloadStream{}

	var id uuid.UUID

	err := s.DB.QueryRowContext(ctx, metaQuery, key).Scan(
		&id,
		&stream.Filename,
		&stream.ContentType,
		&stream.Length,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: blob %v not found: %w", op, key, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.DB.QueryContext(ctx, chunkQuery, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stream.Content = &chunkReader{rows: rows}

	return stream, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// DownloadStream is an open sequential read of stored blob content.
// Content type and length are known before the first Read, so callers can
// set response headers before streaming.
type DownloadStream struct {
	Filename    string
	ContentType string
	Length      int64
	Content     io.ReadCloser
}

func (d *DownloadStream) Read(p []byte) (int, error) {
	return d.Content.Read(p)
}

func (d *DownloadStream) Close() error {
	return d.Content.Close()
}

// chunkReader walks chunk rows in sequence order, handing out bytes as the
// consumer asks for them.
type chunkReader struct {
	rows *sql.Rows
	buf  []byte
}

func (c *chunkReader) Read(p []byte) (int, error) {
	for len(c.buf) == 0 {
		if !c.rows.Next() {
			if err := c.rows.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		if err := c.rows.Scan(&c.buf); err != nil {
			return 0, err
		}
	}

	n := copy(p, c.buf)
	c.buf = c.buf[n:]

	return n, nil
}

func (c *chunkReader) Close() error {
	return c.rows.Close()
}
