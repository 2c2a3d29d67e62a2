package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// PhotoTypes maps the allowed upload content types to the file extension
// used for storage-assigned names.
var PhotoTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// Dimensions is the pixel size of a stored photo, populated asynchronously
// by the size worker.
type Dimensions struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Type   string `json:"type"`
}

type Photo struct {
	ID          uuid.UUID      `db:"id"`
	Filename    string         `db:"filename"`
	ContentType string         `db:"content_type"`
	UserID      sql.NullString `db:"user_id"`
	BusinessID  string         `db:"business_id"`
	Caption     sql.NullString `db:"caption"`
	Size        *Dimensions
	Length      int64     `db:"length"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Thumbnail is always image/jpeg and carries no user-facing metadata
// beyond its name.
type Thumbnail struct {
	ID          uuid.UUID `db:"id"`
	PhotoID     uuid.UUID `db:"photo_id"`
	Filename    string    `db:"filename"`
	ContentType string    `db:"content_type"`
	Length      int64     `db:"length"`
	CreatedAt   time.Time `db:"created_at"`
}
