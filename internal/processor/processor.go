package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"photoStore/internal/lib/logger/sl"
	"photoStore/internal/models"
	"photoStore/internal/storage/postgres"
)

const (
	thumbWidth  = 150
	thumbHeight = 150
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PhotoStore
type PhotoStore interface {
	OpenPhotoStream(ctx context.Context, id uuid.UUID) (*postgres.DownloadStream, error)
	UpdatePhotoSize(ctx context.Context, id uuid.UUID, size models.Dimensions) (bool, error)
	SaveThumbnail(ctx context.Context, thumb *models.Thumbnail, content io.Reader) (uuid.UUID, error)
}

type SizeProcessor struct {
	storage PhotoStore
	log     *slog.Logger
}

func NewSizeProcessor(log *slog.Logger, storage PhotoStore) *SizeProcessor {
	return &SizeProcessor{
		log:     log,
		storage: storage,
	}
}

// ProcessMessage handles one queue message: the message body is the photo ID.
// It buffers the stored bytes, decodes the pixel dimensions, writes them back
// onto the photo record and derives a thumbnail. Errors are returned to the
// consumer, which logs them and moves on.
func (p *SizeProcessor) ProcessMessage(ctx context.Context, message []byte) error {
	const op = "processor.ProcessMessage"

	photoID, err := uuid.Parse(string(message))
	if err != nil {
		p.log.Error("failed to parse photo ID from message", slog.String("op", op), sl.Err(err))
		return err
	}

	p.log.Info("computing photo size", slog.String("op", op), slog.String("photo_id", photoID.String()))

	stream, err := p.storage.OpenPhotoStream(ctx, photoID)
	if err != nil {
		p.log.Error("failed to open photo stream", slog.String("op", op), slog.String("photo_id", photoID.String()), sl.Err(err))
		return err
	}

	// The decoder needs the whole encoded image, so unlike the retrieval
	// handlers this path buffers the stream fully.
	data, err := io.ReadAll(stream)
	closeErr := stream.Close()
	if err != nil {
		p.log.Error("failed to read photo content", slog.String("op", op), slog.String("photo_id", photoID.String()), sl.Err(err))
		return err
	}
	if closeErr != nil {
		p.log.Warn("failed to close photo stream", slog.String("op", op), sl.Err(closeErr))
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		p.log.Error("failed to decode image dimensions", slog.String("op", op), slog.String("photo_id", photoID.String()), sl.Err(err))
		return err
	}

	size := models.Dimensions{
		Width:  cfg.Width,
		Height: cfg.Height,
		Type:   format,
	}
	if ext, ok := models.PhotoTypes["image/"+format]; ok {
		size.Type = ext
	}

	matched, err := p.storage.UpdatePhotoSize(ctx, photoID, size)
	if err != nil {
		p.log.Error("failed to update photo size", slog.String("op", op), slog.String("photo_id", photoID.String()), sl.Err(err))
		return err
	}
	if !matched {
		p.log.Warn("no photo matched size update", slog.String("op", op), slog.String("photo_id", photoID.String()))
		return fmt.Errorf("%s: photo %s not found", op, photoID)
	}

	p.log.Info("size updated for photo",
		slog.String("op", op),
		slog.String("photo_id", photoID.String()),
		slog.Int("width", size.Width),
		slog.Int("height", size.Height),
	)

	if err = p.makeThumbnail(ctx, photoID, stream.Filename, data); err != nil {
		p.log.Error("failed to create thumbnail", slog.String("op", op), slog.String("photo_id", photoID.String()), sl.Err(err))
		return err
	}

	return nil
}

func (p *SizeProcessor) makeThumbnail(ctx context.Context, photoID uuid.UUID, filename string, data []byte) error {
	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}

	thumbImage := imaging.Thumbnail(src, thumbWidth, thumbHeight, imaging.CatmullRom)

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, thumbImage, imaging.JPEG); err != nil {
		return err
	}

	thumb := &models.Thumbnail{
		PhotoID:     photoID,
		Filename:    thumbName(filename),
		ContentType: "image/jpeg",
	}

	thumbID, err := p.storage.SaveThumbnail(ctx, thumb, &buf)
	if err != nil {
		return err
	}

	p.log.Info("thumbnail stored",
		slog.String("photo_id", photoID.String()),
		slog.String("thumbnail_id", thumbID.String()),
	)

	return nil
}

// thumbName derives a deterministic thumbnail file name from the photo file
// name, which keeps thumbnail creation idempotent across redeliveries.
func thumbName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + "_thumb.jpg"
}
