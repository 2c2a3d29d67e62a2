package router

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "photoStore/docs"
	"photoStore/internal/http-server/handlers/media/servePhoto"
	"photoStore/internal/http-server/handlers/media/serveThumb"
	"photoStore/internal/http-server/handlers/notfound"
	"photoStore/internal/http-server/handlers/photo/getPhoto"
	"photoStore/internal/http-server/handlers/photo/getThumb"
	"photoStore/internal/http-server/handlers/photo/savePhoto"
	"photoStore/internal/http-server/middleware/mwlogger"
	"photoStore/internal/kafka/producer"
	"photoStore/internal/models"
	"photoStore/internal/storage/postgres"
)

// Storage is everything the HTTP surface needs from the blob store.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	SavePhoto(ctx context.Context, photo *models.Photo, content io.Reader) (uuid.UUID, error)
	GetPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error)
	GetThumbnail(ctx context.Context, id uuid.UUID) (*models.Thumbnail, error)
	OpenPhotoStreamByName(ctx context.Context, filename string) (*postgres.DownloadStream, error)
	OpenThumbnailStreamByName(ctx context.Context, filename string) (*postgres.DownloadStream, error)
}

func New(log *slog.Logger, storage Storage, kafkaProducer producer.ProducerIface, uploadDir string) *chi.Mux {
	router := chi.NewRouter()

	// no URLFormat here: media routes take real file names and the
	// extension must survive routing
	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)

	router.Post("/photos", savePhoto.New(log, storage, kafkaProducer, uploadDir))
	router.Get("/photos/thumbs/{id}", getThumb.New(log, storage))
	router.Get("/photos/{id}", getPhoto.New(log, storage))
	router.Get("/media/photos/{filename}", servePhoto.New(log, storage))
	router.Get("/media/thumbs/{filename}", serveThumb.New(log, storage))

	router.Get("/swagger/*", httpSwagger.Handler())

	router.NotFound(notfound.New())

	return router
}
