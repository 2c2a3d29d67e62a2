package servePhoto

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"photoStore/internal/lib/api/response"
	"photoStore/internal/lib/logger/sl"
	"photoStore/internal/storage/postgres"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PhotoStreamer
type PhotoStreamer interface {
	OpenPhotoStreamByName(ctx context.Context, filename string) (*postgres.DownloadStream, error)
}

// New streams raw photo bytes.
// @Summary      Downloads a photo
// @Description  Streams the stored photo bytes with their original content type
// @Tags         media
// @Produce      image/jpeg
// @Produce      image/png
// @Param        filename  path  string  true  "Photo file name"
// @Success      200  {file}  binary
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /media/photos/{filename} [get]
func New(log *slog.Logger, photoStreamer PhotoStreamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.media.servePhoto.New"

		log = log.With(slog.String("op", op))

		filename := chi.URLParam(r, "filename")

		stream, err := photoStreamer.OpenPhotoStreamByName(r.Context(), filename)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Info("photo file not found", slog.String("filename", filename))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.NotFound(r.URL.Path))
				return
			}

			log.Error("failed to open photo stream", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch photo"))
			return
		}
		defer stream.Close()

		// Headers go out only once the stream is confirmed open; from here
		// on any read error can only cut the body short.
		w.Header().Set("Content-Type", stream.ContentType)
		w.Header().Set("Content-Length", strconv.FormatInt(stream.Length, 10))
		w.WriteHeader(http.StatusOK)

		if _, err = io.Copy(w, stream); err != nil {
			log.Error("failed to stream photo content", slog.String("filename", filename), sl.Err(err))
		}
	}
}
