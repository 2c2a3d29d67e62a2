package getThumb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"photoStore/internal/lib/api/response"
	"photoStore/internal/lib/logger/sl"
	"photoStore/internal/models"
)

type Response struct {
	response.Response
	ID  uuid.UUID `json:"_id"`
	URL string    `json:"url"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ThumbnailProvider
type ThumbnailProvider interface {
	GetThumbnail(ctx context.Context, id uuid.UUID) (*models.Thumbnail, error)
}

// New fetches thumbnail metadata.
// @Summary      Fetches thumbnail metadata
// @Tags         photos
// @Produce      json
// @Param        id  path  string  true  "Thumbnail ID"
// @Success      200  {object}  getThumb.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /photos/thumbs/{id} [get]
func New(log *slog.Logger, thumbProvider ThumbnailProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.getThumb.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")

		thumbID, err := uuid.Parse(idStr)
		if err != nil {
			log.Info("invalid thumbnail ID", slog.String("id", idStr))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.NotFound(r.URL.Path))
			return
		}

		thumb, err := thumbProvider.GetThumbnail(r.Context(), thumbID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Info("thumbnail not found", slog.String("thumbnail_id", thumbID.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.NotFound(r.URL.Path))
				return
			}

			log.Error("failed to get thumbnail from storage", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get thumbnail"))
			return
		}

		log.Info("thumbnail retrieved", slog.String("thumbnail_id", thumbID.String()))

		render.JSON(w, r, Response{
			Response: response.OK(),
			ID:       thumb.ID,
			URL:      fmt.Sprintf("/media/thumbs/%s", thumb.Filename),
		})
	}
}
