package getPhoto

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

// Response is the photo metadata view. The storage path stays internal;
// callers get a derived media URL instead.
type Response struct {
	response.Response
	ID          uuid.UUID          `json:"_id"`
	URL         string             `json:"url"`
	ContentType string             `json:"contentType"`
	UserID      string             `json:"userId,omitempty"`
	BusinessID  string             `json:"businessId"`
	Caption     string             `json:"caption,omitempty"`
	Size        *models.Dimensions `json:"size,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PhotoProvider
type PhotoProvider interface {
	GetPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error)
}

// New fetches photo metadata.
// @Summary      Fetches photo metadata
// @Description  Returns the stored metadata of a photo, including its size once computed
// @Tags         photos
// @Produce      json
// @Param        id  path  string  true  "Photo ID"
// @Success      200  {object}  getPhoto.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /photos/{id} [get]
func New(log *slog.Logger, photoProvider PhotoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.getPhoto.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")

		photoID, err := uuid.Parse(idStr)
		if err != nil {
			// An unparseable ID cannot name a stored photo, same outcome
			// as an unknown one.
			log.Info("invalid photo ID", slog.String("id", idStr))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.NotFound(r.URL.Path))
			return
		}

		photo, err := photoProvider.GetPhoto(r.Context(), photoID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Info("photo not found", slog.String("photo_id", photoID.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.NotFound(r.URL.Path))
				return
			}

			log.Error("failed to get photo from storage", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get photo"))
			return
		}

		log.Info("photo retrieved", slog.String("photo_id", photoID.String()))

		render.JSON(w, r, Response{
			Response:    response.OK(),
			ID:          photo.ID,
			URL:         fmt.Sprintf("/media/photos/%s", photo.Filename),
			ContentType: photo.ContentType,
			UserID:      photo.UserID.String,
			BusinessID:  photo.BusinessID,
			Caption:     photo.Caption.String,
			Size:        photo.Size,
		})
	}
}
