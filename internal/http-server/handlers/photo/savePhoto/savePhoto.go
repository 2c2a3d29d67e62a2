package savePhoto

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"photoStore/internal/kafka/producer"
	"photoStore/internal/lib/api/response"
	"photoStore/internal/lib/logger/sl"
	"photoStore/internal/lib/random"
	"photoStore/internal/models"
)

// Request is the declarative schema for the non-file body fields.
type Request struct {
	BusinessID string `validate:"required"`
	UserID     string
	Caption    string
}

type Links struct {
	Photo    string `json:"photo"`
	Business string `json:"business"`
}

type PhotoResponse struct {
	response.Response
	ID    uuid.UUID `json:"id"`
	Links Links     `json:"links"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PhotoSaver
type PhotoSaver interface {
	SavePhoto(ctx context.Context, photo *models.Photo, content io.Reader) (uuid.UUID, error)
}

// New creates a new photo from a multipart upload.
// @Summary      Uploads a photo
// @Description  Stores a photo with its metadata and queues it for size computation
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo       formData  file    true   "Photo file (jpeg or png)"
// @Param        businessId  formData  string  true   "Business the photo belongs to"
// @Param        userId      formData  string  false  "Uploading user"
// @Param        caption     formData  string  false  "Photo caption"
// @Success      201  {object}  savePhoto.PhotoResponse
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /photos [post]
func New(log *slog.Logger, photoSaver PhotoSaver, kafkaProducer producer.ProducerIface, uploadDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.savePhoto.New"

		log = log.With(
			slog.String("op", op),
		)

		file, header, err := r.FormFile("photo")
		if err != nil {
			log.Error("failed to get photo file from request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to get photo file from request"))
			return
		}
		defer func(file multipart.File) {
			if err := file.Close(); err != nil {
				return
			}
		}(file)

		req := Request{
			BusinessID: r.FormValue("businessId"),
			UserID:     r.FormValue("userId"),
			Caption:    r.FormValue("caption"),
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Info("invalid request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		contentType := header.Header.Get("Content-Type")

		ext, ok := models.PhotoTypes[contentType]
		if !ok {
			log.Info("rejected upload with unsupported content type", slog.String("content_type", contentType))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("unsupported file type %q, expected image/jpeg or image/png", contentType)))
			return
		}

		if header.Size == 0 {
			log.Error("received empty file")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("received empty file"))
			return
		}

		if _, err = os.Stat(uploadDir); os.IsNotExist(err) {
			if err = os.MkdirAll(uploadDir, os.ModePerm); err != nil {
				log.Error("failed to create upload dir", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to save file"))
				return
			}
		}

		filename := random.NewHexString(16) + "." + ext
		filePath := filepath.Join(uploadDir, filename)

		dst, err := os.Create(filePath)
		if err != nil {
			log.Error("failed to create file on disk", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save file"))
			return
		}

		if _, err = io.Copy(dst, file); err != nil {
			dst.Close()
			log.Error("failed to copy file content", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save file"))
			return
		}

		if err = dst.Close(); err != nil {
			log.Error("failed to flush file to disk", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save file"))
			return
		}

		src, err := os.Open(filePath)
		if err != nil {
			log.Error("failed to reopen uploaded file", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save file"))
			return
		}

		photo := &models.Photo{
			Filename:    filename,
			ContentType: contentType,
			BusinessID:  req.BusinessID,
			UserID:      sql.NullString{String: req.UserID, Valid: req.UserID != ""},
			Caption:     sql.NullString{String: req.Caption, Valid: req.Caption != ""},
		}

		photoID, err := photoSaver.SavePhoto(r.Context(), photo, src)
		src.Close()
		if err != nil {
			log.Error("failed to save photo", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save photo"))
			return
		}

		// The blob is durably committed; the transient copy is no longer
		// needed and the ID may now become visible on the queue.
		if err = os.Remove(filePath); err != nil {
			log.Warn("failed to remove transient upload file", slog.String("path", filePath), sl.Err(err))
		}

		if err = kafkaProducer.SendMessage(r.Context(), []byte(photoID.String())); err != nil {
			log.Error("failed to publish photo to queue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to queue photo for processing"))
			return
		}

		log.Info("photo saved", slog.String("photo_id", photoID.String()))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, PhotoResponse{
			Response: response.OK(),
			ID:       photoID,
			Links: Links{
				Photo:    fmt.Sprintf("/photos/%s", photoID),
				Business: fmt.Sprintf("/businesses/%s", req.BusinessID),
			},
		})
	}
}
