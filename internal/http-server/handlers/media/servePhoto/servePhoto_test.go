package servePhoto_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoStore/internal/http-server/handlers/media/servePhoto"
	"photoStore/internal/http-server/handlers/media/servePhoto/mocks"
	"photoStore/internal/storage/postgres"
)

func TestServePhoto(t *testing.T) {
	content := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02, 0x03, 0x04}

	t.Run("Success", func(t *testing.T) {
		streamerMock := mocks.NewPhotoStreamer(t)
		streamerMock.On("OpenPhotoStreamByName", mock.Anything, "abcd1234.jpg").
			Return(&postgres.DownloadStream{
				Filename:    "abcd1234.jpg",
				ContentType: "image/jpeg",
				Length:      int64(len(content)),
				Content:     io.NopCloser(bytes.NewReader(content)),
			}, nil).Once()

		rr := serve(t, streamerMock, "abcd1234.jpg")

		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))
		require.Equal(t, content, rr.Body.Bytes())
	})

	t.Run("Not Found", func(t *testing.T) {
		streamerMock := mocks.NewPhotoStreamer(t)
		streamerMock.On("OpenPhotoStreamByName", mock.Anything, "missing.jpg").
			Return(nil, sql.ErrNoRows).Once()

		rr := serve(t, streamerMock, "missing.jpg")

		require.Equal(t, http.StatusNotFound, rr.Code)
		require.JSONEq(t,
			`{"status":"Error","error":"Requested resource /media/photos/missing.jpg does not exist"}`,
			rr.Body.String())
	})

	t.Run("Internal Error", func(t *testing.T) {
		streamerMock := mocks.NewPhotoStreamer(t)
		streamerMock.On("OpenPhotoStreamByName", mock.Anything, "abcd1234.jpg").
			Return(nil, errors.New("db error")).Once()

		rr := serve(t, streamerMock, "abcd1234.jpg")

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		require.JSONEq(t, `{"status":"Error","error":"failed to fetch photo"}`, rr.Body.String())
	})
}

func serve(t *testing.T, streamer servePhoto.PhotoStreamer, filename string) *httptest.ResponseRecorder {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	req := httptest.NewRequest(http.MethodGet, "/media/photos/"+filename, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("filename", filename)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()

	servePhoto.New(log, streamer).ServeHTTP(rr, req)

	return rr
}
