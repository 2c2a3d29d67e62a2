package serveThumb_test

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoStore/internal/http-server/handlers/media/serveThumb"
	"photoStore/internal/http-server/handlers/media/serveThumb/mocks"
	"photoStore/internal/storage/postgres"
)

func TestServeThumb(t *testing.T) {
	content := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x0A, 0x0B}

	t.Run("Success", func(t *testing.T) {
		streamerMock := mocks.NewThumbnailStreamer(t)
		streamerMock.On("OpenThumbnailStreamByName", mock.Anything, "abcd1234_thumb.jpg").
			Return(&postgres.DownloadStream{
				Filename:    "abcd1234_thumb.jpg",
				ContentType: "image/jpeg",
				Length:      int64(len(content)),
				Content:     io.NopCloser(bytes.NewReader(content)),
			}, nil).Once()

		rr := serve(t, streamerMock, "abcd1234_thumb.jpg")

		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))
		require.Equal(t, content, rr.Body.Bytes())
	})

	t.Run("Not Found", func(t *testing.T) {
		streamerMock := mocks.NewThumbnailStreamer(t)
		streamerMock.On("OpenThumbnailStreamByName", mock.Anything, "missing_thumb.jpg").
			Return(nil, sql.ErrNoRows).Once()

		rr := serve(t, streamerMock, "missing_thumb.jpg")

		require.Equal(t, http.StatusNotFound, rr.Code)
		require.JSONEq(t,
			`{"status":"Error","error":"Requested resource /media/thumbs/missing_thumb.jpg does not exist"}`,
			rr.Body.String())
	})
}

func serve(t *testing.T, streamer serveThumb.ThumbnailStreamer, filename string) *httptest.ResponseRecorder {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	req := httptest.NewRequest(http.MethodGet, "/media/thumbs/"+filename, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("filename", filename)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()

	serveThumb.New(log, streamer).ServeHTTP(rr, req)

	return rr
}
