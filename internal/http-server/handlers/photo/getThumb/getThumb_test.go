package getThumb_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoStore/internal/http-server/handlers/photo/getThumb"
	"photoStore/internal/http-server/handlers/photo/getThumb/mocks"
	"photoStore/internal/models"
)

func TestGetThumb(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testUUID, _ := uuid.NewRandom()

	testThumb := &models.Thumbnail{
		ID:          testUUID,
		Filename:    "abcd1234_thumb.jpg",
		ContentType: "image/jpeg",
	}

	tests := []struct {
		name           string
		thumbID        string
		mockThumb      *models.Thumbnail
		mockErr        error
		expectCall     bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			thumbID:        testUUID.String(),
			mockThumb:      testThumb,
			expectCall:     true,
			expectedStatus: http.StatusOK,
			expectedBody:   fmt.Sprintf(`{"status":"OK","_id":"%s","url":"/media/thumbs/abcd1234_thumb.jpg"}`, testUUID),
		},
		{
			name:           "Not Found",
			thumbID:        testUUID.String(),
			mockErr:        sql.ErrNoRows,
			expectCall:     true,
			expectedStatus: http.StatusNotFound,
			expectedBody:   fmt.Sprintf(`{"status":"Error","error":"Requested resource /photos/thumbs/%s does not exist"}`, testUUID),
		},
		{
			name:           "Malformed ID",
			thumbID:        "not-a-uuid",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"Requested resource /photos/thumbs/not-a-uuid does not exist"}`,
		},
		{
			name:           "Internal Error",
			thumbID:        testUUID.String(),
			mockErr:        errors.New("db error"),
			expectCall:     true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get thumbnail"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thumbProviderMock := mocks.NewThumbnailProvider(t)

			if tt.expectCall {
				thumbProviderMock.On("GetThumbnail", mock.Anything, testUUID).
					Return(tt.mockThumb, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/photos/thumbs/%s", tt.thumbID), nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.thumbID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler := getThumb.New(log, thumbProviderMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var actualMap, expectedMap map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actualMap))
			require.NoError(t, json.Unmarshal([]byte(tt.expectedBody), &expectedMap))
			require.Equal(t, expectedMap, actualMap)
		})
	}
}
