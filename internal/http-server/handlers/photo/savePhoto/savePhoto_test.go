package savePhoto_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoStore/internal/http-server/handlers/photo/savePhoto"
	saverMocks "photoStore/internal/http-server/handlers/photo/savePhoto/mocks"
	kafkaMocks "photoStore/internal/kafka/producer/mocks"
)

func TestSavePhoto(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testUUID, _ := uuid.NewRandom()

	tests := []struct {
		name           string
		fileContent    []byte
		fileType       string
		omitFile       bool
		businessID     string
		caption        string
		mockSaveID     uuid.UUID
		mockSaveErr    error
		expectSave     bool
		mockKafkaErr   error
		expectKafka    bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			fileContent:    []byte("jpeg bytes"),
			fileType:       "image/jpeg",
			businessID:     "biz-1",
			caption:        "a caption",
			mockSaveID:     testUUID,
			expectSave:     true,
			expectKafka:    true,
			expectedStatus: http.StatusCreated,
			expectedBody:   fmt.Sprintf(`{"status":"OK","id":"%s","links":{"photo":"/photos/%s","business":"/businesses/biz-1"}}`, testUUID, testUUID),
		},
		{
			name:           "Missing File",
			omitFile:       true,
			businessID:     "biz-1",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to get photo file from request"}`,
		},
		{
			name:           "Missing BusinessID",
			fileContent:    []byte("jpeg bytes"),
			fileType:       "image/jpeg",
			businessID:     "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field BusinessID is a required field"}`,
		},
		{
			name:           "Unsupported Content Type",
			fileContent:    []byte("gif bytes"),
			fileType:       "image/gif",
			businessID:     "biz-1",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"unsupported file type \"image/gif\", expected image/jpeg or image/png"}`,
		},
		{
			name:           "Empty File",
			fileContent:    []byte(""),
			fileType:       "image/png",
			businessID:     "biz-1",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"received empty file"}`,
		},
		{
			name:           "Failed to Save Photo",
			fileContent:    []byte("jpeg bytes"),
			fileType:       "image/jpeg",
			businessID:     "biz-1",
			mockSaveErr:    errors.New("db error"),
			expectSave:     true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to save photo"}`,
		},
		{
			name:           "Failed to Publish to Kafka",
			fileContent:    []byte("jpeg bytes"),
			fileType:       "image/jpeg",
			businessID:     "biz-1",
			mockSaveID:     testUUID,
			expectSave:     true,
			mockKafkaErr:   errors.New("kafka error"),
			expectKafka:    true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to queue photo for processing"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photoSaverMock := saverMocks.NewPhotoSaver(t)
			kafkaProducerMock := kafkaMocks.NewProducerIface(t)

			if tt.expectSave {
				photoSaverMock.On("SavePhoto", mock.Anything, mock.Anything, mock.Anything).
					Return(tt.mockSaveID, tt.mockSaveErr).Once()
			}
			if tt.expectKafka {
				kafkaProducerMock.On("SendMessage", mock.Anything, []byte(testUUID.String())).
					Return(tt.mockKafkaErr).Once()
			}

			body := new(bytes.Buffer)
			writer := multipart.NewWriter(body)

			if !tt.omitFile {
				part, err := createFormFile(writer, "photo", "upload.bin", tt.fileType)
				require.NoError(t, err)
				_, err = part.Write(tt.fileContent)
				require.NoError(t, err)
			}

			require.NoError(t, writer.WriteField("businessId", tt.businessID))
			if tt.caption != "" {
				require.NoError(t, writer.WriteField("caption", tt.caption))
			}
			require.NoError(t, writer.Close())

			req := httptest.NewRequest(http.MethodPost, "/photos", body)
			req.Header.Set("Content-Type", writer.FormDataContentType())

			rr := httptest.NewRecorder()

			uploadDir := t.TempDir()

			handler := savePhoto.New(log, photoSaverMock, kafkaProducerMock, uploadDir)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var actualMap, expectedMap map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actualMap))
			require.NoError(t, json.Unmarshal([]byte(tt.expectedBody), &expectedMap))
			require.Equal(t, expectedMap, actualMap)

			if tt.name == "Success" {
				// the transient copy must be gone once the blob is committed
				entries, err := os.ReadDir(uploadDir)
				require.NoError(t, err)
				require.Empty(t, entries)
			}
		})
	}
}

// createFormFile is CreateFormFile with an explicit part content type, since
// the handler rejects the default application/octet-stream.
func createFormFile(w *multipart.Writer, fieldname, filename, contentType string) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldname, filename))
	h.Set("Content-Type", contentType)

	return w.CreatePart(h)
}
