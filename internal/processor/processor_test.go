package processor_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoStore/internal/models"
	"photoStore/internal/processor"
	"photoStore/internal/processor/mocks"
	"photoStore/internal/storage/postgres"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))

	return buf.Bytes()
}

func photoStream(filename string, content []byte) *postgres.DownloadStream {
	return &postgres.DownloadStream{
		Filename:    filename,
		ContentType: "image/png",
		Length:      int64(len(content)),
		Content:     io.NopCloser(bytes.NewReader(content)),
	}
}

func TestProcessMessage(t *testing.T) {
	testUUID, _ := uuid.NewRandom()
	content := pngBytes(t, 20, 30)

	storageMock := mocks.NewPhotoStore(t)

	storageMock.On("OpenPhotoStream", mock.Anything, testUUID).
		Return(photoStream("abcd1234.png", content), nil).Once()
	storageMock.On("UpdatePhotoSize", mock.Anything, testUUID,
		models.Dimensions{Width: 20, Height: 30, Type: "png"}).
		Return(true, nil).Once()
	storageMock.On("SaveThumbnail", mock.Anything, mock.MatchedBy(func(th *models.Thumbnail) bool {
		return th.Filename == "abcd1234_thumb.jpg" &&
			th.ContentType == "image/jpeg" &&
			th.PhotoID == testUUID
	}), mock.Anything).Return(uuid.New(), nil).Once()

	p := processor.NewSizeProcessor(testLogger(), storageMock)

	err := p.ProcessMessage(context.Background(), []byte(testUUID.String()))
	require.NoError(t, err)
}

func TestProcessMessageRedelivery(t *testing.T) {
	testUUID, _ := uuid.NewRandom()
	content := pngBytes(t, 8, 8)

	storageMock := mocks.NewPhotoStore(t)

	// each delivery re-reads the blob and lands on the same values
	storageMock.On("OpenPhotoStream", mock.Anything, testUUID).
		Return(photoStream("abcd1234.png", content), nil).Once()
	storageMock.On("OpenPhotoStream", mock.Anything, testUUID).
		Return(photoStream("abcd1234.png", content), nil).Once()
	storageMock.On("UpdatePhotoSize", mock.Anything, testUUID,
		models.Dimensions{Width: 8, Height: 8, Type: "png"}).
		Return(true, nil).Twice()
	storageMock.On("SaveThumbnail", mock.Anything, mock.MatchedBy(func(th *models.Thumbnail) bool {
		return th.Filename == "abcd1234_thumb.jpg"
	}), mock.Anything).Return(uuid.New(), nil).Twice()

	p := processor.NewSizeProcessor(testLogger(), storageMock)

	require.NoError(t, p.ProcessMessage(context.Background(), []byte(testUUID.String())))
	require.NoError(t, p.ProcessMessage(context.Background(), []byte(testUUID.String())))
}

func TestProcessMessageCorruptContent(t *testing.T) {
	testUUID, _ := uuid.NewRandom()
	goodUUID, _ := uuid.NewRandom()
	content := pngBytes(t, 4, 6)

	storageMock := mocks.NewPhotoStore(t)

	storageMock.On("OpenPhotoStream", mock.Anything, testUUID).
		Return(photoStream("broken.png", []byte("not an image")), nil).Once()

	storageMock.On("OpenPhotoStream", mock.Anything, goodUUID).
		Return(photoStream("fine.png", content), nil).Once()
	storageMock.On("UpdatePhotoSize", mock.Anything, goodUUID,
		models.Dimensions{Width: 4, Height: 6, Type: "png"}).
		Return(true, nil).Once()
	storageMock.On("SaveThumbnail", mock.Anything, mock.Anything, mock.Anything).
		Return(uuid.New(), nil).Once()

	p := processor.NewSizeProcessor(testLogger(), storageMock)

	// a decode failure is reported but must not poison the processor
	require.Error(t, p.ProcessMessage(context.Background(), []byte(testUUID.String())))
	require.NoError(t, p.ProcessMessage(context.Background(), []byte(goodUUID.String())))
}

func TestProcessMessageBadID(t *testing.T) {
	storageMock := mocks.NewPhotoStore(t)

	p := processor.NewSizeProcessor(testLogger(), storageMock)

	require.Error(t, p.ProcessMessage(context.Background(), []byte("not-a-uuid")))
}
