package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"WellnessHub/media"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImageService_Upload(t *testing.T) {
	uploader := new(MockUploader)
	svc := NewImageService(uploader)
	ctx := context.Background()

	uploader.On("Upload", ctx, mock.AnythingOfType("string"), mock.Anything).
		Return("https://res.cloudinary.com/demo/cabin.png", nil).Once()

	url, err := svc.Upload(ctx, "image/png", 1024, strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/cabin.png", url)
	uploader.AssertExpectations(t)
}

func TestImageService_Upload_Rejections(t *testing.T) {
	uploader := new(MockUploader)
	svc := NewImageService(uploader)
	ctx := context.Background()

	_, err := svc.Upload(ctx, "application/pdf", 10, strings.NewReader("pdf"))
	assertStatus(t, err, http.StatusBadRequest)

	_, err = svc.Upload(ctx, "image/jpeg", MaxImageSize+1, strings.NewReader(""))
	assertStatus(t, err, http.StatusBadRequest)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestImageService_Upload_HostFailures(t *testing.T) {
	ctx := context.Background()

	_, err := NewImageService(nil).Upload(ctx, "image/png", 1, strings.NewReader("x"))
	assertStatus(t, err, http.StatusServiceUnavailable)

	_, err = NewImageService(media.Disabled{}).Upload(ctx, "image/png", 1, strings.NewReader("x"))
	assertStatus(t, err, http.StatusServiceUnavailable)

	uploader := new(MockUploader)
	uploader.On("Upload", ctx, mock.Anything, mock.Anything).Return("", gobreaker.ErrOpenState).Once()
	uploader.On("Upload", ctx, mock.Anything, mock.Anything).Return("", errors.New("timeout")).Once()
	svc := NewImageService(uploader)

	_, err = svc.Upload(ctx, "image/png", 1, strings.NewReader("x"))
	assertStatus(t, err, http.StatusServiceUnavailable)
	_, err = svc.Upload(ctx, "image/png", 1, strings.NewReader("x"))
	assertStatus(t, err, http.StatusServiceUnavailable)
}
