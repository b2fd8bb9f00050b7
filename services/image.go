package services

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"WellnessHub/apierror"
	"WellnessHub/media"
	"WellnessHub/util"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

const MaxImageSize = 5 << 20

type ImageService struct {
	uploader media.Uploader
}

func NewImageService(uploader media.Uploader) *ImageService {
	if uploader == nil {
		uploader = media.Disabled{}
	}
	return &ImageService{uploader: uploader}
}

/*
* Only image content up to MaxImageSize is accepted
* Every upload gets a fresh public id
 */
func (s *ImageService) Upload(ctx context.Context, contentType string, size int64, file io.Reader) (string, error) {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return "", apierror.BadRequest(util.IMAGE_INVALID_TYPE, contentType)
	}
	if size > MaxImageSize {
		return "", apierror.BadRequest(util.IMAGE_TOO_LARGE)
	}
	url, err := s.uploader.Upload(ctx, uuid.NewString(), io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		switch {
		case errors.Is(err, media.ErrNotConfigured):
			return "", apierror.ServiceUnavailable(util.MEDIA_UPLOADER_UNAVAILABLE)
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			return "", apierror.ServiceUnavailable(util.IMAGE_UPLOAD_FAILED)
		}
		log.Println("Error from image Upload: ", err)
		return "", apierror.ServiceUnavailable(util.IMAGE_UPLOAD_FAILED)
	}
	return url, nil
}
