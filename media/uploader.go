package media

import (
	"context"
	"errors"
	"io"
	"time"

	"WellnessHub/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/sony/gobreaker"
)

// ErrNotConfigured is returned by Disabled.
var ErrNotConfigured = errors.New("media uploads are not configured")

// Uploader stores a file on the media host and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, publicID string, file io.Reader) (string, error)
}

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
	cb     *gobreaker.CircuitBreaker
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return &CloudinaryUploader{
		cld:    cld,
		folder: folder,
		cb:     config.NewCircuitBreaker("Cloudinary-Uploader", 30*time.Second),
	}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, publicID string, file io.Reader) (string, error) {
	res, err := u.cb.Execute(func() (interface{}, error) {
		result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
			Folder:   u.folder,
			PublicID: publicID,
		})
		if err != nil {
			return nil, err
		}
		if result.Error.Message != "" {
			return nil, errors.New(result.Error.Message)
		}
		if result.SecureURL == "" {
			return nil, errors.New("image upload failed to return a url")
		}
		return result.SecureURL, nil
	})
	if err != nil {
		return "", err
	}
	return res.(string), nil
}

type Disabled struct{}

func (Disabled) Upload(context.Context, string, io.Reader) (string, error) {
	return "", ErrNotConfigured
}
