package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for retreat image storage.
type StorageService interface {
	// UploadImage stores an image and returns its public URL.
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
	// DeleteImage removes an image given its delivery URL.
	DeleteImage(ctx context.Context, imageURL string) error
}

// StorageServiceImpl implements StorageService using Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
