package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}

// UploadImage uploads an image into the given folder and returns the
// secure delivery URL.
func (s *StorageServiceImpl) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("StorageServiceImpl: no URL returned")
	}
	return result.SecureURL, nil
}

// DeleteImage removes an image from Cloudinary given its delivery URL.
// Unknown assets are treated as already deleted.
func (s *StorageServiceImpl) DeleteImage(ctx context.Context, imageURL string) error {
	publicID, err := extractPublicID(imageURL)
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: %w", err)
	}

	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete image: %w", err)
	}
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("StorageServiceImpl: unexpected delete result %q", result.Result)
	}
	return nil
}

var versionSegment = regexp.MustCompile(`^v\d+$`)

// extractPublicID recovers a Cloudinary public id from a delivery URL,
// e.g. https://res.cloudinary.com/demo/image/upload/v123/folder/img.jpg
// -> folder/img.
func extractPublicID(imageURL string) (string, error) {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("invalid image URL: %w", err)
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	uploadIdx := -1
	for i, p := range parts {
		if p == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx == -1 || uploadIdx == len(parts)-1 {
		return "", fmt.Errorf("not a Cloudinary upload URL: %s", imageURL)
	}

	rest := parts[uploadIdx+1:]
	if versionSegment.MatchString(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "", fmt.Errorf("no public id in URL: %s", imageURL)
	}

	publicID := strings.Join(rest, "/")
	if idx := strings.LastIndex(publicID, "."); idx > 0 {
		publicID = publicID[:idx]
	}
	return publicID, nil
}
