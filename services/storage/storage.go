// Package storage wraps the image CDN behind a narrow interface. Venue and
// room image uploads are plumbing around the booking engine, never part of
// its correctness.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService uploads and removes images for venue and room listings.
type StorageService interface {
	UploadImage(ctx context.Context, file io.Reader, folder, name string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

type cloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &cloudinaryStorage{cld: cld, cloudName: cloudName}
}

// UploadImage uploads the file and returns its public HTTPS URL.
func (s *cloudinaryStorage) UploadImage(ctx context.Context, file io.Reader, folder, name string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: name,
	})
	if err != nil {
		return "", fmt.Errorf("storage: upload %s/%s failed: %w", folder, name, err)
	}
	return resp.SecureURL, nil
}

// DeleteImage removes an uploaded image by its public ID.
func (s *cloudinaryStorage) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: destroy %s failed: %w", publicID, err)
	}
	return nil
}
