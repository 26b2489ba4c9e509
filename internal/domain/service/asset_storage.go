package service

import "context"

// AssetStorage persists uploaded files and maps them to public URLs.
type AssetStorage interface {
	// Save writes data under key and returns its public URL.
	Save(ctx context.Context, key, contentType string, data []byte) (string, error)

	// Delete removes the object behind a URL returned by Save.
	// URLs that do not belong to this storage are ignored.
	Delete(ctx context.Context, url string) error
}

// ImageProcessor normalizes profile images.
type ImageProcessor interface {
	// Process center-crops and resizes the image, returning JPEG bytes.
	Process(data []byte) ([]byte, error)
}
