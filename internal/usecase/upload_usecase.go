package usecase

import (
	"context"

	"folio/internal/domain/entity"
)

// UploadInput is one uploaded file.
type UploadInput struct {
	Kind        entity.AssetKind
	Filename    string
	ContentType string
	Data        []byte
}

// UploadOutput describes the stored asset.
type UploadOutput struct {
	Kind        entity.AssetKind `json:"kind"`
	URL         string           `json:"url"`
	ContentType string           `json:"contentType"`
	Size        int              `json:"size"`
	Profile     *entity.Profile  `json:"profile"`
}

// UploadUsecase stores profile assets and keeps the profile slots in sync.
type UploadUsecase interface {
	// MaxBytes is the size limit for the kind's asset class.
	MaxBytes(kind entity.AssetKind) int64

	Upload(ctx context.Context, input *UploadInput) (*UploadOutput, error)

	// Remove clears the slot and deletes the stored file.
	Remove(ctx context.Context, kind entity.AssetKind) (*entity.Profile, error)
}
