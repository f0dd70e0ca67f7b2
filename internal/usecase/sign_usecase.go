package usecase

import (
	"context"
	"fmt"
	"time"

	"rentersrights/internal/domain/entity"
	"rentersrights/internal/domain/repository"
	"rentersrights/pkg/errors"
)

// UploadSigner issues one signed upload authorization for an exact object
// key.
type UploadSigner interface {
	Sign(objectKey string, now time.Time) (entity.UploadAuthorization, error)
}

type SignUseCase struct {
	unitRepo         repository.UnitRepository
	imageRepo        repository.UnitImageRepository
	signer           UploadSigner
	maxImagesPerUnit int
	maxUploadBatch   int
}

func NewSignUseCase(
	unitRepo repository.UnitRepository,
	imageRepo repository.UnitImageRepository,
	signer UploadSigner,
	maxImagesPerUnit, maxUploadBatch int,
) *SignUseCase {
	return &SignUseCase{
		unitRepo:         unitRepo,
		imageRepo:        imageRepo,
		signer:           signer,
		maxImagesPerUnit: maxImagesPerUnit,
		maxUploadBatch:   maxUploadBatch,
	}
}

// SignFiles authorizes direct-to-storage uploads for each filename, keyed
// under the owner's namespace. The whole batch is rejected when it could
// never be admitted: more files than the per-request batch ceiling, or
// more than the unit's total-image ceiling leaves room for.
func (u *SignUseCase) SignFiles(ctx context.Context, ownerID, slug string, files []string, now time.Time) (map[string]entity.UploadAuthorization, error) {
	unit, err := u.unitRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if unit.OwnerID != ownerID {
		return nil, errors.Forbidden("Unit belongs to another owner", nil)
	}

	if len(files) == 0 {
		return nil, errors.BadRequest("No files provided", nil)
	}

	if len(files) > u.maxUploadBatch {
		return nil, errors.BatchTooLarge(fmt.Sprintf("At most %d files may be signed per request", u.maxUploadBatch))
	}

	total, err := u.imageRepo.CountByUnit(ctx, unit.ID)
	if err != nil {
		return nil, err
	}
	if total+len(files) > u.maxImagesPerUnit {
		return nil, errors.BatchTooLarge(fmt.Sprintf("This unit already has %d of %d allowed images", total, u.maxImagesPerUnit))
	}

	authorizations := make(map[string]entity.UploadAuthorization, len(files))
	for _, filename := range files {
		auth, err := u.signer.Sign(fmt.Sprintf("%s/%s", ownerID, filename), now)
		if err != nil {
			return nil, errors.Internal("Failed to sign upload policy", err)
		}
		authorizations[filename] = auth
	}

	return authorizations, nil
}
