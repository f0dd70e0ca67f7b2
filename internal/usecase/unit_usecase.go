package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rentersrights/internal/domain/entity"
	"rentersrights/internal/domain/repository"
	"rentersrights/internal/domain/service"
	"rentersrights/pkg/errors"
	"rentersrights/pkg/logger"
	"rentersrights/pkg/utils"
)

type UnitUseCase struct {
	unitRepo  repository.UnitRepository
	imageRepo repository.UnitImageRepository
	storage   service.ObjectStorage
	maxUnits  int
}

func NewUnitUseCase(
	unitRepo repository.UnitRepository,
	imageRepo repository.UnitImageRepository,
	storage service.ObjectStorage,
	maxUnits int,
) *UnitUseCase {
	return &UnitUseCase{
		unitRepo:  unitRepo,
		imageRepo: imageRepo,
		storage:   storage,
		maxUnits:  maxUnits,
	}
}

type CreateUnitInput struct {
	Address1 string `json:"unit_address_1" validate:"required"`
	Address2 string `json:"unit_address_2"`
	City     string `json:"unit_city"`
	State    string `json:"unit_state"`
	ZipCode  string `json:"unit_zip_code"`
}

func (u *UnitUseCase) CreateUnit(ctx context.Context, ownerID string, input CreateUnitInput) (*entity.Unit, error) {
	count, err := u.unitRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if count >= u.maxUnits {
		return nil, errors.BadRequest(fmt.Sprintf("You may register at most %d units", u.maxUnits), nil)
	}

	id := uuid.New().String()
	unit := &entity.Unit{
		ID:        id,
		OwnerID:   ownerID,
		Address1:  input.Address1,
		Address2:  input.Address2,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Slug:      utils.Slugify(input.Address1, id[:8]),
		CreatedAt: time.Now(),
	}

	if err := u.unitRepo.Create(ctx, unit); err != nil {
		return nil, err
	}

	return unit, nil
}

func (u *UnitUseCase) ListUnits(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Unit, int64, error) {
	return u.unitRepo.ListByOwner(ctx, ownerID, limit, offset)
}

func (u *UnitUseCase) GetUnit(ctx context.Context, ownerID, slug string) (*entity.Unit, error) {
	unit, err := u.unitRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	// Other owners' units are indistinguishable from missing ones.
	if unit.OwnerID != ownerID {
		return nil, errors.NotFound("Unit", nil)
	}
	return unit, nil
}

func (u *UnitUseCase) GetUnitImages(ctx context.Context, ownerID, slug string) ([]*entity.UnitImage, error) {
	unit, err := u.GetUnit(ctx, ownerID, slug)
	if err != nil {
		return nil, err
	}
	return u.imageRepo.ListByUnit(ctx, unit.ID)
}

// DeleteUnit removes the unit, its image records and their stored objects.
// Records go first and atomically; object removal is best effort since the
// records referencing them are already gone.
func (u *UnitUseCase) DeleteUnit(ctx context.Context, ownerID, slug string) error {
	unit, err := u.GetUnit(ctx, ownerID, slug)
	if err != nil {
		return err
	}

	images, err := u.imageRepo.DeleteByUnit(ctx, unit.ID)
	if err != nil {
		return err
	}

	if err := u.unitRepo.Delete(ctx, unit.ID); err != nil {
		return err
	}

	for _, img := range images {
		for _, name := range img.ObjectNames() {
			if err := u.storage.Remove(ctx, name); err != nil {
				logger.Error("Failed to remove object %s for deleted unit %s: %v", name, unit.ID, err)
			}
		}
	}

	return nil
}

func (u *UnitUseCase) DeleteImage(ctx context.Context, ownerID, imageID string) error {
	img, err := u.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if img.OwnerID != ownerID {
		return errors.NotFound("Unit image", nil)
	}

	if err := u.imageRepo.Delete(ctx, imageID); err != nil {
		return err
	}

	for _, name := range img.ObjectNames() {
		if err := u.storage.Remove(ctx, name); err != nil {
			logger.Error("Failed to remove object %s for deleted image %s: %v", name, imageID, err)
		}
	}

	return nil
}
