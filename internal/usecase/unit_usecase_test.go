package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentersrights/internal/domain/entity"
	"rentersrights/pkg/errors"
)

func TestCreateUnitDerivesSlug(t *testing.T) {
	unitRepo := newFakeUnitRepository()
	uc := NewUnitUseCase(unitRepo, newFakeUnitImageRepository(), newFakeObjectStorage(), 10)

	unit, err := uc.CreateUnit(context.Background(), "eleanor@shellstrop.com", CreateUnitInput{
		Address1: "123 Main St.",
		State:    "KY",
		ZipCode:  "40906",
	})

	require.NoError(t, err)
	assert.Regexp(t, `^123-main-st-[0-9a-f]{8}$`, unit.Slug)
	assert.Equal(t, "eleanor@shellstrop.com", unit.OwnerID)
}

func TestCreateUnitEnforcesOwnerCap(t *testing.T) {
	unitRepo := newFakeUnitRepository(testUnit())
	uc := NewUnitUseCase(unitRepo, newFakeUnitImageRepository(), newFakeObjectStorage(), 1)

	_, err := uc.CreateUnit(context.Background(), "eleanor@shellstrop.com", CreateUnitInput{Address1: "second"})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Len(t, unitRepo.units, 1)
}

func TestGetUnitHidesForeignUnits(t *testing.T) {
	unit := testUnit()
	uc := NewUnitUseCase(newFakeUnitRepository(unit), newFakeUnitImageRepository(), newFakeObjectStorage(), 10)

	_, err := uc.GetUnit(context.Background(), "tahani@al-jamil.com", unit.Slug)

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteUnitCascadesToImagesAndObjects(t *testing.T) {
	unit := testUnit()
	storage := newFakeObjectStorage()

	var images []*entity.UnitImage
	for _, id := range []string{"img-1", "img-2", "img-3"} {
		original := unit.OwnerID + "/" + id + ".png"
		thumb := unit.OwnerID + "/" + id + "-5.png"
		storage.objects[original] = []byte("original")
		storage.objects[thumb] = []byte("thumb")
		images = append(images, &entity.UnitImage{
			ID:            id,
			UnitID:        unit.ID,
			OwnerID:       unit.OwnerID,
			Category:      entity.CategoryMoveInPicture,
			ObjectName:    original,
			ThumbnailName: thumb,
			Renditions:    map[string]string{"5": thumb},
		})
	}

	unitRepo := newFakeUnitRepository(unit)
	imageRepo := newFakeUnitImageRepository(images...)
	uc := NewUnitUseCase(unitRepo, imageRepo, storage, 10)

	require.NoError(t, uc.DeleteUnit(context.Background(), unit.OwnerID, unit.Slug))

	assert.Empty(t, unitRepo.units)
	assert.Zero(t, storage.count())
	for _, id := range []string{"img-1", "img-2", "img-3"} {
		_, err := imageRepo.GetByID(context.Background(), id)
		assert.True(t, errors.Is(err, "NOT_FOUND"))
	}
}

func TestDeleteImageRemovesRecordAndObjects(t *testing.T) {
	unit := testUnit()
	storage := newFakeObjectStorage()
	storage.objects["eleanor@shellstrop.com/img-1.png"] = []byte("original")

	img := &entity.UnitImage{
		ID:         "img-1",
		UnitID:     unit.ID,
		OwnerID:    unit.OwnerID,
		Category:   entity.CategoryDocument,
		ObjectName: "eleanor@shellstrop.com/img-1.png",
	}
	imageRepo := newFakeUnitImageRepository(img)
	uc := NewUnitUseCase(newFakeUnitRepository(unit), imageRepo, storage, 10)

	require.NoError(t, uc.DeleteImage(context.Background(), unit.OwnerID, "img-1"))
	assert.Zero(t, storage.count())

	err := uc.DeleteImage(context.Background(), "tahani@al-jamil.com", "img-1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
