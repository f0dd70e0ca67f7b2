package handler

import (
	"context"
	"time"

	"rentersrights/internal/domain/entity"
	"rentersrights/internal/domain/repository"
	"rentersrights/internal/domain/service"
	"rentersrights/pkg/errors"
)

type stubUnitRepository struct {
	units map[string]*entity.Unit
}

func newStubUnitRepository(units ...*entity.Unit) *stubUnitRepository {
	r := &stubUnitRepository{units: make(map[string]*entity.Unit)}
	for _, u := range units {
		r.units[u.ID] = u
	}
	return r
}

func (r *stubUnitRepository) Create(ctx context.Context, unit *entity.Unit) error {
	r.units[unit.ID] = unit
	return nil
}

func (r *stubUnitRepository) GetByID(ctx context.Context, id string) (*entity.Unit, error) {
	if u, ok := r.units[id]; ok {
		return u, nil
	}
	return nil, errors.NotFound("Unit", nil)
}

func (r *stubUnitRepository) GetBySlug(ctx context.Context, slug string) (*entity.Unit, error) {
	for _, u := range r.units {
		if u.Slug == slug {
			return u, nil
		}
	}
	return nil, errors.NotFound("Unit", nil)
}

func (r *stubUnitRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Unit, int64, error) {
	var units []*entity.Unit
	for _, u := range r.units {
		if u.OwnerID == ownerID {
			units = append(units, u)
		}
	}
	return units, int64(len(units)), nil
}

func (r *stubUnitRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	count := 0
	for _, u := range r.units {
		if u.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (r *stubUnitRepository) Delete(ctx context.Context, id string) error {
	delete(r.units, id)
	return nil
}

var _ repository.UnitRepository = (*stubUnitRepository)(nil)

type stubUnitImageRepository struct {
	images map[string]*entity.UnitImage
}

func newStubUnitImageRepository() *stubUnitImageRepository {
	return &stubUnitImageRepository{images: make(map[string]*entity.UnitImage)}
}

func (r *stubUnitImageRepository) CreateBatch(ctx context.Context, images []*entity.UnitImage, ceiling int) ([]string, error) {
	ids := make([]string, 0, len(images))
	for _, img := range images {
		r.images[img.ID] = img
		ids = append(ids, img.ID)
	}
	return ids, nil
}

func (r *stubUnitImageRepository) GetByID(ctx context.Context, id string) (*entity.UnitImage, error) {
	if img, ok := r.images[id]; ok {
		return img, nil
	}
	return nil, errors.NotFound("Unit image", nil)
}

func (r *stubUnitImageRepository) ListByUnit(ctx context.Context, unitID string) ([]*entity.UnitImage, error) {
	var images []*entity.UnitImage
	for _, img := range r.images {
		if img.UnitID == unitID {
			images = append(images, img)
		}
	}
	return images, nil
}

func (r *stubUnitImageRepository) CountByCategory(ctx context.Context, unitID string, category entity.ImageCategory) (int, error) {
	count := 0
	for _, img := range r.images {
		if img.UnitID == unitID && img.Category == category {
			count++
		}
	}
	return count, nil
}

func (r *stubUnitImageRepository) CountByUnit(ctx context.Context, unitID string) (int, error) {
	count := 0
	for _, img := range r.images {
		if img.UnitID == unitID {
			count++
		}
	}
	return count, nil
}

func (r *stubUnitImageRepository) Delete(ctx context.Context, id string) error {
	delete(r.images, id)
	return nil
}

func (r *stubUnitImageRepository) DeleteByUnit(ctx context.Context, unitID string) ([]*entity.UnitImage, error) {
	var deleted []*entity.UnitImage
	for id, img := range r.images {
		if img.UnitID == unitID {
			deleted = append(deleted, img)
			delete(r.images, id)
		}
	}
	return deleted, nil
}

var _ repository.UnitImageRepository = (*stubUnitImageRepository)(nil)

type stubObjectStorage struct {
	objects map[string][]byte
}

func newStubObjectStorage() *stubObjectStorage {
	return &stubObjectStorage{objects: make(map[string][]byte)}
}

func (s *stubObjectStorage) Get(ctx context.Context, objectName string) ([]byte, error) {
	if data, ok := s.objects[objectName]; ok {
		return data, nil
	}
	return nil, errors.ObjectNotFound(objectName, nil)
}

func (s *stubObjectStorage) Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	s.objects[objectName] = data
	return "https://cdn.test/" + objectName, nil
}

func (s *stubObjectStorage) Remove(ctx context.Context, objectName string) error {
	delete(s.objects, objectName)
	return nil
}

func (s *stubObjectStorage) PublicURL(objectName string) string {
	return "https://cdn.test/" + objectName
}

var _ service.ObjectStorage = (*stubObjectStorage)(nil)

type stubSigner struct {
	signedKeys []string
}

func (s *stubSigner) Sign(objectKey string, now time.Time) (entity.UploadAuthorization, error) {
	s.signedKeys = append(s.signedKeys, objectKey)
	return entity.UploadAuthorization{
		URL: "https://bucket.s3.amazonaws.com/",
		Fields: map[string]string{
			"key":    objectKey,
			"acl":    "private",
			"policy": "cG9saWN5",
		},
	}, nil
}
