package usecase

import (
	"context"
	"sync"
	"time"

	"rentersrights/internal/domain/entity"
	"rentersrights/internal/domain/repository"
	"rentersrights/pkg/errors"
)

type fakeUnitRepository struct {
	units map[string]*entity.Unit
}

func newFakeUnitRepository(units ...*entity.Unit) *fakeUnitRepository {
	r := &fakeUnitRepository{units: make(map[string]*entity.Unit)}
	for _, u := range units {
		r.units[u.ID] = u
	}
	return r
}

func (r *fakeUnitRepository) Create(ctx context.Context, unit *entity.Unit) error {
	r.units[unit.ID] = unit
	return nil
}

func (r *fakeUnitRepository) GetByID(ctx context.Context, id string) (*entity.Unit, error) {
	if u, ok := r.units[id]; ok {
		return u, nil
	}
	return nil, errors.NotFound("Unit", nil)
}

func (r *fakeUnitRepository) GetBySlug(ctx context.Context, slug string) (*entity.Unit, error) {
	for _, u := range r.units {
		if u.Slug == slug {
			return u, nil
		}
	}
	return nil, errors.NotFound("Unit", nil)
}

func (r *fakeUnitRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Unit, int64, error) {
	var units []*entity.Unit
	for _, u := range r.units {
		if u.OwnerID == ownerID {
			units = append(units, u)
		}
	}
	return units, int64(len(units)), nil
}

func (r *fakeUnitRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	count := 0
	for _, u := range r.units {
		if u.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (r *fakeUnitRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.units[id]; !ok {
		return errors.NotFound("Unit", nil)
	}
	delete(r.units, id)
	return nil
}

type fakeUnitImageRepository struct {
	mu         sync.Mutex
	images     map[string]*entity.UnitImage
	failCreate error
}

func newFakeUnitImageRepository(images ...*entity.UnitImage) *fakeUnitImageRepository {
	r := &fakeUnitImageRepository{images: make(map[string]*entity.UnitImage)}
	for _, img := range images {
		r.images[img.ID] = img
	}
	return r
}

func (r *fakeUnitImageRepository) CreateBatch(ctx context.Context, images []*entity.UnitImage, ceiling int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failCreate != nil {
		return nil, r.failCreate
	}
	if len(images) == 0 {
		return nil, nil
	}

	current := 0
	for _, img := range r.images {
		if img.UnitID == images[0].UnitID && img.Category == images[0].Category {
			current++
		}
	}
	if current+len(images) > ceiling {
		return nil, errors.QuotaExceeded(string(images[0].Category))
	}

	ids := make([]string, 0, len(images))
	for _, img := range images {
		r.images[img.ID] = img
		ids = append(ids, img.ID)
	}
	return ids, nil
}

func (r *fakeUnitImageRepository) GetByID(ctx context.Context, id string) (*entity.UnitImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if img, ok := r.images[id]; ok {
		return img, nil
	}
	return nil, errors.NotFound("Unit image", nil)
}

func (r *fakeUnitImageRepository) ListByUnit(ctx context.Context, unitID string) ([]*entity.UnitImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var images []*entity.UnitImage
	for _, img := range r.images {
		if img.UnitID == unitID {
			images = append(images, img)
		}
	}
	return images, nil
}

func (r *fakeUnitImageRepository) CountByCategory(ctx context.Context, unitID string, category entity.ImageCategory) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, img := range r.images {
		if img.UnitID == unitID && img.Category == category {
			count++
		}
	}
	return count, nil
}

func (r *fakeUnitImageRepository) CountByUnit(ctx context.Context, unitID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, img := range r.images {
		if img.UnitID == unitID {
			count++
		}
	}
	return count, nil
}

func (r *fakeUnitImageRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.images[id]; !ok {
		return errors.NotFound("Unit image", nil)
	}
	delete(r.images, id)
	return nil
}

func (r *fakeUnitImageRepository) DeleteByUnit(ctx context.Context, unitID string) ([]*entity.UnitImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted []*entity.UnitImage
	for id, img := range r.images {
		if img.UnitID == unitID {
			deleted = append(deleted, img)
			delete(r.images, id)
		}
	}
	return deleted, nil
}

var _ repository.UnitImageRepository = (*fakeUnitImageRepository)(nil)

type fakeObjectStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    int

	// When failPut is set, Put succeeds failPutAfter times and then
	// fails every call.
	failPut      error
	failPutAfter int
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: make(map[string][]byte)}
}

func (s *fakeObjectStorage) Get(ctx context.Context, objectName string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data, ok := s.objects[objectName]; ok {
		return data, nil
	}
	return nil, errors.ObjectNotFound(objectName, nil)
}

func (s *fakeObjectStorage) Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPut != nil && s.puts >= s.failPutAfter {
		return "", s.failPut
	}
	s.puts++
	s.objects[objectName] = data
	return "https://cdn.test/" + objectName, nil
}

func (s *fakeObjectStorage) Remove(ctx context.Context, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectName)
	return nil
}

func (s *fakeObjectStorage) PublicURL(objectName string) string {
	return "https://cdn.test/" + objectName
}

func (s *fakeObjectStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

type fakeSigner struct {
	signedKeys []string
}

func (s *fakeSigner) Sign(objectKey string, now time.Time) (entity.UploadAuthorization, error) {
	s.signedKeys = append(s.signedKeys, objectKey)
	return entity.UploadAuthorization{
		URL: "https://bucket.s3.amazonaws.com/",
		Fields: map[string]string{
			"key": objectKey,
		},
	}, nil
}
