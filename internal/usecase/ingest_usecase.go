package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"rentersrights/internal/domain/entity"
	"rentersrights/internal/domain/repository"
	"rentersrights/internal/domain/service"
	"rentersrights/internal/infrastructure/imaging"
	"rentersrights/pkg/errors"
	"rentersrights/pkg/logger"
)

// IngestItem is one requested image: either inline bytes from a multipart
// upload or the key of an object the client already uploaded to storage.
type IngestItem struct {
	Filename  string
	Data      []byte
	ObjectKey string
}

type IngestUseCase struct {
	unitRepo   repository.UnitRepository
	imageRepo  repository.UnitImageRepository
	storage    service.ObjectStorage
	renditions *imaging.RenditionGenerator
	quota      *QuotaEvaluator
}

func NewIngestUseCase(
	unitRepo repository.UnitRepository,
	imageRepo repository.UnitImageRepository,
	storage service.ObjectStorage,
	renditions *imaging.RenditionGenerator,
	quota *QuotaEvaluator,
) *IngestUseCase {
	return &IngestUseCase{
		unitRepo:   unitRepo,
		imageRepo:  imageRepo,
		storage:    storage,
		renditions: renditions,
		quota:      quota,
	}
}

type resolvedItem struct {
	filename string
	data     []byte
	width    int
	height   int
}

// Ingest runs the image pipeline for one unit and category: resolve each
// item to bytes, decode, gate the surviving count against the category
// quota, derive renditions, and persist all survivors atomically. Item
// failures drop that item only; quota and persistence failures abort the
// whole batch.
func (u *IngestUseCase) Ingest(ctx context.Context, ownerID, slug string, category entity.ImageCategory, items []IngestItem) ([]string, error) {
	unit, err := u.unitRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if unit.OwnerID != ownerID {
		return nil, errors.Forbidden("Unit belongs to another owner", nil)
	}

	if len(items) == 0 {
		return nil, errors.NoImages()
	}

	// Resolve and decode each item independently. A failed item is
	// dropped; the rest of the batch continues.
	var resolved []resolvedItem
	for _, item := range items {
		data := item.Data
		if data == nil {
			data, err = u.storage.Get(ctx, item.ObjectKey)
			if err != nil {
				logger.Warn("Dropping %q: %v", item.ObjectKey, err)
				continue
			}
		}

		width, height, err := imaging.Decode(data)
		if err != nil {
			logger.Warn("Dropping %q: %v", item.Filename, err)
			continue
		}

		resolved = append(resolved, resolvedItem{
			filename: item.Filename,
			data:     data,
			width:    width,
			height:   height,
		})
	}

	// One quota decision over the true candidate count. Partial
	// acceptance is not allowed once quota is known to be short.
	if len(resolved) > 0 {
		ok, err := u.quota.CanAdd(ctx, unit.ID, category, len(resolved))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.QuotaExceeded(string(category))
		}
	}

	var images []*entity.UnitImage
	var uploaded []string
	for _, item := range resolved {
		renditions, err := u.renditions.Generate(item.data)
		if err != nil {
			logger.Warn("Dropping %q: %v", item.filename, err)
			continue
		}

		img, objects, err := u.storeImage(ctx, unit, category, item, renditions)
		if err != nil {
			// The failing item's partial uploads compensate too.
			u.removeObjects(ctx, append(uploaded, objects...))
			return nil, err
		}
		uploaded = append(uploaded, objects...)
		images = append(images, img)
	}

	if len(images) == 0 {
		return nil, errors.NoValidImages()
	}

	ids, err := u.imageRepo.CreateBatch(ctx, images, u.quota.CeilingFor(category))
	if err != nil {
		// Records were rolled back as one transaction; compensate the
		// already-uploaded objects so no orphans remain.
		u.removeObjects(ctx, uploaded)
		return nil, err
	}

	return ids, nil
}

// storeImage uploads the original and every rendition, returning the built
// record and the object names written so far (for compensation).
func (u *IngestUseCase) storeImage(ctx context.Context, unit *entity.Unit, category entity.ImageCategory, item resolvedItem, renditions map[int][]byte) (*entity.UnitImage, []string, error) {
	imageID := uuid.New().String()
	contentType := http.DetectContentType(item.data)
	ext := extensionFor(contentType)

	var uploaded []string

	originalName := fmt.Sprintf("%s/%s%s", unit.OwnerID, imageID, ext)
	if _, err := u.storage.Put(ctx, originalName, item.data, contentType); err != nil {
		return nil, uploaded, err
	}
	uploaded = append(uploaded, originalName)

	renditionNames := make(map[string]string, len(renditions))
	for size, data := range renditions {
		name := fmt.Sprintf("%s/%s-%d%s", unit.OwnerID, imageID, size, ext)
		if _, err := u.storage.Put(ctx, name, data, contentType); err != nil {
			return nil, uploaded, err
		}
		uploaded = append(uploaded, name)
		renditionNames[strconv.Itoa(size)] = name
	}

	img := &entity.UnitImage{
		ID:            imageID,
		UnitID:        unit.ID,
		OwnerID:       unit.OwnerID,
		Category:      category,
		ObjectName:    originalName,
		ThumbnailName: renditionNames[strconv.Itoa(u.renditions.ThumbnailSize())],
		Renditions:    renditionNames,
		ContentType:   contentType,
		Width:         item.width,
		Height:        item.height,
		CreatedAt:     time.Now(),
	}

	return img, uploaded, nil
}

func (u *IngestUseCase) removeObjects(ctx context.Context, objectNames []string) {
	for _, name := range objectNames {
		if err := u.storage.Remove(ctx, name); err != nil {
			logger.Error("Failed to remove object %s during rollback: %v", name, err)
		}
	}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
