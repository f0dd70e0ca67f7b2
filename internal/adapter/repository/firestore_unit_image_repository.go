package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rentersrights/internal/domain/entity"
	"rentersrights/internal/domain/repository"
	"rentersrights/pkg/errors"
	"rentersrights/pkg/logger"
)

const unitImageCollection = "unit_images"

type firestoreUnitImageRepository struct {
	client *firestore.Client
}

func NewFirestoreUnitImageRepository(client *firestore.Client) repository.UnitImageRepository {
	return &firestoreUnitImageRepository{
		client: client,
	}
}

// CreateBatch writes every record inside one transaction. The stored
// count for the batch's unit and category is re-read in the transaction,
// so a concurrent batch that commits first bumps the count this one is
// checked against.
func (r *firestoreUnitImageRepository) CreateBatch(ctx context.Context, images []*entity.UnitImage, ceiling int) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}

	unitID := images[0].UnitID
	category := images[0].Category
	for _, img := range images {
		if img.UnitID != unitID || img.Category != category {
			return nil, errors.Internal("Image batch spans multiple units or categories", nil)
		}
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := r.client.Collection(unitImageCollection).
			Where("unitId", "==", unitID).
			Where("category", "==", string(category))

		docs, err := tx.Documents(query).GetAll()
		if err != nil {
			return errors.Internal("Failed to count unit images", err)
		}

		if len(docs)+len(images) > ceiling {
			return errors.QuotaExceeded(string(category))
		}

		for _, img := range images {
			ref := r.client.Collection(unitImageCollection).Doc(img.ID)
			if err := tx.Create(ref, img); err != nil {
				return errors.Internal("Failed to create unit image", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(images))
	for _, img := range images {
		ids = append(ids, img.ID)
	}
	return ids, nil
}

func (r *firestoreUnitImageRepository) GetByID(ctx context.Context, id string) (*entity.UnitImage, error) {
	doc, err := r.client.Collection(unitImageCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Unit image", err)
		}
		return nil, errors.Internal("Failed to get unit image", err)
	}

	var img entity.UnitImage
	if err := doc.DataTo(&img); err != nil {
		return nil, errors.Internal("Failed to parse unit image", err)
	}

	return &img, nil
}

func (r *firestoreUnitImageRepository) ListByUnit(ctx context.Context, unitID string) ([]*entity.UnitImage, error) {
	query := r.client.Collection(unitImageCollection).
		Where("unitId", "==", unitID).
		OrderBy("createdAt", firestore.Asc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var images []*entity.UnitImage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate unit images", err)
		}

		var img entity.UnitImage
		if err := doc.DataTo(&img); err != nil {
			logger.Error("Failed to parse unit image: %v", err)
			continue
		}
		images = append(images, &img)
	}

	return images, nil
}

func (r *firestoreUnitImageRepository) CountByCategory(ctx context.Context, unitID string, category entity.ImageCategory) (int, error) {
	docs, err := r.client.Collection(unitImageCollection).
		Where("unitId", "==", unitID).
		Where("category", "==", string(category)).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count unit images", err)
	}
	return len(docs), nil
}

func (r *firestoreUnitImageRepository) CountByUnit(ctx context.Context, unitID string) (int, error) {
	docs, err := r.client.Collection(unitImageCollection).
		Where("unitId", "==", unitID).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count unit images", err)
	}
	return len(docs), nil
}

func (r *firestoreUnitImageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(unitImageCollection).Doc(id).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Unit image", err)
		}
		return errors.Internal("Failed to delete unit image", err)
	}
	return nil
}

func (r *firestoreUnitImageRepository) DeleteByUnit(ctx context.Context, unitID string) ([]*entity.UnitImage, error) {
	var deleted []*entity.UnitImage

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		deleted = deleted[:0]

		query := r.client.Collection(unitImageCollection).Where("unitId", "==", unitID)
		docs, err := tx.Documents(query).GetAll()
		if err != nil {
			return errors.Internal("Failed to list unit images", err)
		}

		for _, doc := range docs {
			var img entity.UnitImage
			if err := doc.DataTo(&img); err != nil {
				return errors.Internal("Failed to parse unit image", err)
			}
			if err := tx.Delete(doc.Ref); err != nil {
				return errors.Internal("Failed to delete unit image", err)
			}
			deleted = append(deleted, &img)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
