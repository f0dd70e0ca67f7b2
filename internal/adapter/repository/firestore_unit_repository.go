package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rentersrights/internal/domain/entity"
	"rentersrights/internal/domain/repository"
	"rentersrights/pkg/errors"
	"rentersrights/pkg/logger"
)

const unitCollection = "units"

type firestoreUnitRepository struct {
	client *firestore.Client
}

func NewFirestoreUnitRepository(client *firestore.Client) repository.UnitRepository {
	return &firestoreUnitRepository{
		client: client,
	}
}

func (r *firestoreUnitRepository) Create(ctx context.Context, unit *entity.Unit) error {
	unit.UpdatedAt = time.Now()
	_, err := r.client.Collection(unitCollection).Doc(unit.ID).Set(ctx, unit)
	if err != nil {
		return errors.Internal("Failed to create unit", err)
	}
	return nil
}

func (r *firestoreUnitRepository) GetByID(ctx context.Context, id string) (*entity.Unit, error) {
	doc, err := r.client.Collection(unitCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Unit", err)
		}
		return nil, errors.Internal("Failed to get unit", err)
	}

	var unit entity.Unit
	if err := doc.DataTo(&unit); err != nil {
		return nil, errors.Internal("Failed to parse unit", err)
	}

	return &unit, nil
}

func (r *firestoreUnitRepository) GetBySlug(ctx context.Context, slug string) (*entity.Unit, error) {
	iter := r.client.Collection(unitCollection).Where("slug", "==", slug).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Unit", nil)
		}
		return nil, errors.Internal("Failed to query unit", err)
	}

	var unit entity.Unit
	if err := doc.DataTo(&unit); err != nil {
		return nil, errors.Internal("Failed to parse unit", err)
	}

	return &unit, nil
}

func (r *firestoreUnitRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Unit, int64, error) {
	countDocs, err := r.client.Collection(unitCollection).Where("ownerId", "==", ownerID).Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count units", err)
	}
	total := int64(len(countDocs))

	query := r.client.Collection(unitCollection).
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var units []*entity.Unit
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate units", err)
		}

		var unit entity.Unit
		if err := doc.DataTo(&unit); err != nil {
			logger.Error("Failed to parse unit: %v", err)
			continue
		}
		units = append(units, &unit)
	}

	return units, total, nil
}

func (r *firestoreUnitRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	docs, err := r.client.Collection(unitCollection).Where("ownerId", "==", ownerID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count units", err)
	}
	return len(docs), nil
}

func (r *firestoreUnitRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(unitCollection).Doc(id).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Unit", err)
		}
		return errors.Internal("Failed to delete unit", err)
	}
	return nil
}
