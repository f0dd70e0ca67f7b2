package repository

import (
	"context"

	"rentersrights/internal/domain/entity"
)

type UnitImageRepository interface {
	// CreateBatch persists every image or none of them. All images must
	// share one unit and category; ceiling is that category's per-unit
	// maximum, re-verified against the stored count inside the same
	// transaction so two concurrent batches cannot jointly overshoot it.
	CreateBatch(ctx context.Context, images []*entity.UnitImage, ceiling int) ([]string, error)

	GetByID(ctx context.Context, id string) (*entity.UnitImage, error)
	ListByUnit(ctx context.Context, unitID string) ([]*entity.UnitImage, error)
	CountByCategory(ctx context.Context, unitID string, category entity.ImageCategory) (int, error)
	CountByUnit(ctx context.Context, unitID string) (int, error)
	Delete(ctx context.Context, id string) error

	// DeleteByUnit removes every image record of the unit and returns the
	// deleted entities so the caller can remove their stored objects.
	DeleteByUnit(ctx context.Context, unitID string) ([]*entity.UnitImage, error)
}
