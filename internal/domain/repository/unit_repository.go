package repository

import (
	"context"

	"rentersrights/internal/domain/entity"
)

type UnitRepository interface {
	Create(ctx context.Context, unit *entity.Unit) error
	GetByID(ctx context.Context, id string) (*entity.Unit, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Unit, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Unit, int64, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	Delete(ctx context.Context, id string) error
}
