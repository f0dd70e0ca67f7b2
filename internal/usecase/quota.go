package usecase

import (
	"context"

	"rentersrights/internal/domain/entity"
	"rentersrights/internal/domain/repository"
)

// QuotaEvaluator answers whether a unit can absorb more images of one
// category. Every category always has a ceiling; there is no implicit
// unlimited mode.
type QuotaEvaluator struct {
	imageRepo repository.UnitImageRepository
	ceilings  map[entity.ImageCategory]int
}

func NewQuotaEvaluator(imageRepo repository.UnitImageRepository, maxDocuments, maxMoveIn, maxMoveOut int) *QuotaEvaluator {
	return &QuotaEvaluator{
		imageRepo: imageRepo,
		ceilings: map[entity.ImageCategory]int{
			entity.CategoryDocument:       maxDocuments,
			entity.CategoryMoveInPicture:  maxMoveIn,
			entity.CategoryMoveOutPicture: maxMoveOut,
		},
	}
}

func (q *QuotaEvaluator) CeilingFor(category entity.ImageCategory) int {
	return q.ceilings[category]
}

// CanAdd reports whether requested more images fit under the category's
// ceiling given the unit's current count.
func (q *QuotaEvaluator) CanAdd(ctx context.Context, unitID string, category entity.ImageCategory, requested int) (bool, error) {
	current, err := q.imageRepo.CountByCategory(ctx, unitID, category)
	if err != nil {
		return false, err
	}
	return current+requested <= q.ceilings[category], nil
}
