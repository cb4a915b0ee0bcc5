package repository

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cebip/internal/models"
)

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	for i := range items {
		if idOf(items[i]) == id {
			return i
		}
	}
	return -1
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if idOf(it) != id {
			kept = append(kept, it)
		}
	}
	return kept, len(kept) != len(items)
}

func benefitID(b models.Benefit) string     { return b.ID }
func promotionID(p models.Promotion) string { return p.ID }

// CreateBenefit appends a benefit with a fresh id. createdAt and updatedAt
// are both set to now.
func (r *Repository) CreateBenefit(ctx context.Context, nb models.NewBenefit) (models.Benefit, error) {
	now := r.now()
	b := models.Benefit{
		ID:          r.newID(),
		Title:       nb.Title,
		Description: nb.Description,
		Image:       nb.Image,
		Category:    nb.Category,
		IsActive:    nb.IsActive,
		Featured:    nb.Featured,
		Terms:       nb.Terms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.SaveBenefits(ctx, append(r.GetBenefits(ctx), b)); err != nil {
		return models.Benefit{}, fmt.Errorf("create benefit: %w", err)
	}
	return b, nil
}

// UpdateBenefit merges patch into the benefit with the given id and stamps
// updatedAt. It returns nil if no such benefit exists.
func (r *Repository) UpdateBenefit(ctx context.Context, id string, patch models.BenefitPatch) (*models.Benefit, error) {
	benefits := r.GetBenefits(ctx)
	idx := indexByID(benefits, id, benefitID)
	if idx < 0 {
		return nil, nil
	}

	updated := patch.Apply(benefits[idx])
	updated.UpdatedAt = r.now()
	benefits[idx] = updated

	if err := r.SaveBenefits(ctx, benefits); err != nil {
		return nil, fmt.Errorf("update benefit %s: %w", id, err)
	}
	return &updated, nil
}

func (r *Repository) DeleteBenefit(ctx context.Context, id string) (bool, error) {
	kept, removed := removeByID(r.GetBenefits(ctx), id, benefitID)
	if !removed {
		return false, nil
	}
	if err := r.SaveBenefits(ctx, kept); err != nil {
		return false, fmt.Errorf("delete benefit %s: %w", id, err)
	}
	return true, nil
}

// CreatePromotion appends a promotion with a fresh id. createdAt and
// updatedAt are both set to now.
func (r *Repository) CreatePromotion(ctx context.Context, np models.NewPromotion) (models.Promotion, error) {
	now := r.now()
	p := models.Promotion{
		ID:              r.newID(),
		Title:           np.Title,
		Description:     np.Description,
		Image:           np.Image,
		Discount:        np.Discount,
		StartDate:       np.StartDate,
		EndDate:         np.EndDate,
		IsActive:        np.IsActive,
		Terms:           np.Terms,
		LimitedQuantity: np.LimitedQuantity,
		UsedQuantity:    np.UsedQuantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := r.SavePromotions(ctx, append(r.GetPromotions(ctx), p)); err != nil {
		return models.Promotion{}, fmt.Errorf("create promotion: %w", err)
	}
	return p, nil
}

// UpdatePromotion merges patch into the promotion with the given id and
// stamps updatedAt. It returns nil if no such promotion exists.
func (r *Repository) UpdatePromotion(ctx context.Context, id string, patch models.PromotionPatch) (*models.Promotion, error) {
	promotions := r.GetPromotions(ctx)
	idx := indexByID(promotions, id, promotionID)
	if idx < 0 {
		return nil, nil
	}

	updated := patch.Apply(promotions[idx])
	updated.UpdatedAt = r.now()
	promotions[idx] = updated

	if err := r.SavePromotions(ctx, promotions); err != nil {
		return nil, fmt.Errorf("update promotion %s: %w", id, err)
	}
	return &updated, nil
}

func (r *Repository) DeletePromotion(ctx context.Context, id string) (bool, error) {
	kept, removed := removeByID(r.GetPromotions(ctx), id, promotionID)
	if !removed {
		return false, nil
	}
	if err := r.SavePromotions(ctx, kept); err != nil {
		return false, fmt.Errorf("delete promotion %s: %w", id, err)
	}
	return true, nil
}
