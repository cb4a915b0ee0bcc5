package repository

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cebip/internal/models"
	"github.com/dmitrijs2005/cebip/internal/storage/kv"
)

// ExportData returns every collection stamped with the current time.
func (r *Repository) ExportData(ctx context.Context) models.Snapshot {
	return models.Snapshot{
		Users:      r.GetUsers(ctx),
		Benefits:   r.GetBenefits(ctx),
		Promotions: r.GetPromotions(ctx),
		ExportDate: r.now(),
	}
}

// ImportData replaces the collections present in data and leaves the
// others alone. On a transactional store the replacements are applied
// atomically.
func (r *Repository) ImportData(ctx context.Context, data models.ImportData) error {
	apply := func(ctx context.Context, s kv.Store) error {
		if data.Users != nil {
			if err := kv.Write(ctx, s, r.log, KeyUsers, data.Users); err != nil {
				return err
			}
		}
		if data.Benefits != nil {
			if err := kv.Write(ctx, s, r.log, KeyBenefits, data.Benefits); err != nil {
				return err
			}
		}
		if data.Promotions != nil {
			if err := kv.Write(ctx, s, r.log, KeyPromotions, data.Promotions); err != nil {
				return err
			}
		}
		return nil
	}

	var err error
	if tx, ok := r.store.(kv.Transactional); ok {
		err = tx.InTx(ctx, apply)
	} else {
		err = apply(ctx, r.store)
	}
	if err != nil {
		return fmt.Errorf("import data: %w", err)
	}
	return nil
}

// ResetAllData removes the three collections. The session slot is not
// touched.
func (r *Repository) ResetAllData(ctx context.Context) error {
	for _, key := range []string{KeyUsers, KeyBenefits, KeyPromotions} {
		if err := kv.Clear(ctx, r.store, r.log, key); err != nil {
			return fmt.Errorf("reset data: %w", err)
		}
	}
	r.log.Warn(ctx, "all collections cleared")
	return nil
}

