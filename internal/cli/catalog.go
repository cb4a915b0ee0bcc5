package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/cebip/internal/common"
	"github.com/dmitrijs2005/cebip/internal/models"
)

const dateLayout = "2006-01-02"

var yesNo = []string{"yes", "no"}

func yesNoLabel(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (a *App) askBool(prompt string, def bool) (bool, error) {
	v, err := getChoice(a.reader, a.out, prompt, yesNo, yesNoLabel(def))
	if err != nil {
		return false, err
	}
	return v == "yes", nil
}

// parseDay reads a YYYY-MM-DD date in UTC. End dates cover the whole day.
func parseDay(s string, endOfDay bool) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	if endOfDay {
		d = d.Add(24*time.Hour - time.Second)
	}
	return d, nil
}

// parseQuantity reads an optional non-negative count; empty means unset.
func parseQuantity(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("invalid quantity %q", s)
	}
	return &n, nil
}

func (a *App) required(prompt string) (string, error) {
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", fmt.Errorf("%s is required", prompt)
	}
	return v, nil
}

// editText asks for a new value showing the current one; an empty answer or
// the same value leaves dst nil.
func (a *App) editText(label, cur string, dst **string) error {
	v, err := getSimpleText(a.reader, fmt.Sprintf("%s (current: %s, empty keeps it)", label, cur), a.out)
	if err != nil {
		return err
	}
	if v != "" && v != cur {
		*dst = &v
	}
	return nil
}

func (a *App) findBenefit(ctx context.Context, id string) (models.Benefit, error) {
	for _, b := range a.repo.GetBenefits(ctx) {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Benefit{}, common.ErrorNotFound
}

func (a *App) findPromotion(ctx context.Context, id string) (models.Promotion, error) {
	for _, p := range a.repo.GetPromotions(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Promotion{}, common.ErrorNotFound
}

// AddBenefit prompts for a new benefit. New benefits are active unless the
// administrator says otherwise.
func (a *App) AddBenefit(ctx context.Context) error {
	var nb models.NewBenefit
	var err error

	if nb.Title, err = a.required("Title"); err != nil {
		return err
	}
	if nb.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if nb.Category, err = a.required("Category"); err != nil {
		return err
	}
	if nb.Image, err = getSimpleText(a.reader, "Image URL (optional)", a.out); err != nil {
		return err
	}
	if nb.Terms, err = getSimpleText(a.reader, "Terms (optional)", a.out); err != nil {
		return err
	}
	if nb.Featured, err = a.askBool("Featured", false); err != nil {
		return err
	}
	if nb.IsActive, err = a.askBool("Active", true); err != nil {
		return err
	}

	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	b, err := a.repo.CreateBenefit(ctx, nb)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "benefit created", "benefit_id", b.ID)
	fmt.Fprintf(a.out, "Benefit %s created with id %s\n", b.Title, b.ID)
	return nil
}

// EditBenefit prompts for each field, showing the current value.
func (a *App) EditBenefit(ctx context.Context, args []string) error {
	id, err := a.askID(args, "Benefit id to edit")
	if err != nil {
		return err
	}
	cur, err := a.findBenefit(ctx, id)
	if err != nil {
		return err
	}

	var patch models.BenefitPatch
	if err := a.editText("Title", cur.Title, &patch.Title); err != nil {
		return err
	}
	if err := a.editText("Description", cur.Description, &patch.Description); err != nil {
		return err
	}
	if err := a.editText("Category", cur.Category, &patch.Category); err != nil {
		return err
	}
	if err := a.editText("Image URL", cur.Image, &patch.Image); err != nil {
		return err
	}
	if err := a.editText("Terms", cur.Terms, &patch.Terms); err != nil {
		return err
	}

	featured, err := a.askBool("Featured", cur.Featured)
	if err != nil {
		return err
	}
	if featured != cur.Featured {
		patch.Featured = &featured
	}
	active, err := a.askBool("Active", cur.IsActive)
	if err != nil {
		return err
	}
	if active != cur.IsActive {
		patch.IsActive = &active
	}

	return a.saveBenefit(ctx, id, patch, "updated")
}

// ToggleBenefit flips whether members can see a benefit.
func (a *App) ToggleBenefit(ctx context.Context, args []string) error {
	id, err := a.askID(args, "Benefit id to toggle")
	if err != nil {
		return err
	}
	cur, err := a.findBenefit(ctx, id)
	if err != nil {
		return err
	}

	active := !cur.IsActive
	state := "deactivated"
	if active {
		state = "activated"
	}
	return a.saveBenefit(ctx, id, models.BenefitPatch{IsActive: &active}, state)
}

func (a *App) saveBenefit(ctx context.Context, id string, patch models.BenefitPatch, verb string) error {
	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	updated, err := a.repo.UpdateBenefit(ctx, id, patch)
	if err != nil {
		return err
	}
	if updated == nil {
		return common.ErrorNotFound
	}
	fmt.Fprintf(a.out, "Benefit %s %s.\n", updated.Title, verb)
	return nil
}

func (a *App) DeleteBenefit(ctx context.Context, args []string) error {
	id, err := a.askID(args, "Benefit id to delete")
	if err != nil {
		return err
	}
	b, err := a.findBenefit(ctx, id)
	if err != nil {
		return err
	}

	ok, err := confirm(a.reader, a.out, fmt.Sprintf("Delete %s?", b.Title))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	removed, err := a.repo.DeleteBenefit(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return common.ErrorNotFound
	}
	a.log.Info(ctx, "benefit deleted", "benefit_id", id)
	fmt.Fprintf(a.out, "Benefit %s deleted.\n", b.Title)
	return nil
}

// AddPromotion prompts for a new promotion. Dates are YYYY-MM-DD in UTC and
// the end date includes the whole day. An empty limit means unlimited.
func (a *App) AddPromotion(ctx context.Context) error {
	var np models.NewPromotion
	var err error

	if np.Title, err = a.required("Title"); err != nil {
		return err
	}
	if np.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if np.Discount, err = a.required("Discount"); err != nil {
		return err
	}

	start, err := a.required("Start date (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	if np.StartDate, err = parseDay(start, false); err != nil {
		return err
	}
	end, err := a.required("End date (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	if np.EndDate, err = parseDay(end, true); err != nil {
		return err
	}

	if np.Image, err = getSimpleText(a.reader, "Image URL (optional)", a.out); err != nil {
		return err
	}
	if np.Terms, err = getSimpleText(a.reader, "Terms (optional)", a.out); err != nil {
		return err
	}

	limit, err := getSimpleText(a.reader, "Limited quantity (empty for unlimited)", a.out)
	if err != nil {
		return err
	}
	if np.LimitedQuantity, err = parseQuantity(limit); err != nil {
		return err
	}
	if np.LimitedQuantity != nil {
		np.UsedQuantity = new(int)
	}

	if np.IsActive, err = a.askBool("Active", true); err != nil {
		return err
	}

	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	p, err := a.repo.CreatePromotion(ctx, np)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "promotion created", "promotion_id", p.ID)
	fmt.Fprintf(a.out, "Promotion %s created with id %s\n", p.Title, p.ID)
	return nil
}

func quantityLabel(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

// EditPromotion prompts for each field, showing the current value.
func (a *App) EditPromotion(ctx context.Context, args []string) error {
	id, err := a.askID(args, "Promotion id to edit")
	if err != nil {
		return err
	}
	cur, err := a.findPromotion(ctx, id)
	if err != nil {
		return err
	}

	var patch models.PromotionPatch
	if err := a.editText("Title", cur.Title, &patch.Title); err != nil {
		return err
	}
	if err := a.editText("Description", cur.Description, &patch.Description); err != nil {
		return err
	}
	if err := a.editText("Discount", cur.Discount, &patch.Discount); err != nil {
		return err
	}

	var start, end *string
	if err := a.editText("Start date", cur.StartDate.UTC().Format(dateLayout), &start); err != nil {
		return err
	}
	if start != nil {
		d, err := parseDay(*start, false)
		if err != nil {
			return err
		}
		patch.StartDate = &d
	}
	if err := a.editText("End date", cur.EndDate.UTC().Format(dateLayout), &end); err != nil {
		return err
	}
	if end != nil {
		d, err := parseDay(*end, true)
		if err != nil {
			return err
		}
		patch.EndDate = &d
	}

	if err := a.editText("Image URL", cur.Image, &patch.Image); err != nil {
		return err
	}
	if err := a.editText("Terms", cur.Terms, &patch.Terms); err != nil {
		return err
	}

	var limit, used *string
	if err := a.editText("Limited quantity", quantityLabel(cur.LimitedQuantity), &limit); err != nil {
		return err
	}
	if limit != nil {
		if patch.LimitedQuantity, err = parseQuantity(*limit); err != nil {
			return err
		}
	}
	if err := a.editText("Used quantity", quantityLabel(cur.UsedQuantity), &used); err != nil {
		return err
	}
	if used != nil {
		if patch.UsedQuantity, err = parseQuantity(*used); err != nil {
			return err
		}
	}

	active, err := a.askBool("Active", cur.IsActive)
	if err != nil {
		return err
	}
	if active != cur.IsActive {
		patch.IsActive = &active
	}

	return a.savePromotion(ctx, id, patch, "updated")
}

// TogglePromotion flips the isActive flag of a promotion.
func (a *App) TogglePromotion(ctx context.Context, args []string) error {
	id, err := a.askID(args, "Promotion id to toggle")
	if err != nil {
		return err
	}
	cur, err := a.findPromotion(ctx, id)
	if err != nil {
		return err
	}

	active := !cur.IsActive
	state := "deactivated"
	if active {
		state = "activated"
	}
	return a.savePromotion(ctx, id, models.PromotionPatch{IsActive: &active}, state)
}

func (a *App) savePromotion(ctx context.Context, id string, patch models.PromotionPatch, verb string) error {
	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	updated, err := a.repo.UpdatePromotion(ctx, id, patch)
	if err != nil {
		return err
	}
	if updated == nil {
		return common.ErrorNotFound
	}
	fmt.Fprintf(a.out, "Promotion %s %s.\n", updated.Title, verb)
	return nil
}

func (a *App) DeletePromotion(ctx context.Context, args []string) error {
	id, err := a.askID(args, "Promotion id to delete")
	if err != nil {
		return err
	}
	p, err := a.findPromotion(ctx, id)
	if err != nil {
		return err
	}

	ok, err := confirm(a.reader, a.out, fmt.Sprintf("Delete %s?", p.Title))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	removed, err := a.repo.DeletePromotion(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return common.ErrorNotFound
	}
	a.log.Info(ctx, "promotion deleted", "promotion_id", id)
	fmt.Fprintf(a.out, "Promotion %s deleted.\n", p.Title)
	return nil
}
