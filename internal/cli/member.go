package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cebip/internal/stats"
)

// Active prints the member dashboard: up to three running promotions and
// up to six active benefits.
func (a *App) Active(ctx context.Context) error {
	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	now := a.now()
	promotions := stats.ActivePromotions(a.repo.GetPromotions(ctx), now)
	benefits := stats.ActiveBenefits(a.repo.GetBenefits(ctx))

	fmt.Fprintf(a.out, "Active promotions (%d):\n", len(promotions))
	if len(promotions) == 0 {
		fmt.Fprintln(a.out, "  none right now")
	}
	for _, p := range promotions[:min(3, len(promotions))] {
		fmt.Fprintf(a.out, "  %s  %s  valid until %s  (%s)\n",
			p.Discount, p.Title, stats.FormatShortDate(p.EndDate), stats.DaysRemainingLabel(p.EndDate, now))
	}

	fmt.Fprintf(a.out, "\nYour benefits (%d):\n", len(benefits))
	for _, b := range benefits[:min(6, len(benefits))] {
		mark := " "
		if b.Featured {
			mark = "*"
		}
		fmt.Fprintf(a.out, " %s %s [%s]\n", mark, b.Title, b.Category)
	}
	return nil
}
