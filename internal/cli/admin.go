package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cebip/internal/models"
	"github.com/dmitrijs2005/cebip/internal/stats"
)

// Stats prints the administrator dashboard.
func (a *App) Stats(ctx context.Context) error {
	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	users := a.repo.GetUsers(ctx)
	benefits := a.repo.GetBenefits(ctx)
	promotions := a.repo.GetPromotions(ctx)
	now := a.now()

	s := stats.MembershipStats(users, benefits, promotions, now)
	fmt.Fprintf(a.out, "Members:    %d (%d active, %d%%)\n", s.TotalMembers, s.ActiveMembers, s.ActiveMemberPercent())
	fmt.Fprintf(a.out, "Benefits:   %d\n", s.TotalBenefits)
	fmt.Fprintf(a.out, "Promotions: %d (%d running now)\n", s.TotalPromotions, s.ActivePromotions)

	fmt.Fprintln(a.out, "\nRecent members:")
	for _, u := range stats.RecentMembers(users, 5) {
		fmt.Fprintf(a.out, "  [%s] %s <%s> %s, joined %s\n",
			stats.Initials(u.Name), u.Name, u.Email, u.Status, stats.FormatDate(u.CreatedAt))
	}

	fmt.Fprintln(a.out, "\nRecently updated benefits:")
	for _, b := range stats.RecentBenefits(benefits, 3) {
		fmt.Fprintf(a.out, "  %s (%s), %s\n", b.Title, b.Category, stats.FormatDate(b.UpdatedAt))
	}

	fmt.Fprintln(a.out, "\nRecently updated promotions:")
	for _, p := range stats.RecentPromotions(promotions, 3) {
		fmt.Fprintf(a.out, "  %s %s, %s\n", p.Title, p.Discount, stats.DaysRemainingLabel(p.EndDate, now))
	}
	return nil
}

// parseMemberFilter reads "status=..." and "type=..." tokens; everything
// else forms the search text.
func parseMemberFilter(args []string) stats.MemberFilter {
	var f stats.MemberFilter
	var search []string
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "status="):
			f.Status = models.Status(strings.TrimPrefix(arg, "status="))
		case strings.HasPrefix(arg, "type="):
			f.MembershipType = models.MembershipType(strings.TrimPrefix(arg, "type="))
		default:
			search = append(search, arg)
		}
	}
	f.Search = strings.Join(search, " ")
	return f
}

// Members lists members matching the optional search and filters.
func (a *App) Members(ctx context.Context, args []string) error {
	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	printMembers(a.out, stats.FilterMembers(a.repo.GetUsers(ctx), parseMemberFilter(args)))
	return nil
}

func (a *App) Benefits(ctx context.Context, args []string) error {
	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	printBenefits(a.out, stats.SearchBenefits(a.repo.GetBenefits(ctx), strings.Join(args, " ")))
	return nil
}

func (a *App) Promotions(ctx context.Context, args []string) error {
	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	printPromotions(a.out, stats.SearchPromotions(a.repo.GetPromotions(ctx), strings.Join(args, " ")), a.now())
	return nil
}
