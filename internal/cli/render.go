package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/cebip/internal/models"
	"github.com/dmitrijs2005/cebip/internal/stats"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func membershipLabel(t models.MembershipType) string {
	if t == "" {
		return string(models.MembershipBasic)
	}
	return string(t)
}

func printMembers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No members found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tSTATUS\tMEMBERSHIP\tJOINED")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Name, u.Email, u.Status, membershipLabel(u.MembershipType), stats.FormatShortDate(u.CreatedAt))
	}
	_ = tw.Flush()
}

func printBenefits(w io.Writer, benefits []models.Benefit) {
	if len(benefits) == 0 {
		fmt.Fprintln(w, "No benefits found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tACTIVE\tFEATURED\tUPDATED")
	for _, b := range benefits {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%t\t%s\n",
			b.ID, b.Title, b.Category, b.IsActive, b.Featured, stats.FormatShortDate(b.UpdatedAt))
	}
	_ = tw.Flush()
}

func printPromotions(w io.Writer, promotions []models.Promotion, now time.Time) {
	if len(promotions) == 0 {
		fmt.Fprintln(w, "No promotions found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tDISCOUNT\tWINDOW\tREMAINING\tUSES LEFT")
	for _, p := range promotions {
		left := "-"
		if n, limited := p.Remaining(); limited {
			left = fmt.Sprintf("%d/%d", n, *p.LimitedQuantity)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s - %s\t%s\t%s\n",
			p.ID, p.Title, p.Discount,
			stats.FormatShortDate(p.StartDate), stats.FormatShortDate(p.EndDate),
			stats.DaysRemainingLabel(p.EndDate, now), left)
	}
	_ = tw.Flush()
}
