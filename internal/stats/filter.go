package stats

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/cebip/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MemberFilter narrows the member list. Empty fields match everything.
type MemberFilter struct {
	Search         string
	Status         models.Status
	MembershipType models.MembershipType
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// FilterMembers keeps members (never admins) matching f. Search is a
// case-insensitive substring match on name or email.
func FilterMembers(users []models.User, f MemberFilter) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if !u.IsMember() {
			continue
		}
		if f.Search != "" && !containsFold(u.Name, f.Search) && !containsFold(u.Email, f.Search) {
			continue
		}
		if f.Status != "" && u.Status != f.Status {
			continue
		}
		if f.MembershipType != "" && u.MembershipType != f.MembershipType {
			continue
		}
		out = append(out, u)
	}
	return out
}

// SearchBenefits matches query against title, category and description.
func SearchBenefits(benefits []models.Benefit, query string) []models.Benefit {
	out := make([]models.Benefit, 0, len(benefits))
	for _, b := range benefits {
		if query == "" || containsFold(b.Title, query) || containsFold(b.Category, query) || containsFold(b.Description, query) {
			out = append(out, b)
		}
	}
	return out
}

// SearchPromotions matches query against title, description and discount.
func SearchPromotions(promotions []models.Promotion, query string) []models.Promotion {
	out := make([]models.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if query == "" || containsFold(p.Title, query) || containsFold(p.Description, query) || containsFold(p.Discount, query) {
			out = append(out, p)
		}
	}
	return out
}

// Initials returns the upper-cased first letters of the first two words
// of name.
func Initials(name string) string {
	var b strings.Builder
	for i, w := range strings.Fields(name) {
		if i == 2 {
			break
		}
		_, size := utf8.DecodeRuneInString(w)
		b.WriteString(w[:size])
	}
	// Casers carry state; build one per call.
	return cases.Upper(language.Spanish).String(b.String())
}
