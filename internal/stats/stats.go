// Package stats derives dashboard figures from the stored collections.
// Every function is pure: inputs are never modified and "now" is always
// passed in.
package stats

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/cebip/internal/models"
)

type AdminStats struct {
	TotalMembers     int `json:"totalMembers"`
	ActiveMembers    int `json:"activeMembers"`
	TotalBenefits    int `json:"totalBenefits"`
	TotalPromotions  int `json:"totalPromotions"`
	ActivePromotions int `json:"activePromotions"`
}

// ActiveMemberPercent is the share of members that are active, rounded to
// the nearest integer. It is 0 when there are no members.
func (s AdminStats) ActiveMemberPercent() int {
	if s.TotalMembers == 0 {
		return 0
	}
	return (s.ActiveMembers*100 + s.TotalMembers/2) / s.TotalMembers
}

// ActivePromotions keeps promotions that are flagged active and whose
// window contains now. Both ends of the window are inclusive.
func ActivePromotions(promotions []models.Promotion, now time.Time) []models.Promotion {
	out := make([]models.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if p.IsActive && p.InWindow(now) {
			out = append(out, p)
		}
	}
	return out
}

// ActiveBenefits keeps the benefits members are allowed to see.
func ActiveBenefits(benefits []models.Benefit) []models.Benefit {
	out := make([]models.Benefit, 0, len(benefits))
	for _, b := range benefits {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out
}

func MembershipStats(users []models.User, benefits []models.Benefit, promotions []models.Promotion, now time.Time) AdminStats {
	var s AdminStats
	for _, u := range users {
		if !u.IsMember() {
			continue
		}
		s.TotalMembers++
		if u.IsActive() {
			s.ActiveMembers++
		}
	}
	s.TotalBenefits = len(benefits)
	s.TotalPromotions = len(promotions)
	s.ActivePromotions = len(ActivePromotions(promotions, now))
	return s
}

// recent returns at most n items ordered by key, newest first. Items with
// equal keys keep their relative order.
func recent[T any](items []T, n int, key func(T) time.Time) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return key(b).Compare(key(a))
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// RecentMembers returns the n most recently created members.
func RecentMembers(users []models.User, n int) []models.User {
	members := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.IsMember() {
			members = append(members, u)
		}
	}
	return recent(members, n, func(u models.User) time.Time { return u.CreatedAt })
}

func RecentBenefits(benefits []models.Benefit, n int) []models.Benefit {
	return recent(benefits, n, func(b models.Benefit) time.Time { return b.UpdatedAt })
}

func RecentPromotions(promotions []models.Promotion, n int) []models.Promotion {
	return recent(promotions, n, func(p models.Promotion) time.Time { return p.UpdatedAt })
}
