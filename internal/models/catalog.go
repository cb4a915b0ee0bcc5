package models

import "time"

// Benefit is a standing perk. Members only see benefits with IsActive set.
type Benefit struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Image       string    `json:"image" yaml:"image"`
	Category    string    `json:"category" yaml:"category"`
	IsActive    bool      `json:"isActive" yaml:"isActive"`
	Featured    bool      `json:"featured,omitempty" yaml:"featured,omitempty"`
	Terms       string    `json:"terms,omitempty" yaml:"terms,omitempty"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Promotion is a time-boxed offer. Discount is a display label such as
// "30%", not a number.
type Promotion struct {
	ID              string    `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	Description     string    `json:"description" yaml:"description"`
	Image           string    `json:"image" yaml:"image"`
	Discount        string    `json:"discount" yaml:"discount"`
	StartDate       time.Time `json:"startDate" yaml:"startDate"`
	EndDate         time.Time `json:"endDate" yaml:"endDate"`
	IsActive        bool      `json:"isActive" yaml:"isActive"`
	Terms           string    `json:"terms,omitempty" yaml:"terms,omitempty"`
	LimitedQuantity *int      `json:"limitedQuantity,omitempty" yaml:"limitedQuantity,omitempty"`
	UsedQuantity    *int      `json:"usedQuantity,omitempty" yaml:"usedQuantity,omitempty"`
	CreatedAt       time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// InWindow reports whether now lies in [StartDate, EndDate], bounds included.
func (p Promotion) InWindow(now time.Time) bool {
	return !now.Before(p.StartDate) && !now.After(p.EndDate)
}

// Remaining returns the units left and true when the promotion is limited.
// A used count above the limit yields 0.
func (p Promotion) Remaining() (int, bool) {
	if p.LimitedQuantity == nil {
		return 0, false
	}
	used := 0
	if p.UsedQuantity != nil {
		used = *p.UsedQuantity
	}
	return max(*p.LimitedQuantity-used, 0), true
}

// NewBenefit carries the caller-supplied fields of a benefit; the id and
// timestamps are assigned on creation.
type NewBenefit struct {
	Title       string
	Description string
	Image       string
	Category    string
	IsActive    bool
	Featured    bool
	Terms       string
}

// BenefitPatch is a partial update. Nil fields are left untouched.
type BenefitPatch struct {
	Title       *string
	Description *string
	Image       *string
	Category    *string
	IsActive    *bool
	Featured    *bool
	Terms       *string
}

func (p BenefitPatch) Apply(b Benefit) Benefit {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Image != nil {
		b.Image = *p.Image
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.IsActive != nil {
		b.IsActive = *p.IsActive
	}
	if p.Featured != nil {
		b.Featured = *p.Featured
	}
	if p.Terms != nil {
		b.Terms = *p.Terms
	}
	return b
}

// NewPromotion carries the caller-supplied fields of a promotion. A nil
// LimitedQuantity means the promotion is not limited.
type NewPromotion struct {
	Title           string
	Description     string
	Image           string
	Discount        string
	StartDate       time.Time
	EndDate         time.Time
	IsActive        bool
	Terms           string
	LimitedQuantity *int
	UsedQuantity    *int
}

// PromotionPatch is a partial update. Nil fields are left untouched.
type PromotionPatch struct {
	Title           *string
	Description     *string
	Image           *string
	Discount        *string
	StartDate       *time.Time
	EndDate         *time.Time
	IsActive        *bool
	Terms           *string
	LimitedQuantity *int
	UsedQuantity    *int
}

func (p PromotionPatch) Apply(pr Promotion) Promotion {
	if p.Title != nil {
		pr.Title = *p.Title
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Image != nil {
		pr.Image = *p.Image
	}
	if p.Discount != nil {
		pr.Discount = *p.Discount
	}
	if p.StartDate != nil {
		pr.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		pr.EndDate = *p.EndDate
	}
	if p.IsActive != nil {
		pr.IsActive = *p.IsActive
	}
	if p.Terms != nil {
		pr.Terms = *p.Terms
	}
	if p.LimitedQuantity != nil {
		n := *p.LimitedQuantity
		pr.LimitedQuantity = &n
	}
	if p.UsedQuantity != nil {
		n := *p.UsedQuantity
		pr.UsedQuantity = &n
	}
	return pr
}
