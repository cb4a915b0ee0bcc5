package stats

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/cebip/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFilterMembers(t *testing.T) {
	users := []models.User{
		{ID: "a", Name: "Administrador", Email: "admin@cebip.com", Role: models.RoleAdmin, Status: models.StatusActive},
		{ID: "1", Name: "María González", Email: "maria@example.com", Role: models.RoleMember, Status: models.StatusActive, MembershipType: models.MembershipPremium},
		{ID: "2", Name: "Carlos Rodríguez", Email: "carlos@example.com", Role: models.RoleMember, Status: models.StatusActive, MembershipType: models.MembershipBasic},
		{ID: "3", Name: "Ana Martínez", Email: "ana@example.com", Role: models.RoleMember, Status: models.StatusSuspended, MembershipType: models.MembershipBasic},
	}

	tests := []struct {
		name   string
		filter MemberFilter
		want   []string
	}{
		{name: "empty filter lists members only", filter: MemberFilter{}, want: []string{"1", "2", "3"}},
		{name: "search by name ignores case", filter: MemberFilter{Search: "GONZ"}, want: []string{"1"}},
		{name: "search by email", filter: MemberFilter{Search: "carlos@"}, want: []string{"2"}},
		{name: "admins never match", filter: MemberFilter{Search: "admin"}, want: []string{}},
		{name: "status", filter: MemberFilter{Status: models.StatusSuspended}, want: []string{"3"}},
		{name: "membership", filter: MemberFilter{MembershipType: models.MembershipBasic}, want: []string{"2", "3"}},
		{
			name:   "combined",
			filter: MemberFilter{Search: "example", Status: models.StatusActive, MembershipType: models.MembershipBasic},
			want:   []string{"2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userIDs(FilterMembers(users, tt.filter)))
		})
	}
}

func TestSearchBenefits(t *testing.T) {
	benefits := []models.Benefit{
		{ID: "1", Title: "Spa y Bienestar", Category: "Bienestar", Description: "relajación"},
		{ID: "2", Title: "Viajes y Turismo", Category: "Viajes", Description: "hoteles y vuelos"},
	}
	assert.Equal(t, []string{"1", "2"}, benefitIDs(SearchBenefits(benefits, "")))
	assert.Equal(t, []string{"1"}, benefitIDs(SearchBenefits(benefits, "bienestar")))
	assert.Equal(t, []string{"2"}, benefitIDs(SearchBenefits(benefits, "HOTELES")))
	assert.Empty(t, SearchBenefits(benefits, "cine"))
}

func TestSearchPromotions(t *testing.T) {
	promotions := []models.Promotion{
		{ID: "1", Title: "Black Friday Premium", Discount: "50%"},
		{ID: "2", Title: "Verano Exclusivo", Description: "temporada", Discount: "30%"},
	}
	assert.Equal(t, []string{"1"}, promoIDs(SearchPromotions(promotions, "50%")))
	assert.Equal(t, []string{"2"}, promoIDs(SearchPromotions(promotions, "Temporada")))
	assert.Equal(t, []string{"1", "2"}, promoIDs(SearchPromotions(promotions, "")))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "MG", Initials("María González"))
	assert.Equal(t, "AC", Initials("Administrador CEBIP"))
	assert.Equal(t, "ÁL", Initials("álvaro  lópez garcía"))
	assert.Equal(t, "S", Initials("Sofía"))
	assert.Equal(t, "", Initials("   "))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2 ene 2024", FormatDate(d))
	assert.Equal(t, "2/1/2024", FormatShortDate(d))
	assert.Equal(t, "30 sept 2024", FormatDate(time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31 dic 2024", FormatDate(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)))
}
