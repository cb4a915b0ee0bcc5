package repository

import (
	"time"

	"github.com/dmitrijs2005/cebip/internal/models"
)

const imageBase = "https://storage.googleapis.com/workspace-0f70711f-8b4e-4d94-86f1-2a93ccde5887/image/"

func day(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func intPtr(n int) *int { return &n }

func defaultBenefits() []models.Benefit {
	b := func(id, title, description, image, category string, featured bool, created, terms string) models.Benefit {
		ts := day(created)
		return models.Benefit{
			ID:          id,
			Title:       title,
			Description: description,
			Image:       imageBase + image,
			Category:    category,
			IsActive:    true,
			Featured:    featured,
			Terms:       terms,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
	}

	return []models.Benefit{
		b("1", "Descuentos en Restaurantes",
			"Disfruta hasta 25% de descuento en restaurantes afiliados de toda la ciudad.",
			"49558f6d-c8a2-4948-b8de-ece59d69ed04.png", "Gastronomía", true, "2024-01-01T00:00:00Z",
			"Válido de lunes a jueves. No acumulable con otras promociones."),
		b("2", "Spa y Bienestar",
			"Acceso exclusivo a tratamientos de relajación y bienestar con descuentos especiales.",
			"91423d82-a06d-4e38-9417-59b716d3b876.png", "Bienestar", true, "2024-01-02T00:00:00Z",
			"Reservas con 24 horas de anticipación."),
		b("3", "Entretenimiento Premium",
			"Entradas preferenciales para cines, teatros y eventos culturales.",
			"dfdfdf5a-ee83-4b2c-a661-080462ba4dab.png", "Entretenimiento", false, "2024-01-03T00:00:00Z",
			"Sujeto a disponibilidad. Válido para funciones seleccionadas."),
		b("4", "Viajes y Turismo",
			"Descuentos exclusivos en hoteles, vuelos y paquetes turísticos.",
			"17df8c50-6c25-4a61-ab73-4dc1f11ea9f8.png", "Viajes", true, "2024-01-04T00:00:00Z",
			"Descuentos aplicables según temporada y disponibilidad."),
		b("5", "Salud y Medicina",
			"Consultas médicas preferenciales y descuentos en estudios clínicos.",
			"66c8e079-0a82-4ac0-9246-e9fb3b1897f8.png", "Salud", false, "2024-01-05T00:00:00Z",
			"Previa coordinación y presentación de credencial."),
		b("6", "Educación y Capacitación",
			"Cursos y talleres con descuentos especiales para el desarrollo profesional.",
			"6fc00721-8851-4a73-9314-b17bea7a969e.png", "Educación", false, "2024-01-06T00:00:00Z",
			"Válido para cursos regulares. Consultar disponibilidad."),
		b("7", "Deportes y Fitness",
			"Acceso a gimnasios premium y actividades deportivas exclusivas.",
			"4666f39c-f72d-4e51-a410-5a206267aecd.png", "Deportes", false, "2024-01-07T00:00:00Z",
			"Horarios especiales para miembros. Ver condiciones en cada gimnasio."),
		b("8", "Tecnología y Servicios",
			"Descuentos en productos tecnológicos y servicios digitales.",
			"c304491e-6158-490d-84f4-679ef9883dce.png", "Tecnología", false, "2024-01-08T00:00:00Z",
			"Descuentos aplicables en productos seleccionados."),
	}
}

func defaultPromotions() []models.Promotion {
	p := func(id, title, description, image, discount, start, end, created, terms string, limit, used int) models.Promotion {
		ts := day(created)
		return models.Promotion{
			ID:              id,
			Title:           title,
			Description:     description,
			Image:           imageBase + image,
			Discount:        discount,
			StartDate:       day(start),
			EndDate:         day(end),
			IsActive:        true,
			Terms:           terms,
			LimitedQuantity: intPtr(limit),
			UsedQuantity:    intPtr(used),
			CreatedAt:       ts,
			UpdatedAt:       ts,
		}
	}

	return []models.Promotion{
		p("1", "Black Friday Premium",
			"50% de descuento en todos nuestros servicios premium durante noviembre.",
			"0eed94db-4bd4-4872-9d98-075234696087.png", "50%",
			"2024-11-01T00:00:00Z", "2024-11-30T23:59:59Z", "2024-01-01T00:00:00Z",
			"No acumulable con otras promociones. Válido una vez por miembro.", 100, 23),
		p("2", "Verano Exclusivo",
			"Promoción especial de verano con beneficios únicos para la temporada.",
			"26f4f7bd-6207-47ae-9d9e-f3da5fd72ebe.png", "30%",
			"2024-12-01T00:00:00Z", "2025-02-28T23:59:59Z", "2024-01-02T00:00:00Z",
			"Válido para servicios de temporada. Consultar establecimientos participantes.", 200, 45),
		p("3", "Aniversario CEBIP",
			"Celebramos nuestro aniversario con descuentos increíbles para todos los miembros.",
			"a97ef3f7-b5e1-4335-8071-8c65c2783e17.png", "40%",
			"2024-12-15T00:00:00Z", "2025-01-15T23:59:59Z", "2024-01-03T00:00:00Z",
			"Promoción especial de aniversario. Beneficios exclusivos para miembros activos.", 150, 12),
		p("4", "Fin de Año 2024",
			"Termina el año con los mejores beneficios y descuentos especiales.",
			"947ec7c5-08a4-493f-a9e3-2384af764504.png", "25%",
			"2024-12-20T00:00:00Z", "2024-12-31T23:59:59Z", "2024-01-04T00:00:00Z",
			"Promoción de fin de año. Válido hasta agotar stock.", 75, 8),
	}
}

type seedUser struct {
	user     models.User
	password string
}

// defaultUsers returns the seed accounts with plaintext passwords; the
// administrator is marked as having logged in at now.
func defaultUsers(now time.Time) []seedUser {
	member := func(id, email, password, name string, status models.Status, created string, mt models.MembershipType, avatar string) seedUser {
		return seedUser{
			user: models.User{
				ID:             id,
				Email:          email,
				Name:           name,
				Role:           models.RoleMember,
				Status:         status,
				CreatedAt:      day(created),
				MembershipType: mt,
				Avatar:         imageBase + avatar,
			},
			password: password,
		}
	}

	lastLogin := now
	return []seedUser{
		{
			user: models.User{
				ID:        "1",
				Email:     "admin@cebip.com",
				Name:      "Administrador CEBIP",
				Role:      models.RoleAdmin,
				Status:    models.StatusActive,
				CreatedAt: day("2024-01-01T00:00:00Z"),
				LastLogin: &lastLogin,
			},
			password: "admin123",
		},
		member("2", "maria@example.com", "maria123", "María González", models.StatusActive,
			"2024-01-15T00:00:00Z", models.MembershipPremium, "5c86ad6a-af09-46ec-98cc-5f5dbaab48f3.png"),
		member("3", "carlos@example.com", "carlos123", "Carlos Rodríguez", models.StatusActive,
			"2024-01-20T00:00:00Z", models.MembershipBasic, "a1f61369-8279-47bb-8167-4391384a3420.png"),
		member("4", "ana@example.com", "ana123", "Ana Martínez", models.StatusSuspended,
			"2024-02-01T00:00:00Z", models.MembershipBasic, "8a249765-517f-4f41-976c-a780c1cee38e.png"),
		member("5", "luis@example.com", "luis123", "Luis Fernández", models.StatusInactive,
			"2024-02-10T00:00:00Z", models.MembershipVIP, "1ee16eda-6620-48da-8862-a353614b6a8a.png"),
		member("6", "sofia@example.com", "sofia123", "Sofía López", models.StatusActive,
			"2024-02-15T00:00:00Z", models.MembershipPremium, "6b396ee9-01fb-40c8-82e9-7ae6acdf80f6.png"),
	}
}
