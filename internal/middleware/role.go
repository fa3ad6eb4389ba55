package middleware

import (
	"strings"

	"github.com/LunaaVerse/ttm-sub002/internal/actor"
	"github.com/LunaaVerse/ttm-sub002/internal/config"
	"github.com/LunaaVerse/ttm-sub002/internal/dto"
	"github.com/LunaaVerse/ttm-sub002/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RoleRequired allows only actors whose DB record carries one of the given
// roles and is verified. The JWT claim alone is not trusted for role checks
// since roles can change after a token was issued.
func RoleRequired(db *gorm.DB, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		act, err := actor.FromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", act.ID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if !user.Verified {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Account not verified",
			})
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Insufficient role",
		})
	}
}

// AdminRequired checks the config-based admin escape hatches first, then
// falls back to the DB role.
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)
	roleCheck := RoleRequired(db, models.RoleAdmin)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		if act, err := actor.FromContext(c); err == nil && len(adminEmails) > 0 {
			var user models.User
			if err := db.First(&user, "id = ?", act.ID).Error; err == nil {
				if contains(adminEmails, user.Email) {
					return c.Next()
				}
			}
		}

		return roleCheck(c)
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
