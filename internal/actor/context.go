package actor

import (
	"errors"

	"github.com/LunaaVerse/ttm-sub002/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Actor identifies who is performing a lifecycle operation. It is threaded
// explicitly into every manager call; there is no ambient session state.
type Actor struct {
	ID   uuid.UUID
	Name string
	Role models.Role
}

// FromContext extracts the acting user from the JWT claims the auth
// middleware stored in Fiber locals.
func FromContext(c *fiber.Ctx) (Actor, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Actor{}, errors.New("no token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Actor{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Actor{}, errors.New("missing sub claim")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return Actor{}, err
	}

	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return Actor{ID: id, Name: name, Role: models.Role(role)}, nil
}
