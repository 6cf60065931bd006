package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dayledger/internal/security"
)

var errMissingBearer = errors.New("missing bearer token")

// OwnerRequired resolves the owner every /api call is scoped to. Without an
// auth secret every request belongs to the default owner.
func (handler *Handler) OwnerRequired(c *fiber.Ctx) error {
	owner, err := handler.resolveOwner(c)
	if err != nil {
		handler.logger.Debug().Err(err).Str("path", c.Path()).Msg("owner resolution failed")
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	c.Locals(contextOwnerKey, owner)
	return c.Next()
}

func (handler *Handler) resolveOwner(c *fiber.Ctx) (string, error) {
	if handler.authSecret == "" {
		return handler.defaultOwner, nil
	}
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errMissingBearer
	}
	return security.ParseOwnerToken(handler.authSecret, strings.TrimSpace(token))
}

func currentOwner(c *fiber.Ctx) string {
	owner, _ := c.Locals(contextOwnerKey).(string)
	return owner
}
