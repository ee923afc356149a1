package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/pkg/jwt"
)

// Local bajo el que viaja la sesión verificada dentro del request.
const localSession = "session"

// AuthMiddleware valida el Bearer token y deja la sesión en c.Locals.
func AuthMiddleware(tokens *jwt.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c.Get(fiber.HeaderAuthorization))
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		sess, err := tokens.Verify(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(localSession, sess)
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireRole autoriza el acceso solo a los roles indicados. Debe montarse
// después de AuthMiddleware. Un token sin claim de rol retorna 401.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

func session(c *fiber.Ctx) jwt.Session {
	s, _ := c.Locals(localSession).(jwt.Session)
	return s
}

// GetUserID devuelve el UserID de la sesión del request.
func GetUserID(c *fiber.Ctx) string { return session(c).UserID }

// GetCompanyID devuelve el CompanyID de la sesión del request.
func GetCompanyID(c *fiber.Ctx) string { return session(c).CompanyID }

// GetRole devuelve el rol de la sesión del request.
func GetRole(c *fiber.Ctx) string { return session(c).Role }
