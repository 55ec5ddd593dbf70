package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	"github.com/jhoicas/Stock-api/internal/application/stock"
	"github.com/jhoicas/Stock-api/pkg/jwt"
)

// Locals keys para la identidad de la sesión en Fiber.
const (
	LocalUserID  = "user_id"
	LocalShopID  = "shop_id"
	LocalShopIDs = "shop_ids"
	LocalRole    = "role"
)

// AuthMiddleware valida el Bearer Token JWT y deja usuario, tienda activa, tiendas accesibles y rol en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if claims.ShopID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_SHOP", Message: "el token no tiene tienda activa"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalShopID, claims.ShopID)
		c.Locals(LocalShopIDs, claims.ShopIDs)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole permite continuar solo si el rol del token está entre roles. Usar después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
		}
		return c.Next()
	}
}

// GetScope arma el Scope de la petición (después del middleware de auth).
func GetScope(c *fiber.Ctx) stock.Scope {
	shopIDs, _ := c.Locals(LocalShopIDs).([]string)
	return stock.Scope{
		UserID:  localString(c, LocalUserID),
		ShopID:  localString(c, LocalShopID),
		ShopIDs: shopIDs,
	}
}

// GetUserID devuelve el UserID del contexto.
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
