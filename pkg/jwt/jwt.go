package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity datos del usuario que viajan en el token: quién es y a qué tiendas puede acceder.
type Identity struct {
	UserID  string
	ShopID  string   // tienda activa de la sesión
	ShopIDs []string // tiendas accesibles (incluye ShopID)
	Role    string   // "owner" | "manager" | "salesperson" | "technician"
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string   `json:"user_id"`
	ShopID  string   `json:"shop_id"`
	ShopIDs []string `json:"shop_ids,omitempty"`
	Role    string   `json:"role"`
}

// Identity devuelve los datos de aplicación del token.
func (c *Claims) Identity() Identity {
	return Identity{UserID: c.UserID, ShopID: c.ShopID, ShopIDs: c.ShopIDs, Role: c.Role}
}

// Generate genera un token JWT firmado con la identidad y el alcance de tiendas del usuario.
func Generate(secret, issuer string, expMinutes int, id Identity) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:  id.UserID,
		ShopID:  id.ShopID,
		ShopIDs: id.ShopIDs,
		Role:    id.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("claims inválidos: user_id vacío")
	}
	return claims, nil
}
