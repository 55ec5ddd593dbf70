package stock

import (
	"fmt"

	"github.com/jhoicas/Stock-api/internal/domain"
)

// Scope contexto explícito de la petición: usuario, tienda activa y tiendas accesibles.
// La capa HTTP lo construye desde el token y se pasa como argumento a cada operación.
type Scope struct {
	UserID  string
	ShopID  string
	ShopIDs []string
}

// Validate exige usuario y tienda activa.
func (s Scope) Validate() error {
	if s.UserID == "" || s.ShopID == "" {
		return fmt.Errorf("%w: sesión sin usuario o tienda", domain.ErrUnauthorized)
	}
	return nil
}

// CanAccess indica si la sesión puede operar sobre shopID.
func (s Scope) CanAccess(shopID string) bool {
	if shopID == "" {
		return false
	}
	if shopID == s.ShopID {
		return true
	}
	for _, id := range s.ShopIDs {
		if id == shopID {
			return true
		}
	}
	return false
}

// Shops tiendas accesibles sin repetir, empezando por la activa.
func (s Scope) Shops() []string {
	out := make([]string, 0, len(s.ShopIDs)+1)
	seen := make(map[string]struct{}, len(s.ShopIDs)+1)
	for _, id := range append([]string{s.ShopID}, s.ShopIDs...) {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ResolveShop devuelve shopID o la tienda activa si viene vacío, verificando acceso.
func (s Scope) ResolveShop(shopID string) (string, error) {
	if shopID == "" {
		shopID = s.ShopID
	}
	if !s.CanAccess(shopID) {
		return "", fmt.Errorf("%w: sin acceso a la tienda %s", domain.ErrForbidden, shopID)
	}
	return shopID, nil
}
