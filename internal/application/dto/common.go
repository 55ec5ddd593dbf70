package dto

// Límites de paginación de los listados.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// PageRequest ?limit=&offset= de los listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage acota Limit a [1, MaxLimit] (0 = DefaultLimit) y Offset a >= 0.
func (p *PageRequest) DefaultPage() {
	switch {
	case p.Limit <= 0:
		p.Limit = DefaultLimit
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// Page metadatos de una página con count elementos. Una página llena puede tener continuación.
func (p PageRequest) Page(count int) PageResponse {
	return PageResponse{Limit: p.Limit, Offset: p.Offset, Count: count, HasMore: count >= p.Limit}
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Count   int  `json:"count"`
	HasMore bool `json:"has_more"`
}

// ErrorResponse cuerpo de error HTTP. Code es estable para el cliente.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
