package stock

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

// IdentifierKind tipo de identificador para búsquedas de punto de venta.
type IdentifierKind string

const (
	KindIMEI    IdentifierKind = "imei" // primario o secundario
	KindSerial  IdentifierKind = "serial"
	KindBarcode IdentifierKind = "barcode"
)

// ParseIdentifierKind valida el tipo recibido en la petición; vacío equivale a imei.
func ParseIdentifierKind(s string) (IdentifierKind, error) {
	switch IdentifierKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindIMEI, "":
		return KindIMEI, nil
	case KindSerial:
		return KindSerial, nil
	case KindBarcode:
		return KindBarcode, nil
	}
	return "", fmt.Errorf("%w: tipo de identificador %q", domain.ErrValidation, s)
}

// CleanValue forma canónica de un identificador leído por escáner o teclado:
// NFKC, dígitos y letras de ancho completo plegados a ASCII y espacios recortados.
// "３５６９" y "3569" son el mismo IMEI.
func CleanValue(s string) string {
	return strings.TrimSpace(width.Fold.String(norm.NFKC.String(s)))
}

// Clean aplica CleanValue; una cadena vacía se trata como ausente.
func Clean(p *string) *string {
	if p == nil {
		return nil
	}
	v := CleanValue(*p)
	if v == "" {
		return nil
	}
	return &v
}

// Normalize limpia todos los identificadores y valida que IMEI 1 y 2 difieran.
func Normalize(ids entity.Identifiers) (entity.Identifiers, error) {
	out := entity.Identifiers{
		PrimaryID:   Clean(ids.PrimaryID),
		SecondaryID: Clean(ids.SecondaryID),
		Serial:      Clean(ids.Serial),
		Barcode:     Clean(ids.Barcode),
	}
	if out.PrimaryID != nil && out.SecondaryID != nil && *out.PrimaryID == *out.SecondaryID {
		return out, fmt.Errorf("%w: imei primario y secundario iguales (%s)", domain.ErrValidation, *out.PrimaryID)
	}
	return out, nil
}

// DuplicatesInBatch devuelve el primer IMEI repetido dentro de un lote (primarios y
// secundarios comparten espacio), o "" si el lote no tiene repetidos.
func DuplicatesInBatch(batch []entity.Identifiers) string {
	seen := make(map[string]struct{}, len(batch)*2)
	for _, ids := range batch {
		for _, v := range ids.PhysicalIDs() {
			if _, ok := seen[v]; ok {
				return v
			}
			seen[v] = struct{}{}
		}
	}
	return ""
}

// LockKeys claves de bloqueo para los identificadores de un conjunto de unidades, ordenadas
// y sin repetir para que dos transacciones siempre las tomen en el mismo orden.
// Los IMEI comparten espacio global; el código de barras se calcula por tienda.
func LockKeys(shopID string, batch ...entity.Identifiers) []string {
	set := make(map[string]struct{})
	for _, ids := range batch {
		for _, v := range ids.PhysicalIDs() {
			set["imei:"+v] = struct{}{}
		}
		if ids.Barcode != nil {
			set["barcode:"+shopID+":"+*ids.Barcode] = struct{}{}
		}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
