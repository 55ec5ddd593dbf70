package entity

import (
	"fmt"
	"strings"
)

// VendorKind discriminador del origen de una unidad.
type VendorKind string

const (
	VendorKindWholesaler VendorKind = "wholesaler" // cuenta de mayorista
	VendorKindCustomer   VendorKind = "customer"   // compra a un cliente (usado)
	VendorKindVendor     VendorKind = "vendor"     // proveedor registrado
)

// VendorRef referencia polimórfica al proveedor: un tipo y el id en la tabla que ese tipo indica.
// Se construye una sola vez en el borde con ParseVendorRef y se resuelve una sola vez en el registro.
type VendorRef struct {
	Kind VendorKind
	ID   string
}

// ParseVendorRef valida el par (tipo, id) recibido en la petición.
// Ambos vacíos significa "sin proveedor" y devuelve nil.
func ParseVendorRef(kind, id string) (*VendorRef, error) {
	kind = strings.TrimSpace(strings.ToLower(kind))
	id = strings.TrimSpace(id)
	if kind == "" && id == "" {
		return nil, nil
	}
	if id == "" {
		return nil, fmt.Errorf("vendor_id requerido para vendor_type %q", kind)
	}
	switch VendorKind(kind) {
	case VendorKindWholesaler, VendorKindCustomer, VendorKindVendor:
		return &VendorRef{Kind: VendorKind(kind), ID: id}, nil
	case "":
		return nil, fmt.Errorf("vendor_type requerido")
	default:
		return nil, fmt.Errorf("vendor_type desconocido %q", kind)
	}
}

// String forma "tipo:id" (logs).
func (v VendorRef) String() string {
	return string(v.Kind) + ":" + v.ID
}
