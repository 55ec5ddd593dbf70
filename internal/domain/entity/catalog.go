package entity

// Shop tienda del sistema multi-tienda (gestionada fuera del motor; aquí solo se consulta).
type Shop struct {
	ID     string
	Name   string
	Active bool
}

// Variant configuración vendible de un producto (color/almacenamiento).
type Variant struct {
	ID           string
	ProductID    string
	ProductName  string
	Name         string
	BrandName    string
	CategoryName string
}

// LowStockRow agregado de una variante por debajo (o en) su umbral mínimo.
type LowStockRow struct {
	VariantID   string
	ProductName string
	VariantName string
	Count       int
	Threshold   int
}
