package main

// @title Stock API
// @version 1.0
// @description Motor de stock multi-tienda para punto de venta: unidades, ventas, traslados y defectuosos.

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Escriba "Bearer" seguido de un espacio y el token JWT.

// @tag.name stock
// @tag.description Unidades, búsqueda por identificador y stock bajo

// @tag.name sales
// @tag.description Ventas y comprobantes

// @tag.name transfers
// @tag.description Traslados entre tiendas

// @tag.name garbage
// @tag.description Unidades defectuosas
