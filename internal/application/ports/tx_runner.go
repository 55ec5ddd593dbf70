package ports

import (
	"context"

	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Units     repository.StockUnitRepository
	Sales     repository.SaleRepository
	Customers repository.CustomerRepository
	Transfers repository.TransferRepository
	Garbage   repository.GarbageRepository
	Catalog   repository.CatalogRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback y ninguna escritura de fn queda visible; si no, Commit.
// La implementación puede reintentar fn completa ante fallos de serialización, por lo que fn
// no debe tener efectos fuera de los repositorios recibidos.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
