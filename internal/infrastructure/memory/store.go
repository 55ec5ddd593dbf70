// Package memory implementa los puertos de persistencia en memoria del proceso. Se usa en modo
// desarrollo (STORE_DRIVER=memory) y en los tests de casos de uso. Las transacciones trabajan
// sobre una copia de los datos bajo un lock exclusivo y solo se publican si fn no falla.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Stock-api/internal/application/ports"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

var _ ports.TxRunner = (*Store)(nil)

type data struct {
	units         map[string]*entity.StockUnit
	sales         map[string]*entity.Sale
	saleItems     map[string]*entity.SaleItem
	customers     map[string]*entity.Customer
	transfers     map[string]*entity.StockTransfer
	transferItems map[string]*entity.StockTransferItem
	garbage       map[string]*entity.GarbageRecord
	shops         map[string]*entity.Shop
	variants      map[string]*entity.Variant
	taxes         map[string]struct{}
	vendors       map[entity.VendorRef]struct{}
	reasons       map[string]*entity.GarbageReason
}

func newData() *data {
	return &data{
		units:         make(map[string]*entity.StockUnit),
		sales:         make(map[string]*entity.Sale),
		saleItems:     make(map[string]*entity.SaleItem),
		customers:     make(map[string]*entity.Customer),
		transfers:     make(map[string]*entity.StockTransfer),
		transferItems: make(map[string]*entity.StockTransferItem),
		garbage:       make(map[string]*entity.GarbageRecord),
		shops:         make(map[string]*entity.Shop),
		variants:      make(map[string]*entity.Variant),
		taxes:         make(map[string]struct{}),
		vendors:       make(map[entity.VendorRef]struct{}),
		reasons:       make(map[string]*entity.GarbageReason),
	}
}

// clone copia superficial por fila: cada registro se copia, los valores apuntados no se mutan nunca.
func (d *data) clone() *data {
	c := newData()
	for k, v := range d.units {
		cp := *v
		c.units[k] = &cp
	}
	for k, v := range d.sales {
		cp := *v
		c.sales[k] = &cp
	}
	for k, v := range d.saleItems {
		cp := *v
		c.saleItems[k] = &cp
	}
	for k, v := range d.customers {
		cp := *v
		c.customers[k] = &cp
	}
	for k, v := range d.transfers {
		cp := *v
		c.transfers[k] = &cp
	}
	for k, v := range d.transferItems {
		cp := *v
		c.transferItems[k] = &cp
	}
	for k, v := range d.garbage {
		cp := *v
		c.garbage[k] = &cp
	}
	// El catálogo no se modifica dentro de transacciones; se comparte.
	c.shops = d.shops
	c.variants = d.variants
	c.taxes = d.taxes
	c.vendors = d.vendors
	c.reasons = d.reasons
	return c
}

// Store almacenamiento en memoria seguro para uso concurrente.
type Store struct {
	mu sync.RWMutex
	d  *data
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{d: newData()}
}

// Run ejecuta fn sobre una copia de los datos con el lock exclusivo tomado; las transacciones
// quedan serializadas. La copia se publica solo si fn no devuelve error y ctx sigue vigente.
func (s *Store) Run(ctx context.Context, fn func(repos ports.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.d.clone()
	if err := fn(s.repos(work)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.d = work
	return nil
}

// Repos repositorios fuera de transacción (lecturas con lock compartido).
func (s *Store) Repos() ports.TxRepos {
	return s.repos(nil)
}

func (s *Store) repos(tx *data) ports.TxRepos {
	a := access{s: s, tx: tx}
	return ports.TxRepos{
		Units:     &unitRepo{a},
		Sales:     &saleRepo{a},
		Customers: &customerRepo{a},
		Transfers: &transferRepo{a},
		Garbage:   &garbageRepo{a},
		Catalog:   &catalogRepo{a},
	}
}

// access da a cada repo los datos de su transacción, o los publicados bajo lock si no hay tx.
type access struct {
	s  *Store
	tx *data
}

func (a access) view(fn func(d *data)) {
	if a.tx != nil {
		fn(a.tx)
		return
	}
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	fn(a.s.d)
}

func (a access) update(fn func(d *data) error) error {
	if a.tx != nil {
		return fn(a.tx)
	}
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	return fn(a.s.d)
}

// Counts totales por tabla.
type Counts struct {
	Units     int
	Sales     int
	SaleItems int
	Transfers int
	Garbage   int
}

// Counts devuelve el número de filas publicadas por tabla.
func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Counts{
		Units:     len(s.d.units),
		Sales:     len(s.d.sales),
		SaleItems: len(s.d.saleItems),
		Transfers: len(s.d.transfers),
		Garbage:   len(s.d.garbage),
	}
}

// AddShop registra una tienda (administrada fuera del motor).
func (s *Store) AddShop(shop entity.Shop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.shops[shop.ID] = &shop
}

// AddVariant registra una variante de catálogo.
func (s *Store) AddVariant(v entity.Variant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.variants[v.ID] = &v
}

// AddCustomer registra un cliente.
func (s *Store) AddCustomer(c entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.customers[c.ID] = &c
}

// AddTax registra un impuesto.
func (s *Store) AddTax(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.taxes[id] = struct{}{}
}

// AddVendor registra un proveedor del tipo indicado.
func (s *Store) AddVendor(ref entity.VendorRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.vendors[ref] = struct{}{}
}

// AddGarbageReason registra un motivo de defecto.
func (s *Store) AddGarbageReason(r entity.GarbageReason) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.reasons[r.ID] = &r
}
