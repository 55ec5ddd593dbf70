package stock

import (
	"context"
	"fmt"

	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
	domstock "github.com/jhoicas/Stock-api/internal/domain/stock"
)

// ReserveIdentifiers es el índice de unicidad: bloquea las claves de los identificadores hasta el
// fin de la transacción y verifica que ninguna unidad activa (distinta de excludeID) las use.
// Los IMEI se buscan en todas las tiendas; el código de barras solo en shopID.
// Debe llamarse dentro de TxRunner.Run, antes de escribir.
func ReserveIdentifiers(ctx context.Context, units repository.StockUnitRepository, shopID, excludeID string, batch ...entity.Identifiers) error {
	if dup := domstock.DuplicatesInBatch(batch); dup != "" {
		return fmt.Errorf("%w: imei %s repetido en el lote", domain.ErrValidation, dup)
	}
	if dup := duplicateBarcode(batch); dup != "" {
		return fmt.Errorf("%w: código de barras %s repetido en el lote", domain.ErrValidation, dup)
	}
	keys := domstock.LockKeys(shopID, batch...)
	if len(keys) == 0 {
		return nil
	}
	if err := units.LockIdentifiers(ctx, keys); err != nil {
		return fmt.Errorf("bloquear identificadores: %w", err)
	}
	for _, ids := range batch {
		for _, v := range ids.PhysicalIDs() {
			other, err := units.FindActiveByPhysicalID(ctx, v, excludeID)
			if err != nil {
				return err
			}
			if other != nil {
				return fmt.Errorf("%w: imei %s en uso por la unidad %s", domain.ErrConflict, v, other.ID)
			}
		}
		if ids.Barcode != nil {
			if err := checkBarcode(ctx, units, shopID, *ids.Barcode, excludeID); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReserveBarcode bloquea y verifica un código de barras en shopID (traslados hacia otra tienda).
func ReserveBarcode(ctx context.Context, units repository.StockUnitRepository, shopID, barcode, excludeID string) error {
	if err := units.LockIdentifiers(ctx, domstock.LockKeys(shopID, entity.Identifiers{Barcode: &barcode})); err != nil {
		return fmt.Errorf("bloquear identificadores: %w", err)
	}
	return checkBarcode(ctx, units, shopID, barcode, excludeID)
}

func checkBarcode(ctx context.Context, units repository.StockUnitRepository, shopID, barcode, excludeID string) error {
	other, err := units.FindActiveByBarcode(ctx, shopID, barcode, excludeID)
	if err != nil {
		return err
	}
	if other != nil {
		return fmt.Errorf("%w: código de barras %s en uso en la tienda %s por la unidad %s", domain.ErrConflict, barcode, shopID, other.ID)
	}
	return nil
}

func duplicateBarcode(batch []entity.Identifiers) string {
	seen := make(map[string]struct{}, len(batch))
	for _, ids := range batch {
		if ids.Barcode == nil {
			continue
		}
		if _, ok := seen[*ids.Barcode]; ok {
			return *ids.Barcode
		}
		seen[*ids.Barcode] = struct{}{}
	}
	return ""
}
