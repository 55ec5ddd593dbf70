package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Stock-api/internal/domain"
)

func TestKind_ClasificaErroresEnvueltos(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"validación directa", domain.ErrValidation, domain.ErrValidation},
		{"alias invalid input", domain.ErrInvalidInput, domain.ErrValidation},
		{"conflicto envuelto", fmt.Errorf("%w: imei IMEI-1 en uso", domain.ErrConflict), domain.ErrConflict},
		{"no disponible doble envoltura", fmt.Errorf("venta: %w", fmt.Errorf("%w: vendida", domain.ErrUnavailable)), domain.ErrUnavailable},
		{"not found", fmt.Errorf("%w: unidad", domain.ErrNotFound), domain.ErrNotFound},
		{"forbidden", domain.ErrForbidden, domain.ErrForbidden},
		{"desconocido es interno", errors.New("conexión cerrada"), domain.ErrInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.Kind(tc.err))
		})
	}
}

func TestKindName(t *testing.T) {
	assert.Equal(t, "conflict", domain.KindName(fmt.Errorf("%w: x", domain.ErrDuplicate)))
	assert.Equal(t, "unavailable", domain.KindName(domain.ErrUnavailable))
	assert.Equal(t, "internal", domain.KindName(errors.New("boom")))
	assert.Equal(t, "", domain.KindName(nil))
}
