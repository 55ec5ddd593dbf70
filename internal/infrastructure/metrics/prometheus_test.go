package metrics

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-api/internal/domain"
)

func TestPrometheus_Counters(t *testing.T) {
	p := New(false)

	p.UnitTransition("in_stock", "sold")
	p.UnitTransition("in_stock", "sold")
	p.UnitTransition("in_stock", "defective")
	assert.Equal(t, 2.0, testutil.ToFloat64(p.transitions.WithLabelValues("in_stock", "sold")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.transitions.WithLabelValues("in_stock", "defective")))

	p.SaleCreated("cash", decimal.RequireFromString("95.00"), 2)
	p.SaleCreated("card", decimal.RequireFromString("5.50"), 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(p.salesCreated.WithLabelValues("cash")))
	assert.InDelta(t, 100.5, testutil.ToFloat64(p.salesAmount), 1e-9)

	p.Rejected("sale.create", fmt.Errorf("%w: unidad vendida", domain.ErrUnavailable))
	p.Rejected("sale.create", io.ErrUnexpectedEOF)
	assert.Equal(t, 1.0, testutil.ToFloat64(p.rejections.WithLabelValues("sale.create", "unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.rejections.WithLabelValues("sale.create", "internal")))
}

func TestPrometheus_MiddlewareAndHandler(t *testing.T) {
	p := New(false)
	app := fiber.New()
	app.Use(p.Middleware())
	app.Get("/units/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", p.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/units/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, `http_request_duration_seconds_count{method="GET",route="/units/:id",status="200"} 1`), text)
	assert.NotContains(t, text, "/units/abc", "la etiqueta usa la ruta, no el path")
}
