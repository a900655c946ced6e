package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marqspnosa/shopwise/internal/domain"
	"github.com/marqspnosa/shopwise/internal/transport"
)

func ptr[T any](v T) *T { return &v }

func TestValidator_ProductNames(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		req    any
		reason string
	}{
		{name: "blank create name", req: &transport.CreateProductRequest{Name: "   ", PriceCents: ptr(int64(1))}, reason: "name must not be blank"},
		{name: "empty create name", req: &transport.CreateProductRequest{Name: "", PriceCents: ptr(int64(1))}, reason: "name is required"},
		{name: "blank patch name", req: &transport.PatchProductRequest{Name: ptr(" \t ")}, reason: "name must not be blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, tt.reason, domain.Reason(err))
		})
	}

	assert.NoError(t, v.Validate(&transport.CreateProductRequest{Name: "Mug", PriceCents: ptr(int64(0))}))
	assert.NoError(t, v.Validate(&transport.PatchProductRequest{}))
}

func TestProducts_BlankNameRejectedOnBothPaths(t *testing.T) {
	f := newCatalogFixture(t)

	rec := f.do(t, http.MethodPost, "/api/products", f.adminToken, map[string]any{"name": "   ", "price_cents": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	p := f.create(t, map[string]any{"name": "Mug", "price_cents": 1})
	rec = f.do(t, http.MethodPatch, "/api/products/"+p.ID.String(), f.adminToken, map[string]any{"name": "   "})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}
