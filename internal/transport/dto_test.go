package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marqspnosa/shopwise/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestPatchProductRequest_Fields(t *testing.T) {
	fields, err := PatchProductRequest{}.Fields()
	require.NoError(t, err)
	assert.Empty(t, fields)

	fields, err = PatchProductRequest{PriceCents: ptr(int64(0)), Stock: ptr(3)}.Fields()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"price_cents": int64(0), "stock": 3}, fields)
}

func TestPatchProductRequest_FieldsRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		req  PatchProductRequest
	}{
		{name: "blank name", req: PatchProductRequest{Name: ptr("  ")}},
		{name: "negative price", req: PatchProductRequest{PriceCents: ptr(int64(-1))}},
		{name: "negative stock", req: PatchProductRequest{Stock: ptr(-5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.Fields()
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreateProductRequest_Product(t *testing.T) {
	p := CreateProductRequest{Name: "Mug", PriceCents: ptr(int64(1299))}.Product()
	assert.Equal(t, "Mug", p.Name)
	assert.Equal(t, int64(1299), p.PriceCents)
	assert.Zero(t, p.Stock)
	assert.Nil(t, p.OwnerID)
	assert.Nil(t, p.Description)
}
