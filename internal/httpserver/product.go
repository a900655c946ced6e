package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/marqspnosa/shopwise/internal/domain"
	"github.com/marqspnosa/shopwise/internal/logging"
	authmw "github.com/marqspnosa/shopwise/internal/middleware/auth"
	"github.com/marqspnosa/shopwise/internal/service"
	"github.com/marqspnosa/shopwise/internal/transport"
)

type ProductHTTP struct {
	Svc *service.CatalogService
}

// productID parses the :id path parameter. An id that is not a UUID cannot
// name a product, so it is reported as not found.
func productID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domain.NotFound("Product not found")
	}
	return id, nil
}

func (h *ProductHTTP) List(c echo.Context) error {
	items, err := h.Svc.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) Get(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	prod, err := h.Svc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	prod, err := h.Svc.CreateProduct(ctx, authmw.CurrentUser(c), req.Product())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, transport.ProductResponse{Product: prod})
}

func (h *ProductHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := productID(c)
	if err != nil {
		return err
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	fields, err := req.Fields()
	if err != nil {
		return err
	}

	prod, err := h.Svc.UpdateProduct(ctx, authmw.CurrentUser(c), id, fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteProduct(c.Request().Context(), authmw.CurrentUser(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
