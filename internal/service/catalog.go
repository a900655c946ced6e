package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/marqspnosa/shopwise/internal/access"
	"github.com/marqspnosa/shopwise/internal/events"
	"github.com/marqspnosa/shopwise/internal/logging"
	"github.com/marqspnosa/shopwise/internal/metrics"
	"github.com/marqspnosa/shopwise/internal/models"
)

// MaxListedProducts caps ListProducts regardless of store size.
const MaxListedProducts = 100

type ProductStore interface {
	ListProducts(ctx context.Context, limit int) ([]models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateProduct(ctx context.Context, prod *models.Product) error
	UpdateProduct(ctx context.Context, prod *models.Product, fields map[string]any) error
	DeleteProduct(ctx context.Context, prod *models.Product) error
}

type CatalogService struct {
	Repo   ProductStore
	Events events.Publisher
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, MaxListedProducts)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

// CreateProduct stores prod owned by actor, who must be an admin.
func (s *CatalogService) CreateProduct(ctx context.Context, actor *models.User, prod *models.Product) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create")

	admin, err := access.AuthorizeAdmin(actor)
	if err != nil {
		return nil, err
	}

	ownerID := admin.ID
	prod.OwnerID = &ownerID
	if err := s.Repo.CreateProduct(ctx, prod); err != nil {
		l.Error("create_product_failed", "status", 500, "error", err)
		return nil, err
	}

	metrics.ProductMutations.WithLabelValues("create").Inc()
	l.Info("create_product_success", "product_id", prod.ID.String())
	s.publish(ctx, "product_created", prod.ID, actor.ID)
	return prod, nil
}

// UpdateProduct applies fields to the product. A missing product is reported
// before the ownership check.
func (s *CatalogService) UpdateProduct(ctx context.Context, actor *models.User, id uuid.UUID, fields map[string]any) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.update")

	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := access.AuthorizeOwnerOrAdmin(actor, prod.OwnerID); err != nil {
		l.Warn("update_product_failed", "status", 403, "product_id", id.String())
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateProduct(ctx, prod, fields); err != nil {
			l.Error("update_product_failed", "status", 500, "error", err)
			return nil, err
		}
	}

	metrics.ProductMutations.WithLabelValues("update").Inc()
	s.publish(ctx, "product_updated", prod.ID, actor.ID)
	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, actor *models.User, id uuid.UUID) error {
	l := logging.FromContext(ctx).With("svc", "catalog.delete")

	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if _, err := access.AuthorizeOwnerOrAdmin(actor, prod.OwnerID); err != nil {
		l.Warn("delete_product_failed", "status", 403, "product_id", id.String())
		return err
	}

	if err := s.Repo.DeleteProduct(ctx, prod); err != nil {
		return err
	}

	metrics.ProductMutations.WithLabelValues("delete").Inc()
	s.publish(ctx, "product_deleted", prod.ID, actor.ID)
	return nil
}

func (s *CatalogService) publish(ctx context.Context, typ string, productID, actorID uuid.UUID) {
	publish(ctx, s.Events, events.TopicProductEvents, productID.String(), map[string]any{
		"type":       typ,
		"product_id": productID.String(),
		"actor_id":   actorID.String(),
	})
}
