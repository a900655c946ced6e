package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marqspnosa/shopwise/internal/domain"
	"github.com/marqspnosa/shopwise/internal/models"
)

func (r *GormRepo) ListProducts(ctx context.Context, limit int) ([]models.Product, error) {
	items := make([]models.Product, 0, limit)
	if err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Order("created_at ASC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("Product not found")
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

// UpdateProduct writes only the columns named in fields and reloads prod.
func (r *GormRepo) UpdateProduct(ctx context.Context, prod *models.Product, fields map[string]any) error {
	tx := r.DB.WithContext(ctx)
	if err := tx.Model(prod).Updates(fields).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", prod.ID).First(prod).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, prod *models.Product) error {
	res := r.DB.WithContext(ctx).Delete(prod)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("Product not found")
	}
	return nil
}
