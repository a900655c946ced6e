// Package transport holds the request and response bodies of the HTTP API.
package transport

import (
	"strings"

	"github.com/marqspnosa/shopwise/internal/domain"
	"github.com/marqspnosa/shopwise/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest.Username may hold either the username or the email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"        validate:"required,notblank,max=200"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents" validate:"required,gte=0"`
	Stock       *int    `json:"stock"       validate:"omitempty,gte=0"`
	ImageURL    *string `json:"image_url"   validate:"omitempty,max=1024"`
}

// PatchProductRequest is a partial update: nil fields are left unchanged.
type PatchProductRequest struct {
	Name        *string `json:"name"        validate:"omitempty,notblank,max=200"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents" validate:"omitempty,gte=0"`
	Stock       *int    `json:"stock"       validate:"omitempty,gte=0"`
	ImageURL    *string `json:"image_url"   validate:"omitempty,max=1024"`
}

// Fields returns the column updates named by the request.
func (r PatchProductRequest) Fields() (map[string]any, error) {
	fields := make(map[string]any, 5)
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			return nil, domain.Validation("name must not be empty")
		}
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.PriceCents != nil {
		if *r.PriceCents < 0 {
			return nil, domain.Validation("price_cents must be non-negative")
		}
		fields["price_cents"] = *r.PriceCents
	}
	if r.Stock != nil {
		if *r.Stock < 0 {
			return nil, domain.Validation("stock must be non-negative")
		}
		fields["stock"] = *r.Stock
	}
	if r.ImageURL != nil {
		fields["image_url"] = *r.ImageURL
	}
	return fields, nil
}

// Product builds the row for a create request; the owner is set by the caller.
func (r CreateProductRequest) Product() *models.Product {
	p := &models.Product{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
	if r.PriceCents != nil {
		p.PriceCents = *r.PriceCents
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	return p
}

type RegisterResponse struct {
	Status string            `json:"status"`
	User   models.PublicUser `json:"user"`
}

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	User        models.PublicUser `json:"user"`
}

type UserResponse struct {
	User models.PublicUser `json:"user"`
}

type ProductResponse struct {
	Product *models.Product `json:"product"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
