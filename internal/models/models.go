package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"            json:"id"`
	Email          string    `gorm:"size:255;uniqueIndex;not null"   json:"email"`
	Username       string    `gorm:"size:50;uniqueIndex;not null"    json:"username"`
	HashedPassword string    `gorm:"size:255;not null"               json:"-"`
	IsActive       bool      `gorm:"not null;default:true"           json:"is_active"`
	Role           Role      `gorm:"size:16;not null;default:user"   json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Products []Product `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL" json:"-"`
	Orders   []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"   json:"-"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// PublicUser is the client-facing view of a User; it never carries the password hash.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		IsActive:  u.IsActive,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Product.OwnerID is nulled by the store when the owning user is deleted.
type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"                                      json:"id"`
	Name        string     `gorm:"size:200;not null"                                         json:"name"`
	Description *string    `gorm:"type:text"                                                 json:"description"`
	PriceCents  int64      `gorm:"not null;check:chk_products_price_cents,price_cents >= 0"  json:"price_cents"`
	Stock       int        `gorm:"not null;default:0;check:chk_products_stock,stock >= 0"    json:"stock"`
	ImageURL    *string    `gorm:"size:1024"                                                 json:"image_url"`
	OwnerID     *uuid.UUID `gorm:"type:uuid;index"                                           json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	OrderItems []OrderItem `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"-"`
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// OwnedBy reports whether id is the product's owner. An ownerless product is owned by nobody.
func (p *Product) OwnedBy(id uuid.UUID) bool {
	return p.OwnerID != nil && *p.OwnerID == id
}

// Order and OrderItem are persisted shapes only; no checkout flow writes them.
type Order struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"                        json:"id"`
	UserID     uuid.UUID   `gorm:"type:uuid;index;not null"                    json:"user_id"`
	TotalCents int64       `gorm:"not null"                                    json:"total_cents"`
	CreatedAt  time.Time   `json:"created_at"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type OrderItem struct {
	ID         uint       `gorm:"primaryKey;autoIncrement"                         json:"id"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index;not null"                         json:"order_id"`
	ProductID  *uuid.UUID `gorm:"type:uuid;index"                                  json:"product_id"`
	Quantity   int        `gorm:"not null;check:chk_order_items_quantity,quantity > 0" json:"quantity"`
	PriceCents int64      `gorm:"not null"                                         json:"price_cents"`
}

// All lists the models in migration order.
func All() []any {
	return []any{&User{}, &Product{}, &Order{}, &OrderItem{}}
}
