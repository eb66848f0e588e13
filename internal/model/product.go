package model

import (
	"time"

	"github.com/lib/pq"
)

type ProductStatus string

const (
	StatusActive       ProductStatus = "active"
	StatusInactive     ProductStatus = "inactive"
	StatusDiscontinued ProductStatus = "discontinued"
	StatusOutOfStock   ProductStatus = "out-of-stock"
)

// Price keeps the original amount authoritative; Discounted is optional.
type Price struct {
	Original   float64  `gorm:"not null" json:"original" validate:"gte=0"`
	Discounted *float64 `json:"discounted,omitempty" validate:"omitempty,gte=0"`
	Currency   string   `gorm:"type:varchar(10);default:'USD'" json:"currency"`
}

// Stock tracks physical quantity. Available is derived and must always
// equal Quantity - Reserved; callers recompute it via Recompute before
// persisting any change to Quantity or Reserved.
type Stock struct {
	Quantity  int `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	Reserved  int `gorm:"not null;default:0" json:"reserved" validate:"gte=0"`
	Available int `gorm:"not null;default:0" json:"available"`
}

// Recompute re-derives Available from Quantity and Reserved.
func (s *Stock) Recompute() {
	s.Available = s.Quantity - s.Reserved
}

// Ratings holds the derived review aggregates.
type Ratings struct {
	Average      float64 `gorm:"not null;default:0" json:"average"`
	TotalReviews int     `gorm:"not null;default:0" json:"totalReviews"`
}

type Dimensions struct {
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Unit   string  `gorm:"type:varchar(10);default:'cm'" json:"unit,omitempty"`
}

type Specifications struct {
	Weight     float64    `json:"weight,omitempty"`
	Dimensions Dimensions `gorm:"embedded;embeddedPrefix:dim_" json:"dimensions,omitempty"`
	Color      string     `json:"color,omitempty"`
	Size       string     `json:"size,omitempty"`
	Material   string     `json:"material,omitempty"`
	Warranty   string     `json:"warranty,omitempty"`
}

type ShippingInfo struct {
	Weight       float64 `json:"weight,omitempty"`
	FreeShipping bool    `gorm:"default:false" json:"freeShipping"`
	ShippingCost float64 `gorm:"default:0" json:"shippingCost"`
}

type SeoInfo struct {
	MetaTitle       string         `json:"metaTitle,omitempty"`
	MetaDescription string         `json:"metaDescription,omitempty"`
	Keywords        pq.StringArray `gorm:"type:text[]" json:"keywords,omitempty"`
}

type Product struct {
	BaseModel
	SKU              string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Title            string         `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Description      string         `gorm:"not null" json:"description" validate:"required"`
	ShortDescription string         `gorm:"type:varchar(200)" json:"shortDescription,omitempty" validate:"max=200"`
	Images           pq.StringArray `gorm:"type:text[]" json:"images,omitempty"`
	Price            Price          `gorm:"embedded;embeddedPrefix:price_" json:"price"`
	Category         string         `gorm:"type:varchar(100);not null;index" json:"category" validate:"required"`
	SubCategory      string         `gorm:"type:varchar(100);index" json:"subCategory,omitempty"`
	Brand            string         `gorm:"type:varchar(100);not null;index" json:"brand" validate:"required"`
	Ratings          Ratings        `gorm:"embedded;embeddedPrefix:ratings_" json:"ratings"`
	Stock            Stock          `gorm:"embedded;embeddedPrefix:stock_" json:"stock"`
	OrderedItems     int            `gorm:"not null;default:0" json:"orderedItems" validate:"gte=0"`
	Specifications   Specifications `gorm:"embedded;embeddedPrefix:spec_" json:"specifications,omitempty"`
	Tags             pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
	Status           ProductStatus  `gorm:"type:varchar(20);not null;default:'active';index" json:"status" validate:"omitempty,oneof=active inactive discontinued out-of-stock"`
	Featured         bool           `gorm:"not null;default:false" json:"featured"`
	Shipping         ShippingInfo   `gorm:"embedded;embeddedPrefix:ship_" json:"shippingInfo,omitempty"`
	Seo              SeoInfo        `gorm:"embedded;embeddedPrefix:seo_" json:"seoInfo,omitempty"`

	Reviews []Review `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// AdjustOnOrder takes quantity units out of stock for a placed order.
// It fails with ErrInsufficientStock when fewer than quantity units are
// available, and flips the product to out-of-stock once nothing is left.
func (p *Product) AdjustOnOrder(quantity int) error {
	if quantity <= 0 {
		return ErrValidation
	}
	if p.Stock.Available < quantity {
		return ErrInsufficientStock
	}

	p.Stock.Quantity -= quantity
	p.Stock.Recompute()
	p.OrderedItems += quantity

	if p.Stock.Available <= 0 {
		p.Status = StatusOutOfStock
	}
	return nil
}

// AddReview appends a review and re-derives the rating aggregates.
// One review per user per product.
func (p *Product) AddReview(review Review) error {
	for _, r := range p.Reviews {
		if r.UserID == review.UserID {
			return ErrDuplicateReview
		}
	}

	review.ProductID = p.ID
	if review.Date.IsZero() {
		review.Date = time.Now()
	}
	p.Reviews = append(p.Reviews, review)
	p.RecalcRatings()
	return nil
}

// RecalcRatings re-derives Ratings from the loaded review sequence.
// Both aggregates are zero when no reviews exist.
func (p *Product) RecalcRatings() {
	n := len(p.Reviews)
	if n == 0 {
		p.Ratings = Ratings{}
		return
	}

	total := 0
	for _, r := range p.Reviews {
		total += r.Rating
	}
	p.Ratings.Average = float64(total) / float64(n)
	p.Ratings.TotalReviews = n
}
