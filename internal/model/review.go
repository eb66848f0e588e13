package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is owned by its product: it has no lifecycle of its own and is
// removed with the product (OnDelete:CASCADE on the foreign key).
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_user" json:"-"`
	UserID    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_reviews_product_user" json:"userId" validate:"required"`
	UserName  string    `gorm:"type:varchar(255);not null" json:"userName" validate:"required"`
	Rating    int       `gorm:"not null" json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `gorm:"not null" json:"comment" validate:"required"`
	Date      time.Time `json:"date"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
