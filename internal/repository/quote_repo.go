package repository

import (
	"go-catalog-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuoteRepository interface {
	Create(quote *model.Quote) error
	FindAll() ([]model.Quote, error)
	FindByID(id uuid.UUID) (*model.Quote, error)
	FindRandom() (*model.Quote, error)
	Save(quote *model.Quote) error
	Delete(id uuid.UUID) error
}

type quoteRepo struct {
	db *gorm.DB
}

func NewQuoteRepo(db *gorm.DB) QuoteRepository {
	return &quoteRepo{db}
}

func (r *quoteRepo) Create(quote *model.Quote) error {
	return r.db.Create(quote).Error
}

func (r *quoteRepo) FindAll() ([]model.Quote, error) {
	var quotes []model.Quote
	err := r.db.Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepo) FindByID(id uuid.UUID) (*model.Quote, error) {
	var quote model.Quote
	if err := r.db.First(&quote, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &quote, nil
}

// FindRandom delegates the pick to the database instead of counting and
// skipping in two round trips.
func (r *quoteRepo) FindRandom() (*model.Quote, error) {
	var quote model.Quote
	if err := r.db.Order("RANDOM()").First(&quote).Error; err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepo) Save(quote *model.Quote) error {
	return r.db.Save(quote).Error
}

func (r *quoteRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Quote{}, "id = ?", id).Error
}
