package repository

import (
	"errors"
	"fmt"

	"go-catalog-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	Search(q model.ProductListQuery) ([]model.Product, int64, error)
	FindFeatured(limit int) ([]model.Product, error)
	Save(product *model.Product) error
	Delete(id uuid.UUID) error
	Mutate(id uuid.UUID, fn func(*model.Product) error) (*model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// sortColumns whitelists the sortable JSON field names and maps them to
// their columns. Unknown fields fall back to createdAt.
var sortColumns = map[string]string{
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"title":        "title",
	"brand":        "brand",
	"category":     "category",
	"price":        "price_original",
	"rating":       "ratings_average",
	"orderedItems": "ordered_items",
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Reviews").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Search runs the filtered, sorted, paginated scan. Reviews are not
// preloaded: list views exclude them.
func (r *productRepo) Search(q model.ProductListQuery) ([]model.Product, int64, error) {
	var total int64
	if err := applyFilter(r.db.Model(&model.Product{}), q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := applyFilter(r.db.Model(&model.Product{}), q).
		Order(orderClause(q.SortBy, q.SortOrder)).
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepo) FindFeatured(limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.
		Where("featured = ? AND status = ?", true, model.StatusActive).
		Order("ratings_average DESC, created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepo) Save(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Select(clause.Associations).Delete(&model.Product{BaseModel: model.BaseModel{ID: id}}).Error
}

// Mutate runs fn against the product inside a transaction holding a
// FOR UPDATE row lock, then persists the result. This keeps the
// read-modify-write cycles (stock adjustment, review append) safe
// against concurrent writers on the same product.
func (r *productRepo) Mutate(id uuid.UUID, fn func(*model.Product) error) (*model.Product, error) {
	var product model.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Reviews").
			First(&product, "id = ?", id).Error
		if err != nil {
			return err
		}
		if err := fn(&product); err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func applyFilter(tx *gorm.DB, q model.ProductListQuery) *gorm.DB {
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Category != "" {
		tx = tx.Where("category ILIKE ?", contains(q.Category))
	}
	if q.SubCategory != "" {
		tx = tx.Where("sub_category ILIKE ?", contains(q.SubCategory))
	}
	if q.Brand != "" {
		tx = tx.Where("brand ILIKE ?", contains(q.Brand))
	}
	if q.MinPrice != nil {
		tx = tx.Where("price_original >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price_original <= ?", *q.MaxPrice)
	}
	if q.MinRating != nil {
		tx = tx.Where("ratings_average >= ?", *q.MinRating)
	}
	if q.Featured != nil {
		tx = tx.Where("featured = ?", *q.Featured)
	}
	if q.Search != "" {
		tx = tx.Where(
			"to_tsvector('english', title || ' ' || description || ' ' || coalesce(array_to_string(tags, ' '), '')) @@ plainto_tsquery('english', ?)",
			q.Search,
		)
	}
	return tx
}

func contains(v string) string {
	return "%" + v + "%"
}

func orderClause(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	dir := "ASC"
	if sortOrder == "desc" {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s", column, dir)
}

// IsNotFound reports whether err is gorm's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateKey reports whether err is a unique-constraint violation.
// Requires TranslateError on the gorm config.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
