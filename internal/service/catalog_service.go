package service

import (
	"context"
	"fmt"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/ws"
	"go-catalog-api/pkg/cache"
	"go-catalog-api/pkg/validator"

	"github.com/google/uuid"
)

type CatalogService interface {
	ListProducts(q model.ProductListQuery) ([]model.Product, model.Pagination, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
	CreateProduct(product *model.Product) error
	UpdateProduct(id uuid.UUID, patch *model.ProductPatch) (*model.Product, error)
	DeleteProduct(id uuid.UUID) (*model.Product, error)
	ProductsByCategory(category string, q model.ProductListQuery) ([]model.Product, model.Pagination, error)
	FeaturedProducts(ctx context.Context, limit int) ([]model.Product, error)
	AddReview(id uuid.UUID, review model.Review) (*model.Product, error)
	AdjustStock(id uuid.UUID, quantity int) (*model.Product, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	cache       *cache.ProductCache
	wsHub       *ws.Hub
}

func NewCatalogService(repo repository.ProductRepository, productCache *cache.ProductCache, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo: repo,
		cache:       productCache,
		wsHub:       hub,
	}
}

func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("%w: field '%s' failed on tag '%s'", model.ErrValidation, first.FailedField, first.Tag)
}

func (s *catalogService) ListProducts(q model.ProductListQuery) ([]model.Product, model.Pagination, error) {
	products, total, err := s.productRepo.Search(q)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return products, model.NewPagination(q.Page, q.Limit, total), nil
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) CreateProduct(product *model.Product) error {
	if product.Status == "" {
		product.Status = model.StatusActive
	}
	if product.Price.Currency == "" {
		product.Price.Currency = "USD"
	}

	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		return validationError(errs)
	}

	// Available is always re-derived, never taken from the caller.
	product.Stock.Recompute()

	// Pre-check for a friendlier error; the unique index is the backstop.
	if existing, err := s.productRepo.FindBySKU(product.SKU); err == nil && existing != nil {
		return model.ErrDuplicateSKU
	}

	if err := s.productRepo.Create(product); err != nil {
		if repository.IsDuplicateKey(err) {
			return model.ErrDuplicateSKU
		}
		return err
	}

	s.cache.Invalidate(context.Background())
	s.wsHub.Publish(ws.Event{
		Type:    "product_created",
		Payload: product,
		Message: fmt.Sprintf("Product '%s' added to the catalog", product.Title),
	})
	return nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, patch *model.ProductPatch) (*model.Product, error) {
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		return nil, validationError(errs)
	}

	product, err := s.productRepo.Mutate(id, func(p *model.Product) error {
		patch.Apply(p)
		return nil
	})
	if err != nil {
		switch {
		case repository.IsNotFound(err):
			return nil, model.ErrNotFound
		case repository.IsDuplicateKey(err):
			return nil, model.ErrDuplicateSKU
		default:
			return nil, err
		}
	}

	s.cache.Invalidate(context.Background())
	return product, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	if err := s.productRepo.Delete(id); err != nil {
		return nil, err
	}

	s.cache.Invalidate(context.Background())
	return product, nil
}

func (s *catalogService) ProductsByCategory(category string, q model.ProductListQuery) ([]model.Product, model.Pagination, error) {
	q.Category = category
	q.Status = string(model.StatusActive)
	return s.ListProducts(q)
}

func (s *catalogService) FeaturedProducts(ctx context.Context, limit int) ([]model.Product, error) {
	if cached, err := s.cache.GetFeatured(ctx, limit); err == nil && cached != nil {
		return cached, nil
	}

	products, err := s.productRepo.FindFeatured(limit)
	if err != nil {
		return nil, err
	}

	// A cache write failure never fails the read.
	_ = s.cache.SetFeatured(ctx, limit, products)
	return products, nil
}

func (s *catalogService) AddReview(id uuid.UUID, review model.Review) (*model.Product, error) {
	if errs := validator.ValidateStruct(&review); len(errs) > 0 {
		return nil, validationError(errs)
	}

	product, err := s.productRepo.Mutate(id, func(p *model.Product) error {
		return p.AddReview(review)
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	s.cache.Invalidate(context.Background())
	s.wsHub.Publish(ws.Event{
		Type: "review_added",
		Payload: map[string]interface{}{
			"productId":    product.ID,
			"userName":     review.UserName,
			"rating":       review.Rating,
			"average":      product.Ratings.Average,
			"totalReviews": product.Ratings.TotalReviews,
		},
		Message: fmt.Sprintf("%s reviewed '%s'", review.UserName, product.Title),
	})
	return product, nil
}

func (s *catalogService) AdjustStock(id uuid.UUID, quantity int) (*model.Product, error) {
	product, err := s.productRepo.Mutate(id, func(p *model.Product) error {
		return p.AdjustOnOrder(quantity)
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	s.cache.Invalidate(context.Background())
	s.wsHub.Publish(ws.Event{
		Type: "stock_adjusted",
		Payload: map[string]interface{}{
			"productId": product.ID,
			"sku":       product.SKU,
			"available": product.Stock.Available,
			"status":    product.Status,
		},
		Message: fmt.Sprintf("%d units of '%s' ordered", quantity, product.Title),
	})
	return product, nil
}
