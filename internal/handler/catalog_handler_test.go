package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-catalog-api/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalogService returns canned values; the tests here only cover
// the boundary: param parsing, status mapping, envelope shape.
type fakeCatalogService struct {
	listOut    []model.Product
	listTotal  int64
	lastQuery  model.ProductListQuery
	getOut     *model.Product
	err        error
	adjustsOut *model.Product
}

func (f *fakeCatalogService) ListProducts(q model.ProductListQuery) ([]model.Product, model.Pagination, error) {
	f.lastQuery = q
	return f.listOut, model.NewPagination(q.Page, q.Limit, f.listTotal), f.err
}

func (f *fakeCatalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.getOut, nil
}

func (f *fakeCatalogService) CreateProduct(p *model.Product) error { return f.err }

func (f *fakeCatalogService) UpdateProduct(id uuid.UUID, patch *model.ProductPatch) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.getOut, nil
}

func (f *fakeCatalogService) DeleteProduct(id uuid.UUID) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.getOut, nil
}

func (f *fakeCatalogService) ProductsByCategory(category string, q model.ProductListQuery) ([]model.Product, model.Pagination, error) {
	q.Category = category
	q.Status = string(model.StatusActive)
	return f.ListProducts(q)
}

func (f *fakeCatalogService) FeaturedProducts(ctx context.Context, limit int) ([]model.Product, error) {
	return f.listOut, f.err
}

func (f *fakeCatalogService) AddReview(id uuid.UUID, review model.Review) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.getOut, nil
}

func (f *fakeCatalogService) AdjustStock(id uuid.UUID, quantity int) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.adjustsOut, nil
}

func newTestApp(svc *fakeCatalogService) *fiber.App {
	app := fiber.New()
	h := NewCatalogHandler(svc)

	app.Get("/get-products", h.GetProducts)
	app.Get("/get-product/:product_id", h.GetProduct)
	app.Post("/add-product", h.AddProduct)
	app.Put("/update-product/:product_id", h.UpdateProduct)
	app.Delete("/delete-product/:product_id", h.DeleteProduct)
	app.Get("/category/:category", h.GetProductsByCategory)
	app.Get("/featured", h.GetFeaturedProducts)
	app.Post("/add-review/:product_id", h.AddReview)
	app.Put("/update-stock/:product_id", h.UpdateStock)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestGetProductsEnvelope(t *testing.T) {
	t.Run("success envelope", func(t *testing.T) {
		svc := &fakeCatalogService{listOut: make([]model.Product, 5), listTotal: 15}
		app := newTestApp(svc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/get-products?page=2&limit=10", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Products fetched successfully", body["message"])
		assert.Len(t, body["data"], 5)

		pagination := body["pagination"].(map[string]interface{})
		assert.Equal(t, float64(2), pagination["currentPage"])
		assert.Equal(t, float64(2), pagination["totalPages"])
		assert.Equal(t, float64(15), pagination["totalProducts"])
		assert.Equal(t, false, pagination["hasNextPage"])
		assert.Equal(t, true, pagination["hasPrevPage"])
	})

	t.Run("no matches is 404 with empty envelope", func(t *testing.T) {
		svc := &fakeCatalogService{}
		app := newTestApp(svc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/get-products", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "No products found", body["message"])
		assert.Empty(t, body["data"])

		pagination := body["pagination"].(map[string]interface{})
		assert.Equal(t, float64(0), pagination["totalProducts"])
	})
}

func TestGetProductsQueryParsing(t *testing.T) {
	svc := &fakeCatalogService{listOut: make([]model.Product, 1), listTotal: 1}
	app := newTestApp(svc)

	t.Run("defaults", func(t *testing.T) {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/get-products", nil))
		require.NoError(t, err)

		q := svc.lastQuery
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, 10, q.Limit)
		assert.Equal(t, "active", q.Status)
		assert.Equal(t, "createdAt", q.SortBy)
		assert.Equal(t, "desc", q.SortOrder)
		assert.Nil(t, q.Featured)
	})

	t.Run("filters carried through", func(t *testing.T) {
		uri := "/get-products?category=audio&brand=acme&minPrice=10.5&maxPrice=99&minRating=4&featured=true&search=wireless&sortBy=price&sortOrder=asc"
		_, err := app.Test(httptest.NewRequest(http.MethodGet, uri, nil))
		require.NoError(t, err)

		q := svc.lastQuery
		assert.Equal(t, "audio", q.Category)
		assert.Equal(t, "acme", q.Brand)
		require.NotNil(t, q.MinPrice)
		assert.Equal(t, 10.5, *q.MinPrice)
		require.NotNil(t, q.MaxPrice)
		assert.Equal(t, 99.0, *q.MaxPrice)
		require.NotNil(t, q.MinRating)
		assert.Equal(t, 4.0, *q.MinRating)
		require.NotNil(t, q.Featured)
		assert.True(t, *q.Featured)
		assert.Equal(t, "wireless", q.Search)
		assert.Equal(t, "price", q.SortBy)
		assert.Equal(t, "asc", q.SortOrder)
	})

	t.Run("featured literal other than true is false", func(t *testing.T) {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/get-products?featured=yes", nil))
		require.NoError(t, err)

		require.NotNil(t, svc.lastQuery.Featured)
		assert.False(t, *svc.lastQuery.Featured)
	})

	t.Run("malformed numerics are ignored", func(t *testing.T) {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/get-products?minPrice=abc&page=x", nil))
		require.NoError(t, err)

		assert.Nil(t, svc.lastQuery.MinPrice)
		assert.Equal(t, 1, svc.lastQuery.Page)
	})
}

func TestGetProductStatusMapping(t *testing.T) {
	t.Run("malformed id is 400", func(t *testing.T) {
		app := newTestApp(&fakeCatalogService{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/get-product/not-a-uuid", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing product is 404", func(t *testing.T) {
		app := newTestApp(&fakeCatalogService{err: model.ErrNotFound})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/get-product/"+uuid.NewString(), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("found product is 200 with data", func(t *testing.T) {
		p := &model.Product{SKU: "KB-1", Title: "Keyboard"}
		app := newTestApp(&fakeCatalogService{getOut: p})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/get-product/"+uuid.NewString(), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "KB-1", data["sku"])
	})
}

func TestAddProductStatusMapping(t *testing.T) {
	post := func(app *fiber.App, payload string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/add-product", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("created", func(t *testing.T) {
		resp := post(newTestApp(&fakeCatalogService{}), `{"sku":"KB-1"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("duplicate sku is 400", func(t *testing.T) {
		resp := post(newTestApp(&fakeCatalogService{err: model.ErrDuplicateSKU}), `{"sku":"KB-1"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Contains(t, body["message"], "SKU")
	})

	t.Run("validation failure is 400", func(t *testing.T) {
		resp := post(newTestApp(&fakeCatalogService{err: model.ErrValidation}), `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateStockStatusMapping(t *testing.T) {
	put := func(svc *fakeCatalogService) *http.Response {
		app := newTestApp(svc)
		req := httptest.NewRequest(http.MethodPut, "/update-stock/"+uuid.NewString(), strings.NewReader(`{"quantity":4}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		p := &model.Product{SKU: "KB-1"}
		p.Stock = model.Stock{Quantity: 6, Available: 6}
		resp := put(&fakeCatalogService{adjustsOut: p})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("insufficient stock is 400", func(t *testing.T) {
		resp := put(&fakeCatalogService{err: model.ErrInsufficientStock})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing product is 404", func(t *testing.T) {
		resp := put(&fakeCatalogService{err: model.ErrNotFound})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestAddReviewStatusMapping(t *testing.T) {
	post := func(svc *fakeCatalogService) *http.Response {
		app := newTestApp(svc)
		payload := `{"userId":"u1","userName":"Ana","rating":5,"comment":"great"}`
		req := httptest.NewRequest(http.MethodPost, "/add-review/"+uuid.NewString(), strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("created", func(t *testing.T) {
		resp := post(&fakeCatalogService{getOut: &model.Product{}})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("duplicate review is 400", func(t *testing.T) {
		resp := post(&fakeCatalogService{err: model.ErrDuplicateReview})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
