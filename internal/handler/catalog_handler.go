package handler

import (
	"fmt"
	"strconv"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// parseListQuery resolves the query-string defaults once, at the
// boundary. Malformed numeric values are treated as absent.
func parseListQuery(c *fiber.Ctx) model.ProductListQuery {
	q := model.DefaultProductListQuery()

	if page := c.QueryInt("page", q.Page); page > 0 {
		q.Page = page
	}
	if limit := c.QueryInt("limit", q.Limit); limit > 0 {
		q.Limit = limit
	}

	q.Category = c.Query("category")
	q.SubCategory = c.Query("subCategory")
	q.Brand = c.Query("brand")
	q.Search = c.Query("search")

	if v := c.Query("status"); v != "" {
		q.Status = v
	}
	if f, ok := queryFloat(c, "minPrice"); ok {
		q.MinPrice = &f
	}
	if f, ok := queryFloat(c, "maxPrice"); ok {
		q.MaxPrice = &f
	}
	if f, ok := queryFloat(c, "minRating"); ok {
		q.MinRating = &f
	}
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true"
		q.Featured = &featured
	}
	if v := c.Query("sortBy"); v != "" {
		q.SortBy = v
	}
	if v := c.Query("sortOrder"); v != "" {
		q.SortOrder = v
	}
	return q
}

func queryFloat(c *fiber.Ctx, key string) (float64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// GetProducts handles GET /get-products
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	q := parseListQuery(c)

	products, pagination, err := h.service.ListProducts(q)
	if err != nil {
		return fail(c, err)
	}

	if len(products) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message":    "No products found",
			"data":       []model.Product{},
			"pagination": model.Pagination{CurrentPage: q.Page},
		})
	}

	return c.JSON(fiber.Map{
		"message":    "Products fetched successfully",
		"data":       products,
		"pagination": pagination,
	})
}

// GetProduct handles GET /get-product/:product_id
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "product_id")
	if err != nil {
		return fail(c, err)
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Product fetched successfully",
		"data":    product,
	})
}

// AddProduct handles POST /add-product
func (h *CatalogHandler) AddProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON body"})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product added successfully",
		"data":    product,
	})
}

// UpdateProduct handles PUT /update-product/:product_id
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "product_id")
	if err != nil {
		return fail(c, err)
	}

	var patch model.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON body"})
	}

	product, err := h.service.UpdateProduct(id, &patch)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"data":    product,
	})
}

// DeleteProduct handles DELETE /delete-product/:product_id
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "product_id")
	if err != nil {
		return fail(c, err)
	}

	product, err := h.service.DeleteProduct(id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
		"data":    product,
	})
}

// GetProductsByCategory handles GET /category/:category
func (h *CatalogHandler) GetProductsByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	q := parseListQuery(c)

	products, pagination, err := h.service.ProductsByCategory(category, q)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    fmt.Sprintf("Products in %s category fetched successfully", category),
		"data":       products,
		"pagination": pagination,
	})
}

// GetFeaturedProducts handles GET /featured
func (h *CatalogHandler) GetFeaturedProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	products, err := h.service.FeaturedProducts(c.Context(), limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Featured products fetched successfully",
		"data":    products,
	})
}

// AddReview handles POST /add-review/:product_id
func (h *CatalogHandler) AddReview(c *fiber.Ctx) error {
	id, err := parseID(c, "product_id")
	if err != nil {
		return fail(c, err)
	}

	var review model.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON body"})
	}

	product, err := h.service.AddReview(id, review)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review added successfully",
		"data":    product,
	})
}

// UpdateStock handles PUT /update-stock/:product_id
func (h *CatalogHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := parseID(c, "product_id")
	if err != nil {
		return fail(c, err)
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON body"})
	}

	product, err := h.service.AdjustStock(id, body.Quantity)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Stock updated successfully",
		"data":    product,
	})
}
