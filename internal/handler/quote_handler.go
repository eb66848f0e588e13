package handler

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type QuoteHandler struct {
	service service.QuoteService
}

func NewQuoteHandler(s service.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: s}
}

// GetQuotes handles GET /get-quotes
func (h *QuoteHandler) GetQuotes(c *fiber.Ctx) error {
	quotes, err := h.service.GetAllQuotes()
	if err != nil {
		return fail(c, err)
	}

	if len(quotes) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No data found"})
	}
	return c.JSON(fiber.Map{
		"message": "Quotes data fetched",
		"data":    quotes,
	})
}

// GetQuote handles GET /get-specific-quote/:quote_id
func (h *QuoteHandler) GetQuote(c *fiber.Ctx) error {
	id, err := parseID(c, "quote_id")
	if err != nil {
		return fail(c, err)
	}

	quote, err := h.service.GetQuote(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Fetched specific quote data",
		"data":    quote,
	})
}

// GetRandomQuote handles GET /random-quote
func (h *QuoteHandler) GetRandomQuote(c *fiber.Ctx) error {
	quote, err := h.service.GetRandomQuote()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Fetched random quote data",
		"data":    quote,
	})
}

// AddQuote handles POST /add-quote
func (h *QuoteHandler) AddQuote(c *fiber.Ctx) error {
	var quote model.Quote
	if err := c.BodyParser(&quote); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON body"})
	}

	if err := h.service.CreateQuote(&quote); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "New quote added successfully",
		"data":    quote,
	})
}

// UpdateQuote handles PUT /update-quote/:quote_id
func (h *QuoteHandler) UpdateQuote(c *fiber.Ctx) error {
	id, err := parseID(c, "quote_id")
	if err != nil {
		return fail(c, err)
	}

	var patch model.QuotePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON body"})
	}

	quote, err := h.service.UpdateQuote(id, &patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Quote's data updated",
		"data":    quote,
	})
}

// DeleteQuote handles DELETE /delete-quote/:quote_id
func (h *QuoteHandler) DeleteQuote(c *fiber.Ctx) error {
	id, err := parseID(c, "quote_id")
	if err != nil {
		return fail(c, err)
	}

	quote, err := h.service.DeleteQuote(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Quote's data deleted",
		"data":    quote,
	})
}
