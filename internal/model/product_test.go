package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockRecompute(t *testing.T) {
	s := Stock{Quantity: 10, Reserved: 3}
	s.Recompute()
	assert.Equal(t, 7, s.Available)

	s.Reserved = 10
	s.Recompute()
	assert.Equal(t, 0, s.Available)
}

func TestAdjustOnOrder(t *testing.T) {
	newProduct := func() *Product {
		p := &Product{Status: StatusActive}
		p.Stock = Stock{Quantity: 10, Reserved: 0}
		p.Stock.Recompute()
		return p
	}

	t.Run("decrements stock and tracks ordered items", func(t *testing.T) {
		p := newProduct()
		require.NoError(t, p.AdjustOnOrder(4))

		assert.Equal(t, 6, p.Stock.Quantity)
		assert.Equal(t, 6, p.Stock.Available)
		assert.Equal(t, 4, p.OrderedItems)
		assert.Equal(t, StatusActive, p.Status)
	})

	t.Run("depletion flips status to out-of-stock", func(t *testing.T) {
		p := newProduct()
		require.NoError(t, p.AdjustOnOrder(4))
		require.NoError(t, p.AdjustOnOrder(6))

		assert.Equal(t, 0, p.Stock.Quantity)
		assert.Equal(t, 0, p.Stock.Available)
		assert.Equal(t, 10, p.OrderedItems)
		assert.Equal(t, StatusOutOfStock, p.Status)
	})

	t.Run("insufficient stock leaves the record unchanged", func(t *testing.T) {
		p := newProduct()
		err := p.AdjustOnOrder(11)

		require.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 10, p.Stock.Quantity)
		assert.Equal(t, 10, p.Stock.Available)
		assert.Equal(t, 0, p.OrderedItems)
		assert.Equal(t, StatusActive, p.Status)
	})

	t.Run("reserved units are not orderable", func(t *testing.T) {
		p := newProduct()
		p.Stock.Reserved = 8
		p.Stock.Recompute()

		require.ErrorIs(t, p.AdjustOnOrder(3), ErrInsufficientStock)
		require.NoError(t, p.AdjustOnOrder(2))
		assert.Equal(t, 8, p.Stock.Quantity)
		assert.Equal(t, 0, p.Stock.Available)
		assert.Equal(t, StatusOutOfStock, p.Status)
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		p := newProduct()
		require.ErrorIs(t, p.AdjustOnOrder(0), ErrValidation)
		require.ErrorIs(t, p.AdjustOnOrder(-2), ErrValidation)
	})
}

func TestAddReview(t *testing.T) {
	t.Run("appends and re-derives aggregates", func(t *testing.T) {
		p := &Product{}
		require.NoError(t, p.AddReview(Review{UserID: "u1", UserName: "Ana", Rating: 4, Comment: "good"}))
		require.NoError(t, p.AddReview(Review{UserID: "u2", UserName: "Ben", Rating: 5, Comment: "great"}))

		assert.Len(t, p.Reviews, 2)
		assert.Equal(t, 2, p.Ratings.TotalReviews)
		assert.InDelta(t, 4.5, p.Ratings.Average, 1e-9)
		assert.False(t, p.Reviews[0].Date.IsZero())
	})

	t.Run("duplicate user is rejected and record unchanged", func(t *testing.T) {
		p := &Product{}
		require.NoError(t, p.AddReview(Review{UserID: "u1", UserName: "Ana", Rating: 4, Comment: "good"}))

		err := p.AddReview(Review{UserID: "u1", UserName: "Ana", Rating: 1, Comment: "changed my mind"})
		require.ErrorIs(t, err, ErrDuplicateReview)

		assert.Len(t, p.Reviews, 1)
		assert.Equal(t, 1, p.Ratings.TotalReviews)
		assert.InDelta(t, 4.0, p.Ratings.Average, 1e-9)
	})
}

func TestRecalcRatings(t *testing.T) {
	p := &Product{}
	p.RecalcRatings()
	assert.Zero(t, p.Ratings.Average)
	assert.Zero(t, p.Ratings.TotalReviews)

	p.Reviews = []Review{
		{UserID: "u1", Rating: 2},
		{UserID: "u2", Rating: 3},
		{UserID: "u3", Rating: 5},
	}
	p.RecalcRatings()
	assert.Equal(t, 3, p.Ratings.TotalReviews)
	assert.InDelta(t, 10.0/3.0, p.Ratings.Average, 1e-9)

	// Bounded inputs keep the average in range.
	assert.GreaterOrEqual(t, p.Ratings.Average, 0.0)
	assert.LessOrEqual(t, p.Ratings.Average, 5.0)
}

func TestProductPatchApply(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	intPtr := func(i int) *int { return &i }
	floatPtr := func(f float64) *float64 { return &f }

	base := func() *Product {
		p := &Product{
			SKU:         "SKU-1",
			Title:       "Widget",
			Description: "A widget",
			Category:    "tools",
			Brand:       "Acme",
		}
		p.Price = Price{Original: 100, Currency: "USD"}
		p.Stock = Stock{Quantity: 5, Reserved: 1}
		p.Stock.Recompute()
		return p
	}

	t.Run("only supplied fields change", func(t *testing.T) {
		p := base()
		patch := &ProductPatch{Title: strPtr("Better Widget")}
		patch.Apply(p)

		assert.Equal(t, "Better Widget", p.Title)
		assert.Equal(t, "SKU-1", p.SKU)
		assert.Equal(t, "A widget", p.Description)
		assert.Equal(t, 4, p.Stock.Available)
	})

	t.Run("stock patch re-derives available", func(t *testing.T) {
		p := base()
		patch := &ProductPatch{Stock: &StockPatch{Quantity: intPtr(20)}}
		patch.Apply(p)

		assert.Equal(t, 20, p.Stock.Quantity)
		assert.Equal(t, 1, p.Stock.Reserved)
		assert.Equal(t, 19, p.Stock.Available)
	})

	t.Run("price patch merges per field", func(t *testing.T) {
		p := base()
		patch := &ProductPatch{Price: &PricePatch{Discounted: floatPtr(80)}}
		patch.Apply(p)

		assert.Equal(t, 100.0, p.Price.Original)
		require.NotNil(t, p.Price.Discounted)
		assert.Equal(t, 80.0, *p.Price.Discounted)
		assert.Equal(t, "USD", p.Price.Currency)
	})
}
