package model

// ProductListQuery carries the resolved list parameters. Defaults are
// applied once at the handler boundary via DefaultProductListQuery;
// nil/empty fields impose no constraint on the scan.
type ProductListQuery struct {
	Page  int
	Limit int

	Category    string
	SubCategory string
	Brand       string
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   *float64
	Status      string
	Featured    *bool
	Search      string

	SortBy    string
	SortOrder string
}

func DefaultProductListQuery() ProductListQuery {
	return ProductListQuery{
		Page:      1,
		Limit:     10,
		Status:    string(StatusActive),
		SortBy:    "createdAt",
		SortOrder: "desc",
	}
}

func (q ProductListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination is the metadata block accompanying every list response.
type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalProducts int64 `json:"totalProducts"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalProducts: total,
		HasNextPage:   page < totalPages,
		HasPrevPage:   page > 1,
	}
}
