package model

// Patch types give partial updates an explicit shape: every field is
// optional and only supplied fields are merged. Unknown JSON keys are
// dropped by the decoder instead of being written through blindly.

type PricePatch struct {
	Original   *float64 `json:"original" validate:"omitempty,gte=0"`
	Discounted *float64 `json:"discounted" validate:"omitempty,gte=0"`
	Currency   *string  `json:"currency"`
}

type StockPatch struct {
	Quantity *int `json:"quantity" validate:"omitempty,gte=0"`
	Reserved *int `json:"reserved" validate:"omitempty,gte=0"`
}

// ProductPatch deliberately has no ratings or reviews fields: the
// aggregates are derived and reviews go through the add-review flow.
type ProductPatch struct {
	SKU              *string         `json:"sku"`
	Title            *string         `json:"title"`
	Description      *string         `json:"description"`
	ShortDescription *string         `json:"shortDescription" validate:"omitempty,max=200"`
	Images           []string        `json:"images"`
	Price            *PricePatch     `json:"price"`
	Category         *string         `json:"category"`
	SubCategory      *string         `json:"subCategory"`
	Brand            *string         `json:"brand"`
	Stock            *StockPatch     `json:"stock"`
	Specifications   *Specifications `json:"specifications"`
	Tags             []string        `json:"tags"`
	Status           *ProductStatus  `json:"status" validate:"omitempty,oneof=active inactive discontinued out-of-stock"`
	Featured         *bool           `json:"featured"`
	Shipping         *ShippingInfo   `json:"shippingInfo"`
	Seo              *SeoInfo        `json:"seoInfo"`
}

// Apply merges the supplied fields into p. Available is re-derived
// whenever the patch touches quantity or reserved.
func (patch *ProductPatch) Apply(p *Product) {
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ShortDescription != nil {
		p.ShortDescription = *patch.ShortDescription
	}
	if patch.Images != nil {
		p.Images = patch.Images
	}
	if patch.Price != nil {
		if patch.Price.Original != nil {
			p.Price.Original = *patch.Price.Original
		}
		if patch.Price.Discounted != nil {
			p.Price.Discounted = patch.Price.Discounted
		}
		if patch.Price.Currency != nil {
			p.Price.Currency = *patch.Price.Currency
		}
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.SubCategory != nil {
		p.SubCategory = *patch.SubCategory
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Stock != nil {
		if patch.Stock.Quantity != nil {
			p.Stock.Quantity = *patch.Stock.Quantity
		}
		if patch.Stock.Reserved != nil {
			p.Stock.Reserved = *patch.Stock.Reserved
		}
		p.Stock.Recompute()
	}
	if patch.Specifications != nil {
		p.Specifications = *patch.Specifications
	}
	if patch.Tags != nil {
		p.Tags = patch.Tags
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Shipping != nil {
		p.Shipping = *patch.Shipping
	}
	if patch.Seo != nil {
		p.Seo = *patch.Seo
	}
}

type UserPatch struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	ProfilePic  *string `json:"profilePic"`
}

func (patch *UserPatch) Apply(u *User) {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Address != nil {
		u.Address = *patch.Address
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.Description != nil {
		u.Description = *patch.Description
	}
	if patch.ProfilePic != nil {
		u.ProfilePic = *patch.ProfilePic
	}
}

type QuotePatch struct {
	Quote       *string `json:"quote"`
	Author      *string `json:"author"`
	Likes       *int    `json:"likes"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
}

func (patch *QuotePatch) Apply(q *Quote) {
	if patch.Quote != nil {
		q.Quote = *patch.Quote
	}
	if patch.Author != nil {
		q.Author = *patch.Author
	}
	if patch.Likes != nil {
		q.Likes = *patch.Likes
	}
	if patch.Type != nil {
		q.Type = *patch.Type
	}
	if patch.Description != nil {
		q.Description = *patch.Description
	}
}
