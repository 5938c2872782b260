package ladisales

import (
	"context"
	"iter"
)

// ProductCreate carries the fields accepted by product/create. Options,
// variants, and similar nested structures are upstream-owned shapes and pass
// through untouched.
type ProductCreate struct {
	Name             string     `json:"name"`
	AliasName        string     `json:"alias_name"`
	Description      string     `json:"description"`
	InventoryChecked int        `json:"inventory_checked"`
	Type             string     `json:"type"`
	CheckoutConfigID *int       `json:"checkout_config_id"`
	Status           string     `json:"status"`
	ExternalLink     string     `json:"external_link"`
	Tags             []string   `json:"tags"`
	Options          []Document `json:"options"`
	Variants         []Document `json:"variants"`
	Images           []string   `json:"images"`
	ProductUpSells   []int      `json:"product_up_sells"`
}

// ProductUpdate carries the fields accepted by product/update. Optional
// fields are pointers; nil fields are omitted from the request so the
// upstream keeps its current values.
type ProductUpdate struct {
	ProductID            int        `json:"product_id"`
	Name                 string     `json:"name"`
	AliasName            string     `json:"alias_name"`
	Domain               *string    `json:"domain,omitempty"`
	Path                 *string    `json:"path,omitempty"`
	PaymentRedirectURL   *string    `json:"payment_redirect_url,omitempty"`
	PaymentRedirectAfter *int       `json:"payment_redirect_after,omitempty"`
	Description          *string    `json:"description,omitempty"`
	Price                *string    `json:"price,omitempty"`
	PriceCompare         *string    `json:"price_compare,omitempty"`
	CostPerItem          *string    `json:"cost_per_item,omitempty"`
	SKU                  *string    `json:"sku,omitempty"`
	Weight               *string    `json:"weight,omitempty"`
	WeightUnit           *string    `json:"weight_unit,omitempty"`
	InventoryChecked     *int       `json:"inventory_checked,omitempty"`
	Quantity             *int       `json:"quantity,omitempty"`
	Type                 *string    `json:"type,omitempty"`
	CheckoutConfigID     *int       `json:"checkout_config_id,omitempty"`
	Status               *string    `json:"status,omitempty"`
	ExternalLink         *string    `json:"external_link,omitempty"`
	Variants             []Document `json:"variants,omitempty"`
	Tags                 []string   `json:"tags,omitempty"`
	ProductUpSells       []int      `json:"product_up_sells,omitempty"`
	IsPublish            *bool      `json:"is_publish,omitempty"`
}

// ListProducts traverses product/list page by page.
func (c *Client) ListProducts(ctx context.Context, startPage, pageSize, maxItems int) iter.Seq2[Page, error] {
	return c.ListPages(ctx, ListRequest{
		Op:        "product/list",
		StartPage: startPage,
		PageSize:  pageSize,
		MaxItems:  maxItems,
	})
}

// GetProduct fetches one product by ID.
func (c *Client) GetProduct(ctx context.Context, productID int) (Document, error) {
	const op = "product/show"
	if productID <= 0 {
		return nil, NewValidation(op, "product_id must be positive, got %d", productID)
	}
	return c.post(ctx, c.baseURL, op, map[string]any{"product_id": productID})
}

// CreateProduct creates a product. Options require variants: an option set
// without concrete variants is not a sellable product upstream.
func (c *Client) CreateProduct(ctx context.Context, p ProductCreate) (Document, error) {
	const op = "product/create"
	if p.Name == "" {
		return nil, NewValidation(op, "name is required")
	}
	if p.AliasName == "" {
		return nil, NewValidation(op, "alias_name is required")
	}
	if len(p.Options) > 0 && len(p.Variants) == 0 {
		return nil, NewValidation(op, "variants are required when options are provided")
	}

	if p.Type == "" {
		p.Type = "Physical"
	}
	if p.Status == "" {
		p.Status = "Active"
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Options == nil {
		p.Options = []Document{}
	}
	if p.Variants == nil {
		p.Variants = []Document{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.ProductUpSells == nil {
		p.ProductUpSells = []int{}
	}

	return c.post(ctx, c.baseURL, op, map[string]any{"product": p})
}

// UpdateProduct updates a product, sending only the provided fields.
func (c *Client) UpdateProduct(ctx context.Context, p ProductUpdate) (Document, error) {
	const op = "product/update"
	if p.ProductID <= 0 {
		return nil, NewValidation(op, "product_id must be positive, got %d", p.ProductID)
	}
	if p.Name == "" {
		return nil, NewValidation(op, "name is required")
	}
	if p.AliasName == "" {
		return nil, NewValidation(op, "alias_name is required")
	}
	return c.post(ctx, c.baseURL, op, map[string]any{"product": p})
}

// DeleteProduct removes a product by ID.
func (c *Client) DeleteProduct(ctx context.Context, productID int) (Document, error) {
	const op = "product/delete"
	if productID <= 0 {
		return nil, NewValidation(op, "product_id must be positive, got %d", productID)
	}
	return c.post(ctx, c.baseURL, op, map[string]any{"product_id": productID})
}

// ListCheckoutConfigs fetches the available checkout configurations.
func (c *Client) ListCheckoutConfigs(ctx context.Context) (Document, error) {
	return c.post(ctx, c.baseURL, "checkout-config/list", nil)
}
