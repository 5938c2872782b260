package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ladiops/ladisales-mcp/internal/ladisales"
)

type listProductsInput struct {
	Page     int `json:"page,omitempty" jsonschema:"page number to start from (default 1)"`
	Limit    int `json:"limit,omitempty" jsonschema:"items per page (default 10)"`
	MaxItems int `json:"max_items,omitempty" jsonschema:"maximum total items to return (default one page)"`
}

type listProductsResult struct {
	Products []ladisales.Document `json:"products" jsonschema:"products in upstream order"`
	Pages    int                  `json:"pages" jsonschema:"number of upstream pages fetched"`
}

type productIDInput struct {
	ProductID int `json:"product_id" jsonschema:"the unique identifier of the product"`
}

type createProductInput struct {
	Name             string               `json:"name" jsonschema:"product name"`
	AliasName        string               `json:"alias_name" jsonschema:"URL alias for the product"`
	Description      string               `json:"description,omitempty" jsonschema:"product description"`
	InventoryChecked int                  `json:"inventory_checked,omitempty" jsonschema:"1 to track inventory, 0 otherwise"`
	Type             string               `json:"type,omitempty" jsonschema:"product type: Physical, Event or Service (default Physical)"`
	CheckoutConfigID *int                 `json:"checkout_config_id,omitempty" jsonschema:"checkout configuration to sell with"`
	Status           string               `json:"status,omitempty" jsonschema:"Active or Inactive (default Active)"`
	ExternalLink     string               `json:"external_link,omitempty" jsonschema:"external sales page link"`
	Tags             []string             `json:"tags,omitempty" jsonschema:"product tags"`
	Options          []ladisales.Document `json:"options,omitempty" jsonschema:"product options; requires variants when set"`
	Variants         []ladisales.Document `json:"variants,omitempty" jsonschema:"concrete variants for the given options"`
	Images           []string             `json:"images,omitempty" jsonschema:"image URLs"`
	ProductUpSells   []int                `json:"product_up_sells,omitempty" jsonschema:"product IDs to up-sell"`
}

type updateProductInput struct {
	ProductID            int                  `json:"product_id" jsonschema:"the unique identifier of the product"`
	Name                 string               `json:"name" jsonschema:"product name"`
	AliasName            string               `json:"alias_name" jsonschema:"URL alias for the product"`
	Domain               *string              `json:"domain,omitempty" jsonschema:"storefront domain"`
	Path                 *string              `json:"path,omitempty" jsonschema:"storefront path"`
	PaymentRedirectURL   *string              `json:"payment_redirect_url,omitempty" jsonschema:"URL to redirect to after payment"`
	PaymentRedirectAfter *int                 `json:"payment_redirect_after,omitempty" jsonschema:"seconds before the payment redirect"`
	Description          *string              `json:"description,omitempty" jsonschema:"product description"`
	Price                *string              `json:"price,omitempty" jsonschema:"selling price"`
	PriceCompare         *string              `json:"price_compare,omitempty" jsonschema:"compare-at price"`
	CostPerItem          *string              `json:"cost_per_item,omitempty" jsonschema:"cost per item"`
	SKU                  *string              `json:"sku,omitempty" jsonschema:"stock keeping unit"`
	Weight               *string              `json:"weight,omitempty" jsonschema:"item weight"`
	WeightUnit           *string              `json:"weight_unit,omitempty" jsonschema:"weight unit, e.g. g or kg"`
	InventoryChecked     *int                 `json:"inventory_checked,omitempty" jsonschema:"1 to track inventory, 0 otherwise"`
	Quantity             *int                 `json:"quantity,omitempty" jsonschema:"stock quantity"`
	Type                 *string              `json:"type,omitempty" jsonschema:"product type: Physical, Event or Service"`
	CheckoutConfigID     *int                 `json:"checkout_config_id,omitempty" jsonschema:"checkout configuration to sell with"`
	Status               *string              `json:"status,omitempty" jsonschema:"Active or Inactive"`
	ExternalLink         *string              `json:"external_link,omitempty" jsonschema:"external sales page link"`
	Variants             []ladisales.Document `json:"variants,omitempty" jsonschema:"replacement variant set"`
	Tags                 []string             `json:"tags,omitempty" jsonschema:"replacement tag set"`
	ProductUpSells       []int                `json:"product_up_sells,omitempty" jsonschema:"product IDs to up-sell"`
	IsPublish            *bool                `json:"is_publish,omitempty" jsonschema:"whether the product page is published"`
}

func registerProductTools(r *Registry) error {
	if err := add(r, &mcp.Tool{
		Name:        "list_products",
		Description: "Get a paginated list of all products.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in listProductsInput) (*mcp.CallToolResult, listProductsResult, error) {
		out := listProductsResult{Products: []ladisales.Document{}}
		for page, err := range r.client.ListProducts(ctx, in.Page, in.Limit, in.MaxItems) {
			if err != nil {
				return nil, listProductsResult{}, err
			}
			out.Products = append(out.Products, page.Items...)
			out.Pages++
			notifyPage(ctx, req, page.Number, len(out.Products))
		}
		return nil, out, nil
	}); err != nil {
		return err
	}

	if err := add(r, &mcp.Tool{
		Name:        "get_product",
		Description: "Get detailed information about a specific product.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in productIDInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.GetProduct(ctx, in.ProductID)
		return nil, doc, err
	}); err != nil {
		return err
	}

	if err := add(r, &mcp.Tool{
		Name:        "create_product",
		Description: "Create a new product. Products with options must include concrete variants.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in createProductInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.CreateProduct(ctx, ladisales.ProductCreate{
			Name:             in.Name,
			AliasName:        in.AliasName,
			Description:      in.Description,
			InventoryChecked: in.InventoryChecked,
			Type:             in.Type,
			CheckoutConfigID: in.CheckoutConfigID,
			Status:           in.Status,
			ExternalLink:     in.ExternalLink,
			Tags:             in.Tags,
			Options:          in.Options,
			Variants:         in.Variants,
			Images:           in.Images,
			ProductUpSells:   in.ProductUpSells,
		})
		return nil, doc, err
	}); err != nil {
		return err
	}

	if err := add(r, &mcp.Tool{
		Name:        "update_product",
		Description: "Update an existing product. Only the provided optional fields are changed.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in updateProductInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.UpdateProduct(ctx, ladisales.ProductUpdate{
			ProductID:            in.ProductID,
			Name:                 in.Name,
			AliasName:            in.AliasName,
			Domain:               in.Domain,
			Path:                 in.Path,
			PaymentRedirectURL:   in.PaymentRedirectURL,
			PaymentRedirectAfter: in.PaymentRedirectAfter,
			Description:          in.Description,
			Price:                in.Price,
			PriceCompare:         in.PriceCompare,
			CostPerItem:          in.CostPerItem,
			SKU:                  in.SKU,
			Weight:               in.Weight,
			WeightUnit:           in.WeightUnit,
			InventoryChecked:     in.InventoryChecked,
			Quantity:             in.Quantity,
			Type:                 in.Type,
			CheckoutConfigID:     in.CheckoutConfigID,
			Status:               in.Status,
			ExternalLink:         in.ExternalLink,
			Variants:             in.Variants,
			Tags:                 in.Tags,
			ProductUpSells:       in.ProductUpSells,
			IsPublish:            in.IsPublish,
		})
		return nil, doc, err
	}); err != nil {
		return err
	}

	if err := add(r, &mcp.Tool{
		Name:        "delete_product",
		Description: "Delete a product permanently.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in productIDInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.DeleteProduct(ctx, in.ProductID)
		return nil, doc, err
	}); err != nil {
		return err
	}

	return add(r, &mcp.Tool{
		Name:        "list_checkout_configs",
		Description: "Get the available checkout configurations.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.ListCheckoutConfigs(ctx)
		return nil, doc, err
	})
}
