package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ladiops/ladisales-mcp/internal/ladisales"
)

type createDiscountInput struct {
	Name           string         `json:"name" jsonschema:"discount display name"`
	Code           string         `json:"code" jsonschema:"the code customers enter at checkout"`
	Type           any            `json:"type" jsonschema:"discount type: 1 or fixed for a fixed amount, 2 or percentage"`
	Value          string         `json:"value" jsonschema:"discount amount or percentage value"`
	ApplyTo        map[string]int `json:"apply_to,omitempty" jsonschema:"product rule map; defaults to all products"`
	MinRequirement map[string]int `json:"min_requirement,omitempty" jsonschema:"minimum requirement rule map; defaults to none"`
	CustomerGroups map[string]int `json:"customer_groups,omitempty" jsonschema:"customer group rule map; defaults to everyone"`
	UsageLimit     *int           `json:"usage_limit,omitempty" jsonschema:"how many times the code can be used in total"`
	OnePerCustomer int            `json:"one_per_customer,omitempty" jsonschema:"1 to limit to one use per customer"`
	StartDate      *string        `json:"start_date,omitempty" jsonschema:"activation date"`
	EndDate        *string        `json:"end_date,omitempty" jsonschema:"expiry date"`
	RuleType       int            `json:"rule_type,omitempty" jsonschema:"rule type code (default 1)"`
	AllowPromotion int            `json:"allow_promotion,omitempty" jsonschema:"1 to allow combining with promotions"`
}

type updateDiscountInput struct {
	DiscountID     int            `json:"discount_id" jsonschema:"the unique identifier of the discount"`
	Name           *string        `json:"name,omitempty" jsonschema:"discount display name"`
	Code           *string        `json:"code,omitempty" jsonschema:"the code customers enter at checkout"`
	Type           any            `json:"type,omitempty" jsonschema:"discount type: 1 or fixed for a fixed amount, 2 or percentage"`
	Value          *string        `json:"value,omitempty" jsonschema:"discount amount or percentage value"`
	ApplyTo        map[string]int `json:"apply_to,omitempty" jsonschema:"product rule map"`
	MinRequirement map[string]int `json:"min_requirement,omitempty" jsonschema:"minimum requirement rule map"`
	CustomerGroups map[string]int `json:"customer_groups,omitempty" jsonschema:"customer group rule map"`
	UsageLimit     *int           `json:"usage_limit,omitempty" jsonschema:"how many times the code can be used in total"`
	OnePerCustomer *int           `json:"one_per_customer,omitempty" jsonschema:"1 to limit to one use per customer"`
	StartDate      *string        `json:"start_date,omitempty" jsonschema:"activation date"`
	EndDate        *string        `json:"end_date,omitempty" jsonschema:"expiry date"`
	RuleType       *int           `json:"rule_type,omitempty" jsonschema:"rule type code"`
	AllowPromotion *int           `json:"allow_promotion,omitempty" jsonschema:"1 to allow combining with promotions"`
}

type discountIDInput struct {
	DiscountID int `json:"discount_id" jsonschema:"the unique identifier of the discount"`
}

func registerDiscountTools(r *Registry) error {
	if err := add(r, &mcp.Tool{
		Name:        "create_discount",
		Description: "Create a discount code. Rule maps default to applying everywhere.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in createDiscountInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.CreateDiscount(ctx, ladisales.DiscountCreate{
			Name:           in.Name,
			Code:           in.Code,
			Type:           ladisales.CoerceDiscountType(in.Type),
			Value:          in.Value,
			ApplyTo:        in.ApplyTo,
			MinRequirement: in.MinRequirement,
			CustomerGroups: in.CustomerGroups,
			UsageLimit:     in.UsageLimit,
			OnePerCustomer: in.OnePerCustomer,
			StartDate:      in.StartDate,
			EndDate:        in.EndDate,
			RuleType:       in.RuleType,
			AllowPromotion: in.AllowPromotion,
		})
		return nil, doc, err
	}); err != nil {
		return err
	}

	if err := add(r, &mcp.Tool{
		Name:        "update_discount",
		Description: "Update a discount. Only the provided fields are changed.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in updateDiscountInput) (*mcp.CallToolResult, ladisales.Document, error) {
		var discountType *int
		if in.Type != nil {
			coerced := ladisales.CoerceDiscountType(in.Type)
			discountType = &coerced
		}
		doc, err := r.client.UpdateDiscount(ctx, in.DiscountID, ladisales.DiscountUpdate{
			Name:           in.Name,
			Code:           in.Code,
			Type:           discountType,
			Value:          in.Value,
			ApplyTo:        in.ApplyTo,
			MinRequirement: in.MinRequirement,
			CustomerGroups: in.CustomerGroups,
			UsageLimit:     in.UsageLimit,
			OnePerCustomer: in.OnePerCustomer,
			StartDate:      in.StartDate,
			EndDate:        in.EndDate,
			RuleType:       in.RuleType,
			AllowPromotion: in.AllowPromotion,
		})
		return nil, doc, err
	}); err != nil {
		return err
	}

	if err := add(r, &mcp.Tool{
		Name:        "delete_discount",
		Description: "Delete a discount permanently.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in discountIDInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.DeleteDiscount(ctx, in.DiscountID)
		return nil, doc, err
	}); err != nil {
		return err
	}

	if err := add(r, &mcp.Tool{
		Name:        "search_product_tags",
		Description: "Search product tags by name.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in searchInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.SearchProductTags(ctx, in.Search)
		return nil, doc, err
	}); err != nil {
		return err
	}

	if err := add(r, &mcp.Tool{
		Name:        "search_product_variants",
		Description: "Search product variants by name or SKU.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in searchInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.SearchProductVariants(ctx, in.Search)
		return nil, doc, err
	}); err != nil {
		return err
	}

	return add(r, &mcp.Tool{
		Name:        "search_customer_tags",
		Description: "Search customer tags by name.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in searchInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.SearchCustomerTags(ctx, in.Search)
		return nil, doc, err
	})
}
