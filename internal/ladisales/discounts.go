package ladisales

import (
	"context"
	"strings"
)

// Discount type codes used by the upstream API.
const (
	DiscountTypeFixed      = 1
	DiscountTypePercentage = 2
)

// allRule is the upstream's "applies to everything" rule map.
func allRule() map[string]int {
	return map[string]int{"1": 1}
}

// CoerceDiscountType maps the accepted spellings of a discount type to the
// upstream's numeric code. Numeric input passes through; "percentage" maps
// to 2 and anything else textual maps to fixed, matching upstream tooling.
func CoerceDiscountType(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case string:
		if strings.EqualFold(t, "percentage") {
			return DiscountTypePercentage
		}
		return DiscountTypeFixed
	default:
		return DiscountTypeFixed
	}
}

// DiscountCreate carries the fields accepted by discount/create.
type DiscountCreate struct {
	Name           string
	Code           string
	Type           int
	Value          string
	ApplyTo        map[string]int
	MinRequirement map[string]int
	CustomerGroups map[string]int
	UsageLimit     *int
	OnePerCustomer int
	StartDate      *string
	EndDate        *string
	RuleType       int
	AllowPromotion int
}

// DiscountUpdate carries the optional fields for discount/update. Nil
// fields are not sent.
type DiscountUpdate struct {
	Name           *string
	Code           *string
	Type           *int
	Value          *string
	ApplyTo        map[string]int
	MinRequirement map[string]int
	CustomerGroups map[string]int
	UsageLimit     *int
	OnePerCustomer *int
	StartDate      *string
	EndDate        *string
	RuleType       *int
	AllowPromotion *int
}

// CreateDiscount creates a discount code. Rule maps default to the
// upstream's "all" rule when unset, matching the platform's own console.
func (c *Client) CreateDiscount(ctx context.Context, d DiscountCreate) (Document, error) {
	const op = "discount/create"
	if d.Name == "" {
		return nil, NewValidation(op, "name is required")
	}
	if d.Code == "" {
		return nil, NewValidation(op, "code is required")
	}
	if d.Type != DiscountTypeFixed && d.Type != DiscountTypePercentage {
		return nil, NewValidation(op, "type must be %d (fixed) or %d (percentage), got %d",
			DiscountTypeFixed, DiscountTypePercentage, d.Type)
	}
	if d.Value == "" {
		return nil, NewValidation(op, "value is required")
	}

	if d.ApplyTo == nil {
		d.ApplyTo = allRule()
	}
	if d.MinRequirement == nil {
		d.MinRequirement = allRule()
	}
	if d.CustomerGroups == nil {
		d.CustomerGroups = allRule()
	}
	if d.RuleType == 0 {
		d.RuleType = 1
	}

	body := map[string]any{
		"discount": map[string]any{
			"name":             d.Name,
			"code":             d.Code,
			"type":             d.Type,
			"value":            d.Value,
			"apply_to":         d.ApplyTo,
			"min_requirement":  d.MinRequirement,
			"customer_groups":  d.CustomerGroups,
			"usage_limit":      d.UsageLimit,
			"one_per_customer": d.OnePerCustomer,
			"start_date":       d.StartDate,
			"end_date":         d.EndDate,
			"rule_type":        d.RuleType,
			"allow_promotion":  d.AllowPromotion,
		},
	}
	return c.post(ctx, c.baseURL, op, body)
}

// UpdateDiscount updates a discount, sending only the provided fields.
func (c *Client) UpdateDiscount(ctx context.Context, discountID int, d DiscountUpdate) (Document, error) {
	const op = "discount/update"
	if discountID <= 0 {
		return nil, NewValidation(op, "discount_id must be positive, got %d", discountID)
	}

	fields := map[string]any{"discount_id": discountID}
	if d.Name != nil {
		fields["name"] = *d.Name
	}
	if d.Code != nil {
		fields["code"] = *d.Code
	}
	if d.Type != nil {
		fields["type"] = *d.Type
	}
	if d.Value != nil {
		fields["value"] = *d.Value
	}
	if d.ApplyTo != nil {
		fields["apply_to"] = d.ApplyTo
	}
	if d.MinRequirement != nil {
		fields["min_requirement"] = d.MinRequirement
	}
	if d.CustomerGroups != nil {
		fields["customer_groups"] = d.CustomerGroups
	}
	if d.UsageLimit != nil {
		fields["usage_limit"] = *d.UsageLimit
	}
	if d.OnePerCustomer != nil {
		fields["one_per_customer"] = *d.OnePerCustomer
	}
	if d.StartDate != nil {
		fields["start_date"] = *d.StartDate
	}
	if d.EndDate != nil {
		fields["end_date"] = *d.EndDate
	}
	if d.RuleType != nil {
		fields["rule_type"] = *d.RuleType
	}
	if d.AllowPromotion != nil {
		fields["allow_promotion"] = *d.AllowPromotion
	}

	return c.post(ctx, c.baseURL, op, map[string]any{"discount": fields})
}

// DeleteDiscount removes a discount by ID.
func (c *Client) DeleteDiscount(ctx context.Context, discountID int) (Document, error) {
	const op = "discount/delete"
	if discountID <= 0 {
		return nil, NewValidation(op, "discount_id must be positive, got %d", discountID)
	}
	return c.post(ctx, c.baseURL, op, map[string]any{"discount_id": discountID})
}

// SearchProductTags searches product tags; empty search returns all.
func (c *Client) SearchProductTags(ctx context.Context, search string) (Document, error) {
	return c.post(ctx, c.baseURL, "product-tag/search", map[string]any{"search": search})
}

// SearchProductVariants searches product variants; empty search returns all.
func (c *Client) SearchProductVariants(ctx context.Context, search string) (Document, error) {
	return c.post(ctx, c.baseURL, "product-variant/search", map[string]any{"search": search})
}

// SearchCustomerTags searches customer tags; empty search returns all.
func (c *Client) SearchCustomerTags(ctx context.Context, search string) (Document, error) {
	return c.post(ctx, c.baseURL, "customer-tag/search", map[string]any{"search": search})
}
