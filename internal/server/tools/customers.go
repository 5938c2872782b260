package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ladiops/ladisales-mcp/internal/ladisales"
)

type getCustomerInput struct {
	CustomerID string `json:"customer_id" jsonschema:"the unique identifier of the customer"`
}

type customerIDInput struct {
	CustomerID int `json:"customer_id" jsonschema:"the unique identifier of the customer"`
}

type createCustomerInput struct {
	FirstName    string               `json:"first_name" jsonschema:"customer first name"`
	LastName     string               `json:"last_name,omitempty" jsonschema:"customer last name"`
	Email        string               `json:"email" jsonschema:"customer email, unique upstream"`
	Phone        string               `json:"phone" jsonschema:"customer phone number, unique upstream"`
	Note         *string              `json:"note,omitempty" jsonschema:"free-form note"`
	Tags         []string             `json:"tags,omitempty" jsonschema:"customer tags"`
	CustomFields []ladisales.Document `json:"custom_fields,omitempty" jsonschema:"custom field entries"`
	Address      ladisales.Document   `json:"address,omitempty" jsonschema:"customer address object"`
	RefType      string               `json:"ref_type,omitempty" jsonschema:"traffic source tag, defaults to ls"`
}

type updateCustomerInput struct {
	CustomerID   int                  `json:"customer_id" jsonschema:"the unique identifier of the customer"`
	FirstName    *string              `json:"first_name,omitempty" jsonschema:"customer first name"`
	LastName     *string              `json:"last_name,omitempty" jsonschema:"customer last name"`
	Email        *string              `json:"email,omitempty" jsonschema:"customer email"`
	Phone        *string              `json:"phone,omitempty" jsonschema:"customer phone number"`
	Note         *string              `json:"note,omitempty" jsonschema:"free-form note"`
	Tags         []string             `json:"tags,omitempty" jsonschema:"replacement tag set"`
	CustomFields []ladisales.Document `json:"custom_fields,omitempty" jsonschema:"replacement custom field entries"`
}

type searchInput struct {
	Search string `json:"search,omitempty" jsonschema:"search term; empty returns everything"`
}

func registerCustomerTools(r *Registry) error {
	if err := add(r, &mcp.Tool{
		Name:        "get_customer",
		Description: "Get detailed information about a specific customer.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in getCustomerInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.GetCustomer(ctx, in.CustomerID)
		return nil, doc, err
	}); err != nil {
		return err
	}

	if err := add(r, &mcp.Tool{
		Name:        "create_customer",
		Description: "Create a new customer. Email and phone must be unique.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in createCustomerInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.CreateCustomer(ctx, ladisales.CustomerCreate{
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        in.Email,
			Phone:        in.Phone,
			Note:         in.Note,
			Tags:         in.Tags,
			CustomFields: in.CustomFields,
			Address:      in.Address,
			RefType:      in.RefType,
		})
		return nil, doc, err
	}); err != nil {
		return err
	}

	if err := add(r, &mcp.Tool{
		Name:        "update_customer",
		Description: "Update an existing customer. Only the provided fields are changed.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in updateCustomerInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.UpdateCustomer(ctx, in.CustomerID, ladisales.CustomerUpdate{
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        in.Email,
			Phone:        in.Phone,
			Note:         in.Note,
			Tags:         in.Tags,
			CustomFields: in.CustomFields,
		})
		return nil, doc, err
	}); err != nil {
		return err
	}

	if err := add(r, &mcp.Tool{
		Name:        "delete_customer",
		Description: "Delete a customer permanently. This cannot be undone.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in customerIDInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.DeleteCustomer(ctx, in.CustomerID)
		return nil, doc, err
	}); err != nil {
		return err
	}

	return add(r, &mcp.Tool{
		Name:        "search_customers",
		Description: "Search customers by name, email, or phone number.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in searchInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.SearchCustomers(ctx, in.Search)
		return nil, doc, err
	})
}
