package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ladiops/ladisales-mcp/internal/ladisales"
)

type listStateInput struct {
	CountryCode string `json:"country_code" jsonschema:"country code, e.g. VN for Vietnam"`
}

type listDistrictInput struct {
	CountryCode string `json:"country_code" jsonschema:"country code, e.g. VN for Vietnam"`
	StateID     int    `json:"state_id" jsonschema:"state or province ID, e.g. 201 for Hanoi"`
}

type listWardInput struct {
	CountryCode string `json:"country_code" jsonschema:"country code, e.g. VN for Vietnam"`
	StateID     int    `json:"state_id" jsonschema:"state or province ID, e.g. 201 for Hanoi"`
	DistrictID  int    `json:"district_id" jsonschema:"district ID within the state"`
}

func registerLocationTools(r *Registry) error {
	if err := add(r, &mcp.Tool{
		Name:        "list_country",
		Description: "Get the list of supported countries with their codes.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.ListCountries(ctx)
		return nil, doc, err
	}); err != nil {
		return err
	}

	if err := add(r, &mcp.Tool{
		Name:        "list_state",
		Description: "Get the states or provinces of a country.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in listStateInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.ListStates(ctx, in.CountryCode)
		return nil, doc, err
	}); err != nil {
		return err
	}

	if err := add(r, &mcp.Tool{
		Name:        "list_district",
		Description: "Get the districts of a state or province.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in listDistrictInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.ListDistricts(ctx, in.CountryCode, in.StateID)
		return nil, doc, err
	}); err != nil {
		return err
	}

	return add(r, &mcp.Tool{
		Name:        "list_ward",
		Description: "Get the wards of a district.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in listWardInput) (*mcp.CallToolResult, ladisales.Document, error) {
		doc, err := r.client.ListWards(ctx, in.CountryCode, in.StateID, in.DistrictID)
		return nil, doc, err
	})
}
