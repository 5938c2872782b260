package ladisales

import "context"

// Address lookups are served from a separate upstream host than the rest of
// the API, so every call here goes through locationBaseURL.

// ListCountries fetches the known countries.
func (c *Client) ListCountries(ctx context.Context) (Document, error) {
	return c.post(ctx, c.locationBaseURL, "address/country/list", nil)
}

// ListStates fetches the states/provinces of a country.
func (c *Client) ListStates(ctx context.Context, countryCode string) (Document, error) {
	const op = "address/state/list"
	if countryCode == "" {
		return nil, NewValidation(op, "country_code is required")
	}
	return c.post(ctx, c.locationBaseURL, op, map[string]any{"country_code": countryCode})
}

// ListDistricts fetches the districts of a state.
func (c *Client) ListDistricts(ctx context.Context, countryCode string, stateID int) (Document, error) {
	const op = "address/district/list"
	if countryCode == "" {
		return nil, NewValidation(op, "country_code is required")
	}
	if stateID <= 0 {
		return nil, NewValidation(op, "state_id must be positive, got %d", stateID)
	}
	return c.post(ctx, c.locationBaseURL, op, map[string]any{
		"country_code": countryCode,
		"state_id":     stateID,
	})
}

// ListWards fetches the wards of a district.
func (c *Client) ListWards(ctx context.Context, countryCode string, stateID, districtID int) (Document, error) {
	const op = "address/ward/list"
	if countryCode == "" {
		return nil, NewValidation(op, "country_code is required")
	}
	if stateID <= 0 {
		return nil, NewValidation(op, "state_id must be positive, got %d", stateID)
	}
	if districtID <= 0 {
		return nil, NewValidation(op, "district_id must be positive, got %d", districtID)
	}
	return c.post(ctx, c.locationBaseURL, op, map[string]any{
		"country_code": countryCode,
		"state_id":     stateID,
		"district_id":  districtID,
	})
}
