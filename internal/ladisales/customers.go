package ladisales

import "context"

// CustomerCreate carries the fields accepted by customer/create. Email and
// phone must be unique upstream; the upstream enforces that.
type CustomerCreate struct {
	RefType      string     `json:"ref_type"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Note         *string    `json:"note"`
	Tags         []string   `json:"tags"`
	CustomFields []Document `json:"custom_fields"`
	Address      Document   `json:"address"`
}

// CustomerUpdate carries the optional fields for customer/update. Nil
// fields are not sent, leaving upstream values untouched.
type CustomerUpdate struct {
	FirstName    *string    `json:"first_name,omitempty"`
	LastName     *string    `json:"last_name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Note         *string    `json:"note,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	CustomFields []Document `json:"custom_fields,omitempty"`
}

// GetCustomer fetches one customer record.
func (c *Client) GetCustomer(ctx context.Context, customerID string) (Document, error) {
	const op = "customer/show"
	if customerID == "" {
		return nil, NewValidation(op, "customer_id is required")
	}
	return c.post(ctx, c.baseURL, op, map[string]any{"customer_id": customerID})
}

// CreateCustomer creates a customer record.
func (c *Client) CreateCustomer(ctx context.Context, cu CustomerCreate) (Document, error) {
	const op = "customer/create"
	if cu.FirstName == "" {
		return nil, NewValidation(op, "first_name is required")
	}
	if cu.Email == "" {
		return nil, NewValidation(op, "email is required")
	}
	if cu.Phone == "" {
		return nil, NewValidation(op, "phone is required")
	}

	if cu.RefType == "" {
		cu.RefType = "ls"
	}
	if cu.Tags == nil {
		cu.Tags = []string{}
	}
	if cu.CustomFields == nil {
		cu.CustomFields = []Document{}
	}
	if cu.Address == nil {
		cu.Address = Document{}
	}

	return c.post(ctx, c.baseURL, op, map[string]any{"customer": cu})
}

// UpdateCustomer updates a customer, sending only the provided fields.
func (c *Client) UpdateCustomer(ctx context.Context, customerID int, cu CustomerUpdate) (Document, error) {
	const op = "customer/update"
	if customerID <= 0 {
		return nil, NewValidation(op, "customer_id must be positive, got %d", customerID)
	}

	fields := map[string]any{"customer_id": customerID}
	if cu.FirstName != nil {
		fields["first_name"] = *cu.FirstName
	}
	if cu.LastName != nil {
		fields["last_name"] = *cu.LastName
	}
	if cu.Email != nil {
		fields["email"] = *cu.Email
	}
	if cu.Phone != nil {
		fields["phone"] = *cu.Phone
	}
	if cu.Note != nil {
		fields["note"] = *cu.Note
	}
	if cu.Tags != nil {
		fields["tags"] = cu.Tags
	}
	if cu.CustomFields != nil {
		fields["custom_fields"] = cu.CustomFields
	}

	return c.post(ctx, c.baseURL, op, map[string]any{"customer": fields})
}

// DeleteCustomer permanently removes a customer. The upstream does not undo
// this.
func (c *Client) DeleteCustomer(ctx context.Context, customerID int) (Document, error) {
	const op = "customer/delete"
	if customerID <= 0 {
		return nil, NewValidation(op, "customer_id must be positive, got %d", customerID)
	}
	return c.post(ctx, c.baseURL, op, map[string]any{"customer_id": customerID})
}

// SearchCustomers searches customer names, emails, and phone numbers. An
// empty search returns everything the upstream will give.
func (c *Client) SearchCustomers(ctx context.Context, search string) (Document, error) {
	return c.post(ctx, c.baseURL, "customer/search", map[string]any{"search": search})
}
