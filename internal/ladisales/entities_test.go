package ladisales

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okUpstream(t *testing.T) *countingUpstream {
	t.Helper()
	return newCountingUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, map[string]any{"ok": true})
	})
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCreateProductAppliesDefaults(t *testing.T) {
	upstream := okUpstream(t)
	client := newTestClient(t, upstream)

	_, err := client.CreateProduct(context.Background(), ProductCreate{
		Name:      "Shirt",
		AliasName: "shirt",
	})
	require.NoError(t, err)

	body := upstream.last.Load().Body
	product, ok := body["product"].(map[string]any)
	require.True(t, ok, "payload must be wrapped in a product envelope")
	assert.Equal(t, "Physical", product["type"])
	assert.Equal(t, "Active", product["status"])
	assert.Equal(t, []any{}, product["tags"], "nil slices are sent as empty arrays")
	assert.Equal(t, []any{}, product["variants"])
}

func TestCreateProductKeepsExplicitValues(t *testing.T) {
	upstream := okUpstream(t)
	client := newTestClient(t, upstream)

	_, err := client.CreateProduct(context.Background(), ProductCreate{
		Name:      "Course",
		AliasName: "course",
		Type:      "Event",
		Status:    "Inactive",
		Tags:      []string{"digital"},
	})
	require.NoError(t, err)

	product := upstream.last.Load().Body["product"].(map[string]any)
	assert.Equal(t, "Event", product["type"])
	assert.Equal(t, "Inactive", product["status"])
	assert.Equal(t, []any{"digital"}, product["tags"])
}

func TestUpdateProductOmitsUnsetFields(t *testing.T) {
	upstream := okUpstream(t)
	client := newTestClient(t, upstream)

	_, err := client.UpdateProduct(context.Background(), ProductUpdate{
		ProductID: 9,
		Name:      "Shirt",
		AliasName: "shirt",
		Price:     strPtr("199000"),
	})
	require.NoError(t, err)

	product := upstream.last.Load().Body["product"].(map[string]any)
	assert.EqualValues(t, 9, product["product_id"])
	assert.Equal(t, "199000", product["price"])
	assert.NotContains(t, product, "description")
	assert.NotContains(t, product, "status")
	assert.NotContains(t, product, "variants")
}

func TestUpdateProductRequiresIdentity(t *testing.T) {
	upstream := okUpstream(t)
	client := newTestClient(t, upstream)

	cases := []ProductUpdate{
		{Name: "n", AliasName: "a"},
		{ProductID: 5, AliasName: "a"},
		{ProductID: 5, Name: "n"},
	}
	for _, p := range cases {
		_, err := client.UpdateProduct(context.Background(), p)
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
	}
	assert.EqualValues(t, 0, upstream.Calls())
}

func TestCreateCustomerDefaultsRefType(t *testing.T) {
	upstream := okUpstream(t)
	client := newTestClient(t, upstream)

	_, err := client.CreateCustomer(context.Background(), CustomerCreate{
		FirstName: "An",
		Email:     "an@example.com",
		Phone:     "0900000000",
	})
	require.NoError(t, err)

	customer := upstream.last.Load().Body["customer"].(map[string]any)
	assert.Equal(t, "ls", customer["ref_type"])
	assert.Equal(t, []any{}, customer["tags"])
	assert.Equal(t, map[string]any{}, customer["address"])
}

func TestUpdateCustomerSendsOnlyProvidedFields(t *testing.T) {
	upstream := okUpstream(t)
	client := newTestClient(t, upstream)

	_, err := client.UpdateCustomer(context.Background(), 12, CustomerUpdate{
		Email: strPtr("new@example.com"),
		Note:  strPtr(""),
	})
	require.NoError(t, err)

	customer := upstream.last.Load().Body["customer"].(map[string]any)
	assert.EqualValues(t, 12, customer["customer_id"])
	assert.Equal(t, "new@example.com", customer["email"])
	assert.Equal(t, "", customer["note"], "explicit empty string still updates")
	assert.NotContains(t, customer, "first_name")
	assert.NotContains(t, customer, "phone")
	assert.NotContains(t, customer, "tags")
}

func TestCoerceDiscountType(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{float64(2), DiscountTypePercentage},
		{float64(1), DiscountTypeFixed},
		{1, DiscountTypeFixed},
		{"percentage", DiscountTypePercentage},
		{"PERCENTAGE", DiscountTypePercentage},
		{"fixed", DiscountTypeFixed},
		{"anything", DiscountTypeFixed},
		{nil, DiscountTypeFixed},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CoerceDiscountType(tc.in), "input %v", tc.in)
	}
}

func TestCreateDiscountDefaultsRuleMaps(t *testing.T) {
	upstream := okUpstream(t)
	client := newTestClient(t, upstream)

	_, err := client.CreateDiscount(context.Background(), DiscountCreate{
		Name:  "Summer",
		Code:  "SUMMER10",
		Type:  DiscountTypePercentage,
		Value: "10",
	})
	require.NoError(t, err)

	discount := upstream.last.Load().Body["discount"].(map[string]any)
	all := map[string]any{"1": float64(1)}
	assert.Equal(t, all, discount["apply_to"])
	assert.Equal(t, all, discount["min_requirement"])
	assert.Equal(t, all, discount["customer_groups"])
	assert.EqualValues(t, 1, discount["rule_type"])
	assert.EqualValues(t, DiscountTypePercentage, discount["type"])
}

func TestCreateDiscountRejectsBadType(t *testing.T) {
	upstream := okUpstream(t)
	client := newTestClient(t, upstream)

	_, err := client.CreateDiscount(context.Background(), DiscountCreate{
		Name:  "Bad",
		Code:  "BAD",
		Type:  7,
		Value: "10",
	})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.EqualValues(t, 0, upstream.Calls())
}

func TestUpdateDiscountSendsOnlyProvidedFields(t *testing.T) {
	upstream := okUpstream(t)
	client := newTestClient(t, upstream)

	_, err := client.UpdateDiscount(context.Background(), 3, DiscountUpdate{
		Value:      strPtr("25"),
		UsageLimit: intPtr(100),
	})
	require.NoError(t, err)

	discount := upstream.last.Load().Body["discount"].(map[string]any)
	assert.EqualValues(t, 3, discount["discount_id"])
	assert.Equal(t, "25", discount["value"])
	assert.EqualValues(t, 100, discount["usage_limit"])
	assert.NotContains(t, discount, "name")
	assert.NotContains(t, discount, "code")
	assert.NotContains(t, discount, "apply_to")
}

func TestSearchOperationsSendSearchTerm(t *testing.T) {
	upstream := okUpstream(t)
	client := newTestClient(t, upstream)
	ctx := context.Background()

	calls := []struct {
		name string
		path string
		call func() (Document, error)
	}{
		{"customers", "/customer/search", func() (Document, error) { return client.SearchCustomers(ctx, "an") }},
		{"product tags", "/product-tag/search", func() (Document, error) { return client.SearchProductTags(ctx, "an") }},
		{"variants", "/product-variant/search", func() (Document, error) { return client.SearchProductVariants(ctx, "an") }},
		{"customer tags", "/customer-tag/search", func() (Document, error) { return client.SearchCustomerTags(ctx, "an") }},
	}
	for _, tc := range calls {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.call()
			require.NoError(t, err)
			captured := upstream.last.Load()
			assert.Equal(t, tc.path, captured.Path)
			assert.Equal(t, "an", captured.Body["search"])
		})
	}
}

func TestLocationCallsUseLocationBase(t *testing.T) {
	locations := newCountingUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, map[string]any{"items": []any{}})
	})
	core := okUpstream(t)
	client, err := New(core.URL, "test-key", WithLocationBaseURL(locations.URL))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = client.ListCountries(ctx)
	require.NoError(t, err)
	_, err = client.ListStates(ctx, "VN")
	require.NoError(t, err)
	_, err = client.ListDistricts(ctx, "VN", 201)
	require.NoError(t, err)
	_, err = client.ListWards(ctx, "VN", 201, 1482)
	require.NoError(t, err)

	assert.EqualValues(t, 4, locations.Calls())
	assert.EqualValues(t, 0, core.Calls(), "address lookups never touch the core API")

	captured := locations.last.Load()
	assert.Equal(t, "/address/ward/list", captured.Path)
	assert.Equal(t, "VN", captured.Body["country_code"])
	assert.EqualValues(t, 201, captured.Body["state_id"])
	assert.EqualValues(t, 1482, captured.Body["district_id"])
}
