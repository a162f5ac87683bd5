package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"order-webhook/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		body string
		want domain.OrderShape
	}{
		{name: "empty payload", body: `{}`, want: domain.ShapeGenericCart},
		{name: "hash name", body: `{"name": "#1001"}`, want: domain.ShapeShopifyLike},
		{name: "name without hash", body: `{"name": "1001"}`, want: domain.ShapeGenericCart},
		{name: "shipping address", body: `{"shipping_address": {"city": "Riyadh"}}`, want: domain.ShapeShopifyLike},
		{name: "empty shipping address", body: `{"shipping_address": {}}`, want: domain.ShapeGenericCart},
		{name: "text shipping address", body: `{"shipping_address": "Riyadh"}`, want: domain.ShapeGenericCart},
		{name: "billing address", body: `{"billing_address": {"name": "A"}}`, want: domain.ShapeShopifyLike},
		{name: "line items", body: `{"line_items": [{"title": "X"}]}`, want: domain.ShapeShopifyLike},
		{name: "empty line items", body: `{"line_items": []}`, want: domain.ShapeGenericCart},
		{
			name: "cart items override storefront signals",
			body: `{"name": "#1001", "line_items": [{"title": "X"}], "shipping_address": {"city": "R"}, "cart_items": [{"price": 1}]}`,
			want: domain.ShapeGenericCart,
		},
		{
			name: "empty cart items do not override",
			body: `{"name": "#1001", "cart_items": []}`,
			want: domain.ShapeShopifyLike,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(decode(t, tt.body)))
		})
	}
}

func TestExtract_Shopify(t *testing.T) {
	raw := decode(t, `{
		"name": "#1042",
		"id": 5001,
		"phone": "0500000000",
		"total_price": "180.00",
		"shipping_address": {
			"first_name": "Sara",
			"last_name": " Ali\n",
			"phone": "+966 55 123 4567",
			"country_code": "SA",
			"country": "Saudi Arabia",
			"address1": "King Fahd Rd",
			"address2": "",
			"city": "Riyadh",
			"province": "Riyadh Region",
			"zip": "12211"
		},
		"line_items": [
			{"title": "Oud Perfume", "price": "120.00", "quantity": 3},
			{"title": "Gift Box", "price": "30.00", "quantity": 1},
			{"title": "Card", "price": "0.00", "quantity": 1}
		],
		"shipping_lines": [{"price": "30.00"}]
	}`)

	order := Extract(raw, ksaStore)

	assert.Equal(t, domain.ShapeShopifyLike, order.Shape)
	assert.Equal(t, "Sara Ali", order.CustomerName)
	assert.Equal(t, "+966 55 123 4567", order.CustomerPhoneRaw)
	assert.Equal(t, "#1042", order.OrderID)
	assert.Equal(t, "SA", order.CountryHint)
	assert.Equal(t, "Oud Perfume + 2 منتجات أخرى", order.ProductLabel)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, "120.00", order.PriceRaw)
	assert.Equal(t, "30.00", order.ShippingRaw)
	assert.Equal(t, "King Fahd Rd - Riyadh - Riyadh Region - 12211", order.DetailedAddress)
	assert.Equal(t, "", order.NationalAddressRaw)
}

func TestExtract_ShopifyFallbacks(t *testing.T) {
	raw := decode(t, `{
		"order_number": 1043,
		"total_price": "99.00",
		"customer": {"phone": "0551234567"},
		"billing_address": {"name": "Billing Name"},
		"shipping_address": {"country": "UAE"},
		"line_items": [{"price": null}],
		"total_shipping_price_set": {"shop_money": {"amount": "15.00"}}
	}`)

	order := Extract(raw, ksaStore)

	assert.Equal(t, domain.ShapeShopifyLike, order.Shape)
	assert.Equal(t, "Billing Name", order.CustomerName)
	assert.Equal(t, "0551234567", order.CustomerPhoneRaw)
	assert.Equal(t, "1043", order.OrderID)
	assert.Equal(t, "UAE", order.CountryHint)
	assert.Equal(t, domain.PlaceholderProduct, order.ProductLabel)
	assert.Equal(t, 1, order.Quantity)
	assert.Equal(t, "99.00", order.PriceRaw)
	assert.Equal(t, "15.00", order.ShippingRaw)
	assert.Equal(t, domain.PlaceholderAddress, order.DetailedAddress)
}

func TestExtract_ShopifyNamePriority(t *testing.T) {
	raw := decode(t, `{
		"shipping_address": {"name": "Shipping Name", "first_name": "", "last_name": ""},
		"billing_address": {"name": "Billing Name"}
	}`)
	assert.Equal(t, "Shipping Name", Extract(raw, ksaStore).CustomerName)

	raw = decode(t, `{"line_items": [{"title": "X"}]}`)
	assert.Equal(t, domain.PlaceholderCustomer, Extract(raw, ksaStore).CustomerName)
	assert.Equal(t, "KSA", Extract(raw, ksaStore).CountryHint, "store default country")
}

func TestExtract_ShopifyQuantityZeroIsKept(t *testing.T) {
	raw := decode(t, `{"line_items": [{"title": "X", "quantity": 0}]}`)
	assert.Equal(t, 0, Extract(raw, ksaStore).Quantity)

	raw = decode(t, `{"line_items": [{"title": "X", "quantity": -2}]}`)
	assert.Equal(t, 1, Extract(raw, ksaStore).Quantity)
}

func TestExtract_Cart(t *testing.T) {
	raw := decode(t, `{
		"short_id": "A-77",
		"order_id": 9001,
		"full_name": "Omar\\nHassan",
		"phone": "",
		"phone_alt": "0509876543",
		"country": "KSA",
		"address": "Jeddah, Al Rawdah",
		"city": "Jeddah",
		"national_address": "  RJDA1234 ",
		"shipping_fee": "20 ريال",
		"shipping": "99",
		"cart_items": [
			{"product": {"name": "Abaya"}, "price": "250", "quantity": "2"},
			{"product": {"name": "Scarf"}, "price": "40", "quantity": 1}
		]
	}`)

	order := Extract(raw, ksaStore)

	assert.Equal(t, domain.ShapeGenericCart, order.Shape)
	assert.Equal(t, "Omar Hassan", order.CustomerName)
	assert.Equal(t, "0509876543", order.CustomerPhoneRaw)
	assert.Equal(t, "A-77", order.OrderID)
	assert.Equal(t, "KSA", order.CountryHint)
	assert.Equal(t, "Abaya + 1 منتجات أخرى", order.ProductLabel)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, "250", order.PriceRaw)
	assert.Equal(t, "20 ريال", order.ShippingRaw, "shipping_fee outranks shipping")
	assert.Equal(t, "Jeddah, Al Rawdah", order.DetailedAddress)
	assert.Equal(t, "RJDA1234", order.NationalAddressRaw)
}

func TestExtract_CartFallbacks(t *testing.T) {
	raw := decode(t, `{
		"id": 12,
		"customer_name": "Mona",
		"customer_phone": "0771234567",
		"shipping_country": "Jordan",
		"total_cost": 75,
		"delivery_cost": 5,
		"city": "Amman",
		"cart_items": [{"name": "Dates"}]
	}`)

	order := Extract(raw, ksaStore)

	assert.Equal(t, "Mona", order.CustomerName)
	assert.Equal(t, "0771234567", order.CustomerPhoneRaw)
	assert.Equal(t, "12", order.OrderID)
	assert.Equal(t, "Jordan", order.CountryHint)
	assert.Equal(t, "Dates", order.ProductLabel)
	assert.Equal(t, 1, order.Quantity)
	assert.Equal(t, json.Number("75"), order.PriceRaw)
	assert.Equal(t, json.Number("5"), order.ShippingRaw)
	assert.Equal(t, "Amman", order.DetailedAddress)
}

func TestExtract_EmptyPayloadIsFullyPopulated(t *testing.T) {
	order := Extract(decode(t, `{}`), ksaStore)

	assert.Equal(t, domain.NormalizedOrder{
		Shape:              domain.ShapeGenericCart,
		CustomerName:       domain.PlaceholderCustomer,
		CustomerPhoneRaw:   "",
		OrderID:            "",
		CountryHint:        "KSA",
		ProductLabel:       domain.PlaceholderProduct,
		Quantity:           1,
		PriceRaw:           0,
		ShippingRaw:        0,
		DetailedAddress:    domain.PlaceholderAddress,
		NationalAddressRaw: "",
	}, order)
}

func TestExtract_ShopifyNeverPopulatesNationalAddress(t *testing.T) {
	raw := decode(t, `{"name": "#1", "national_address": "RJDA1234"}`)
	assert.Equal(t, "", Extract(raw, ksaStore).NationalAddressRaw)
}
