package service

import (
	"fmt"

	"order-webhook/internal/domain"
	"order-webhook/internal/payload"
	"order-webhook/internal/textutil"
)

// rule yields one candidate value for a field.
type rule func(p payload.Object) any

// at reads the value at path.
func at(path ...string) rule {
	return func(p payload.Object) any {
		return p.Lookup(path...)
	}
}

// fullName joins first_name and last_name of the object at key.
func fullName(key string) rule {
	return func(p payload.Object) any {
		return textutil.Sanitize(p.Text(key, "first_name") + " " + p.Text(key, "last_name"))
	}
}

// firstText returns the first rule result that is non-empty after sanitizing.
func firstText(p payload.Object, rules []rule) string {
	for _, r := range rules {
		if s := textutil.Sanitize(payload.Text(r(p))); s != "" {
			return s
		}
	}
	return ""
}

// firstValue returns the first rule result carrying a scalar value.
func firstValue(p payload.Object, rules []rule) any {
	for _, r := range rules {
		if v := r(p); payload.Present(v) {
			return v
		}
	}
	return nil
}

// shapeRules lists, per field, the candidate sources in priority order.
type shapeRules struct {
	name     []rule
	phone    []rule
	orderID  []rule
	country  []rule
	itemsKey string
	title    []rule // applied to the first item
	quantity []rule // applied to the first item
	price    []rule
	shipping []rule
	// addressParts are joined with " - "; address is tried when no part is present.
	addressParts    []rule
	address         []rule
	nationalAddress []rule
}

var shopifyRules = shapeRules{
	name:     []rule{fullName("shipping_address"), at("shipping_address", "name"), at("billing_address", "name")},
	phone:    []rule{at("shipping_address", "phone"), at("phone"), at("customer", "phone")},
	orderID:  []rule{at("name"), at("order_number"), at("id")},
	country:  []rule{at("shipping_address", "country_code"), at("shipping_address", "country")},
	itemsKey: "line_items",
	title:    []rule{at("title")},
	quantity: []rule{at("quantity")},
	price:    []rule{at("line_items", "0", "price"), at("total_price")},
	shipping: []rule{
		at("shipping_lines", "0", "price"),
		at("total_shipping_price_set", "shop_money", "amount"),
	},
	addressParts: []rule{
		at("shipping_address", "address1"),
		at("shipping_address", "address2"),
		at("shipping_address", "city"),
		at("shipping_address", "province"),
		at("shipping_address", "zip"),
	},
}

var cartRules = shapeRules{
	name:     []rule{at("full_name"), at("name"), at("customer_name")},
	phone:    []rule{at("phone"), at("phone_alt"), at("customer_phone")},
	orderID:  []rule{at("short_id"), at("order_id"), at("id")},
	country:  []rule{at("country"), at("shipping_country")},
	itemsKey: "cart_items",
	title:    []rule{at("product", "name"), at("name")},
	quantity: []rule{at("quantity")},
	price:    []rule{at("cart_items", "0", "price"), at("total_cost")},
	shipping: []rule{
		at("shipping_cost"),
		at("shipping_fee"),
		at("shipping_price"),
		at("delivery_cost"),
		at("shipping"),
	},
	address:         []rule{at("address"), at("full_address"), at("shipping_address"), at("city")},
	nationalAddress: []rule{at("national_address"), at("national_address_code"), at("short_address")},
}

// Classify decides which upstream shape raw came from.
// A non-empty cart_items list wins over every storefront signal.
func Classify(raw payload.Object) domain.OrderShape {
	if raw.HasList("cart_items") {
		return domain.ShapeGenericCart
	}

	if name, ok := raw["name"].(string); ok && len(name) > 0 && name[0] == '#' {
		return domain.ShapeShopifyLike
	}
	if raw.HasObject("shipping_address") || raw.HasObject("billing_address") || raw.HasList("line_items") {
		return domain.ShapeShopifyLike
	}

	return domain.ShapeGenericCart
}

// Extract builds a fully populated NormalizedOrder from raw. It never fails.
func Extract(raw payload.Object, store domain.StoreContext) domain.NormalizedOrder {
	shape := Classify(raw)
	rules := cartRules
	if shape == domain.ShapeShopifyLike {
		rules = shopifyRules
	}
	return rules.extract(raw, store, shape)
}

func (r shapeRules) extract(raw payload.Object, store domain.StoreContext, shape domain.OrderShape) domain.NormalizedOrder {
	items := raw.List(r.itemsKey)
	var first payload.Object
	if len(items) > 0 {
		first, _ = items[0].(map[string]any)
	}

	order := domain.NormalizedOrder{
		Shape:              shape,
		CustomerName:       orDefault(firstText(raw, r.name), domain.PlaceholderCustomer),
		CustomerPhoneRaw:   firstText(raw, r.phone),
		OrderID:            firstText(raw, r.orderID),
		CountryHint:        orDefault(firstText(raw, r.country), store.DefaultCountry),
		ProductLabel:       productLabel(first, len(items), r.title),
		Quantity:           quantity(first, r.quantity),
		PriceRaw:           valueOrZero(firstValue(raw, r.price)),
		ShippingRaw:        valueOrZero(firstValue(raw, r.shipping)),
		DetailedAddress:    r.detailedAddress(raw),
		NationalAddressRaw: firstText(raw, r.nationalAddress),
	}

	return order
}

func (r shapeRules) detailedAddress(raw payload.Object) string {
	if len(r.addressParts) > 0 {
		parts := make([]string, 0, len(r.addressParts))
		for _, rl := range r.addressParts {
			parts = append(parts, payload.Text(rl(raw)))
		}
		if joined := textutil.JoinNonEmpty(" - ", parts...); joined != "" {
			return joined
		}
	}
	return orDefault(firstText(raw, r.address), domain.PlaceholderAddress)
}

func productLabel(first payload.Object, count int, title []rule) string {
	label := domain.PlaceholderProduct
	if first != nil {
		label = orDefault(firstText(first, title), domain.PlaceholderProduct)
	}
	if count > 1 {
		return fmt.Sprintf("%s + %d منتجات أخرى", label, count-1)
	}
	return label
}

func quantity(first payload.Object, rules []rule) int {
	if first == nil {
		return 1
	}
	if n, ok := payload.Int(firstValue(first, rules)); ok && n >= 0 {
		return n
	}
	return 1
}

func valueOrZero(v any) any {
	if v == nil {
		return 0
	}
	return v
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
