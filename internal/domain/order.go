package domain

// Placeholders used when a payload carries no usable value.
const (
	PlaceholderCustomer        = "عميلنا العزيز"
	PlaceholderProduct         = "منتج"
	PlaceholderAddress         = "غير متوفر"
	PlaceholderNationalAddress = "غير متوفر (يرجى تزويدنا بالعنوان الوطني)"
	FreeShippingText           = "مجاني"
)

// OrderShape classifies which upstream produced a payload.
type OrderShape int

const (
	ShapeGenericCart OrderShape = iota
	ShapeShopifyLike
)

func (s OrderShape) String() string {
	switch s {
	case ShapeShopifyLike:
		return "shopify"
	case ShapeGenericCart:
		return "cart"
	default:
		return "unknown"
	}
}

// StoreContext is the per-store configuration selected by a store tag.
type StoreContext struct {
	Tag              string `yaml:"tag"`
	TemplateName     string `yaml:"template_name"`
	TemplateLanguage string `yaml:"template_language"`
	CurrencySymbol   string `yaml:"currency"`
	DefaultCountry   string `yaml:"default_country"`
}

// NormalizedOrder is the canonical record extracted from a raw payload.
// Every field is populated; missing source values get placeholders.
type NormalizedOrder struct {
	Shape              OrderShape
	CustomerName       string
	CustomerPhoneRaw   string
	OrderID            string
	CountryHint        string
	ProductLabel       string
	Quantity           int
	PriceRaw           any // string or number as received
	ShippingRaw        any // string or number as received
	DetailedAddress    string
	NationalAddressRaw string
}

// CanonicalPhone is an international phone number as bare digits (no "+").
type CanonicalPhone string

// Digits returns the number without any prefix.
func (p CanonicalPhone) Digits() string {
	return string(p)
}

// E164 returns the number with a leading "+".
func (p CanonicalPhone) E164() string {
	return "+" + string(p)
}

// NotificationFields is the flattened record handed to the dispatcher.
type NotificationFields struct {
	Phone           CanonicalPhone
	CustomerName    string
	OrderRef        string // "<orderId> (<storeTag>)"
	ProductLabel    string
	Quantity        int
	PriceText       string
	ShippingText    string
	TotalText       string
	Address         string
	NationalAddress string
}
