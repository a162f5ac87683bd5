package service

import (
	"fmt"

	"order-webhook/internal/domain"
	"order-webhook/internal/textutil"
)

// BuildNotificationFields formats an order for the template message.
func BuildNotificationFields(order domain.NormalizedOrder, phone domain.CanonicalPhone, store domain.StoreContext) domain.NotificationFields {
	price := textutil.ToNumber(order.PriceRaw)
	shipping := textutil.ToNumber(order.ShippingRaw)
	total := price.Add(shipping)

	shippingText := domain.FreeShippingText
	if !shipping.IsZero() {
		shippingText = money(textutil.FormatAmount(shipping), store)
	}

	nationalAddress := textutil.Sanitize(order.NationalAddressRaw)
	if nationalAddress == "" {
		nationalAddress = domain.PlaceholderNationalAddress
	}

	return domain.NotificationFields{
		Phone:           phone,
		CustomerName:    textutil.Sanitize(order.CustomerName),
		OrderRef:        fmt.Sprintf("%s (%s)", order.OrderID, store.Tag),
		ProductLabel:    textutil.Sanitize(order.ProductLabel),
		Quantity:        order.Quantity,
		PriceText:       money(textutil.FormatAmount(price), store),
		ShippingText:    shippingText,
		TotalText:       money(textutil.FormatAmount(total), store),
		Address:         order.DetailedAddress,
		NationalAddress: nationalAddress,
	}
}

func money(amount string, store domain.StoreContext) string {
	return amount + " " + store.CurrencySymbol
}
