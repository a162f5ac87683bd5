package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"order-webhook/internal/domain"
)

func TestBuildNotificationFields(t *testing.T) {
	order := domain.NormalizedOrder{
		CustomerName:       "Sara Ali",
		OrderID:            "#1042",
		ProductLabel:       "Oud Perfume",
		Quantity:           2,
		PriceRaw:           "1,250.50 SAR",
		ShippingRaw:        json.Number("30"),
		DetailedAddress:    "King Fahd Rd - Riyadh",
		NationalAddressRaw: "RJDA1234",
	}

	fields := BuildNotificationFields(order, "966501234567", ksaStore)

	assert.Equal(t, domain.NotificationFields{
		Phone:           "966501234567",
		CustomerName:    "Sara Ali",
		OrderRef:        "#1042 (EQ)",
		ProductLabel:    "Oud Perfume",
		Quantity:        2,
		PriceText:       "1250.5 ريال سعودي",
		ShippingText:    "30 ريال سعودي",
		TotalText:       "1280.5 ريال سعودي",
		Address:         "King Fahd Rd - Riyadh",
		NationalAddress: "RJDA1234",
	}, fields)
}

func TestBuildNotificationFields_FreeShippingAndPlaceholders(t *testing.T) {
	order := domain.NormalizedOrder{
		CustomerName: domain.PlaceholderCustomer,
		ProductLabel: domain.PlaceholderProduct,
		Quantity:     1,
		PriceRaw:     "50.00",
		ShippingRaw:  0,
	}

	fields := BuildNotificationFields(order, "966501234567", ksaStore)

	assert.Equal(t, domain.FreeShippingText, fields.ShippingText)
	assert.Equal(t, "50 ريال سعودي", fields.PriceText)
	assert.Equal(t, "50 ريال سعودي", fields.TotalText)
	assert.Equal(t, " (EQ)", fields.OrderRef)
	assert.Equal(t, domain.PlaceholderNationalAddress, fields.NationalAddress)
}

func TestBuildNotificationFields_UnparseablePriceIsZero(t *testing.T) {
	order := domain.NormalizedOrder{PriceRaw: "call us", ShippingRaw: "free"}

	fields := BuildNotificationFields(order, "966501234567", ksaStore)

	assert.Equal(t, "0 ريال سعودي", fields.PriceText)
	assert.Equal(t, domain.FreeShippingText, fields.ShippingText)
	assert.Equal(t, "0 ريال سعودي", fields.TotalText)
}

func TestNewTemplateMessage(t *testing.T) {
	fields := domain.NotificationFields{
		Phone:           "971501234567",
		CustomerName:    "Mona",
		OrderRef:        "A-1 (AE)",
		ProductLabel:    "Dates",
		Quantity:        3,
		PriceText:       "10 درهم إماراتي",
		ShippingText:    domain.FreeShippingText,
		TotalText:       "10 درهم إماراتي",
		Address:         "Dubai",
		NationalAddress: domain.PlaceholderNationalAddress,
	}
	store := domain.StoreContext{Tag: "AE", TemplateName: "ordar_confirmation", TemplateLanguage: "ar"}

	msg := domain.NewTemplateMessage(fields, store)

	assert.Equal(t, "971501234567", msg.PhoneNumber)
	assert.Equal(t, "ordar_confirmation", msg.TemplateName)
	assert.Equal(t, "ar", msg.TemplateLanguage)
	assert.Equal(t, "Mona", msg.Field1)
	assert.Equal(t, "A-1 (AE)", msg.Field2)
	assert.Equal(t, "Dates", msg.Field3)
	assert.Equal(t, "3", msg.Field4)
	assert.Equal(t, "10 درهم إماراتي", msg.Field5)
	assert.Equal(t, domain.FreeShippingText, msg.Field6)
	assert.Equal(t, "10 درهم إماراتي", msg.Field7)
	assert.Equal(t, "Dubai", msg.Field8)
	assert.Equal(t, domain.PlaceholderNationalAddress, msg.Field9)
	assert.Equal(t, domain.Contact{FirstName: "Mona", PhoneNumber: "971501234567", Country: "auto"}, msg.Contact)
}
