package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"order-webhook/internal/domain"
	"order-webhook/internal/payload"
)

var ksaStore = domain.StoreContext{
	Tag:              "EQ",
	TemplateName:     "ordar_confirmation",
	TemplateLanguage: "ar",
	CurrencySymbol:   "ريال سعودي",
	DefaultCountry:   "KSA",
}

func decode(t *testing.T, body string) payload.Object {
	t.Helper()
	obj, err := payload.Decode([]byte(body))
	require.NoError(t, err)
	return obj
}
