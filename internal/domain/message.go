package domain

import "strconv"

// TemplateMessage is the request body of the send-template-message call.
type TemplateMessage struct {
	PhoneNumber      string  `json:"phone_number"`
	TemplateName     string  `json:"template_name"`
	TemplateLanguage string  `json:"template_language"`
	Field1           string  `json:"field_1"`
	Field2           string  `json:"field_2"`
	Field3           string  `json:"field_3"`
	Field4           string  `json:"field_4"`
	Field5           string  `json:"field_5"`
	Field6           string  `json:"field_6"`
	Field7           string  `json:"field_7"`
	Field8           string  `json:"field_8"`
	Field9           string  `json:"field_9"`
	Contact          Contact `json:"contact"`
}

// Contact identifies the recipient to the messaging API.
type Contact struct {
	FirstName   string `json:"first_name"`
	PhoneNumber string `json:"phone_number"`
	Country     string `json:"country"`
}

// NewTemplateMessage maps notification fields onto the positional template slots.
func NewTemplateMessage(fields NotificationFields, store StoreContext) TemplateMessage {
	phone := fields.Phone.Digits()
	return TemplateMessage{
		PhoneNumber:      phone,
		TemplateName:     store.TemplateName,
		TemplateLanguage: store.TemplateLanguage,
		Field1:           fields.CustomerName,
		Field2:           fields.OrderRef,
		Field3:           fields.ProductLabel,
		Field4:           strconv.Itoa(fields.Quantity),
		Field5:           fields.PriceText,
		Field6:           fields.ShippingText,
		Field7:           fields.TotalText,
		Field8:           fields.Address,
		Field9:           fields.NationalAddress,
		Contact: Contact{
			FirstName:   fields.CustomerName,
			PhoneNumber: phone,
			Country:     "auto",
		},
	}
}
