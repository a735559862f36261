package models

import "strings"

// FormVariant selects between a general enquiry and a project quote.
type FormVariant string

const (
	VariantContact FormVariant = "contact"
	VariantQuote   FormVariant = "quote"
)

// ParseFormVariant maps unknown values onto VariantContact.
func ParseFormVariant(s string) FormVariant {
	if FormVariant(strings.ToLower(strings.TrimSpace(s))) == VariantQuote {
		return VariantQuote
	}
	return VariantContact
}

// ContactFields is the user-editable part of the contact/quote form.
type ContactFields struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	Timeline    string `json:"timeline,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Location    string `json:"location,omitempty"`
	Message     string `json:"message"`
	Newsletter  bool   `json:"newsletter"`
}

// NotificationKind distinguishes success and error toasts.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is a transient, non-blocking message for the visitor.
type Notification struct {
	Kind    NotificationKind
	Message string
}
