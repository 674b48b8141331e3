package requests

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// CheckoutInput is the untrusted body of POST /process_payment, as posted by
// the storefront payment form. Every nested structure is optional; nothing in
// here may be dereferenced without a presence check.
type CheckoutInput struct {
	TransactionAmount FlexibleFloat     `json:"transaction_amount"`
	Description       string            `json:"description"`
	PaymentMethodID   string            `json:"payment_method_id"`
	Payer             *CheckoutPayer    `json:"payer"`
	FormData          *CheckoutFormData `json:"formData"`
	Order             *CheckoutOrder    `json:"order,omitempty"`
}

// CheckoutPayer carries whatever payer details the form collected
type CheckoutPayer struct {
	Email          string          `json:"email"`
	FirstName      string          `json:"first_name"`
	Identification *Identification `json:"identification"`
}

// Identification is a payer document (e.g. CPF/CNPJ number)
type Identification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// CheckoutFormData carries the method-specific fields produced by the payment
// brick. The brick posts payment_method_id here rather than at the top level.
type CheckoutFormData struct {
	Token           string         `json:"token"`
	Installments    FlexibleInt    `json:"installments"`
	IssuerID        FlexibleString `json:"issuer_id"`
	PaymentMethodID string         `json:"payment_method_id"`
	Payer           *CheckoutPayer `json:"payer"`
}

// CheckoutOrder is optional order data used only for the confirmation email
type CheckoutOrder struct {
	CustomerEmail string              `json:"customer_email,omitempty"`
	Items         []CheckoutOrderItem `json:"items,omitempty"`
}

// CheckoutOrderItem is one line of the order summary
type CheckoutOrderItem struct {
	Title     string        `json:"title"`
	Quantity  FlexibleInt   `json:"quantity"`
	UnitPrice FlexibleFloat `json:"unit_price"`
}

// FlexibleFloat accepts a JSON number or a numeric string ("120.5"). Values
// that cannot be parsed are recorded as present-but-invalid rather than
// failing the whole decode, so validation can report them field by field.
type FlexibleFloat struct {
	Value float64
	Set   bool
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleFloat) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	f.Set = true

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		f.Value = num
		f.Valid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	f.Value = num
	f.Valid = true
	return nil
}

// FlexibleInt accepts a JSON number or a numeric string ("3")
type FlexibleInt struct {
	Value int
	Set   bool
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	f.Set = true

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		// "3.0" style values still coerce to an integer
		if num == float64(int(num)) {
			f.Value = int(num)
			f.Valid = true
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		fv, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || fv != float64(int(fv)) {
			return nil
		}
		v = int(fv)
	}
	f.Value = v
	f.Valid = true
	return nil
}

// FlexibleString accepts a JSON string or number and normalizes it to a
// string ("25" and 25 both become "25")
type FlexibleString struct {
	Value string
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if string(trimmed) == "null" {
		return nil
	}
	f.Set = true

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Value = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		f.Value = n.String()
		return nil
	}
	f.Value = string(trimmed)
	return nil
}
