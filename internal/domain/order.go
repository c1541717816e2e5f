package domain

// CustomerDetails holds the checkout form fields. All fields are raw
// strings; validation lives in internal/validate.
type CustomerDetails struct {
	FullName       string `json:"fullName"`
	MobileNumber   string `json:"mobileNumber"`
	WhatsAppNumber string `json:"whatsappNumber,omitempty"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Province       string `json:"province"`
}

// OrderDraft is the session-scoped aggregate of a product selection and,
// once the checkout form passes validation, the customer details. It is
// never persisted; it lives and dies with the owning checkout flow.
type OrderDraft struct {
	Product         Product          `json:"product"`
	Quantity        int              `json:"quantity"`
	SelectedSize    string           `json:"selectedSize,omitempty"`
	SelectedColor   string           `json:"selectedColor,omitempty"`
	CustomerDetails *CustomerDetails `json:"customerDetails,omitempty"`
}

// Subtotal is the product price times quantity, in rupees.
func (d OrderDraft) Subtotal() int {
	return d.Product.Price * d.Quantity
}

// Shipping is always free.
func (d OrderDraft) Shipping() int {
	return 0
}

// Total is subtotal plus shipping.
func (d OrderDraft) Total() int {
	return d.Subtotal() + d.Shipping()
}

// ContactSubmission holds the contact form fields.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
