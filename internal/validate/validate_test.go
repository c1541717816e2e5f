package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxera-storefront/internal/domain"
)

func validDetails() domain.CustomerDetails {
	return domain.CustomerDetails{
		FullName:     "Ahmed Khan",
		MobileNumber: "03001234567",
		Email:        "a@b.com",
		Address:      "123 St",
		City:         "Karachi",
		Province:     "Sindh",
	}
}

func TestCheckoutValid(t *testing.T) {
	errs := Checkout(validDetails())
	assert.True(t, errs.Valid(), "expected no errors, got %v", errs)
}

func TestCheckoutAllFieldsMissing(t *testing.T) {
	errs := Checkout(domain.CustomerDetails{})

	require.Len(t, errs, 6)
	assert.Equal(t, "Full name is required", errs["fullName"])
	assert.Equal(t, "Mobile number is required", errs["mobileNumber"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Address is required", errs["address"])
	assert.Equal(t, "City is required", errs["city"])
	assert.Equal(t, "Province is required", errs["province"])
	assert.NotContains(t, errs, "whatsappNumber")
}

func TestCheckoutMobileNumber(t *testing.T) {
	cases := []struct {
		number string
		valid  bool
	}{
		{"03001234567", true},
		{"+923001234567", true},
		{"+92 300 1234567", true},
		{"3001234567", true},
		{"12345", false},
		{"+44 7911 123456", false},
		{"0300123456", false},
		{"030012345678", false},
		{"03001234abc", false},
	}

	for _, tc := range cases {
		t.Run(tc.number, func(t *testing.T) {
			d := validDetails()
			d.MobileNumber = tc.number
			errs := Checkout(d)
			if tc.valid {
				assert.NotContains(t, errs, "mobileNumber")
			} else {
				assert.Equal(t, "Please enter a valid Pakistani mobile number", errs["mobileNumber"])
			}
		})
	}
}

func TestCheckoutEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"user.name@shop.example.pk", true},
		{"a@b", false},
		{"a.com", false},
		{"a @b.com", false},
		{"a@ b.com", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			d := validDetails()
			d.Email = tc.email
			errs := Checkout(d)
			if tc.valid {
				assert.NotContains(t, errs, "email")
			} else {
				assert.Equal(t, "Please enter a valid email address", errs["email"])
			}
		})
	}
}

func TestCheckoutCityAndProvinceEnums(t *testing.T) {
	d := validDetails()
	d.City = "London"
	d.Province = "Texas"

	errs := Checkout(d)
	assert.Equal(t, "Please select a supported city", errs["city"])
	assert.Equal(t, "Please select a supported province", errs["province"])

	for _, city := range Cities {
		d := validDetails()
		d.City = city
		assert.NotContains(t, Checkout(d), "city")
	}
	for _, province := range Provinces {
		d := validDetails()
		d.Province = province
		assert.NotContains(t, Checkout(d), "province")
	}
}

func TestCheckoutWhatsAppOptional(t *testing.T) {
	d := validDetails()
	d.WhatsAppNumber = "not-a-number"
	assert.True(t, Checkout(d).Valid())
}

func TestCheckoutBlankFullName(t *testing.T) {
	d := validDetails()
	d.FullName = "   "
	errs := Checkout(d)
	assert.Equal(t, "Full name is required", errs["fullName"])
}

func TestContactValid(t *testing.T) {
	errs := Contact(domain.ContactSubmission{
		Name:    "Sarah Ali",
		Email:   "sarah@example.com",
		Message: "exactly10c",
	})
	assert.True(t, errs.Valid(), "expected no errors, got %v", errs)
}

func TestContactMessageLength(t *testing.T) {
	base := domain.ContactSubmission{Name: "Sarah Ali", Email: "sarah@example.com"}

	short := base
	short.Message = "123456789" // 9 chars
	assert.Equal(t, "Message must be at least 10 characters long", Contact(short)["message"])

	ok := base
	ok.Message = "1234567890" // 10 chars
	assert.NotContains(t, Contact(ok), "message")

	padded := base
	padded.Message = "   12345678   " // 8 after trimming
	assert.Equal(t, "Message must be at least 10 characters long", Contact(padded)["message"])
}

func TestContactAllFieldsMissing(t *testing.T) {
	errs := Contact(domain.ContactSubmission{})
	require.Len(t, errs, 3)
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Message is required", errs["message"])
}
