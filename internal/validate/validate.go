// Package validate holds the pure form validation rules for the checkout
// and contact forms. Validators never short-circuit: they return the full
// field-to-message mapping so the view can surface every violation at once.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"luxera-storefront/internal/domain"
)

// Errors maps a field name to its validation message. An empty map means
// the form is submittable.
type Errors map[string]string

// Valid reports whether no field failed validation.
func (e Errors) Valid() bool {
	return len(e) == 0
}

var (
	// Optional +92 or leading 0, then exactly 10 digits. Internal
	// whitespace is stripped before matching.
	mobileRe = regexp.MustCompile(`^(\+92|0)?[0-9]{10}$`)
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Cities supported for delivery.
var Cities = []string{
	"Karachi", "Lahore", "Islamabad", "Rawalpindi", "Faisalabad",
	"Multan", "Peshawar", "Quetta", "Sialkot", "Gujranwala",
}

// Provinces supported for delivery.
var Provinces = []string{
	"Sindh", "Punjab", "Khyber Pakhtunkhwa", "Balochistan", "Gilgit-Baltistan",
}

// Checkout validates the customer details form.
func Checkout(d domain.CustomerDetails) Errors {
	errs := Errors{}

	if strings.TrimSpace(d.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}

	mobile := strings.TrimSpace(d.MobileNumber)
	if mobile == "" {
		errs["mobileNumber"] = "Mobile number is required"
	} else if !mobileRe.MatchString(stripSpaces(mobile)) {
		errs["mobileNumber"] = "Please enter a valid Pakistani mobile number"
	}

	// whatsappNumber is optional and never format-checked.

	email := strings.TrimSpace(d.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(d.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(d.Address) == "" {
		errs["address"] = "Address is required"
	}

	if d.City == "" {
		errs["city"] = "City is required"
	} else if !contains(Cities, d.City) {
		errs["city"] = "Please select a supported city"
	}

	if d.Province == "" {
		errs["province"] = "Province is required"
	} else if !contains(Provinces, d.Province) {
		errs["province"] = "Please select a supported province"
	}

	return errs
}

// Contact validates the contact form.
func Contact(c domain.ContactSubmission) Errors {
	errs := Errors{}

	if strings.TrimSpace(c.Name) == "" {
		errs["name"] = "Name is required"
	}

	email := strings.TrimSpace(c.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(c.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	msg := strings.TrimSpace(c.Message)
	if msg == "" {
		errs["message"] = "Message is required"
	} else if utf8.RuneCountInString(msg) < 10 {
		errs["message"] = "Message must be at least 10 characters long"
	}

	return errs
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
