package customers

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// Local part, "@", dotted domain, 2-7 letter top-level segment.
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)

	// Ten digits with the first significant digit 1-9, optionally preceded
	// by a single "0".
	contactRegexp = regexp.MustCompile(`^0?[1-9][0-9]{9}$`)

	// Exactly six digits, first digit 1-9.
	pincodeRegexp = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// passwordSymbols is the set of symbols a strong password must draw from.
const passwordSymbols = "#@$%&*!^-"

// SignupFieldsPresent reports whether all required signup fields are filled.
// Last name is the only optional field.
func SignupFieldsPresent(customer *Customer, password string) bool {
	return customer.FirstName != "" &&
		customer.Email != "" &&
		customer.ContactNumber != "" &&
		password != ""
}

// ValidEmail reports whether the email address is well formed.
func ValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// ValidContactNumber reports whether the contact number is well formed.
func ValidContactNumber(contactNumber string) bool {
	return contactRegexp.MatchString(contactNumber)
}

// ValidPincode reports whether the pincode is well formed.
func ValidPincode(pincode string) bool {
	return pincodeRegexp.MatchString(pincode)
}

// StrongPassword checks if a password meets the strength requirements:
// at least 8 characters, one uppercase letter, one digit, and one symbol
// from the fixed set.
func StrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var (
		hasUpper  bool
		hasNumber bool
		hasSymbol bool
	)

	for _, char := range password {
		if unicode.IsUpper(char) {
			hasUpper = true
		} else if unicode.IsDigit(char) {
			hasNumber = true
		} else if strings.ContainsRune(passwordSymbols, char) {
			hasSymbol = true
		}
	}

	return hasUpper && hasNumber && hasSymbol
}
