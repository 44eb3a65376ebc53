package customers_test

import (
	"testing"

	"github.com/foodworks/go-ordering-auth/customers"
	"github.com/stretchr/testify/require"
)

func TestSignupFieldsPresent(t *testing.T) {
	base := customers.Customer{
		FirstName:     "John",
		LastName:      "Doe",
		Email:         "john.doe@example.com",
		ContactNumber: "9876543210",
	}

	t.Run("all fields filled", func(t *testing.T) {
		c := base
		require.True(t, customers.SignupFieldsPresent(&c, "Abcd123!"))
	})

	t.Run("last name is optional", func(t *testing.T) {
		c := base
		c.LastName = ""
		require.True(t, customers.SignupFieldsPresent(&c, "Abcd123!"))
	})

	t.Run("missing first name", func(t *testing.T) {
		c := base
		c.FirstName = ""
		require.False(t, customers.SignupFieldsPresent(&c, "Abcd123!"))
	})

	t.Run("missing email", func(t *testing.T) {
		c := base
		c.Email = ""
		require.False(t, customers.SignupFieldsPresent(&c, "Abcd123!"))
	})

	t.Run("missing contact number", func(t *testing.T) {
		c := base
		c.ContactNumber = ""
		require.False(t, customers.SignupFieldsPresent(&c, "Abcd123!"))
	})

	t.Run("missing password", func(t *testing.T) {
		c := base
		require.False(t, customers.SignupFieldsPresent(&c, ""))
	})
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"john@example.com",
		"john.doe@example.com",
		"john_doe+tag@mail.example.co",
		"a@b.museum",
	}
	for _, email := range valid {
		require.True(t, customers.ValidEmail(email), email)
	}

	invalid := []string{
		"",
		"johnexample.com",      // no @
		"john@example",         // no dot in domain
		"john@example.c",       // TLD too short
		"john@example.toolongg", // TLD too long
		"john doe@example.com", // space in local part
	}
	for _, email := range invalid {
		require.False(t, customers.ValidEmail(email), email)
	}
}

func TestValidContactNumber(t *testing.T) {
	t.Run("ten digits", func(t *testing.T) {
		require.True(t, customers.ValidContactNumber("9876543210"))
	})

	t.Run("leading zero plus ten digits", func(t *testing.T) {
		require.True(t, customers.ValidContactNumber("09876543210"))
	})

	t.Run("nine digits", func(t *testing.T) {
		require.False(t, customers.ValidContactNumber("123456789"))
	})

	t.Run("first significant digit zero", func(t *testing.T) {
		require.False(t, customers.ValidContactNumber("0087654321"))
	})

	t.Run("non-digit characters", func(t *testing.T) {
		require.False(t, customers.ValidContactNumber("98765x3210"))
	})

	t.Run("too many digits", func(t *testing.T) {
		require.False(t, customers.ValidContactNumber("998765432100"))
	})
}

func TestValidPincode(t *testing.T) {
	require.True(t, customers.ValidPincode("560034"))
	require.False(t, customers.ValidPincode("060034")) // leading zero
	require.False(t, customers.ValidPincode("56003"))  // five digits
	require.False(t, customers.ValidPincode("5600345"))
	require.False(t, customers.ValidPincode("56O034")) // letter O
}

func TestStrongPassword(t *testing.T) {
	t.Run("meets all requirements", func(t *testing.T) {
		require.True(t, customers.StrongPassword("Abcd123!"))
	})

	t.Run("seven characters no symbol", func(t *testing.T) {
		require.False(t, customers.StrongPassword("Abcd123"))
	})

	t.Run("no uppercase", func(t *testing.T) {
		require.False(t, customers.StrongPassword("abcd123!"))
	})

	t.Run("no digit", func(t *testing.T) {
		require.False(t, customers.StrongPassword("Abcdefg!"))
	})

	t.Run("symbol outside the fixed set", func(t *testing.T) {
		require.False(t, customers.StrongPassword("Abcd123~"))
	})

	t.Run("every allowed symbol", func(t *testing.T) {
		for _, symbol := range "#@$%&*!^-" {
			require.True(t, customers.StrongPassword("Abcd123"+string(symbol)))
		}
	})
}
