package customers

// Customer is the identity record for one registered customer.
// The plaintext password never appears here; only the salted digest is
// stored, alongside the per-customer salt used to compute it.
type Customer struct {
	ID             string `json:"id,omitempty"`             // Storage key
	UUID           string `json:"uuid,omitempty"`           // Stable external identifier
	FirstName      string `json:"first_name,omitempty"`     // First name (required)
	LastName       string `json:"last_name,omitempty"`      // Last name (optional)
	Email          string `json:"email,omitempty"`          // Email address
	ContactNumber  string `json:"contact_number,omitempty"` // Unique contact number, the login identifier
	PasswordDigest string `json:"-"`                        // Salted one-way digest - never serialize
	Salt           string `json:"-"`                        // Per-customer salt - never serialize
}

// Equal reports structural equality over the declared fields.
func (c *Customer) Equal(other *Customer) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.ID == other.ID &&
		c.UUID == other.UUID &&
		c.FirstName == other.FirstName &&
		c.LastName == other.LastName &&
		c.Email == other.Email &&
		c.ContactNumber == other.ContactNumber &&
		c.PasswordDigest == other.PasswordDigest &&
		c.Salt == other.Salt
}
