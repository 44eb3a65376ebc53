// Package addresses manages the delivery addresses a customer saves.
// Every operation is performed on behalf of an already-authenticated
// customer; the authorization gate runs before any of this code.
package addresses

// Address is one saved delivery address, always owned by exactly one
// customer.
type Address struct {
	ID               string `json:"id,omitempty"`         // Storage key
	UUID             string `json:"uuid,omitempty"`       // Stable external identifier
	FlatBuildingName string `json:"flat_building_name"`   // Flat / building detail
	Locality         string `json:"locality"`             // Locality
	City             string `json:"city"`                 // City
	Pincode          string `json:"pincode"`              // Six-digit postal code
	State            string `json:"state"`                // State name
	CustomerID       string `json:"customer_id,omitempty"` // Owning customer
}
