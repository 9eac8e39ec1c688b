package domain

// PropertyStatus is the marketplace listing state of a property.
type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "available"
	PropertyRented    PropertyStatus = "rented"
)

// Property is a read-only projection of a marketplace listing. The ledger
// core only ever writes the status flag, and only inside the create-lease
// transaction.
type Property struct {
	PropertyID string         `json:"propertyID"`
	OwnerID    string         `json:"ownerID"`
	Title      string         `json:"title"`
	Status     PropertyStatus `json:"status"`
}
