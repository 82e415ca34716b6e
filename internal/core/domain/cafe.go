package domain

import "time"

// GeoPoint is a GeoJSON point: coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// MenuItem is a single entry on a café menu.
type MenuItem struct {
	ItemName    string  `json:"itemName" bson:"itemName"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
}

// Cafe is a registered café owned by a CafeOwner principal.
type Cafe struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	PhoneNumber string     `json:"phoneNumber"`
	Location    GeoPoint   `json:"location"`
	Menu        []MenuItem `json:"menu"`
	OwnerID     string     `json:"ownerId"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Employee works at a café. OrderHistory holds opaque order identifiers; the
// order subsystem lives elsewhere.
type Employee struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	PasswordHash string    `json:"-"`
	CafeID       string    `json:"cafeId"`
	OrderHistory []string  `json:"orderHistory"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
