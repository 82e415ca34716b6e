package domain

import "time"

// Kind discriminates the four account collections. Its value is bound into
// every issued token and checked by the matching guard, so a customer token
// can never pass the admin guard even though all kinds share one signing key.
type Kind string

const (
	KindAdmin     Kind = "admin"
	KindCafeOwner Kind = "cafeOwner"
	KindCustomer  Kind = "customer"
	KindUser      Kind = "user"
)

// Label returns the human-facing role name reported by the login response.
func (k Kind) Label() string {
	switch k {
	case KindAdmin:
		return "Admin"
	case KindCafeOwner:
		return "Cafe Owner"
	case KindCustomer:
		return "Customer"
	case KindUser:
		return "User"
	}
	return string(k)
}

// Collection returns the MongoDB collection backing this kind.
func (k Kind) Collection() string {
	switch k {
	case KindAdmin:
		return "admins"
	case KindCafeOwner:
		return "cafeowners"
	case KindCustomer:
		return "customers"
	case KindUser:
		return "users"
	}
	return string(k)
}

// Valid reports whether k is one of the known account kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindAdmin, KindCafeOwner, KindCustomer, KindUser:
		return true
	}
	return false
}

// Principal models an authenticable account of any kind. The password hash is
// never serialized in responses.
type Principal struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
