package handler

type locationRequest struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates" validate:"required,len=2"`
}

type menuItemRequest struct {
	ItemName    string  `json:"itemName" validate:"required"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type registerCafeRequest struct {
	Name        string            `json:"name" validate:"required"`
	Address     string            `json:"address" validate:"required"`
	PhoneNumber string            `json:"phoneNumber" validate:"required"`
	Location    locationRequest   `json:"location"`
	Menu        []menuItemRequest `json:"menu" validate:"dive"`
	OwnerID     string            `json:"ownerId" validate:"required"`
}

type registerEmployeeRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
	CafeID      string `json:"cafeId" validate:"required"`
}
