package handler

// Request bodies shared by all account kinds. Field names mirror the client
// payloads of the original API.

type signupRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	IsActive    *bool  `json:"isActive"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// errorResponse is the canonical error envelope: {"error": true, "message": "…"}.
type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func errJSON(message string) errorResponse {
	return errorResponse{Error: true, Message: message}
}
