package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
	"github.com/dogukan2201/ChairUpBackend/internal/core/ports"
)

// AccountHandler serves one principal kind's account routes. The same
// implementation backs admins, café owners, customers, and legacy users; the
// kind only changes response field names and messages.
type AccountHandler struct {
	kind    domain.Kind
	service ports.AccountService
}

func NewAccountHandler(kind domain.Kind, service ports.AccountService) *AccountHandler {
	return &AccountHandler{kind: kind, service: service}
}

// field returns the kind-specific JSON key ("admin", "cafeOwner", …).
func (h *AccountHandler) field() string { return string(h.kind) }

// listField returns the plural JSON key ("admins", "cafeOwners", …).
func (h *AccountHandler) listField() string { return string(h.kind) + "s" }

// Signup creates a new account and returns it with a fresh token.
//
// @Summary      Register a new account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON(err.Error()))
	}

	created, token, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return c.JSON(http.StatusConflict, errJSON(h.kind.Label()+" already exists."))
		}
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"error":       false,
		h.field():     created,
		"message":     h.kind.Label() + " registered successfully.",
		"accessToken": token,
	})
}

// Register creates an account on someone else's behalf (admin registering a
// café owner). No token is issued: the new owner logs in with their own
// credentials.
func (h *AccountHandler) Register(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("All fields are required."))
	}

	created, err := h.service.Register(c.Request().Context(), ports.SignupInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return c.JSON(http.StatusConflict, errJSON(h.kind.Label()+" already exists."))
		}
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"error":   false,
		h.field(): created,
		"message": h.kind.Label() + " registered successfully.",
	})
}

// Login authenticates by email and password and returns a token.
//
// @Summary      Login
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON(err.Error()))
	}

	token, p, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errJSON("Invalid Credentials"))
		case errors.Is(err, domain.ErrTooManyAttempts):
			return c.JSON(http.StatusTooManyRequests, errJSON("Too many login attempts. Please try again later."))
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":       false,
		"message":     "Login Successful",
		"accessToken": token,
		"email":       p.Email,
		"role":        h.kind.Label(),
	})
}

// Get returns the authenticated caller's own record, sanitized.
//
// @Summary      Get own profile
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
func (h *AccountHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c, h.kind)
	if err != nil {
		return err
	}

	p, err := h.service.Get(c.Request().Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errJSON(h.kind.Label()+" not found"))
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"error": false, h.field(): p})
}

// List returns every record of this kind.
func (h *AccountHandler) List(c echo.Context) error {
	all, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if all == nil {
		all = []*domain.Principal{}
	}
	return c.JSON(http.StatusOK, echo.Map{"error": false, h.listField(): all})
}

// Update applies a partial update to the caller's own record and re-issues a
// token.
func (h *AccountHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c, h.kind)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid payload"))
	}

	token, err := h.service.UpdateProfile(c.Request().Context(), claims.Subject, ports.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, errJSON("Unauthorized "+h.kind.Label()))
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			return c.JSON(http.StatusConflict, errJSON(h.kind.Label()+" already exists."))
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":       false,
		"message":     "Profile Update Successful",
		"accessToken": token,
	})
}

// Delete hard-deletes the caller's own record.
func (h *AccountHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c, h.kind)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProfile(c.Request().Context(), claims.Subject); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errJSON(h.kind.Label()+" Not Found"))
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":          false,
		"message":        "Profile Deleted",
		h.field() + "Id": claims.Subject,
	})
}

// ResetPassword replaces the password of the account matching the submitted
// email. The route sits behind the kind's guard.
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	if _, err := ctxClaims(c, h.kind); err != nil {
		return err
	}

	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON(err.Error()))
	}

	if err := h.service.ResetPassword(c.Request().Context(), req.Email, req.NewPassword); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errJSON(h.kind.Label()+" not found"))
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"error": false, "message": "Password reset successful"})
}

// GetByID returns one record of this kind by path id (admin directory view).
func (h *AccountHandler) GetByID(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param(h.field()+"Id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errJSON(h.kind.Label()+" not found."))
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": h.kind.Label() + " found successfully",
		h.field(): p,
	})
}

// DeleteByID removes one record of this kind by path id (admin directory
// view).
func (h *AccountHandler) DeleteByID(c echo.Context) error {
	id := c.Param(h.field() + "Id")
	if err := h.service.DeleteProfile(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errJSON(h.kind.Label()+" not found."))
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":          false,
		"message":        h.kind.Label() + " profile deleted successfully.",
		h.field() + "Id": id,
	})
}
