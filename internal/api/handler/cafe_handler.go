package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
	"github.com/dogukan2201/ChairUpBackend/internal/core/ports"
)

// CafeHandler serves café and employee registration. Café routes sit behind
// the admin guard, employee registration behind the café-owner guard.
type CafeHandler struct {
	service ports.CafeService
}

func NewCafeHandler(service ports.CafeService) *CafeHandler {
	return &CafeHandler{service: service}
}

// RegisterCafe creates a café after verifying the referenced owner exists.
//
// @Summary      Register a new cafe
// @Tags         cafes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerCafeRequest  true  "Cafe details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
func (h *CafeHandler) RegisterCafe(c echo.Context) error {
	var req registerCafeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("All fields are required."))
	}

	menu := make([]domain.MenuItem, 0, len(req.Menu))
	for _, item := range req.Menu {
		menu = append(menu, domain.MenuItem{
			ItemName:    item.ItemName,
			Price:       item.Price,
			Description: item.Description,
		})
	}

	cafe, owner, err := h.service.RegisterCafe(c.Request().Context(), ports.RegisterCafeInput{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Location: domain.GeoPoint{
			Type:        req.Location.Type,
			Coordinates: req.Location.Coordinates,
		},
		Menu:    menu,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOwnerNotFound):
			return c.JSON(http.StatusUnauthorized, errJSON("Cafe Owner Id does not exist."))
		case errors.Is(err, domain.ErrMissingField):
			return c.JSON(http.StatusBadRequest, errJSON("All fields are required."))
		}
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"error":   false,
		"cafe":    cafe,
		"owner":   owner,
		"message": "Cafe registered successfully.",
	})
}

// GetCafe returns one café by path id.
func (h *CafeHandler) GetCafe(c echo.Context) error {
	cafe, err := h.service.GetCafe(c.Request().Context(), c.Param("cafeId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errJSON("Cafe not found."))
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "Cafe found successfully",
		"cafe":    cafe,
	})
}

// ListCafes returns every registered café.
func (h *CafeHandler) ListCafes(c echo.Context) error {
	cafes, err := h.service.ListCafes(c.Request().Context())
	if err != nil {
		return err
	}
	if cafes == nil {
		cafes = []*domain.Cafe{}
	}
	return c.JSON(http.StatusOK, echo.Map{"error": false, "cafes": cafes})
}

// DeleteCafe removes one café by path id.
func (h *CafeHandler) DeleteCafe(c echo.Context) error {
	id := c.Param("cafeId")
	if err := h.service.DeleteCafe(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errJSON("Cafe not found."))
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "Cafe deleted successfully.",
		"cafeId":  id,
	})
}

// RegisterEmployee creates an employee after verifying the referenced café
// exists.
//
// @Summary      Register a new employee
// @Tags         cafes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerEmployeeRequest  true  "Employee details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
func (h *CafeHandler) RegisterEmployee(c echo.Context) error {
	var req registerEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("All fields are required."))
	}

	employee, cafe, err := h.service.RegisterEmployee(c.Request().Context(), ports.RegisterEmployeeInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		CafeID:      req.CafeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCafeNotFound):
			return c.JSON(http.StatusUnauthorized, errJSON("Cafe does not exist."))
		case errors.Is(err, domain.ErrAlreadyExists):
			return c.JSON(http.StatusConflict, errJSON("Employee already exists."))
		case errors.Is(err, domain.ErrMissingField):
			return c.JSON(http.StatusBadRequest, errJSON("All fields are required."))
		}
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"error":    false,
		"employee": employee,
		"cafe":     cafe,
		"message":  "Employee registered successfully.",
	})
}
