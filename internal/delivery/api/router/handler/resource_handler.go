package handler

import (
	"net/http"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ResourceHandler serves the create/list/get/update/delete routes of one plain resource.
type ResourceHandler[E, C, P any] struct {
	uc    usecase.ResourceUsecase[E, C, P]
	label string // Subject of the response messages, e.g. "Driver rate".
}

func newResourceHandler[E, C, P any](uc usecase.ResourceUsecase[E, C, P], label string) *ResourceHandler[E, C, P] {
	return &ResourceHandler[E, C, P]{uc: uc, label: label}
}

type (
	DriverRateHandler            = ResourceHandler[entity.DriverRate, usecase.CreateDriverRateInput, usecase.UpdateDriverRateInput]
	LabourRateHandler            = ResourceHandler[entity.LabourRate, usecase.CreateLabourRateInput, usecase.UpdateLabourRateInput]
	PetrolBulkHandler            = ResourceHandler[entity.PetrolBulk, usecase.CreatePetrolBulkInput, usecase.UpdatePetrolBulkInput]
	VegetableAvailabilityHandler = ResourceHandler[entity.VegetableAvailability, usecase.CreateVegetableAvailabilityInput, usecase.UpdateVegetableAvailabilityInput]
)

// NewDriverRateHandler is the constructor for DriverRateHandler
func NewDriverRateHandler(uc usecase.DriverRateUsecase) *DriverRateHandler {
	return newResourceHandler(uc, "Driver rate")
}

// NewLabourRateHandler is the constructor for LabourRateHandler
func NewLabourRateHandler(uc usecase.LabourRateUsecase) *LabourRateHandler {
	return newResourceHandler(uc, "Labour rate")
}

// NewPetrolBulkHandler is the constructor for PetrolBulkHandler
func NewPetrolBulkHandler(uc usecase.PetrolBulkUsecase) *PetrolBulkHandler {
	return newResourceHandler(uc, "Petrol bulk")
}

// NewVegetableAvailabilityHandler is the constructor for VegetableAvailabilityHandler
func NewVegetableAvailabilityHandler(uc usecase.VegetableAvailabilityUsecase) *VegetableAvailabilityHandler {
	return newResourceHandler(uc, "Vegetable availability")
}

// Register mounts the routes of the resource on g.
func (h *ResourceHandler[E, C, P]) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/", h.List)
	g.POST("/create", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/update/:id", h.Update)
	g.DELETE("/delete/:id", h.Delete)
}

// Create handles record creation
func (h *ResourceHandler[E, C, P]) Create(c echo.Context) error {
	input := new(C)
	if err := bindAndValidate(c, input); err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, h.label+" created successfully", record)
}

// List handles the paginated listing with the optional search filter
func (h *ResourceHandler[E, C, P]) List(c echo.Context) error {
	params, err := listParams(c, "search")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.uc.List(c.Request().Context(), params)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, h.label+" list retrieved successfully", result)
}

// Get handles retrieving one record
func (h *ResourceHandler[E, C, P]) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.label+" retrieved successfully", record)
}

// Update handles a partial update
func (h *ResourceHandler[E, C, P]) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := new(P)
	if err := bindAndValidate(c, input); err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.label+" updated successfully", record)
}

// Delete handles record removal
func (h *ResourceHandler[E, C, P]) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.label+" deleted successfully", nil)
}
