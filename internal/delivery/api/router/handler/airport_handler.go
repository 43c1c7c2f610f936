package handler

import (
	"strings"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AirportHandler adds the multi-column search to the airport CRUD routes.
type AirportHandler struct {
	*ResourceHandler[entity.Airport, usecase.CreateAirportInput, usecase.UpdateAirportInput]

	airportUC usecase.AirportUsecase
}

// NewAirportHandler is the constructor for AirportHandler
func NewAirportHandler(uc usecase.AirportUsecase) *AirportHandler {
	return &AirportHandler{
		ResourceHandler: newResourceHandler[entity.Airport, usecase.CreateAirportInput, usecase.UpdateAirportInput](uc, "Airport"),
		airportUC:       uc,
	}
}

// Register mounts the airport routes; /search is registered before /:id.
func (h *AirportHandler) Register(g *echo.Group) {
	g.GET("/search", h.Search)
	h.ResourceHandler.Register(g)
}

// Search matches ?query= against name, code and city
func (h *AirportHandler) Search(c echo.Context) error {
	params, err := listParams(c, "query")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	params.Search = strings.TrimSpace(params.Search)
	if params.Search == "" {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("query is required"))
	}

	result, err := h.airportUC.Search(c.Request().Context(), params)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, "Airports retrieved successfully", result)
}
