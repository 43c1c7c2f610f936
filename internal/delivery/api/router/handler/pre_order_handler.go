package handler

import (
	"net/http"
	"strings"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PreOrderHandler serves the pre-order routes
type PreOrderHandler struct {
	preOrderUC usecase.PreOrderUsecase
}

// NewPreOrderHandler is the constructor for PreOrderHandler
func NewPreOrderHandler(uc usecase.PreOrderUsecase) *PreOrderHandler {
	return &PreOrderHandler{preOrderUC: uc}
}

// Register mounts the pre-order routes.
func (h *PreOrderHandler) Register(g *echo.Group) {
	g.POST("/create", h.Upsert)
	g.GET("", h.List)
	g.GET("/", h.List)
	g.GET("/:order_id", h.Get)
	g.PATCH("/:order_id/status", h.UpdateStatus)
	g.DELETE("/:order_id", h.Delete)
}

// Upsert creates the pre-order, or overwrites the one holding the same order_id
func (h *PreOrderHandler) Upsert(c echo.Context) error {
	var input usecase.UpsertPreOrderInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.preOrderUC.Upsert(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if result.Created {
		return response.Success(c, http.StatusCreated, "Pre-order created successfully", result.PreOrder)
	}

	return response.Success(c, http.StatusOK, "Pre-order updated successfully", result.PreOrder)
}

// UpdateStatus handles a status transition
func (h *PreOrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdatePreOrderStatusInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	preOrder, err := h.preOrderUC.UpdateStatus(c.Request().Context(), orderID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Pre-order status updated successfully", preOrder)
}

// Get handles retrieving one pre-order
func (h *PreOrderHandler) Get(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	preOrder, err := h.preOrderUC.Get(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Pre-order retrieved successfully", preOrder)
}

// List handles listing pre-orders, optionally filtered by ?status=
func (h *PreOrderHandler) List(c echo.Context) error {
	preOrders, err := h.preOrderUC.List(c.Request().Context(), strings.TrimSpace(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if preOrders == nil {
		preOrders = []*entity.PreOrder{}
	}

	return response.Success(c, http.StatusOK, "Pre-orders retrieved successfully", preOrders)
}

// Delete handles removing a pre-order
func (h *PreOrderHandler) Delete(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.preOrderUC.Delete(c.Request().Context(), orderID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Pre-order deleted successfully", nil)
}

func orderIDParam(c echo.Context) (string, error) {
	orderID := strings.TrimSpace(c.Param("order_id"))
	if orderID == "" {
		return "", domainerrors.ErrInvalidInput.WithDetails("order_id is required")
	}

	return orderID, nil
}
