package handler

import (
	"net/http"

	"backoffice/internal/delivery/api/response"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

// notificationHandler serves the owner-scoped routes shared by both notification variants.
// owner resolves the caller the notifications belong to.
type notificationHandler[N any] struct {
	uc    usecase.NotificationUsecase[N]
	owner func(c echo.Context) (uint64, error)
}

func (h *notificationHandler[N]) get(c echo.Context) error {
	ownerID, err := h.owner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notification, err := h.uc.Get(c.Request().Context(), id, ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Notification retrieved successfully", notification)
}

func (h *notificationHandler[N]) markRead(c echo.Context) error {
	ownerID, err := h.owner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notification, err := h.uc.MarkRead(c.Request().Context(), id, ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Notification marked as read", notification)
}

func (h *notificationHandler[N]) markAllRead(c echo.Context) error {
	ownerID, err := h.owner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	updated, err := h.uc.MarkAllRead(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "All notifications marked as read", map[string]int64{"updated": updated})
}

func (h *notificationHandler[N]) delete(c echo.Context) error {
	ownerID, err := h.owner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), id, ownerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Notification deleted successfully", nil)
}

func (h *notificationHandler[N]) clear(c echo.Context) error {
	ownerID, err := h.owner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deleted, err := h.uc.Clear(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "All notifications deleted successfully", map[string]int64{"deleted": deleted})
}

// AdminNotificationHandler serves the notifications of the authenticated admin
type AdminNotificationHandler struct {
	notificationHandler[entity.AdminNotification]

	adminUC usecase.AdminNotificationUsecase
}

// NewAdminNotificationHandler is the constructor for AdminNotificationHandler
func NewAdminNotificationHandler(uc usecase.AdminNotificationUsecase) *AdminNotificationHandler {
	return &AdminNotificationHandler{
		notificationHandler: notificationHandler[entity.AdminNotification]{uc: uc, owner: adminOwner},
		adminUC:             uc,
	}
}

// adminOwner reads the admin set by the authentication middleware.
func adminOwner(c echo.Context) (uint64, error) {
	adminID, ok := deliverycontext.GetAdminID(c)
	if !ok {
		return 0, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return adminID, nil
}

// Register mounts the admin notification routes on an authenticated group.
func (h *AdminNotificationHandler) Register(g *echo.Group) {
	g.POST("/create", h.Create)
	g.GET("/list", h.List)
	g.PATCH("/mark-all/read", h.markAllRead)
	g.GET("/:id", h.get)
	g.PATCH("/:id/read", h.markRead)
	g.DELETE("/:id", h.delete)
	g.DELETE("", h.clear)
	g.DELETE("/", h.clear)
}

// Create handles creating a notification for the calling admin
func (h *AdminNotificationHandler) Create(c echo.Context) error {
	adminID, err := adminOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.CreateAdminNotificationInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	notification, err := h.adminUC.Create(c.Request().Context(), adminID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "Notification created successfully", notification)
}

// List handles listing every notification of the calling admin
func (h *AdminNotificationHandler) List(c echo.Context) error {
	adminID, err := adminOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notifications, err := h.adminUC.List(c.Request().Context(), adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if notifications == nil {
		notifications = []*entity.AdminNotification{}
	}

	return response.Success(c, http.StatusOK, "Notifications retrieved successfully", notifications)
}

// DriverNotificationHandler serves the notifications of the driver named in the path
type DriverNotificationHandler struct {
	notificationHandler[entity.DriverNotification]

	driverUC usecase.DriverNotificationUsecase
}

// NewDriverNotificationHandler is the constructor for DriverNotificationHandler
func NewDriverNotificationHandler(uc usecase.DriverNotificationUsecase) *DriverNotificationHandler {
	return &DriverNotificationHandler{
		notificationHandler: notificationHandler[entity.DriverNotification]{uc: uc, owner: driverOwner},
		driverUC:            uc,
	}
}

func driverOwner(c echo.Context) (uint64, error) {
	return parseID(c, "did")
}

// Register mounts the driver notification routes.
func (h *DriverNotificationHandler) Register(g *echo.Group) {
	g.GET("/driver/:did", h.List)
	g.PATCH("/mark-all/read/:did", h.markAllRead)
	g.DELETE("/all/:did", h.clear)
	g.GET("/:id/:did", h.get)
	g.PATCH("/:id/read/:did", h.markRead)
	g.DELETE("/:id/:did", h.delete)
}

// List handles the capped listing of one driver's notifications
func (h *DriverNotificationHandler) List(c echo.Context) error {
	driverID, err := driverOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.driverUC.List(c.Request().Context(), driverID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if list.Notifications == nil {
		list.Notifications = []*entity.DriverNotification{}
	}

	return response.Success(c, http.StatusOK, "Notifications retrieved successfully", list)
}
