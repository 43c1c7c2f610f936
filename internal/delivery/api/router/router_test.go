package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/router/handler"
	"backoffice/internal/delivery/api/validator"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	mockService "backoffice/internal/mocks/service"
	mockUsecase "backoffice/internal/mocks/usecase"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	Success    bool                      `json:"success"`
	Message    string                    `json:"message"`
	Data       json.RawMessage           `json:"data"`
	Error      string                    `json:"error"`
	Code       string                    `json:"code"`
	Errors     []domainerrors.FieldError `json:"errors"`
	Pagination *usecase.Pagination       `json:"pagination"`
}

type testFixtures struct {
	e                    *echo.Echo
	airportUC            *mockUsecase.MockAirportUsecase
	driverRateUC         *mockUsecase.MockResourceUsecase[entity.DriverRate, usecase.CreateDriverRateInput, usecase.UpdateDriverRateInput]
	adminNotificationUC  *mockUsecase.MockAdminNotificationUsecase
	driverNotificationUC *mockUsecase.MockDriverNotificationUsecase
	preOrderUC           *mockUsecase.MockPreOrderUsecase
	tokenSvc             *mockService.MockTokenService
}

func createTestFixtures(t *testing.T) *testFixtures {
	t.Helper()

	fx := &testFixtures{
		e:                    echo.New(),
		airportUC:            mockUsecase.NewMockAirportUsecase(t),
		driverRateUC:         mockUsecase.NewMockResourceUsecase[entity.DriverRate, usecase.CreateDriverRateInput, usecase.UpdateDriverRateInput](t),
		adminNotificationUC:  mockUsecase.NewMockAdminNotificationUsecase(t),
		driverNotificationUC: mockUsecase.NewMockDriverNotificationUsecase(t),
		preOrderUC:           mockUsecase.NewMockPreOrderUsecase(t),
		tokenSvc:             mockService.NewMockTokenService(t),
	}

	fx.e.Validator = validator.New()
	fx.e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	NewRouter(RouterParams{
		AirportHandler:               handler.NewAirportHandler(fx.airportUC),
		DriverRateHandler:            handler.NewDriverRateHandler(fx.driverRateUC),
		LabourRateHandler:            handler.NewLabourRateHandler(mockUsecase.NewMockResourceUsecase[entity.LabourRate, usecase.CreateLabourRateInput, usecase.UpdateLabourRateInput](t)),
		PetrolBulkHandler:            handler.NewPetrolBulkHandler(mockUsecase.NewMockResourceUsecase[entity.PetrolBulk, usecase.CreatePetrolBulkInput, usecase.UpdatePetrolBulkInput](t)),
		VegetableAvailabilityHandler: handler.NewVegetableAvailabilityHandler(mockUsecase.NewMockResourceUsecase[entity.VegetableAvailability, usecase.CreateVegetableAvailabilityInput, usecase.UpdateVegetableAvailabilityInput](t)),
		AdminNotificationHandler:     handler.NewAdminNotificationHandler(fx.adminNotificationUC),
		DriverNotificationHandler:    handler.NewDriverNotificationHandler(fx.driverNotificationUC),
		PreOrderHandler:              handler.NewPreOrderHandler(fx.preOrderUC),
		AuthMiddleware:               apimiddleware.NewAuthMiddleware(fx.tokenSvc),
	}).RegisterRoutes(fx.e)

	return fx
}

func (fx *testFixtures) do(t *testing.T, method, target, body string, headers ...string) (int, testEnvelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())

	return rec.Code, envelope
}

func TestHealth(t *testing.T) {
	fx := createTestFixtures(t)

	status, body := fx.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, body.Success)
}

func TestDriverRate_Lifecycle(t *testing.T) {
	fx := createTestFixtures(t)
	rate := &entity.DriverRate{ID: 1, DeliveryType: "BOX ORDER", Amount: 12.5, Status: entity.StatusActive, CreatedAt: time.Now()}

	fx.driverRateUC.EXPECT().
		Create(mock.Anything, &usecase.CreateDriverRateInput{DeliveryType: "BOX ORDER", Amount: 12.5}).
		Return(rate, nil).Once()
	fx.driverRateUC.EXPECT().Get(mock.Anything, uint64(1)).Return(rate, nil).Once()
	fx.driverRateUC.EXPECT().Delete(mock.Anything, uint64(1)).Return(nil).Once()
	fx.driverRateUC.EXPECT().Get(mock.Anything, uint64(1)).Return(nil, errors.WithStack(domainerrors.ErrDriverRateNotFound)).Once()

	status, body := fx.do(t, http.MethodPost, "/driverRate/create", `{"deliveryType":"BOX ORDER","amount":12.5}`)
	require.Equal(t, http.StatusCreated, status)
	var created entity.DriverRate
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Equal(t, entity.StatusActive, created.Status)

	status, _ = fx.do(t, http.MethodGet, "/driverRate/1", "")
	assert.Equal(t, http.StatusOK, status)

	status, body = fx.do(t, http.MethodDelete, "/driverRate/delete/1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, body.Success)

	status, body = fx.do(t, http.MethodGet, "/driverRate/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, body.Success)
	assert.Equal(t, "DRIVER_RATE_NOT_FOUND", body.Code)
}

func TestDriverRate_CreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantTag   string
	}{
		{name: "missing delivery type", body: `{"amount":10}`, wantField: "deliveryType", wantTag: "required"},
		{name: "negative amount", body: `{"deliveryType":"BAG ORDER","amount":-1}`, wantField: "amount", wantTag: "gt"},
		{name: "unknown status", body: `{"deliveryType":"BAG ORDER","amount":3,"status":"Paused"}`, wantField: "status", wantTag: "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestFixtures(t)

			status, body := fx.do(t, http.MethodPost, "/driverRate/create", tt.body)

			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "VALIDATION_FAILED", body.Code)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, tt.wantField, body.Errors[0].Field)
			assert.Equal(t, tt.wantTag, body.Errors[0].Tag)
		})
	}
}

func TestDriverRate_MalformedRequests(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "non numeric id", method: http.MethodGet, target: "/driverRate/abc"},
		{name: "zero id", method: http.MethodDelete, target: "/driverRate/delete/0"},
		{name: "non numeric page", method: http.MethodGet, target: "/driverRate?page=two"},
		{name: "amount of the wrong type", method: http.MethodPost, target: "/driverRate/create", body: `{"deliveryType":"BOX","amount":"ten"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestFixtures(t)

			status, body := fx.do(t, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "INVALID_INPUT", body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestDriverRate_ListPagination(t *testing.T) {
	fx := createTestFixtures(t)
	items := make([]*entity.DriverRate, 5)
	for i := range items {
		items[i] = &entity.DriverRate{ID: uint64(i + 6)}
	}

	fx.driverRateUC.EXPECT().
		List(mock.Anything, usecase.ListParams{Page: 2, Limit: 5, Search: "box"}).
		Return(&usecase.ListResult[entity.DriverRate]{
			Items:      items,
			Pagination: usecase.Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 12, ItemsPerPage: 5},
		}, nil)

	status, body := fx.do(t, http.MethodGet, "/driverRate?page=2&limit=5&search=box", "")

	require.Equal(t, http.StatusOK, status)
	var listed []entity.DriverRate
	require.NoError(t, json.Unmarshal(body.Data, &listed))
	assert.Len(t, listed, 5)
	require.NotNil(t, body.Pagination)
	assert.Equal(t, 3, body.Pagination.TotalPages)
	assert.Equal(t, int64(12), body.Pagination.TotalItems)
}

func TestDriverRate_UnexpectedErrorIsInternal(t *testing.T) {
	fx := createTestFixtures(t)
	fx.driverRateUC.EXPECT().Get(mock.Anything, uint64(4)).Return(nil, errors.New("failed to get driver rate: connection reset"))

	status, body := fx.do(t, http.MethodGet, "/driverRate/4", "")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "failed to get driver rate: connection reset", body.Error)
}

func TestDriverRate_WriteFailureKeepsDriverMessage(t *testing.T) {
	fx := createTestFixtures(t)
	writeErr := domainerrors.NewInternalError(errors.Wrap(errors.New("pq: connection reset by peer"), "failed to create driver rate"))
	fx.driverRateUC.EXPECT().
		Create(mock.Anything, &usecase.CreateDriverRateInput{DeliveryType: "BOX ORDER", Amount: 12.5}).
		Return(nil, errors.Wrap(writeErr, "failed to create driver rate"))

	status, body := fx.do(t, http.MethodPost, "/driverRate/create", `{"deliveryType":"BOX ORDER","amount":12.5}`)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.False(t, body.Success)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Contains(t, body.Error, "pq: connection reset by peer")
}

func TestAirport_DuplicateCode(t *testing.T) {
	fx := createTestFixtures(t)
	fx.airportUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreateAirportInput")).
		Return(nil, errors.WithStack(domainerrors.ErrAirportCodeExists))

	status, body := fx.do(t, http.MethodPost, "/airport/create", `{"name":"Heathrow","code":"LHR","city":"London","country":"UK"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "AIRPORT_CODE_EXISTS", body.Code)
	assert.Equal(t, "Airport code already exists", body.Message)
}

func TestAirport_Search(t *testing.T) {
	t.Run("matches query", func(t *testing.T) {
		fx := createTestFixtures(t)
		fx.airportUC.EXPECT().
			Search(mock.Anything, usecase.ListParams{Search: "lon"}).
			Return(&usecase.ListResult[entity.Airport]{Pagination: usecase.Pagination{CurrentPage: 1, ItemsPerPage: 10}}, nil)

		status, body := fx.do(t, http.MethodGet, "/airport/search?query=lon", "")

		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[]`, string(body.Data))
	})

	t.Run("blank query", func(t *testing.T) {
		fx := createTestFixtures(t)

		status, body := fx.do(t, http.MethodGet, "/airport/search?query=%20", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_INPUT", body.Code)
	})
}

func TestAdminNotification_RequiresToken(t *testing.T) {
	fx := createTestFixtures(t)

	status, body := fx.do(t, http.MethodGet, "/notification/list", "")

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

func TestAdminNotification_ScopedToTokenSubject(t *testing.T) {
	fx := createTestFixtures(t)
	auth := []string{echo.HeaderAuthorization, "Bearer admin-token"}
	fx.tokenSvc.EXPECT().ValidateToken("admin-token").Return(&service.Claims{AdminID: 9}, nil)

	created := &entity.AdminNotification{NotificationBase: entity.NotificationBase{ID: 3, Type: "system", Title: "Hello"}, AdminID: 9}
	fx.adminNotificationUC.EXPECT().
		Create(mock.Anything, uint64(9), &usecase.CreateAdminNotificationInput{Type: "system", Title: "Hello"}).
		Return(created, nil)
	fx.adminNotificationUC.EXPECT().MarkAllRead(mock.Anything, uint64(9)).Return(int64(0), nil)
	fx.adminNotificationUC.EXPECT().Clear(mock.Anything, uint64(9)).Return(int64(2), nil)
	fx.adminNotificationUC.EXPECT().Delete(mock.Anything, uint64(40), uint64(9)).Return(errors.WithStack(domainerrors.ErrNotificationNotFound))

	status, _ := fx.do(t, http.MethodPost, "/notification/create", `{"type":"system","title":"Hello"}`, auth...)
	assert.Equal(t, http.StatusCreated, status)

	status, body := fx.do(t, http.MethodPatch, "/notification/mark-all/read", "", auth...)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"updated":0}`, string(body.Data))

	status, body = fx.do(t, http.MethodDelete, "/notification", "", auth...)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"deleted":2}`, string(body.Data))

	status, body = fx.do(t, http.MethodDelete, "/notification/40", "", auth...)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, body.Success)
}

func TestAdminNotification_CreateValidation(t *testing.T) {
	fx := createTestFixtures(t)
	fx.tokenSvc.EXPECT().ValidateToken("admin-token").Return(&service.Claims{AdminID: 9}, nil)

	status, body := fx.do(t, http.MethodPost, "/notification/create", `{"message":"no title"}`, echo.HeaderAuthorization, "Bearer admin-token")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Len(t, body.Errors, 2)
}

func TestDriverNotification_Routes(t *testing.T) {
	fx := createTestFixtures(t)
	read := &entity.DriverNotification{NotificationBase: entity.NotificationBase{ID: 5, IsRead: true}, DriverID: 12}

	fx.driverNotificationUC.EXPECT().List(mock.Anything, uint64(12)).Return(&usecase.DriverNotificationList{
		Notifications: []*entity.DriverNotification{read},
		UnreadCount:   0,
	}, nil)
	fx.driverNotificationUC.EXPECT().MarkRead(mock.Anything, uint64(5), uint64(12)).Return(read, nil).Twice()
	fx.driverNotificationUC.EXPECT().MarkAllRead(mock.Anything, uint64(12)).Return(int64(0), nil)
	fx.driverNotificationUC.EXPECT().Clear(mock.Anything, uint64(12)).Return(int64(0), nil)
	fx.driverNotificationUC.EXPECT().Get(mock.Anything, uint64(5), uint64(13)).Return(nil, errors.WithStack(domainerrors.ErrDriverNotificationNotFound))

	status, body := fx.do(t, http.MethodGet, "/driverNotification/driver/12", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `0`, string(mustField(t, body.Data, "unreadCount")))

	for range 2 {
		status, body = fx.do(t, http.MethodPatch, "/driverNotification/5/read/12", "")
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `true`, string(mustField(t, body.Data, "is_read")))
	}

	status, _ = fx.do(t, http.MethodPatch, "/driverNotification/mark-all/read/12", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = fx.do(t, http.MethodDelete, "/driverNotification/all/12", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = fx.do(t, http.MethodGet, "/driverNotification/5/13", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPreOrder_Upsert(t *testing.T) {
	body := `{"order_id":"ORD-1","collection_type":"Bag","delivery_routes":[{"driver_id":3}]}`
	preOrder := &entity.PreOrder{ID: 1, OrderID: "ORD-1", CollectionType: entity.CollectionTypeBag, Status: entity.PreOrderStatusPending}
	matchInput := mock.MatchedBy(func(input *usecase.UpsertPreOrderInput) bool {
		return input.OrderID == "ORD-1" && string(input.DeliveryRoutes) == `[{"driver_id":3}]`
	})

	fx := createTestFixtures(t)
	fx.preOrderUC.EXPECT().Upsert(mock.Anything, matchInput).Return(&usecase.UpsertPreOrderResult{PreOrder: preOrder, Created: true}, nil).Once()
	fx.preOrderUC.EXPECT().Upsert(mock.Anything, matchInput).Return(&usecase.UpsertPreOrderResult{PreOrder: preOrder}, nil).Once()

	status, created := fx.do(t, http.MethodPost, "/preOrder/create", body)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Pre-order created successfully", created.Message)

	status, updated := fx.do(t, http.MethodPost, "/preOrder/create", body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Pre-order updated successfully", updated.Message)
}

func TestPreOrder_UpsertValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "missing order id", body: `{"collection_type":"Box"}`, wantField: "order_id"},
		{name: "unknown collection type", body: `{"order_id":"A","collection_type":"Crate"}`, wantField: "collection_type"},
		{name: "routes not an array", body: `{"order_id":"A","delivery_routes":{"driver_id":1}}`, wantField: "delivery_routes"},
		{name: "summary not an object", body: `{"order_id":"A","summary_data":[1]}`, wantField: "summary_data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestFixtures(t)

			status, body := fx.do(t, http.MethodPost, "/preOrder/create", tt.body)

			assert.Equal(t, http.StatusBadRequest, status)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, tt.wantField, body.Errors[0].Field)
		})
	}
}

func TestPreOrder_UpdateStatus(t *testing.T) {
	t.Run("any target in the enum", func(t *testing.T) {
		for _, target := range []string{entity.PreOrderStatusCompleted, entity.PreOrderStatusCancelled, entity.PreOrderStatusPending} {
			fx := createTestFixtures(t)
			fx.preOrderUC.EXPECT().
				UpdateStatus(mock.Anything, "ORD-1", &usecase.UpdatePreOrderStatusInput{Status: target}).
				Return(&entity.PreOrder{OrderID: "ORD-1", Status: target}, nil)

			status, _ := fx.do(t, http.MethodPatch, "/preOrder/ORD-1/status", `{"status":"`+target+`"}`)
			assert.Equal(t, http.StatusOK, status)
		}
	})

	t.Run("status outside the enum", func(t *testing.T) {
		fx := createTestFixtures(t)

		status, body := fx.do(t, http.MethodPatch, "/preOrder/ORD-1/status", `{"status":"shipped"}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_FAILED", body.Code)
	})

	t.Run("unknown order", func(t *testing.T) {
		fx := createTestFixtures(t)
		fx.preOrderUC.EXPECT().
			UpdateStatus(mock.Anything, "ORD-9", mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrPreOrderNotFound))

		status, body := fx.do(t, http.MethodPatch, "/preOrder/ORD-9/status", `{"status":"completed"}`)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "PRE_ORDER_NOT_FOUND", body.Code)
	})
}

func TestPreOrder_ListByStatus(t *testing.T) {
	fx := createTestFixtures(t)
	fx.preOrderUC.EXPECT().List(mock.Anything, entity.PreOrderStatusPending).Return(nil, nil)

	status, body := fx.do(t, http.MethodGet, "/preOrder?status=pending", "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body.Data))
}

func TestUnknownRoute(t *testing.T) {
	fx := createTestFixtures(t)

	status, body := fx.do(t, http.MethodGet, "/nowhere", "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, body.Success)
}

func mustField(t *testing.T, data json.RawMessage, key string) json.RawMessage {
	t.Helper()

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	require.Contains(t, fields, key)

	return fields[key]
}
