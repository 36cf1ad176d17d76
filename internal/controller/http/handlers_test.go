package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/grocito/grocito/internal/model"
	"github.com/grocito/grocito/pgk/auth"

	service "github.com/grocito/grocito/internal/service/mocks"
)

var (
	customerToken = &model.TokenInfo{ID: 123, Login: "customer", Role: model.RoleCustomer}
	partnerToken  = &model.TokenInfo{ID: 7, Login: "partner", Role: model.RolePartner}
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping() error { return s.err }

func newTestController(t *testing.T) (*Controller, *service.MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := service.NewMockService(ctrl)
	return New(mockSvc, stubPinger{}, zap.NewNop().Sugar()), mockSvc
}

func TestController_Ping_Success(t *testing.T) {
	controller, _ := newTestController(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	controller.Ping(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestController_Ping_StorageDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	controller := New(service.NewMockService(ctrl), stubPinger{err: errors.New("down")}, zap.NewNop().Sugar())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	controller.Ping(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestController_Register_Success(t *testing.T) {
	controller, mockSvc := newTestController(t)

	input := model.RegisterDTO{
		Login:    "testuser",
		Password: "testpass123",
	}

	mockSvc.EXPECT().
		Register(input).
		Return("Bearer token123", nil).
		Times(1)

	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	controller.Register(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer token123", w.Header().Get("Authorization"))
}

func TestController_Register_Conflict(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		Register(gomock.Any()).
		Return("", &model.APIError{Code: http.StatusConflict, Message: model.ErrUserAlreadyExistMessage})

	body, _ := json.Marshal(model.RegisterDTO{Login: "testuser", Password: "testpass123"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	controller.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestController_Login_Success(t *testing.T) {
	controller, mockSvc := newTestController(t)

	input := model.LoginDTO{
		Login:    "testuser",
		Password: "testpass123",
	}

	mockSvc.EXPECT().
		Login(input).
		Return("Bearer token123", nil).
		Times(1)

	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	controller.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer token123", w.Header().Get("Authorization"))
}

func TestController_QuoteDeliveryFee_Success(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		QuoteDeliveryFee(150.0).
		Return(&model.DeliveryFeeResult{
			OrderAmount: 150,
			DeliveryFee: 40,
			TotalAmount: 190,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/fee-quote?amount=150", nil)
	w := httptest.NewRecorder()

	controller.QuoteDeliveryFee(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result model.DeliveryFeeResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 190.0, result.TotalAmount)
}

func TestController_QuoteDeliveryFee_MissingAmount(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().QuoteDeliveryFee(gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodGet, "/api/fee-quote", nil)
	w := httptest.NewRecorder()

	controller.QuoteDeliveryFee(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_GetCart_Success(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		GetCart(int64(123)).
		Return(&model.Cart{Subtotal: 90}, nil)

	req := auth.NewAuthenticatedRequest(http.MethodGet, "/api/user/cart", customerToken, nil)
	w := httptest.NewRecorder()

	controller.GetCart(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestController_UpdateCartItem_Success(t *testing.T) {
	controller, mockSvc := newTestController(t)

	item := model.CartItem{ProductID: "p-1", Name: "Milk", Price: 45, Quantity: 2}

	mockSvc.EXPECT().
		UpdateCartItem(int64(123), item).
		Return(&model.Cart{Items: []model.CartItem{item}, Subtotal: 90}, nil)

	body, _ := json.Marshal(item)
	req := auth.NewAuthenticatedRequest(http.MethodPut, "/api/user/cart", customerToken, bytes.NewReader(body))
	w := httptest.NewRecorder()

	controller.UpdateCartItem(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestController_ClearCart_Success(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().ClearCart(int64(123)).Return(nil)

	req := auth.NewAuthenticatedRequest(http.MethodDelete, "/api/user/cart", customerToken, nil)
	w := httptest.NewRecorder()

	controller.ClearCart(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestController_PlaceOrder_Success(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		PlaceOrder(gomock.Any(), int64(123)).
		Return(&model.Order{Number: "order-1", Status: model.OrderStatusPlaced}, nil)

	req := auth.NewAuthenticatedRequest(http.MethodPost, "/api/user/orders", customerToken, nil)
	w := httptest.NewRecorder()

	controller.PlaceOrder(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var order model.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "order-1", order.Number)
}

func TestController_PlaceOrder_EmptyCart(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		PlaceOrder(gomock.Any(), int64(123)).
		Return(nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrCartEmptyMessage})

	req := auth.NewAuthenticatedRequest(http.MethodPost, "/api/user/orders", customerToken, nil)
	w := httptest.NewRecorder()

	controller.PlaceOrder(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_GetOrders_NoContent(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		GetOrders(int64(123)).
		Return(nil, &model.APIError{Code: http.StatusNoContent, Message: model.ErrOrdersNotFoundMessage})

	req := auth.NewAuthenticatedRequest(http.MethodGet, "/api/user/orders", customerToken, nil)
	w := httptest.NewRecorder()

	controller.GetOrders(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestController_CancelOrder_Success(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		CancelOrder(int64(123), "order-1").
		Return(nil)

	req := newRouteParamRequest(http.MethodDelete, "/api/user/orders/order-1", "number", "order-1", customerToken)
	w := httptest.NewRecorder()

	controller.CancelOrder(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestController_CancelOrder_Expired(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		CancelOrder(int64(123), "order-1").
		Return(&model.APIError{Code: http.StatusConflict, Message: model.ErrOrderNotCancellable.Error()})

	req := newRouteParamRequest(http.MethodDelete, "/api/user/orders/order-1", "number", "order-1", customerToken)
	w := httptest.NewRecorder()

	controller.CancelOrder(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestController_GetCancellationWindow_Success(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		GetCancellationWindow(int64(123), "order-1").
		Return(&model.CancellationWindow{CanCancel: true, TimeRemainingSeconds: 75}, nil)

	req := newRouteParamRequest(http.MethodGet, "/api/user/orders/order-1/cancellation", "number", "order-1", customerToken)
	w := httptest.NewRecorder()

	controller.GetCancellationWindow(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var window model.CancellationWindow
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &window))
	assert.True(t, window.CanCancel)
	assert.Equal(t, 75, window.TimeRemainingSeconds)
}

func TestController_RecordDelivery_Success(t *testing.T) {
	controller, mockSvc := newTestController(t)

	input := model.RecordDeliveryDTO{
		OrderNumber: "order-1",
		OrderAmount: 250,
	}

	mockSvc.EXPECT().
		RecordDelivery(int64(7), gomock.Any()).
		Return(&model.PartnerEarnings{DeliveryType: model.DeliveryTypeFree, TotalEarnings: 25}, nil)

	body, _ := json.Marshal(input)
	req := auth.NewAuthenticatedRequest(http.MethodPost, "/api/partner/deliveries", partnerToken, bytes.NewReader(body))
	w := httptest.NewRecorder()

	controller.RecordDelivery(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestController_RecordDelivery_CustomerForbidden(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().RecordDelivery(gomock.Any(), gomock.Any()).Times(0)

	req := auth.NewAuthenticatedRequest(http.MethodPost, "/api/partner/deliveries", customerToken, nil)
	w := httptest.NewRecorder()

	controller.RecordDelivery(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestController_GetEarnings_Summary(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		GetEarningsSummary(int64(7)).
		Return(&model.EarningsSummary{TotalDeliveries: 2, TotalEarnings: 55}, nil)

	req := auth.NewAuthenticatedRequest(http.MethodGet, "/api/partner/earnings", partnerToken, nil)
	w := httptest.NewRecorder()

	controller.GetEarnings(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestController_GetEarnings_Daily(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		GetDailyEarnings(int64(7)).
		Return(&model.DailyEarnings{DailyTargetAchieved: true, DailyTargetBonus: 80}, nil)

	req := auth.NewAuthenticatedRequest(http.MethodGet, "/api/partner/earnings?period=daily", partnerToken, nil)
	w := httptest.NewRecorder()

	controller.GetEarnings(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var daily model.DailyEarnings
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &daily))
	assert.True(t, daily.DailyTargetAchieved)
}

func TestController_GetEarnings_Weekly(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		GetWeeklyEarnings(int64(7)).
		Return(&model.EarningsSummary{TotalDeliveries: 1}, nil)

	req := auth.NewAuthenticatedRequest(http.MethodGet, "/api/partner/earnings?period=weekly", partnerToken, nil)
	w := httptest.NewRecorder()

	controller.GetEarnings(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestController_GetEarnings_UnknownPeriod(t *testing.T) {
	controller, _ := newTestController(t)

	req := auth.NewAuthenticatedRequest(http.MethodGet, "/api/partner/earnings?period=monthly", partnerToken, nil)
	w := httptest.NewRecorder()

	controller.GetEarnings(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_GetEarnings_CustomerForbidden(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().GetEarningsSummary(gomock.Any()).Times(0)

	req := auth.NewAuthenticatedRequest(http.MethodGet, "/api/partner/earnings", customerToken, nil)
	w := httptest.NewRecorder()

	controller.GetEarnings(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// newRouteParamRequest - authenticated request with a chi URL parameter in
// the context, the way the router would set it.
func newRouteParamRequest(method, target, param, value string, tokenInfo *model.TokenInfo) *http.Request {
	req := auth.NewAuthenticatedRequest(method, target, tokenInfo, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(param, value)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}
