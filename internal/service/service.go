package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grocito/grocito/internal/model"
	"github.com/grocito/grocito/internal/policy"
	"github.com/grocito/grocito/internal/repository/gateway"
	"github.com/grocito/grocito/internal/repository/pg"
	"github.com/grocito/grocito/pgk/auth"
	"github.com/grocito/grocito/pgk/password"
)

type StorageRepo interface {
	GetUserByLogin(login string) *model.User
	CreateUser(user model.User) (int64, error)

	CreateOrder(order model.Order) error
	GetOrdersByUserID(userID int64) ([]model.Order, error)
	GetOrderByNumber(userID int64, number string) (*model.Order, error)
	CancelOrder(userID int64, number string) error

	CreateDelivery(delivery model.Delivery) error
	GetDeliveriesByPartnerID(partnerID int64) ([]model.Delivery, error)
}

type CartStore interface {
	Get(userID int64) model.Cart
	SetItem(userID int64, item model.CartItem)
	Clear(userID int64)
}

type PaymentGateway interface {
	CreatePayment(ctx context.Context, opts gateway.CreateOptions) (*model.Payment, error)
}

type Service struct {
	storage StorageRepo
	cart    CartStore
	gateway PaymentGateway

	calc         *policy.Calculator
	cancellation policy.CancellationPolicy

	passCost    int
	tokenSecret string
	tokenExp    time.Duration

	now func() time.Time
}

func New(
	s StorageRepo,
	c CartStore,
	g PaymentGateway,
	calc *policy.Calculator,
	cancellation policy.CancellationPolicy,
	passCost int,
	tokenExp time.Duration,
	tokenSecret string,
) *Service {
	return &Service{
		storage: s,
		cart:    c,
		gateway: g,

		calc:         calc,
		cancellation: cancellation,

		passCost:    passCost,
		tokenExp:    tokenExp,
		tokenSecret: tokenSecret,

		now: time.Now,
	}
}

func (s *Service) Login(input model.LoginDTO) (string, *model.APIError) {
	if err := validateLoginDTO(input); err != nil {
		return "", &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	user := s.storage.GetUserByLogin(input.Login)
	if user == nil {
		return "", &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	if !password.CheckPasswordHash(input.Password, user.Password) {
		return "", &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	token, err := auth.GenerateBearerToken(model.TokenInfo{
		ID:    user.ID,
		Login: user.Login,
		Role:  user.Role,
	}, s.tokenExp, s.tokenSecret)
	if err != nil {
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return token, nil
}

func (s *Service) Register(input model.RegisterDTO) (string, *model.APIError) {
	if err := validateRegisterDTO(input); err != nil {
		return "", &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	passwordHash, err := password.HashPassword(input.Password, s.passCost)
	if err != nil {
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	role := input.Role
	if role == "" {
		role = model.RoleCustomer
	}

	userID, err := s.storage.CreateUser(model.User{
		Login:    input.Login,
		Password: passwordHash,
		Role:     role,
	})
	if err != nil {
		if strings.Contains(err.Error(), pg.ErrIsExistCode) {
			return "", &model.APIError{
				Code:    http.StatusConflict,
				Message: model.ErrUserAlreadyExistMessage,
			}
		}
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	token, err := auth.GenerateBearerToken(model.TokenInfo{
		ID:    userID,
		Login: input.Login,
		Role:  role,
	}, s.tokenExp, s.tokenSecret)
	if err != nil {
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return token, nil
}

// QuoteDeliveryFee - fee breakdown for an order amount, no side effects.
func (s *Service) QuoteDeliveryFee(amount float64) (*model.DeliveryFeeResult, *model.APIError) {
	result, err := s.calc.DeliveryFee(amount)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrInvalidAmountMessage,
		}
	}

	return &result, nil
}

func (s *Service) GetCart(userID int64) (*model.Cart, *model.APIError) {
	cart := s.cart.Get(userID)
	return &cart, nil
}

func (s *Service) UpdateCartItem(userID int64, item model.CartItem) (*model.Cart, *model.APIError) {
	if err := validateCartItem(item); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	s.cart.SetItem(userID, item)
	cart := s.cart.Get(userID)

	return &cart, nil
}

func (s *Service) ClearCart(userID int64) *model.APIError {
	s.cart.Clear(userID)
	return nil
}

// PlaceOrder - prices the current cart, creates the payment at the gateway
// and records the order. The payment settles asynchronously; the order
// starts out PLACED with a PENDING payment. The cart is cleared only after
// the order is stored.
func (s *Service) PlaceOrder(ctx context.Context, userID int64) (*model.Order, *model.APIError) {
	cart := s.cart.Get(userID)
	if len(cart.Items) == 0 {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrCartEmptyMessage,
		}
	}

	fee, err := s.calc.DeliveryFee(cart.Subtotal)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrInvalidAmountMessage,
		}
	}

	number := uuid.NewString()

	payment, err := s.gateway.CreatePayment(ctx, gateway.CreateOptions{
		OrderNumber: number,
		Amount:      fee.TotalAmount,
	})
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadGateway,
			Message: "payment gateway unavailable",
		}
	}

	order := model.Order{
		UserID:        userID,
		Number:        number,
		Amount:        fee.OrderAmount,
		DeliveryFee:   fee.DeliveryFee,
		TotalAmount:   fee.TotalAmount,
		FreeDelivery:  fee.FreeDelivery,
		Status:        model.OrderStatusPlaced,
		PaymentID:     payment.ID,
		PaymentStatus: payment.Status,
		PlacedAt:      s.now(),
	}

	if err := s.storage.CreateOrder(order); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	s.cart.Clear(userID)

	return &order, nil
}

func (s *Service) GetOrders(userID int64) ([]model.Order, *model.APIError) {
	orders, err := s.storage.GetOrdersByUserID(userID)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	if len(orders) == 0 {
		return nil, &model.APIError{
			Code:    http.StatusNoContent,
			Message: model.ErrOrdersNotFoundMessage,
		}
	}

	return orders, nil
}

// GetCancellationWindow - recomputed on every call, the client polls this
// to drive its countdown.
func (s *Service) GetCancellationWindow(userID int64, number string) (*model.CancellationWindow, *model.APIError) {
	order, err := s.storage.GetOrderByNumber(userID, number)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return nil, &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrOrderNotFound.Error(),
			}
		}
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	window, err := s.cancellation.Check(*order, s.now())
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return &window, nil
}

func (s *Service) CancelOrder(userID int64, number string) *model.APIError {
	order, err := s.storage.GetOrderByNumber(userID, number)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrOrderNotFound.Error(),
			}
		}
		return &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	if !s.cancellation.CanCancel(*order, s.now()) {
		return &model.APIError{
			Code:    http.StatusConflict,
			Message: model.ErrOrderNotCancellable.Error(),
		}
	}

	if err := s.storage.CancelOrder(userID, number); err != nil {
		// The window check and the update race against status updates, the
		// storage guard has the final word.
		if errors.Is(err, model.ErrOrderNotCancellable) {
			return &model.APIError{
				Code:    http.StatusConflict,
				Message: model.ErrOrderNotCancellable.Error(),
			}
		}
		return &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return nil
}

// RecordDelivery - stores a completed delivery and returns the payout
// breakdown. When the partner app sends no bonuses, the active bonus
// predicates fill them in.
func (s *Service) RecordDelivery(partnerID int64, input model.RecordDeliveryDTO) (*model.PartnerEarnings, *model.APIError) {
	if err := validateRecordDeliveryDTO(input); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	bonuses := input.Bonuses
	if bonuses == nil {
		bonuses = s.calc.ActiveBonuses(input.DeliveredAt, s.now())
	}

	earnings, err := s.calc.PartnerEarnings(input.OrderAmount, bonuses)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrInvalidAmountMessage,
		}
	}

	if err := s.storage.CreateDelivery(model.Delivery{
		PartnerID:   partnerID,
		OrderNumber: input.OrderNumber,
		OrderAmount: input.OrderAmount,
		Bonuses:     bonuses,
		DeliveredAt: input.DeliveredAt,
	}); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return &earnings, nil
}

func (s *Service) GetEarningsSummary(partnerID int64) (*model.EarningsSummary, *model.APIError) {
	deliveries, apiErr := s.partnerDeliveries(partnerID)
	if apiErr != nil {
		return nil, apiErr
	}

	summary, err := s.calc.Summary(deliveries)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return &summary, nil
}

func (s *Service) GetDailyEarnings(partnerID int64) (*model.DailyEarnings, *model.APIError) {
	deliveries, apiErr := s.partnerDeliveries(partnerID)
	if apiErr != nil {
		return nil, apiErr
	}

	daily, err := s.calc.DailySummary(deliveries, s.now())
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return &daily, nil
}

func (s *Service) GetWeeklyEarnings(partnerID int64) (*model.EarningsSummary, *model.APIError) {
	deliveries, apiErr := s.partnerDeliveries(partnerID)
	if apiErr != nil {
		return nil, apiErr
	}

	summary, err := s.calc.WeeklySummary(deliveries, s.now())
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return &summary, nil
}

func (s *Service) partnerDeliveries(partnerID int64) ([]model.Delivery, *model.APIError) {
	deliveries, err := s.storage.GetDeliveriesByPartnerID(partnerID)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return deliveries, nil
}
