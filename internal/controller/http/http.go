package http

import (
	"context"

	"github.com/grocito/grocito/internal/model"
	"go.uber.org/zap"
)

type Service interface {
	Register(input model.RegisterDTO) (string, *model.APIError)
	Login(input model.LoginDTO) (string, *model.APIError)

	QuoteDeliveryFee(amount float64) (*model.DeliveryFeeResult, *model.APIError)

	GetCart(userID int64) (*model.Cart, *model.APIError)
	UpdateCartItem(userID int64, item model.CartItem) (*model.Cart, *model.APIError)
	ClearCart(userID int64) *model.APIError

	PlaceOrder(ctx context.Context, userID int64) (*model.Order, *model.APIError)
	GetOrders(userID int64) ([]model.Order, *model.APIError)
	CancelOrder(userID int64, number string) *model.APIError
	GetCancellationWindow(userID int64, number string) (*model.CancellationWindow, *model.APIError)

	RecordDelivery(partnerID int64, input model.RecordDeliveryDTO) (*model.PartnerEarnings, *model.APIError)
	GetEarningsSummary(partnerID int64) (*model.EarningsSummary, *model.APIError)
	GetDailyEarnings(partnerID int64) (*model.DailyEarnings, *model.APIError)
	GetWeeklyEarnings(partnerID int64) (*model.EarningsSummary, *model.APIError)
}

type Pinger interface {
	Ping() error
}

type Controller struct {
	service Service
	pinger  Pinger
	lg      *zap.SugaredLogger
}

func New(s Service, p Pinger, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		pinger:  p,
		service: s,
	}
}
