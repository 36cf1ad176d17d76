package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/grocito/grocito/internal/model"
	"github.com/grocito/grocito/pgk/auth"
)

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if err := c.pinger.Ping(); err != nil {
		c.lg.Errorf("storage ping failed: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.RegisterDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	bearerToken, apiErr := c.service.Register(body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	bearerToken, apiErr := c.service.Login(body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
}

// QuoteDeliveryFee - GET /api/fee-quote?amount=150. Public, stateless.
func (c *Controller) QuoteDeliveryFee(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil {
		http.Error(w, model.ErrInvalidAmountMessage, http.StatusBadRequest)
		return
	}

	result, apiErr := c.service.QuoteDeliveryFee(amount)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, result, http.StatusOK)
}

func (c *Controller) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, apiErr := c.service.GetCart(auth.GetTokenInfo[model.TokenInfo](r).ID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, cart, http.StatusOK)
}

func (c *Controller) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CartItem](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	cart, apiErr := c.service.UpdateCartItem(auth.GetTokenInfo[model.TokenInfo](r).ID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, cart, http.StatusOK)
}

func (c *Controller) ClearCart(w http.ResponseWriter, r *http.Request) {
	if apiErr := c.service.ClearCart(auth.GetTokenInfo[model.TokenInfo](r).ID); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	order, apiErr := c.service.PlaceOrder(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, order, http.StatusCreated)
}

func (c *Controller) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, apiErr := c.service.GetOrders(auth.GetTokenInfo[model.TokenInfo](r).ID)
	if apiErr != nil {
		if apiErr.Code == http.StatusNoContent {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, orders, http.StatusOK)
}

func (c *Controller) CancelOrder(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	if apiErr := c.service.CancelOrder(auth.GetTokenInfo[model.TokenInfo](r).ID, number); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) GetCancellationWindow(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	window, apiErr := c.service.GetCancellationWindow(auth.GetTokenInfo[model.TokenInfo](r).ID, number)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, window, http.StatusOK)
}

func (c *Controller) RecordDelivery(w http.ResponseWriter, r *http.Request) {
	tokenInfo := auth.GetTokenInfo[model.TokenInfo](r)
	if tokenInfo.Role != model.RolePartner {
		http.Error(w, model.ErrPartnerOnlyMessage, http.StatusForbidden)
		return
	}

	body, err := readBody[model.RecordDeliveryDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	earnings, apiErr := c.service.RecordDelivery(tokenInfo.ID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, earnings, http.StatusCreated)
}

// GetEarnings - GET /api/partner/earnings?period=daily|weekly. Without a
// period parameter the full summary is returned.
func (c *Controller) GetEarnings(w http.ResponseWriter, r *http.Request) {
	tokenInfo := auth.GetTokenInfo[model.TokenInfo](r)
	if tokenInfo.Role != model.RolePartner {
		http.Error(w, model.ErrPartnerOnlyMessage, http.StatusForbidden)
		return
	}

	switch r.URL.Query().Get("period") {
	case "":
		summary, apiErr := c.service.GetEarningsSummary(tokenInfo.ID)
		if apiErr != nil {
			http.Error(w, apiErr.Message, apiErr.Code)
			return
		}
		writeJSON(w, c.lg, summary, http.StatusOK)
	case "daily":
		daily, apiErr := c.service.GetDailyEarnings(tokenInfo.ID)
		if apiErr != nil {
			http.Error(w, apiErr.Message, apiErr.Code)
			return
		}
		writeJSON(w, c.lg, daily, http.StatusOK)
	case "weekly":
		weekly, apiErr := c.service.GetWeeklyEarnings(tokenInfo.ID)
		if apiErr != nil {
			http.Error(w, apiErr.Message, apiErr.Code)
			return
		}
		writeJSON(w, c.lg, weekly, http.StatusOK)
	default:
		http.Error(w, "period must be daily or weekly", http.StatusBadRequest)
	}
}
