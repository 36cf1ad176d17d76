package service

import (
	"errors"
	"math"

	"github.com/grocito/grocito/internal/model"
)

const (
	minPassLen  = 4
	maxPassLen  = 64
	minLoginLen = 3
	maxLoginLen = 64
)

func validateLoginDTO(input model.LoginDTO) error {
	if err := validateLogin(input.Login); err != nil {
		return err
	}

	if err := validatePassword(input.Password); err != nil {
		return err
	}

	return nil
}

func validateRegisterDTO(input model.RegisterDTO) error {
	if err := validateLogin(input.Login); err != nil {
		return err
	}

	if err := validatePassword(input.Password); err != nil {
		return err
	}

	if err := validateRole(input.Role); err != nil {
		return err
	}

	return nil
}

func validateLogin(login string) error {
	if len(login) < minLoginLen || len(login) > maxLoginLen {
		return errors.New(model.ErrInvalidLoginOrPasswordMessage)
	}

	return nil
}

func validatePassword(password string) error {
	if len(password) < minPassLen || len(password) > maxPassLen {
		return errors.New(model.ErrInvalidLoginOrPasswordMessage)
	}

	return nil
}

// An empty role is allowed, registration defaults it to customer.
func validateRole(role model.Role) error {
	if role != "" && role != model.RoleCustomer && role != model.RolePartner {
		return errors.New(model.ErrInvalidRoleMessage)
	}

	return nil
}

func validateCartItem(item model.CartItem) error {
	if item.ProductID == "" || item.Price < 0 || math.IsNaN(item.Price) || item.Quantity < 0 {
		return errors.New(model.ErrInvalidCartItemMessage)
	}

	return nil
}

func validateRecordDeliveryDTO(input model.RecordDeliveryDTO) error {
	if input.OrderNumber == "" {
		return errors.New(model.ErrOrderNumberRequiredMessage)
	}

	if input.OrderAmount < 0 || math.IsNaN(input.OrderAmount) || math.IsInf(input.OrderAmount, 0) {
		return errors.New(model.ErrInvalidAmountMessage)
	}

	if input.DeliveredAt.IsZero() {
		return errors.New(model.ErrInvalidTimestampMessage)
	}

	return nil
}
