package payment

import (
	"errors"

	"github.com/KasunInd27/CampQuest-sub000/model"
)

var (
	ErrCardUnavailable = errors.New("card payments are temporarily unavailable")
	ErrUnknownMethod   = errors.New("unknown payment method")
)

// MethodEnabled gates payment-method intake. Card processing is
// switched off globally; orders are only accepted with slip payment.
func MethodEnabled(m model.PaymentMethod) error {
	switch m {
	case model.MethodSlip:
		return nil
	case model.MethodCard:
		return ErrCardUnavailable
	default:
		return ErrUnknownMethod
	}
}
