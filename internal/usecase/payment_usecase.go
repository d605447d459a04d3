package usecase

import (
	"context"

	"authsvc/internal/domain/entity"
)

// PaymentUsecase forwards payment confirmations to the operator mailbox.
type PaymentUsecase interface {
	// NotifyPayment sends one email describing payment. It does not touch the credential store.
	NotifyPayment(ctx context.Context, payment *entity.Payment) error
}
