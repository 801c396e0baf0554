package usecase

import (
	"context"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	"github.com/polkiloo/foodfront/internal/domain/model"
)

// CheckoutUseCase places an order from the server-side cart.
type CheckoutUseCase struct {
	orders backend.OrderAPI
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(client backend.Client) *CheckoutUseCase {
	return &CheckoutUseCase{orders: client}
}

// PlaceOrder validates the checkout form and submits it. The backend empties the cart.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, checkout model.Checkout) (*model.Order, error) {
	if checkout.AddressID <= 0 {
		return nil, invalid("delivery address is required")
	}
	method, ok := model.ParsePaymentMethod(string(checkout.PaymentMethod))
	if !ok {
		return nil, invalid("unsupported payment method %q", checkout.PaymentMethod)
	}
	checkout.PaymentMethod = method
	return u.orders.PlaceOrder(ctx, checkout)
}
