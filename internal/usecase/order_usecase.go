package usecase

import (
	"context"

	"lapakin/internal/domain/entity"
	"lapakin/internal/domain/repository"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
	}
}

type CreateOrderInput struct {
	Buyer    string
	ItemID   string
	Quantity int
	Address  string
}

// CreateOrder persists the order as given. ItemID is not checked against
// the items collection and quantity is not range-checked; the order surface
// is deliberately permissive.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		Buyer:    input.Buyer,
		ItemID:   input.ItemID,
		Quantity: input.Quantity,
		Address:  input.Address,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return uc.orderRepo.List(ctx)
}
