package handler

import (
	"lapakin/internal/usecase"
	"lapakin/pkg/response"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// Order creation is permissive on purpose: itemId is not checked against
// the items collection and quantity is accepted as sent.
type createOrderRequest struct {
	Buyer    string `json:"buyer"`
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
	Address  string `json:"address"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		Buyer:    req.Buyer,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Address:  req.Address,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"message": "Order placed successfully!",
		"order":   order,
	})
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUseCase.ListOrders(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}
