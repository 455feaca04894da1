package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lapakin/internal/domain/entity"
	"lapakin/internal/usecase"
	"lapakin/pkg/errors"
)

func TestCreateOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	h := NewOrderHandler(usecase.NewOrderUseCase(mockRepo))

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(nil).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*entity.Order)
			order.ID = "order-1"
			order.CreatedAt = time.Now()
		})

	payload := `{"buyer":"Charlie","itemId":"item-1","quantity":2,"address":"2 Side St"}`
	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.CreateOrder(c)) {
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Message string       `json:"message"`
			Order   entity.Order `json:"order"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Order placed successfully!", body.Message)
		assert.Equal(t, "order-1", body.Order.ID)
		assert.Equal(t, "Charlie", body.Order.Buyer)
		assert.Equal(t, "item-1", body.Order.ItemID)
		assert.Equal(t, 2, body.Order.Quantity)
	}

	mockRepo.AssertExpectations(t)
}

// The order surface never checks that itemId points at a real item.
func TestCreateOrder_DanglingItemID(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	h := NewOrderHandler(usecase.NewOrderUseCase(mockRepo))

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	payload := `{"buyer":"Charlie","itemId":"no-such-item","quantity":1,"address":"2 Side St"}`
	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.CreateOrder(c)) {
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Order placed successfully!")
	}
}

func TestCreateOrder_StoreFailure(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	h := NewOrderHandler(usecase.NewOrderUseCase(mockRepo))

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(errors.Database("Failed to place order", nil))

	payload := `{"buyer":"Charlie","itemId":"item-1","quantity":2,"address":"2 Side St"}`
	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.CreateOrder(c)) {
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to place order")
	}
}

func TestListOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	h := NewOrderHandler(usecase.NewOrderUseCase(mockRepo))

	now := time.Now()
	mockRepo.On("List", mock.Anything).Return([]*entity.Order{
		{ID: "o2", Buyer: "Dana", CreatedAt: now},
		{ID: "o1", Buyer: "Charlie", CreatedAt: now.Add(-time.Minute)},
	}, nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.ListOrders(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)

		var orders []entity.Order
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
		assert.Len(t, orders, 2)
		assert.Equal(t, "o2", orders[0].ID)
		assert.Equal(t, "o1", orders[1].ID)
	}
}
