package handler

import (
	"lapakin/internal/domain/service"
	"lapakin/internal/usecase"
)

var (
	itemHandler   *ItemHandler
	orderHandler  *OrderHandler
	uploadHandler *UploadHandler
	healthHandler *HealthHandler
)

func Setup(
	itemUseCase *usecase.ItemUseCase,
	orderUseCase *usecase.OrderUseCase,
	storage service.ImageStorage,
) {
	itemHandler = NewItemHandler(itemUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	uploadHandler = NewUploadHandler(storage)
	healthHandler = NewHealthHandler()
}

func GetItemHandler() *ItemHandler {
	return itemHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
